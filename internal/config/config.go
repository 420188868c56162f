package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Snapshot  SnapshotConfig  `mapstructure:"snapshot"`
	Database  DatabaseConfig  `mapstructure:"database"`
	S3        S3Config        `mapstructure:"s3"`
	Advisory  AdvisoryConfig  `mapstructure:"advisory"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

// SnapshotConfig selects where the state tree is persisted.
type SnapshotConfig struct {
	Backend string `mapstructure:"backend"` // "file" or "mongo"
	Path    string `mapstructure:"path"`    // file backend only
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

// AdvisoryConfig configures the AI generation backend.
type AdvisoryConfig struct {
	BaseURL    string        `mapstructure:"base_url"`
	APIKey     string        `mapstructure:"api_key"`
	TextModel  string        `mapstructure:"text_model"`
	ImageModel string        `mapstructure:"image_model"`
	VideoModel string        `mapstructure:"video_model"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

// SchedulerConfig controls the periodic schedule/subscription checks.
type SchedulerConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Environment variables override the file, e.g. snapshot.path ->
	// SNAPSHOT_PATH, advisory.api_key -> ADVISORY_API_KEY.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("snapshot.backend", "file")
	viper.SetDefault("snapshot.path", "data/state.json")
	viper.SetDefault("database.uri", "mongodb://localhost:27017")
	viper.SetDefault("database.name", "coaching_app")
	viper.SetDefault("s3.use_ssl", true)
	viper.SetDefault("advisory.text_model", "gemini-3-flash-preview")
	viper.SetDefault("advisory.image_model", "gemini-2.5-flash-image")
	viper.SetDefault("advisory.video_model", "veo-3.1-fast-generate-preview")
	viper.SetDefault("advisory.timeout", "30s")
	viper.SetDefault("scheduler.interval", "60s")

	err = viper.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		// Config file not found; rely on defaults and env vars.
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	return config, nil
}
