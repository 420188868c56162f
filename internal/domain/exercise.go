package domain

// Category classifies an exercise by its training role.
type Category string

const (
	CategoryCompound  Category = "compound"
	CategoryIsolation Category = "isolation"
	CategoryCardio    Category = "cardio"
	CategoryStretch   Category = "stretch"
	CategoryWarmup    Category = "warmup"
)

// Exercise represents a single exercise definition in the catalog.
// Catalog entries are shared and immutable once created; trainers may append
// custom entries of their own.
type Exercise struct {
	ID               string     `bson:"_id" json:"id"`
	NameEn           string     `bson:"nameEn" json:"name_en"`
	NameFa           string     `bson:"nameFa" json:"name_fa"`
	DescriptionEn    string     `bson:"descriptionEn,omitempty" json:"description_en,omitempty"`
	DescriptionFa    string     `bson:"descriptionFa,omitempty" json:"description_fa,omitempty"`
	MuscleGroup      string     `bson:"muscleGroup" json:"muscle_group"`
	SecondaryMuscles []string   `bson:"secondaryMuscles,omitempty" json:"secondary_muscles,omitempty"`
	Equipment        string     `bson:"equipment,omitempty" json:"equipment,omitempty"`
	Difficulty       Difficulty `bson:"difficulty" json:"difficulty"`
	VideoURL         string     `bson:"videoUrl,omitempty" json:"video_url,omitempty"`
	ThumbnailURL     string     `bson:"thumbnailUrl,omitempty" json:"thumbnail_url,omitempty"`
	InstructionsEn   []string   `bson:"instructionsEn,omitempty" json:"instructions_en,omitempty"`
	InstructionsFa   []string   `bson:"instructionsFa,omitempty" json:"instructions_fa,omitempty"`
	TipsEn           []string   `bson:"tipsEn,omitempty" json:"tips_en,omitempty"`
	TipsFa           []string   `bson:"tipsFa,omitempty" json:"tips_fa,omitempty"`
	Category         Category   `bson:"category" json:"category"`
}
