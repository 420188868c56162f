package advisory

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const systemInstruction = "You are a world-class certified personal trainer and nutritionist. " +
	"Provide concise, encouraging, and science-based fitness advice in the language of the user's prompt (Persian or English)."

const videoPollInterval = 10 * time.Second

// GeminiConfig carries the settings for the hosted generation backend.
type GeminiConfig struct {
	BaseURL    string
	APIKey     string
	TextModel  string
	ImageModel string
	VideoModel string
	Timeout    time.Duration
}

// geminiClient implements Client against the Gemini REST API.
type geminiClient struct {
	cfg    GeminiConfig
	http   *http.Client
	logger *zap.SugaredLogger
}

// NewGeminiClient creates a Client backed by the Gemini generateContent API.
func NewGeminiClient(cfg GeminiConfig, logger *zap.SugaredLogger) Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &geminiClient{
		cfg:    cfg,
		http:   &http.Client{Timeout: timeout},
		logger: logger,
	}
}

type generatePart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"` // base64
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generateRequest struct {
	Contents          []generateContent `json:"contents"`
	SystemInstruction *generateContent  `json:"systemInstruction,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content generateContent `json:"content"`
	} `json:"candidates"`
}

func (c *geminiClient) generate(ctx context.Context, model string, req generateRequest) (*generateResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.cfg.BaseURL, model, c.cfg.APIKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.logger.Warnw("advisory call failed", "model", model, "error", err)
		return nil, ErrUnavailable
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		c.logger.Warnw("advisory call rejected", "model", model, "status", resp.StatusCode)
		return nil, ErrUnavailable
	}
	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, ErrUnavailable
	}
	return &out, nil
}

func (c *geminiClient) GetAdvice(ctx context.Context, prompt string) (string, error) {
	resp, err := c.generate(ctx, c.cfg.TextModel, generateRequest{
		Contents:          []generateContent{{Parts: []generatePart{{Text: prompt}}}},
		SystemInstruction: &generateContent{Parts: []generatePart{{Text: systemInstruction}}},
	})
	if err != nil {
		return "", err
	}
	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			if part.Text != "" {
				return part.Text, nil
			}
		}
	}
	return "", ErrUnavailable
}

func (c *geminiClient) GenerateInspirationImage(ctx context.Context, references []Image, goalText string) (*Image, error) {
	parts := make([]generatePart, 0, len(references)+1)
	for _, ref := range references {
		parts = append(parts, generatePart{InlineData: &inlineData{
			MIMEType: ref.MIMEType,
			Data:     base64.StdEncoding.EncodeToString(ref.Data),
		}})
	}
	prompt := fmt.Sprintf("Based on these photos of a person, generate a photo-realistic high-resolution image of them "+
		"AFTER they have achieved their fitness goal: %s. Ensure they look healthy, athletic, and fit while maintaining "+
		"their recognizable facial features. The background should be a modern high-end gym. Aspect ratio 9:16. "+
		"Portrait orientation. Professional lighting.", goalText)
	parts = append(parts, generatePart{Text: prompt})

	resp, err := c.generate(ctx, c.cfg.ImageModel, generateRequest{
		Contents: []generateContent{{Parts: parts}},
	})
	if err != nil {
		return nil, err
	}
	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			if part.InlineData == nil {
				continue
			}
			data, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
			if err != nil {
				return nil, ErrUnavailable
			}
			return &Image{MIMEType: part.InlineData.MIMEType, Data: data}, nil
		}
	}
	return nil, ErrUnavailable
}

type videoOperation struct {
	Name     string `json:"name"`
	Done     bool   `json:"done"`
	Response struct {
		GenerateVideoResponse struct {
			GeneratedSamples []struct {
				Video struct {
					URI string `json:"uri"`
				} `json:"video"`
			} `json:"generatedSamples"`
		} `json:"generateVideoResponse"`
	} `json:"response"`
}

func (c *geminiClient) GenerateTutorialVideo(ctx context.Context, exerciseName string) (string, error) {
	prompt := fmt.Sprintf("A high-quality 3D medical animation or professional fitness demonstration of a person "+
		"performing the %s exercise with perfect form in a clean, brightly lit gym. Focus on correct joint alignment "+
		"and muscle activation. Cinematic lighting, 1080p.", exerciseName)
	body, err := json.Marshal(map[string]any{
		"instances":  []map[string]string{{"prompt": prompt}},
		"parameters": map[string]any{"sampleCount": 1, "resolution": "1080p", "aspectRatio": "16:9"},
	})
	if err != nil {
		return "", err
	}
	url := fmt.Sprintf("%s/models/%s:predictLongRunning?key=%s", c.cfg.BaseURL, c.cfg.VideoModel, c.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", ErrUnavailable
	}
	var op videoOperation
	err = json.NewDecoder(resp.Body).Decode(&op)
	resp.Body.Close()
	if err != nil || resp.StatusCode != http.StatusOK || op.Name == "" {
		return "", ErrUnavailable
	}

	// Poll until the long-running operation completes or the context gives up.
	for !op.Done {
		select {
		case <-ctx.Done():
			return "", ErrUnavailable
		case <-time.After(videoPollInterval):
		}
		if err := c.pollOperation(ctx, &op); err != nil {
			return "", err
		}
	}
	samples := op.Response.GenerateVideoResponse.GeneratedSamples
	if len(samples) == 0 || samples[0].Video.URI == "" {
		return "", ErrUnavailable
	}
	return samples[0].Video.URI, nil
}

func (c *geminiClient) pollOperation(ctx context.Context, op *videoOperation) error {
	url := fmt.Sprintf("%s/%s?key=%s", c.cfg.BaseURL, op.Name, c.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return ErrUnavailable
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return ErrUnavailable
	}
	if err := json.NewDecoder(resp.Body).Decode(op); err != nil {
		return ErrUnavailable
	}
	return nil
}
