package advisory

import (
	"context"
	"errors"
)

// --- Error Definitions ---
var (
	// ErrUnavailable is the sentinel failure for every advisory capability.
	// Callers surface a retry affordance to the user; nothing retries
	// automatically.
	ErrUnavailable = errors.New("advisory backend unavailable")
)

// Image is a raw media payload exchanged with the generation backend.
type Image struct {
	MIMEType string
	Data     []byte
}

// Client is the AI advisory capability the core depends on abstractly: three
// independent, fallible generation calls. Tests substitute a deterministic
// fake; production wires the Gemini REST client.
type Client interface {
	// GetAdvice answers a free-text fitness question.
	GetAdvice(ctx context.Context, prompt string) (string, error)
	// GenerateInspirationImage synthesizes a "future self" image from the
	// trainee's reference photos and goal description.
	GenerateInspirationImage(ctx context.Context, references []Image, goalText string) (*Image, error)
	// GenerateTutorialVideo produces a demonstration video for an exercise.
	// Generation is long-running; the implementation polls until done or the
	// context expires.
	GenerateTutorialVideo(ctx context.Context, exerciseName string) (string, error)
}
