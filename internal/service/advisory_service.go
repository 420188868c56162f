package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"oko/coaching-app/internal/advisory"
	"oko/coaching-app/internal/domain"
	"oko/coaching-app/internal/storage"
	"oko/coaching-app/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// --- Error Definitions ---
var (
	ErrAdvisoryUnavailable = errors.New("advisory backend is unavailable")
	// ErrSuperseded reports that a newer request for the same capability and
	// subject started while this one was in flight; the stale result was
	// dropped and state is untouched.
	ErrSuperseded        = errors.New("advisory response superseded by a newer request")
	ErrNoReferenceImages = errors.New("at least one reference image is required")
)

// AdvisoryService orchestrates the AI flows: chat advice, "future self"
// inspiration images and exercise tutorial videos. Calls are advisory and
// fallible; the user retries manually.
type AdvisoryService interface {
	// Ask appends the question to the trainee's AI thread, fetches advice and
	// appends the reply. A reply that arrives after a newer Ask for the same
	// trainee is dropped with ErrSuperseded.
	Ask(ctx context.Context, traineeID, question string) (*domain.Message, error)
	// InspireFutureSelf generates the synthetic goal image, stores it and
	// pins its key on the trainee's roster entry.
	InspireFutureSelf(ctx context.Context, traineeID, goalText string, references []advisory.Image) (string, error)
	// TutorialVideo generates a demonstration video for a catalog exercise
	// and records its URL on the entry.
	TutorialVideo(ctx context.Context, exerciseID string) (string, error)
}

type advisoryService struct {
	store  *store.Store
	client advisory.Client
	media  storage.FileStorage
	logger *zap.SugaredLogger

	mu          sync.Mutex
	generations map[string]uint64 // request generation per capability+subject
}

// NewAdvisoryService creates a new instance of advisoryService.
func NewAdvisoryService(st *store.Store, client advisory.Client, media storage.FileStorage, logger *zap.SugaredLogger) AdvisoryService {
	return &advisoryService{
		store:       st,
		client:      client,
		media:       media,
		logger:      logger,
		generations: make(map[string]uint64),
	}
}

// Generations are tracked per capability so a chat question in flight never
// invalidates an image or video generation for the same subject.
func (s *advisoryService) begin(key string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generations[key]++
	return s.generations[key]
}

func (s *advisoryService) current(key string, generation uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generations[key] == generation
}

func (s *advisoryService) Ask(ctx context.Context, traineeID, question string) (*domain.Message, error) {
	if traineeID == "" || question == "" {
		return nil, ErrValidation
	}
	generation := s.begin("ask/" + traineeID)

	err := s.store.Update(func(state *store.State) error {
		state.Messages = append(state.Messages, domain.Message{
			ID:        uuid.NewString(),
			Type:      domain.MessageText,
			ChatType:  domain.ChatAI,
			Text:      question,
			Sender:    domain.SenderUser,
			Timestamp: time.Now(),
			TraineeID: traineeID,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	advice, err := s.client.GetAdvice(ctx, question)
	if err != nil {
		s.logger.Warnw("advice call failed", "trainee_id", traineeID, "error", err)
		return nil, ErrAdvisoryUnavailable
	}
	if !s.current("ask/"+traineeID, generation) {
		return nil, ErrSuperseded
	}

	reply := domain.Message{
		ID:        uuid.NewString(),
		Type:      domain.MessageText,
		ChatType:  domain.ChatAI,
		Text:      advice,
		Sender:    domain.SenderAI,
		Timestamp: time.Now(),
		TraineeID: traineeID,
	}
	err = s.store.Update(func(state *store.State) error {
		state.Messages = append(state.Messages, reply)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &reply, nil
}

func (s *advisoryService) InspireFutureSelf(ctx context.Context, traineeID, goalText string, references []advisory.Image) (string, error) {
	if len(references) == 0 {
		return "", ErrNoReferenceImages
	}
	generation := s.begin("inspire/" + traineeID)

	image, err := s.client.GenerateInspirationImage(ctx, references, goalText)
	if err != nil {
		s.logger.Warnw("inspiration image generation failed", "trainee_id", traineeID, "error", err)
		return "", ErrAdvisoryUnavailable
	}
	if !s.current("inspire/"+traineeID, generation) {
		return "", ErrSuperseded
	}

	key := fmt.Sprintf("inspiration/%s/%s.png", traineeID, uuid.NewString())
	if err := s.media.Upload(ctx, key, image.MIMEType, image.Data); err != nil {
		return "", err
	}
	err = s.store.Update(func(state *store.State) error {
		t, ok := state.TraineeByID(traineeID)
		if !ok {
			return ErrTraineeNotFound
		}
		t.InspirationImageKey = key
		return nil
	})
	if err != nil {
		return "", err
	}
	return key, nil
}

func (s *advisoryService) TutorialVideo(ctx context.Context, exerciseID string) (string, error) {
	var name string
	var found bool
	s.store.View(func(state *store.State) {
		if ex, ok := state.ExerciseByID(exerciseID); ok {
			found = true
			name = ex.NameEn
			if name == "" {
				name = ex.NameFa
			}
		}
	})
	if !found {
		return "", ErrUnknownExercise
	}
	generation := s.begin("video/" + exerciseID)

	url, err := s.client.GenerateTutorialVideo(ctx, name)
	if err != nil {
		s.logger.Warnw("tutorial video generation failed", "exercise_id", exerciseID, "error", err)
		return "", ErrAdvisoryUnavailable
	}
	if !s.current("video/"+exerciseID, generation) {
		return "", ErrSuperseded
	}
	err = s.store.Update(func(state *store.State) error {
		if ex, ok := state.ExerciseByID(exerciseID); ok {
			ex.VideoURL = url
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return url, nil
}
