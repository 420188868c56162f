package service

import (
	"context"
	"errors"

	"oko/coaching-app/internal/domain"
	"oko/coaching-app/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// --- Error Definitions ---
var (
	ErrGymInUse = errors.New("gym has scheduled slots or trainees present")
)

// GymInput describes a new training location.
type GymInput struct {
	NameFa  string `json:"name_fa" validate:"required"`
	NameEn  string `json:"name_en"`
	Address string `json:"address"`
}

// GymService manages the gym reference records that slots and attendance
// point at.
type GymService interface {
	AddGym(ctx context.Context, input GymInput) (*domain.Gym, error)
	// RemoveGym deletes a gym record. Removal is refused with ErrGymInUse
	// while the signed-in trainer's grid still has slots at the gym or a
	// trainee is currently checked in there. Past attendance records keep
	// their gym reference; history is never rewritten.
	RemoveGym(ctx context.Context, gymID string) error
	Gyms(ctx context.Context) []domain.Gym
}

type gymService struct {
	store  *store.Store
	logger *zap.SugaredLogger
}

// NewGymService creates a new instance of gymService.
func NewGymService(st *store.Store, logger *zap.SugaredLogger) GymService {
	return &gymService{store: st, logger: logger}
}

func (s *gymService) AddGym(ctx context.Context, input GymInput) (*domain.Gym, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	gym := domain.Gym{
		ID:      uuid.NewString(),
		NameFa:  input.NameFa,
		NameEn:  input.NameEn,
		Address: input.Address,
	}
	err := s.store.Update(func(state *store.State) error {
		if state.Profile != nil && state.Profile.IsTrainer() {
			gym.TrainerID = state.Profile.ID
		}
		state.Gyms = append(state.Gyms, gym)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Infow("gym added", "gym_id", gym.ID, "name", gym.NameFa)
	return &gym, nil
}

func (s *gymService) RemoveGym(ctx context.Context, gymID string) error {
	err := s.store.Update(func(state *store.State) error {
		idx := -1
		for i := range state.Gyms {
			if state.Gyms[i].ID == gymID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return ErrGymNotFound
		}
		if state.Profile != nil && state.Profile.Trainer != nil {
			for _, daySched := range state.Profile.Trainer.Availability {
				for _, slot := range daySched.InOrder() {
					if slot.GymID == gymID {
						return ErrGymInUse
					}
				}
			}
		}
		for i := range state.Attendance {
			if state.Attendance[i].GymID == gymID && state.Attendance[i].Status == domain.StatusPresent {
				return ErrGymInUse
			}
		}
		state.Gyms = append(state.Gyms[:idx], state.Gyms[idx+1:]...)
		return nil
	})
	if err == nil {
		s.logger.Infow("gym removed", "gym_id", gymID)
	}
	return err
}

func (s *gymService) Gyms(ctx context.Context) []domain.Gym {
	var out []domain.Gym
	s.store.View(func(state *store.State) {
		out = append(out, state.Gyms...)
	})
	return out
}
