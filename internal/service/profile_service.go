package service

import (
	"context"
	"errors"
	"time"

	"oko/coaching-app/internal/domain"
	"oko/coaching-app/internal/store"

	"go.uber.org/zap"
)

// --- Error Definitions ---
var (
	ErrInvalidProfile      = errors.New("profile role does not match its role-specific fields")
	ErrNoProfile           = errors.New("no profile is signed in")
	ErrInvalidSubscription = errors.New("sessions remaining cannot exceed sessions total")
)

// ProfileUpdate is a partial profile mutation. Role is deliberately absent:
// it is fixed at construction and cannot be updated.
type ProfileUpdate struct {
	FullName     *string                  `json:"full_name,omitempty"`
	Phone        *string                  `json:"phone,omitempty"`
	Age          *int                     `json:"age,omitempty" validate:"omitempty,gte=0"`
	Gender       *string                  `json:"gender,omitempty"`
	Height       *float64                 `json:"height,omitempty" validate:"omitempty,gte=0"`
	Weight       *float64                 `json:"weight,omitempty" validate:"omitempty,gte=0"`
	Goal         *domain.Goal             `json:"goal,omitempty"`
	FitnessLevel *domain.Difficulty       `json:"fitness_level,omitempty"`
	Measurements *domain.BodyMeasurements `json:"body_measurements,omitempty"`
}

// SubscriptionUpdate is a partial merge into a trainee's subscription.
type SubscriptionUpdate struct {
	Type              *domain.SubscriptionType `json:"type,omitempty"`
	Price             *float64                 `json:"price,omitempty" validate:"omitempty,gte=0"`
	SessionsTotal     *int                     `json:"sessions_total,omitempty" validate:"omitempty,gte=0"`
	SessionsRemaining *int                     `json:"sessions_remaining,omitempty" validate:"omitempty,gte=0"`
	ExpiryDate        *time.Time               `json:"expiry_date,omitempty"`
	IsPaid            *bool                    `json:"is_paid,omitempty"`
}

// ProfileService owns the signed-in profile, the trainee roster and the
// subscription bookkeeping.
type ProfileService interface {
	// SignIn installs the profile and, for trainees, resolves their active
	// program from the roster.
	SignIn(ctx context.Context, profile *domain.Profile) error
	// SignOut replaces the profile; nothing is deleted from the ledgers.
	SignOut(ctx context.Context) error
	UpdateProfile(ctx context.Context, update ProfileUpdate) error
	AddWeight(ctx context.Context, weight float64) error
	UpdateSubscription(ctx context.Context, traineeID string, update SubscriptionUpdate) error
	// RenewSubscription resets the remaining session count to the total.
	RenewSubscription(ctx context.Context, traineeID string) error
	SetInspirationImage(ctx context.Context, traineeID, imageKey string) error
	Roster(ctx context.Context) []domain.TraineeSummary
}

type profileService struct {
	store  *store.Store
	logger *zap.SugaredLogger
}

// NewProfileService creates a new instance of profileService.
func NewProfileService(st *store.Store, logger *zap.SugaredLogger) ProfileService {
	return &profileService{store: st, logger: logger}
}

func (s *profileService) SignIn(ctx context.Context, profile *domain.Profile) error {
	if profile == nil {
		return ErrInvalidProfile
	}
	switch profile.Role {
	case domain.RoleTrainer:
		if profile.Trainer == nil || profile.Trainee != nil {
			return ErrInvalidProfile
		}
	case domain.RoleTrainee:
		if profile.Trainee == nil || profile.Trainer != nil {
			return ErrInvalidProfile
		}
	default:
		return ErrInvalidProfile
	}
	return s.store.Update(func(state *store.State) error {
		state.Profile = profile
		state.ActiveProgram = nil
		if profile.IsTrainee() {
			if t, ok := state.TraineeByID(profile.ID); ok && t.ActiveProgramID != "" {
				if p, ok := state.ProgramByID(t.ActiveProgramID); ok {
					program := *p
					state.ActiveProgram = &program
				}
			}
		}
		return nil
	})
}

func (s *profileService) SignOut(ctx context.Context) error {
	return s.store.Update(func(state *store.State) error {
		if state.Session != nil {
			s.logger.Warnw("abandoning workout session on sign-out", "day_id", state.Session.DayID)
		}
		state.Profile = nil
		state.ActiveProgram = nil
		state.Session = nil
		return nil
	})
}

func (s *profileService) UpdateProfile(ctx context.Context, update ProfileUpdate) error {
	if err := validateStruct(update); err != nil {
		return err
	}
	return s.store.Update(func(state *store.State) error {
		p := state.Profile
		if p == nil {
			return ErrNoProfile
		}
		if update.FullName != nil {
			p.FullName = *update.FullName
		}
		if update.Phone != nil {
			p.Phone = *update.Phone
		}
		if update.Age != nil {
			p.Age = *update.Age
		}
		if update.Gender != nil {
			p.Gender = *update.Gender
		}
		if update.Height != nil {
			p.Height = *update.Height
		}
		if update.Weight != nil {
			p.Weight = *update.Weight
		}
		if update.Goal != nil {
			p.Goal = *update.Goal
		}
		if update.FitnessLevel != nil {
			p.FitnessLevel = *update.FitnessLevel
		}
		if update.Measurements != nil {
			p.Measurements = update.Measurements
		}
		return nil
	})
}

func (s *profileService) AddWeight(ctx context.Context, weight float64) error {
	if weight <= 0 {
		return ErrValidation
	}
	return s.store.Update(func(state *store.State) error {
		state.WeightHistory = append(state.WeightHistory, domain.WeightEntry{
			Date:   time.Now(),
			Weight: weight,
		})
		return nil
	})
}

func (s *profileService) UpdateSubscription(ctx context.Context, traineeID string, update SubscriptionUpdate) error {
	if err := validateStruct(update); err != nil {
		return err
	}
	return s.store.Update(func(state *store.State) error {
		t, ok := state.TraineeByID(traineeID)
		if !ok {
			return ErrTraineeNotFound
		}
		sub := domain.Subscription{}
		if t.Subscription != nil {
			sub = *t.Subscription
		}
		if update.Type != nil {
			sub.Type = *update.Type
		}
		if update.Price != nil {
			sub.Price = *update.Price
		}
		if update.SessionsTotal != nil {
			sub.SessionsTotal = *update.SessionsTotal
		}
		if update.SessionsRemaining != nil {
			sub.SessionsRemaining = *update.SessionsRemaining
		}
		if update.ExpiryDate != nil {
			sub.ExpiryDate = update.ExpiryDate
		}
		if update.IsPaid != nil {
			sub.IsPaid = *update.IsPaid
		}
		if sub.SessionsRemaining > sub.SessionsTotal {
			return ErrInvalidSubscription
		}
		t.Subscription = &sub
		t.IsVIP = sub.IsVIP()
		return nil
	})
}

func (s *profileService) RenewSubscription(ctx context.Context, traineeID string) error {
	err := s.store.Update(func(state *store.State) error {
		t, ok := state.TraineeByID(traineeID)
		if !ok {
			return ErrTraineeNotFound
		}
		if t.Subscription == nil {
			return ErrInvalidSubscription
		}
		t.Subscription.SessionsRemaining = t.Subscription.SessionsTotal
		t.Subscription.IsPaid = true
		return nil
	})
	if err == nil {
		s.logger.Infow("subscription renewed", "trainee_id", traineeID)
	}
	return err
}

func (s *profileService) SetInspirationImage(ctx context.Context, traineeID, imageKey string) error {
	return s.store.Update(func(state *store.State) error {
		t, ok := state.TraineeByID(traineeID)
		if !ok {
			return ErrTraineeNotFound
		}
		t.InspirationImageKey = imageKey
		return nil
	})
}

func (s *profileService) Roster(ctx context.Context) []domain.TraineeSummary {
	var out []domain.TraineeSummary
	s.store.View(func(state *store.State) {
		out = append(out, state.Trainees...)
	})
	return out
}
