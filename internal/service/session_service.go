package service

import (
	"context"
	"errors"
	"math"
	"time"

	"oko/coaching-app/internal/domain"
	"oko/coaching-app/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// --- Error Definitions ---
var (
	ErrNoActiveSession = errors.New("no active workout session")
)

// SetEntry is the per-set data captured during a session. RPE is optional;
// when present it must be in [1,10].
type SetEntry struct {
	Reps   int     `json:"reps" validate:"gte=0"`
	Weight float64 `json:"weight" validate:"gte=0"`
	RPE    int     `json:"rpe,omitempty" validate:"omitempty,gte=1,lte=10"`
}

// SessionService manages the lifecycle of the single active workout session
// and its conversion into a permanent log.
type SessionService interface {
	// Start opens a session for the given workout day. An already-active
	// session is discarded without producing a log ("abandon and restart").
	Start(ctx context.Context, dayID string) error
	// RecordSet upserts the set at setIndex for the exercise, sparse-filling
	// lower indices, and marks it completed.
	RecordSet(ctx context.Context, exerciseID string, setIndex int, entry SetEntry) error
	// End converts the active session into a WorkoutLog and clears it. With
	// no active session it is a no-op returning (nil, nil).
	End(ctx context.Context) (*domain.WorkoutLog, error)
	// Active returns a copy of the in-flight session, if any.
	Active(ctx context.Context) (*domain.WorkoutSession, bool)
}

type sessionService struct {
	store  *store.Store
	logger *zap.SugaredLogger
}

// NewSessionService creates a new instance of sessionService.
func NewSessionService(st *store.Store, logger *zap.SugaredLogger) SessionService {
	return &sessionService{store: st, logger: logger}
}

func (s *sessionService) Start(ctx context.Context, dayID string) error {
	return s.store.Update(func(state *store.State) error {
		if state.Session != nil {
			s.logger.Warnw("discarding active session on restart",
				"day_id", state.Session.DayID, "started_at", state.Session.StartTime)
		}
		state.Session = &domain.WorkoutSession{
			DayID:     dayID,
			StartTime: time.Now(),
		}
		return nil
	})
}

func (s *sessionService) RecordSet(ctx context.Context, exerciseID string, setIndex int, entry SetEntry) error {
	if setIndex < 0 {
		return ErrValidation
	}
	if err := validateStruct(entry); err != nil {
		return err
	}
	return s.store.Update(func(state *store.State) error {
		if state.Session == nil {
			return ErrNoActiveSession
		}
		ex := state.Session.ExerciseLog(exerciseID)
		for len(ex.Sets) <= setIndex {
			ex.Sets = append(ex.Sets, domain.SetLog{})
		}
		ex.Sets[setIndex] = domain.SetLog{
			Reps:      entry.Reps,
			Weight:    entry.Weight,
			RPE:       entry.RPE,
			Completed: true,
		}
		return nil
	})
}

func (s *sessionService) End(ctx context.Context) (*domain.WorkoutLog, error) {
	var log *domain.WorkoutLog
	err := s.store.Update(func(state *store.State) error {
		if state.Session == nil {
			return nil // idempotent close
		}
		now := time.Now()
		entry := domain.WorkoutLog{
			ID:          uuid.NewString(),
			Date:        now,
			WorkoutName: workoutName(state, state.Session.DayID),
			Volume:      state.Session.TotalVolume(),
			Duration:    int(math.Round(now.Sub(state.Session.StartTime).Minutes())),
		}
		if state.Profile != nil && state.Profile.IsTrainee() {
			entry.TraineeID = state.Profile.ID
		}
		state.Logs = append([]domain.WorkoutLog{entry}, state.Logs...)
		state.Session = nil
		log = &entry
		return nil
	})
	if err != nil {
		return nil, err
	}
	if log != nil {
		s.logger.Infow("workout session finished",
			"workout", log.WorkoutName, "volume", log.Volume, "duration_min", log.Duration)
	}
	return log, nil
}

func (s *sessionService) Active(ctx context.Context) (*domain.WorkoutSession, bool) {
	var session *domain.WorkoutSession
	s.store.View(func(state *store.State) {
		if state.Session != nil {
			copied := *state.Session
			copied.Exercises = append([]domain.ExerciseLog(nil), state.Session.Exercises...)
			session = &copied
		}
	})
	return session, session != nil
}

// workoutName resolves the display name of the day being executed, checking
// the trainee's active program before the authored program list.
func workoutName(state *store.State, dayID string) string {
	programs := state.Programs
	if state.ActiveProgram != nil {
		programs = append([]domain.Program{*state.ActiveProgram}, programs...)
	}
	for i := range programs {
		if day, ok := programs[i].DayByID(dayID); ok {
			if day.NameFa != "" {
				return day.NameFa
			}
			if day.NameEn != "" {
				return day.NameEn
			}
			return day.Focus
		}
	}
	return ""
}
