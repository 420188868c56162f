package service

import (
	"context"
	"errors"
	"time"

	"oko/coaching-app/internal/domain"
	"oko/coaching-app/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// --- Error Definitions ---
var (
	ErrNoActiveCheckIn  = errors.New("no active check-in for trainee")
	ErrAlreadyCheckedIn = errors.New("trainee is already checked in")
)

// AttendanceService is the check-in/check-out event ledger. Records are
// append-only history; a trainee has at most one open (present) record.
type AttendanceService interface {
	CheckIn(ctx context.Context, traineeID, gymID string) (*domain.AttendanceRecord, error)
	// CheckOut closes the trainee's most recent open record at the gym.
	// With no open record it fails with ErrNoActiveCheckIn and fabricates
	// nothing.
	CheckOut(ctx context.Context, traineeID, gymID string) error
	// PresentRoster lists everyone currently inside, across gyms.
	PresentRoster(ctx context.Context) []domain.AttendanceRecord
	History(ctx context.Context, traineeID string) []domain.AttendanceRecord
}

type attendanceService struct {
	store  *store.Store
	logger *zap.SugaredLogger
}

// NewAttendanceService creates a new instance of attendanceService.
func NewAttendanceService(st *store.Store, logger *zap.SugaredLogger) AttendanceService {
	return &attendanceService{store: st, logger: logger}
}

func (s *attendanceService) CheckIn(ctx context.Context, traineeID, gymID string) (*domain.AttendanceRecord, error) {
	var created *domain.AttendanceRecord
	err := s.store.Update(func(state *store.State) error {
		if _, ok := state.GymByID(gymID); !ok {
			return ErrGymNotFound
		}
		if openRecord(state, traineeID, "") != nil {
			return ErrAlreadyCheckedIn
		}
		record := domain.AttendanceRecord{
			ID:        uuid.NewString(),
			TraineeID: traineeID,
			GymID:     gymID,
			CheckIn:   time.Now(),
			Status:    domain.StatusPresent,
		}
		state.Attendance = append(state.Attendance, record)
		created = &record
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Infow("trainee checked in", "trainee_id", traineeID, "gym_id", gymID)
	return created, nil
}

func (s *attendanceService) CheckOut(ctx context.Context, traineeID, gymID string) error {
	err := s.store.Update(func(state *store.State) error {
		record := openRecord(state, traineeID, gymID)
		if record == nil {
			return ErrNoActiveCheckIn
		}
		now := time.Now()
		record.CheckOut = &now
		record.Status = domain.StatusExited
		return nil
	})
	if err == nil {
		s.logger.Infow("trainee checked out", "trainee_id", traineeID, "gym_id", gymID)
	}
	return err
}

func (s *attendanceService) PresentRoster(ctx context.Context) []domain.AttendanceRecord {
	var out []domain.AttendanceRecord
	s.store.View(func(state *store.State) {
		for _, r := range state.Attendance {
			if r.Status == domain.StatusPresent {
				out = append(out, r)
			}
		}
	})
	return out
}

func (s *attendanceService) History(ctx context.Context, traineeID string) []domain.AttendanceRecord {
	var out []domain.AttendanceRecord
	s.store.View(func(state *store.State) {
		for _, r := range state.Attendance {
			if r.TraineeID == traineeID {
				out = append(out, r)
			}
		}
	})
	return out
}

// openRecord finds the most recent present record for the trainee, optionally
// narrowed to one gym.
func openRecord(state *store.State, traineeID, gymID string) *domain.AttendanceRecord {
	for i := len(state.Attendance) - 1; i >= 0; i-- {
		r := &state.Attendance[i]
		if r.TraineeID != traineeID || r.Status != domain.StatusPresent {
			continue
		}
		if gymID != "" && r.GymID != gymID {
			continue
		}
		return r
	}
	return nil
}
