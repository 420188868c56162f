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
	ErrSlotNotFound      = errors.New("availability slot not found")
	ErrSlotAlreadyBooked = errors.New("slot is already booked")
	ErrSlotBooked        = errors.New("slot is booked; cancel the booking first")
	ErrVipRequired       = errors.New("vip subscription required for this slot")
	ErrNoSchedule        = errors.New("profile has no trainer schedule")
)

// SlotInput describes a new availability slot.
type SlotInput struct {
	Time  string          `json:"time" validate:"required,datetime=15:04"`
	GymID string          `json:"gym_id" validate:"required"`
	Type  domain.SlotType `json:"type" validate:"required,oneof=normal vip"`
}

// ScheduleService maintains the trainer's per-day slot availability and
// enforces the booking invariants.
type ScheduleService interface {
	AddSlot(ctx context.Context, day string, input SlotInput) (*domain.AvailabilitySlot, error)
	// RemoveSlot deletes an unbooked slot. Removing a booked slot is refused
	// with ErrSlotBooked; the booking must be cancelled first.
	RemoveSlot(ctx context.Context, day, slotID string) error
	// Book assigns a slot to a trainee. VIP slots require a VIP trainee, and
	// a booked slot is never overwritten.
	Book(ctx context.Context, traineeID, day, slotID string) error
	// Cancel clears a slot's booking. Cancelling an unbooked slot is a no-op.
	Cancel(ctx context.Context, day, slotID string) error
	// ReplaceAvailability swaps in a whole weekly grid at once, the bulk
	// counterpart to AddSlot/RemoveSlot. The incoming grid is authoritative:
	// bookings not carried in it are gone.
	ReplaceAvailability(ctx context.Context, grid domain.Availability) error
	// SlotsForDay returns the day's slots in insertion order; time-sorting is
	// the caller's read-time concern.
	SlotsForDay(ctx context.Context, day string) ([]domain.AvailabilitySlot, error)
}

type scheduleService struct {
	store  *store.Store
	logger *zap.SugaredLogger
}

// NewScheduleService creates a new instance of scheduleService.
func NewScheduleService(st *store.Store, logger *zap.SugaredLogger) ScheduleService {
	return &scheduleService{store: st, logger: logger}
}

// schedule returns the trainer availability of the signed-in profile.
func schedule(state *store.State) (domain.Availability, error) {
	if state.Profile == nil || state.Profile.Trainer == nil {
		return nil, ErrNoSchedule
	}
	if state.Profile.Trainer.Availability == nil {
		state.Profile.Trainer.Availability = domain.Availability{}
	}
	return state.Profile.Trainer.Availability, nil
}

func (s *scheduleService) AddSlot(ctx context.Context, day string, input SlotInput) (*domain.AvailabilitySlot, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	var created *domain.AvailabilitySlot
	err := s.store.Update(func(state *store.State) error {
		avail, err := schedule(state)
		if err != nil {
			return err
		}
		if _, ok := state.GymByID(input.GymID); !ok {
			return ErrGymNotFound
		}
		slot := &domain.AvailabilitySlot{
			ID:    uuid.NewString(),
			Time:  input.Time,
			Type:  input.Type,
			GymID: input.GymID,
		}
		avail.Day(day).Add(slot)
		created = slot
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Infow("slot added", "day", day, "time", created.Time, "type", created.Type)
	return created, nil
}

func (s *scheduleService) RemoveSlot(ctx context.Context, day, slotID string) error {
	return s.store.Update(func(state *store.State) error {
		avail, err := schedule(state)
		if err != nil {
			return err
		}
		slot, ok := avail.Lookup(day, slotID)
		if !ok {
			return ErrSlotNotFound
		}
		if slot.Booked() {
			return ErrSlotBooked
		}
		avail[day].Remove(slotID)
		return nil
	})
}

func (s *scheduleService) Book(ctx context.Context, traineeID, day, slotID string) error {
	err := s.store.Update(func(state *store.State) error {
		avail, err := schedule(state)
		if err != nil {
			return err
		}
		slot, ok := avail.Lookup(day, slotID)
		if !ok {
			return ErrSlotNotFound
		}
		if slot.Booked() {
			return ErrSlotAlreadyBooked
		}
		trainee, ok := state.TraineeByID(traineeID)
		if !ok {
			return ErrTraineeNotFound
		}
		if slot.Type == domain.SlotVIP && !trainee.CanBookVIP() {
			return ErrVipRequired
		}
		slot.BookedTraineeID = traineeID
		return nil
	})
	if err == nil {
		s.logger.Infow("slot booked", "day", day, "slot_id", slotID, "trainee_id", traineeID)
	}
	return err
}

func (s *scheduleService) Cancel(ctx context.Context, day, slotID string) error {
	return s.store.Update(func(state *store.State) error {
		avail, err := schedule(state)
		if err != nil {
			return err
		}
		slot, ok := avail.Lookup(day, slotID)
		if !ok {
			return ErrSlotNotFound
		}
		slot.BookedTraineeID = ""
		return nil
	})
}

func (s *scheduleService) ReplaceAvailability(ctx context.Context, grid domain.Availability) error {
	return s.store.Update(func(state *store.State) error {
		if state.Profile == nil || state.Profile.Trainer == nil {
			return ErrNoSchedule
		}
		for _, daySched := range grid {
			for id, slot := range daySched.Slots {
				if id == "" || slot.ID != id {
					return ErrValidation
				}
				if err := validate.Var(slot.Time, "required,datetime=15:04"); err != nil {
					return errors.Join(ErrValidation, err)
				}
				if _, ok := state.GymByID(slot.GymID); !ok {
					return ErrGymNotFound
				}
			}
		}
		state.Profile.Trainer.Availability = grid
		return nil
	})
}

func (s *scheduleService) SlotsForDay(ctx context.Context, day string) ([]domain.AvailabilitySlot, error) {
	var out []domain.AvailabilitySlot
	var err error
	s.store.View(func(state *store.State) {
		if state.Profile == nil || state.Profile.Trainer == nil {
			err = ErrNoSchedule
			return
		}
		daySched, ok := state.Profile.Trainer.Availability[day]
		if !ok {
			return
		}
		for _, slot := range daySched.InOrder() {
			out = append(out, *slot)
		}
	})
	return out, err
}
