package service

import (
	"context"
	"testing"

	"oko/coaching-app/internal/domain"
	"oko/coaching-app/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Seed grid: s1 = Saturday 09:00 VIP, s2 = Saturday 11:00 normal.
// Seed roster: u1 is VIP, u2 is not.

func TestBookVIPGate(t *testing.T) {
	st := trainerStore()
	svc := NewScheduleService(st, testLogger())
	ctx := context.Background()

	err := svc.Book(ctx, "u2", "Saturday", "s1")
	assert.ErrorIs(t, err, ErrVipRequired)

	st.View(func(s *store.State) {
		slot, ok := s.Profile.Trainer.Availability.Lookup("Saturday", "s1")
		require.True(t, ok)
		assert.False(t, slot.Booked())
	})

	require.NoError(t, svc.Book(ctx, "u1", "Saturday", "s1"))
	st.View(func(s *store.State) {
		slot, _ := s.Profile.Trainer.Availability.Lookup("Saturday", "s1")
		assert.Equal(t, "u1", slot.BookedTraineeID)
	})
}

func TestBookNeverOverwrites(t *testing.T) {
	st := trainerStore()
	svc := NewScheduleService(st, testLogger())
	ctx := context.Background()

	require.NoError(t, svc.Book(ctx, "u1", "Saturday", "s2"))
	err := svc.Book(ctx, "u2", "Saturday", "s2")
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)

	st.View(func(s *store.State) {
		slot, _ := s.Profile.Trainer.Availability.Lookup("Saturday", "s2")
		assert.Equal(t, "u1", slot.BookedTraineeID)
	})
}

func TestCancelRoundTrip(t *testing.T) {
	st := trainerStore()
	svc := NewScheduleService(st, testLogger())
	ctx := context.Background()

	require.NoError(t, svc.Book(ctx, "u1", "Saturday", "s2"))
	require.NoError(t, svc.Cancel(ctx, "Saturday", "s2"))

	st.View(func(s *store.State) {
		slot, _ := s.Profile.Trainer.Availability.Lookup("Saturday", "s2")
		assert.False(t, slot.Booked())
	})

	// Cancelling an unbooked slot is a no-op.
	assert.NoError(t, svc.Cancel(ctx, "Saturday", "s2"))
}

func TestRemoveBookedSlotRefused(t *testing.T) {
	st := trainerStore()
	svc := NewScheduleService(st, testLogger())
	ctx := context.Background()

	require.NoError(t, svc.Book(ctx, "u1", "Saturday", "s2"))
	assert.ErrorIs(t, svc.RemoveSlot(ctx, "Saturday", "s2"), ErrSlotBooked)

	slots, err := svc.SlotsForDay(ctx, "Saturday")
	require.NoError(t, err)
	assert.Len(t, slots, 3)

	require.NoError(t, svc.Cancel(ctx, "Saturday", "s2"))
	require.NoError(t, svc.RemoveSlot(ctx, "Saturday", "s2"))

	slots, err = svc.SlotsForDay(ctx, "Saturday")
	require.NoError(t, err)
	assert.Len(t, slots, 2)
}

func TestBookErrors(t *testing.T) {
	svc := NewScheduleService(trainerStore(), testLogger())
	ctx := context.Background()

	assert.ErrorIs(t, svc.Book(ctx, "u1", "Saturday", "nope"), ErrSlotNotFound)
	assert.ErrorIs(t, svc.Book(ctx, "u1", "Friday", "s1"), ErrSlotNotFound)
	assert.ErrorIs(t, svc.Book(ctx, "ghost", "Saturday", "s2"), ErrTraineeNotFound)
}

func TestAddSlot(t *testing.T) {
	st := trainerStore()
	svc := NewScheduleService(st, testLogger())
	ctx := context.Background()

	_, err := svc.AddSlot(ctx, "Saturday", SlotInput{Time: "25:99", GymID: "gym-1", Type: domain.SlotNormal})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.AddSlot(ctx, "Saturday", SlotInput{Time: "19:00", GymID: "nope", Type: domain.SlotNormal})
	assert.ErrorIs(t, err, ErrGymNotFound)

	created, err := svc.AddSlot(ctx, "Saturday", SlotInput{Time: "19:00", GymID: "gym-1", Type: domain.SlotVIP})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	// New slots append in insertion order.
	slots, err := svc.SlotsForDay(ctx, "Saturday")
	require.NoError(t, err)
	require.Len(t, slots, 4)
	assert.Equal(t, created.ID, slots[3].ID)
}

func TestReplaceAvailability(t *testing.T) {
	st := trainerStore()
	svc := NewScheduleService(st, testLogger())
	ctx := context.Background()

	require.NoError(t, svc.Book(ctx, "u1", "Saturday", "s2"))

	grid := domain.Availability{}
	grid.Day("Friday").Add(&domain.AvailabilitySlot{ID: "f1", Time: "10:00", Type: domain.SlotNormal, GymID: "gym-1"})
	grid.Day("Friday").Add(&domain.AvailabilitySlot{ID: "f2", Time: "12:00", Type: domain.SlotVIP, GymID: "gym-2"})

	require.NoError(t, svc.ReplaceAvailability(ctx, grid))

	// The new grid is authoritative: the old days and their bookings are gone.
	slots, err := svc.SlotsForDay(ctx, "Friday")
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, "f1", slots[0].ID)

	slots, err = svc.SlotsForDay(ctx, "Saturday")
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestReplaceAvailabilityValidatesBeforeSwap(t *testing.T) {
	st := trainerStore()
	svc := NewScheduleService(st, testLogger())
	ctx := context.Background()

	bad := domain.Availability{}
	bad.Day("Friday").Add(&domain.AvailabilitySlot{ID: "f1", Time: "10:00", Type: domain.SlotNormal, GymID: "ghost"})
	assert.ErrorIs(t, svc.ReplaceAvailability(ctx, bad), ErrGymNotFound)

	bad = domain.Availability{}
	bad.Day("Friday").Add(&domain.AvailabilitySlot{ID: "f1", Time: "25:99", Type: domain.SlotNormal, GymID: "gym-1"})
	assert.ErrorIs(t, svc.ReplaceAvailability(ctx, bad), ErrValidation)

	// A rejected grid leaves the original untouched.
	slots, err := svc.SlotsForDay(ctx, "Saturday")
	require.NoError(t, err)
	assert.Len(t, slots, 3)
}

func TestScheduleRequiresTrainer(t *testing.T) {
	state := store.SeedState()
	state.Profile = domain.NewTraineeProfile("u1", "شنگول دانا")
	svc := NewScheduleService(store.New(state), testLogger())
	ctx := context.Background()

	_, err := svc.AddSlot(ctx, "Saturday", SlotInput{Time: "19:00", GymID: "gym-1", Type: domain.SlotNormal})
	assert.ErrorIs(t, err, ErrNoSchedule)
	assert.ErrorIs(t, svc.Book(ctx, "u1", "Saturday", "s1"), ErrNoSchedule)
}
