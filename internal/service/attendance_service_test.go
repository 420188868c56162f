package service

import (
	"context"
	"testing"

	"oko/coaching-app/internal/domain"
	"oko/coaching-app/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckOutWithoutCheckIn(t *testing.T) {
	st := trainerStore()
	svc := NewAttendanceService(st, testLogger())

	err := svc.CheckOut(context.Background(), "u1", "gym-1")
	assert.ErrorIs(t, err, ErrNoActiveCheckIn)

	// No record is fabricated on failure.
	st.View(func(s *store.State) {
		assert.Empty(t, s.Attendance)
	})
}

func TestCheckInCheckOutCycle(t *testing.T) {
	st := trainerStore()
	svc := NewAttendanceService(st, testLogger())
	ctx := context.Background()

	record, err := svc.CheckIn(ctx, "u1", "gym-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPresent, record.Status)
	assert.Nil(t, record.CheckOut)

	roster := svc.PresentRoster(ctx)
	require.Len(t, roster, 1)
	assert.Equal(t, "u1", roster[0].TraineeID)

	require.NoError(t, svc.CheckOut(ctx, "u1", "gym-1"))
	assert.Empty(t, svc.PresentRoster(ctx))

	history := svc.History(ctx, "u1")
	require.Len(t, history, 1)
	assert.Equal(t, domain.StatusExited, history[0].Status)
	require.NotNil(t, history[0].CheckOut)
	assert.False(t, history[0].CheckOut.Before(history[0].CheckIn))
}

func TestDoubleCheckIn(t *testing.T) {
	st := trainerStore()
	svc := NewAttendanceService(st, testLogger())
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, "u1", "gym-1")
	require.NoError(t, err)

	// Still inside, even at another gym.
	_, err = svc.CheckIn(ctx, "u1", "gym-2")
	assert.ErrorIs(t, err, ErrAlreadyCheckedIn)

	st.View(func(s *store.State) {
		assert.Len(t, s.Attendance, 1)
	})
}

func TestCheckInUnknownGym(t *testing.T) {
	svc := NewAttendanceService(trainerStore(), testLogger())

	_, err := svc.CheckIn(context.Background(), "u1", "nope")
	assert.ErrorIs(t, err, ErrGymNotFound)
}

func TestCheckOutWrongGym(t *testing.T) {
	svc := NewAttendanceService(trainerStore(), testLogger())
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, "u1", "gym-1")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.CheckOut(ctx, "u1", "gym-2"), ErrNoActiveCheckIn)
	require.NoError(t, svc.CheckOut(ctx, "u1", "gym-1"))
}

func TestHistoryIsAppendOnly(t *testing.T) {
	svc := NewAttendanceService(trainerStore(), testLogger())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.CheckIn(ctx, "u2", "gym-2")
		require.NoError(t, err)
		require.NoError(t, svc.CheckOut(ctx, "u2", "gym-2"))
	}

	assert.Len(t, svc.History(ctx, "u2"), 3)
	assert.Empty(t, svc.History(ctx, "u1"))
}
