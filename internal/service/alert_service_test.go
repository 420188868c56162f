package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"oko/coaching-app/internal/domain"
	"oko/coaching-app/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStartNotification(t *testing.T) {
	state := store.SeedState()
	state.Profile = store.SeedTrainerProfile()

	// Plant a booked slot matching the current minute on today's schedule.
	now := time.Now()
	day := now.Weekday().String()
	state.Profile.Trainer.Availability.Day(day).Add(&domain.AvailabilitySlot{
		ID:              "slot-now",
		Time:            now.Format("15:04"),
		Type:            domain.SlotNormal,
		GymID:           "gym-1",
		BookedTraineeID: "u1",
	})
	st := store.New(state)
	svc := NewAlertService(st, time.Minute, testLogger())
	ctx := context.Background()

	svc.CheckNow(ctx)

	wantID := fmt.Sprintf("session-start-slot-now-%s", now.Format("2006-01-02"))
	st.View(func(s *store.State) {
		require.Len(t, s.Messages, 1)
		assert.Equal(t, wantID, s.Messages[0].ID)
		assert.Equal(t, "u1", s.Messages[0].TraineeID)
		assert.Equal(t, domain.ChatAI, s.Messages[0].ChatType)
	})

	alerts := svc.Alerts(ctx)
	require.Len(t, alerts, 1)
	assert.Equal(t, domain.AlertInfo, alerts[0].Type)

	// Another tick in the same minute must not duplicate anything.
	svc.CheckNow(ctx)
	st.View(func(s *store.State) {
		assert.Len(t, s.Messages, 1)
		assert.Len(t, s.Alerts, 1)
	})
}

func TestSubscriptionLowSessionsWarning(t *testing.T) {
	state := store.SeedState()
	state.Profile = domain.NewTraineeProfile("u1", "شنگول دانا")
	trainee, _ := state.TraineeByID("u1")
	trainee.Subscription.SessionsRemaining = 2
	st := store.New(state)
	svc := NewAlertService(st, time.Minute, testLogger())
	ctx := context.Background()

	svc.CheckNow(ctx)
	svc.CheckNow(ctx)

	st.View(func(s *store.State) {
		require.Len(t, s.Messages, 1)
		assert.Equal(t, "sub-expiry-warning-u1", s.Messages[0].ID)
		assert.Equal(t, domain.SenderAI, s.Messages[0].Sender)
	})
}

func TestSubscriptionExpiryAlert(t *testing.T) {
	state := store.SeedState()
	state.Profile = domain.NewTraineeProfile("u1", "شنگول دانا")
	trainee, _ := state.TraineeByID("u1")
	expiry := time.Now().Add(3 * 24 * time.Hour)
	trainee.Subscription.ExpiryDate = &expiry
	st := store.New(state)
	svc := NewAlertService(st, time.Minute, testLogger())
	ctx := context.Background()

	svc.CheckNow(ctx)

	alerts := svc.Alerts(ctx)
	require.Len(t, alerts, 1)
	assert.Equal(t, "sub-expiring-u1", alerts[0].ID)
	assert.Equal(t, domain.AlertWarning, alerts[0].Type)

	require.NoError(t, svc.Dismiss(ctx, "sub-expiring-u1"))
	assert.Empty(t, svc.Alerts(ctx))
}

func TestCheckNowWithoutProfile(t *testing.T) {
	st := store.New(store.SeedState())
	svc := NewAlertService(st, time.Minute, testLogger())

	svc.CheckNow(context.Background())

	st.View(func(s *store.State) {
		assert.Empty(t, s.Messages)
		assert.Empty(t, s.Alerts)
	})
}
