package service

import (
	"context"
	"testing"
	"time"

	"oko/coaching-app/internal/domain"
	"oko/coaching-app/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignInUnionValidation(t *testing.T) {
	svc := NewProfileService(store.New(store.SeedState()), testLogger())
	ctx := context.Background()

	assert.ErrorIs(t, svc.SignIn(ctx, nil), ErrInvalidProfile)

	// Role without matching role fields.
	assert.ErrorIs(t, svc.SignIn(ctx, &domain.Profile{ID: "x", Role: domain.RoleTrainer}), ErrInvalidProfile)
	assert.ErrorIs(t, svc.SignIn(ctx, &domain.Profile{ID: "x", Role: domain.RoleTrainee}), ErrInvalidProfile)
	assert.ErrorIs(t, svc.SignIn(ctx, &domain.Profile{ID: "x"}), ErrInvalidProfile)

	// Both unions set at once.
	broken := domain.NewTrainerProfile("x", "x")
	broken.Trainee = &domain.TraineeInfo{}
	assert.ErrorIs(t, svc.SignIn(ctx, broken), ErrInvalidProfile)
}

func TestSignInResolvesActiveProgram(t *testing.T) {
	st := store.New(store.SeedState())
	svc := NewProfileService(st, testLogger())

	require.NoError(t, svc.SignIn(context.Background(), domain.NewTraineeProfile("u1", "شنگول دانا")))

	st.View(func(s *store.State) {
		require.NotNil(t, s.ActiveProgram)
		assert.Equal(t, "p-shangool", s.ActiveProgram.ID)
	})
}

func TestSignOutClearsSessionState(t *testing.T) {
	st := trainerStore()
	svc := NewProfileService(st, testLogger())
	sessions := NewSessionService(st, testLogger())
	ctx := context.Background()

	require.NoError(t, sessions.Start(ctx, "tpl-mg-d1"))
	require.NoError(t, svc.SignOut(ctx))

	st.View(func(s *store.State) {
		assert.Nil(t, s.Profile)
		assert.Nil(t, s.ActiveProgram)
		assert.Nil(t, s.Session)
		// The ledgers survive sign-out.
		assert.NotEmpty(t, s.Trainees)
	})
}

func TestUpdateProfileKeepsRole(t *testing.T) {
	st := trainerStore()
	svc := NewProfileService(st, testLogger())

	name := "نسترن اسکوئی"
	weight := 62.5
	require.NoError(t, svc.UpdateProfile(context.Background(), ProfileUpdate{
		FullName: &name,
		Weight:   &weight,
	}))

	st.View(func(s *store.State) {
		assert.Equal(t, name, s.Profile.FullName)
		assert.Equal(t, weight, s.Profile.Weight)
		assert.Equal(t, domain.RoleTrainer, s.Profile.Role)
		assert.NotNil(t, s.Profile.Trainer)
		assert.Nil(t, s.Profile.Trainee)
	})
}

func TestUpdateProfileRequiresSignIn(t *testing.T) {
	svc := NewProfileService(store.New(store.SeedState()), testLogger())

	name := "x"
	assert.ErrorIs(t, svc.UpdateProfile(context.Background(), ProfileUpdate{FullName: &name}), ErrNoProfile)
}

func TestUpdateSubscriptionInvariant(t *testing.T) {
	st := trainerStore()
	svc := NewProfileService(st, testLogger())
	ctx := context.Background()

	remaining := 20 // seed total is 12
	err := svc.UpdateSubscription(ctx, "u1", SubscriptionUpdate{SessionsRemaining: &remaining})
	assert.ErrorIs(t, err, ErrInvalidSubscription)

	st.View(func(s *store.State) {
		trainee, _ := s.TraineeByID("u1")
		assert.Equal(t, 12, trainee.Subscription.SessionsRemaining) // unchanged
	})
}

func TestUpdateSubscriptionSetsVIPFlag(t *testing.T) {
	st := trainerStore()
	svc := NewProfileService(st, testLogger())
	ctx := context.Background()

	vip := domain.SubscriptionVIP
	require.NoError(t, svc.UpdateSubscription(ctx, "u2", SubscriptionUpdate{Type: &vip}))

	st.View(func(s *store.State) {
		trainee, _ := s.TraineeByID("u2")
		assert.True(t, trainee.IsVIP)
		assert.True(t, trainee.CanBookVIP())
	})

	normal := domain.SubscriptionNormal
	require.NoError(t, svc.UpdateSubscription(ctx, "u2", SubscriptionUpdate{Type: &normal}))
	st.View(func(s *store.State) {
		trainee, _ := s.TraineeByID("u2")
		assert.False(t, trainee.IsVIP)
	})
}

func TestRenewSubscription(t *testing.T) {
	st := trainerStore()
	svc := NewProfileService(st, testLogger())
	ctx := context.Background()

	remaining := 2
	paid := false
	require.NoError(t, svc.UpdateSubscription(ctx, "u1", SubscriptionUpdate{
		SessionsRemaining: &remaining,
		IsPaid:            &paid,
	}))

	require.NoError(t, svc.RenewSubscription(ctx, "u1"))
	st.View(func(s *store.State) {
		trainee, _ := s.TraineeByID("u1")
		assert.Equal(t, trainee.Subscription.SessionsTotal, trainee.Subscription.SessionsRemaining)
		assert.True(t, trainee.Subscription.IsPaid)
	})

	assert.ErrorIs(t, svc.RenewSubscription(ctx, "ghost"), ErrTraineeNotFound)
}

func TestAddWeight(t *testing.T) {
	st := trainerStore()
	svc := NewProfileService(st, testLogger())
	ctx := context.Background()

	assert.ErrorIs(t, svc.AddWeight(ctx, 0), ErrValidation)
	assert.ErrorIs(t, svc.AddWeight(ctx, -5), ErrValidation)
	require.NoError(t, svc.AddWeight(ctx, 82.3))

	st.View(func(s *store.State) {
		require.Len(t, s.WeightHistory, 1)
		assert.Equal(t, 82.3, s.WeightHistory[0].Weight)
		assert.WithinDuration(t, time.Now(), s.WeightHistory[0].Date, time.Minute)
	})
}
