package store

import (
	"errors"
	"sync"
	"testing"

	"oko/coaching-app/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNilState(t *testing.T) {
	st := New(nil)
	st.View(func(s *State) {
		assert.NotNil(t, s)
	})
}

func TestLookupsOnSeed(t *testing.T) {
	state := SeedState()

	trainee, ok := state.TraineeByID("u1")
	require.True(t, ok)
	assert.True(t, trainee.CanBookVIP())

	trainee, ok = state.TraineeByID("u2")
	require.True(t, ok)
	assert.False(t, trainee.CanBookVIP())

	_, ok = state.TraineeByID("ghost")
	assert.False(t, ok)

	// Assigned programs take precedence over templates.
	program, ok := state.ProgramByID("p-shangool")
	require.True(t, ok)
	assert.False(t, program.IsTemplate)

	tpl, ok := state.ProgramByID("tpl-female-loss")
	require.True(t, ok)
	assert.True(t, tpl.IsTemplate)

	_, ok = state.ExerciseByID("b1")
	assert.True(t, ok)
	_, ok = state.GymByID("gym-2")
	assert.True(t, ok)
}

func TestUpdatePropagatesError(t *testing.T) {
	st := New(SeedState())
	sentinel := errors.New("nope")

	err := st.Update(func(s *State) error {
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)
}

func TestConcurrentAccess(t *testing.T) {
	st := New(SeedState())
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = st.Update(func(s *State) error {
				s.Meals = append(s.Meals, domain.Meal{ID: "m"})
				return nil
			})
		}()
		go func() {
			defer wg.Done()
			st.View(func(s *State) {
				_ = len(s.Meals)
			})
		}()
	}
	wg.Wait()

	st.View(func(s *State) {
		assert.Len(t, s.Meals, 50)
	})
}

func TestSeedAvailabilityGrid(t *testing.T) {
	profile := SeedTrainerProfile()
	require.NotNil(t, profile.Trainer)

	saturday := profile.Trainer.Availability["Saturday"]
	require.NotNil(t, saturday)
	slots := saturday.InOrder()
	require.Len(t, slots, 3)
	assert.Equal(t, "09:00", slots[0].Time)
	assert.Equal(t, domain.SlotVIP, slots[0].Type)

	for _, day := range []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday"} {
		assert.NotNil(t, profile.Trainer.Availability[day], day)
	}
}
