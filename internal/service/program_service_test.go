package service

import (
	"context"
	"testing"

	"oko/coaching-app/internal/domain"
	"oko/coaching-app/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProgramDayOrder(t *testing.T) {
	st := trainerStore()
	svc := NewProgramService(st, testLogger())

	_, err := svc.CreateProgram(context.Background(), domain.Program{
		NameEn: "Bad",
		WorkoutDays: []domain.WorkoutDay{
			{DayNumber: 1},
			{DayNumber: 1},
		},
	})
	assert.ErrorIs(t, err, ErrDayOrder)

	st.View(func(s *store.State) {
		assert.Len(t, s.Programs, 2) // only the seed programs
	})
}

func TestCreateProgramRestDay(t *testing.T) {
	svc := NewProgramService(trainerStore(), testLogger())

	_, err := svc.CreateProgram(context.Background(), domain.Program{
		NameEn: "Bad",
		WorkoutDays: []domain.WorkoutDay{
			{DayNumber: 1, RestDay: true, Exercises: []domain.WorkoutExercise{{ExerciseID: "c1", Sets: 3, Reps: "10"}}},
		},
	})
	assert.ErrorIs(t, err, ErrRestDayExercises)
}

func TestCreateProgramUnknownExercise(t *testing.T) {
	svc := NewProgramService(trainerStore(), testLogger())

	_, err := svc.CreateProgram(context.Background(), domain.Program{
		NameEn: "Bad",
		WorkoutDays: []domain.WorkoutDay{
			{DayNumber: 1, Exercises: []domain.WorkoutExercise{{ExerciseID: "ghost", Sets: 3, Reps: "10"}}},
		},
	})
	assert.ErrorIs(t, err, ErrUnknownExercise)
}

func TestCreateProgramFillsIDs(t *testing.T) {
	st := trainerStore()
	svc := NewProgramService(st, testLogger())

	created, err := svc.CreateProgram(context.Background(), domain.Program{
		NameEn: "Push Pull",
		WorkoutDays: []domain.WorkoutDay{
			{DayNumber: 1, Exercises: []domain.WorkoutExercise{{ExerciseID: "c1", Sets: 4, Reps: "8"}}},
			{DayNumber: 2, RestDay: true},
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.WorkoutDays[0].ID)
	assert.NotEmpty(t, created.WorkoutDays[0].Exercises[0].ID)
	assert.False(t, created.IsTemplate)
}

func TestInstantiateTemplateFreshIDs(t *testing.T) {
	st := trainerStore()
	svc := NewProgramService(st, testLogger())

	created, err := svc.InstantiateTemplate(context.Background(), "tpl-male-gain", "برنامه جدید")
	require.NoError(t, err)

	assert.NotEqual(t, "tpl-male-gain", created.ID)
	assert.Equal(t, "برنامه جدید", created.NameFa)
	assert.True(t, created.IsActive)
	assert.False(t, created.IsTemplate)

	st.View(func(s *store.State) {
		tpl, ok := s.ProgramByID("tpl-male-gain")
		require.True(t, ok)
		require.Len(t, created.WorkoutDays, len(tpl.WorkoutDays))
		for i, day := range created.WorkoutDays {
			assert.NotEqual(t, tpl.WorkoutDays[i].ID, day.ID)
			for j, we := range day.Exercises {
				assert.NotEqual(t, tpl.WorkoutDays[i].Exercises[j].ID, we.ID)
				assert.Equal(t, tpl.WorkoutDays[i].Exercises[j].ExerciseID, we.ExerciseID)
			}
		}
		// The template shelf itself is untouched.
		assert.True(t, tpl.IsTemplate)
	})

	_, err = svc.InstantiateTemplate(context.Background(), "ghost", "")
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestAssignProgramAllOrNothing(t *testing.T) {
	st := trainerStore()
	svc := NewProgramService(st, testLogger())
	ctx := context.Background()

	err := svc.AssignProgram(ctx, "p-mangool", []string{"u1", "ghost"})
	assert.ErrorIs(t, err, ErrTraineeNotFound)

	st.View(func(s *store.State) {
		trainee, _ := s.TraineeByID("u1")
		assert.Equal(t, "p-shangool", trainee.ActiveProgramID) // unchanged
	})

	require.NoError(t, svc.AssignProgram(ctx, "p-mangool", []string{"u1", "u2"}))
	st.View(func(s *store.State) {
		for _, id := range []string{"u1", "u2"} {
			trainee, _ := s.TraineeByID(id)
			assert.Equal(t, "p-mangool", trainee.ActiveProgramID)
			assert.Equal(t, "برنامه کات تخصصی منگول", trainee.ActiveProgramName)
		}
	})

	assert.ErrorIs(t, svc.AssignProgram(ctx, "ghost", []string{"u1"}), ErrProgramNotFound)
}

func TestSaveTemplate(t *testing.T) {
	st := trainerStore()
	svc := NewProgramService(st, testLogger())

	tpl, err := svc.SaveTemplate(context.Background(), domain.Program{
		NameEn:      "Starter",
		WorkoutDays: []domain.WorkoutDay{{DayNumber: 1, Exercises: []domain.WorkoutExercise{{ExerciseID: "c5", Sets: 3, Reps: "15"}}}},
	})
	require.NoError(t, err)
	assert.True(t, tpl.IsTemplate)
	assert.False(t, tpl.IsActive)

	templates := svc.Templates(context.Background())
	assert.Len(t, templates, 3)
}

func TestAddExercise(t *testing.T) {
	st := trainerStore()
	svc := NewProgramService(st, testLogger())
	ctx := context.Background()

	_, err := svc.AddExercise(ctx, domain.Exercise{MuscleGroup: "chest"})
	assert.ErrorIs(t, err, ErrExerciseNameBlank)

	created, err := svc.AddExercise(ctx, domain.Exercise{NameFa: "پرس سینه شیب‌دار", MuscleGroup: "chest"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	catalog := svc.Catalog(ctx)
	require.NotEmpty(t, catalog)
	assert.Equal(t, created.ID, catalog[0].ID) // newest first
}
