package service

import (
	"context"
	"time"

	"oko/coaching-app/internal/domain"
	"oko/coaching-app/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MealInput describes a meal being logged.
type MealInput struct {
	Name     string  `json:"name" validate:"required"`
	Protein  float64 `json:"protein" validate:"gte=0"`
	Carbs    float64 `json:"carbs" validate:"gte=0"`
	Fats     float64 `json:"fats" validate:"gte=0"`
	Calories float64 `json:"calories" validate:"gte=0"`
}

// GoalsInput is a wholesale replacement for a macro target configuration.
type GoalsInput struct {
	Protein    float64 `json:"protein" validate:"gte=0"`
	Carbs      float64 `json:"carbs" validate:"gte=0"`
	Fats       float64 `json:"fats" validate:"gte=0"`
	Calories   float64 `json:"calories" validate:"gte=0"`
	Guidelines string  `json:"guidelines"`
}

// NutritionService tracks today's meals and the macro target configuration.
type NutritionService interface {
	// AddMeal prepends a meal (most-recent-first, the source convention).
	AddMeal(ctx context.Context, input MealInput) (*domain.Meal, error)
	// RemoveMeal deletes by ID; removing an absent meal is a no-op.
	RemoveMeal(ctx context.Context, id string) error
	// SetMacroGoals overwrites the signed-in trainee's targets wholesale.
	SetMacroGoals(ctx context.Context, goals GoalsInput) error
	// SetTraineeGoals lets the trainer set a managed trainee's nutrition
	// program.
	SetTraineeGoals(ctx context.Context, traineeID string, goals GoalsInput) error
	// DailyTotals sums the meals logged today, field-wise.
	DailyTotals(ctx context.Context) domain.MacroTotals
	// GoalProgress is the percentage of each target consumed today, clamped
	// to 100 so progress bars never overflow.
	GoalProgress(ctx context.Context) domain.MacroProgress
	Meals(ctx context.Context) []domain.Meal
}

type nutritionService struct {
	store  *store.Store
	logger *zap.SugaredLogger
}

// NewNutritionService creates a new instance of nutritionService.
func NewNutritionService(st *store.Store, logger *zap.SugaredLogger) NutritionService {
	return &nutritionService{store: st, logger: logger}
}

func (s *nutritionService) AddMeal(ctx context.Context, input MealInput) (*domain.Meal, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	meal := domain.Meal{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Timestamp: time.Now(),
		Protein:   input.Protein,
		Carbs:     input.Carbs,
		Fats:      input.Fats,
		Calories:  input.Calories,
	}
	err := s.store.Update(func(state *store.State) error {
		state.Meals = append([]domain.Meal{meal}, state.Meals...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

func (s *nutritionService) RemoveMeal(ctx context.Context, id string) error {
	return s.store.Update(func(state *store.State) error {
		for i := range state.Meals {
			if state.Meals[i].ID == id {
				state.Meals = append(state.Meals[:i], state.Meals[i+1:]...)
				break
			}
		}
		return nil
	})
}

func (s *nutritionService) SetMacroGoals(ctx context.Context, goals GoalsInput) error {
	if err := validateStruct(goals); err != nil {
		return err
	}
	return s.store.Update(func(state *store.State) error {
		state.MacroGoals = domain.MacroGoals(goals)
		return nil
	})
}

func (s *nutritionService) SetTraineeGoals(ctx context.Context, traineeID string, goals GoalsInput) error {
	if err := validateStruct(goals); err != nil {
		return err
	}
	return s.store.Update(func(state *store.State) error {
		t, ok := state.TraineeByID(traineeID)
		if !ok {
			return ErrTraineeNotFound
		}
		if t.Trainee == nil {
			t.Trainee = &domain.TraineeInfo{}
		}
		program := domain.MacroGoals(goals)
		t.Trainee.NutritionProgram = &program
		return nil
	})
}

func (s *nutritionService) DailyTotals(ctx context.Context) domain.MacroTotals {
	var totals domain.MacroTotals
	today := time.Now()
	s.store.View(func(state *store.State) {
		for _, meal := range state.Meals {
			if !sameDay(meal.Timestamp, today) {
				continue
			}
			totals.Protein += meal.Protein
			totals.Carbs += meal.Carbs
			totals.Fats += meal.Fats
			totals.Calories += meal.Calories
		}
	})
	return totals
}

func (s *nutritionService) GoalProgress(ctx context.Context) domain.MacroProgress {
	totals := s.DailyTotals(ctx)
	var goals domain.MacroGoals
	s.store.View(func(state *store.State) {
		goals = state.MacroGoals
	})
	return domain.MacroProgress{
		Protein:  percentOf(totals.Protein, goals.Protein),
		Carbs:    percentOf(totals.Carbs, goals.Carbs),
		Fats:     percentOf(totals.Fats, goals.Fats),
		Calories: percentOf(totals.Calories, goals.Calories),
	}
}

func (s *nutritionService) Meals(ctx context.Context) []domain.Meal {
	var out []domain.Meal
	s.store.View(func(state *store.State) {
		out = append(out, state.Meals...)
	})
	return out
}

// percentOf clamps at 100 and treats a zero goal as 1, both inherited from
// the display contract.
func percentOf(total, goal float64) float64 {
	if goal <= 0 {
		goal = 1
	}
	pct := total / goal * 100
	if pct > 100 {
		return 100
	}
	return pct
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
