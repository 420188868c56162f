package domain

import "time"

// Meal is an immutable logged food entry. Macro amounts are grams, calories
// are kcal.
type Meal struct {
	ID        string    `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
	Protein   float64   `bson:"protein" json:"protein"`
	Carbs     float64   `bson:"carbs" json:"carbs"`
	Fats      float64   `bson:"fats" json:"fats"`
	Calories  float64   `bson:"calories" json:"calories"`
}

// MacroGoals is the mutable per-trainee macro target configuration,
// overwritten wholesale on update.
type MacroGoals struct {
	Protein    float64 `bson:"protein" json:"protein"`
	Carbs      float64 `bson:"carbs" json:"carbs"`
	Fats       float64 `bson:"fats" json:"fats"`
	Calories   float64 `bson:"calories" json:"calories"`
	Guidelines string  `bson:"guidelines,omitempty" json:"guidelines,omitempty"`
}

// MacroTotals is a field-wise sum of logged meals. Derived, never stored.
type MacroTotals struct {
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Calories float64 `json:"calories"`
}

// MacroProgress is the percentage of each goal consumed, clamped to 100.
type MacroProgress struct {
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Calories float64 `json:"calories"`
}
