package domain

// WorkoutExercise is one prescribed exercise inside a WorkoutDay. It
// references a catalog Exercise by ID; it does not own it.
type WorkoutExercise struct {
	ID          string `bson:"_id" json:"id"`
	ExerciseID  string `bson:"exerciseId" json:"exercise_id"`
	Sets        int    `bson:"sets" json:"sets"`
	Reps        string `bson:"reps" json:"reps"` // e.g. "6-8", "45 sec"
	RestSeconds int    `bson:"restSeconds" json:"rest_seconds"`
	Notes       string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// WorkoutDay is one day of a Program. RestDay implies no exercises.
type WorkoutDay struct {
	ID        string            `bson:"_id" json:"id"`
	DayNumber int               `bson:"dayNumber" json:"day_number"`
	NameEn    string            `bson:"nameEn,omitempty" json:"name_en,omitempty"`
	NameFa    string            `bson:"nameFa,omitempty" json:"name_fa,omitempty"`
	Focus     string            `bson:"focus,omitempty" json:"focus,omitempty"`
	RestDay   bool              `bson:"restDay" json:"rest_day"`
	Exercises []WorkoutExercise `bson:"exercises,omitempty" json:"exercises,omitempty"`
}

// Program is a structured training plan. Templates (IsTemplate) are reusable,
// unassigned definitions a trainer instantiates for specific trainees.
type Program struct {
	ID            string       `bson:"_id" json:"id"`
	NameEn        string       `bson:"nameEn,omitempty" json:"name_en,omitempty"`
	NameFa        string       `bson:"nameFa,omitempty" json:"name_fa,omitempty"`
	Goal          Goal         `bson:"goal,omitempty" json:"goal,omitempty"`
	DurationWeeks int          `bson:"durationWeeks" json:"duration_weeks"`
	DaysPerWeek   int          `bson:"daysPerWeek" json:"days_per_week"`
	IsActive      bool         `bson:"isActive" json:"is_active"`
	IsTemplate    bool         `bson:"isTemplate,omitempty" json:"is_template,omitempty"`
	WorkoutDays   []WorkoutDay `bson:"workoutDays,omitempty" json:"workout_days,omitempty"`
}

// DayByID finds a workout day within the program.
func (p *Program) DayByID(dayID string) (*WorkoutDay, bool) {
	for i := range p.WorkoutDays {
		if p.WorkoutDays[i].ID == dayID {
			return &p.WorkoutDays[i], true
		}
	}
	return nil, false
}
