package domain

import "time"

// SetLog is the recorded outcome of one set during a workout session.
// RPE is optional; zero means "not recorded".
type SetLog struct {
	Reps      int     `bson:"reps" json:"reps"`
	Weight    float64 `bson:"weight" json:"weight"`
	RPE       int     `bson:"rpe,omitempty" json:"rpe,omitempty"`
	Completed bool    `bson:"completed" json:"completed"`
}

// ExerciseLog groups the ordered sets recorded for one exercise.
type ExerciseLog struct {
	ExerciseID string   `bson:"exerciseId" json:"exercise_id"`
	Sets       []SetLog `bson:"sets" json:"sets"`
}

// WorkoutSession is one in-progress, ephemeral execution of a WorkoutDay.
// At most one session is active system-wide at any time.
type WorkoutSession struct {
	DayID     string        `bson:"dayId" json:"day_id"`
	StartTime time.Time     `bson:"startTime" json:"start_time"`
	Exercises []ExerciseLog `bson:"exercises" json:"exercises"`
}

// ExerciseLog returns the log for an exercise, creating it on first use.
func (s *WorkoutSession) ExerciseLog(exerciseID string) *ExerciseLog {
	for i := range s.Exercises {
		if s.Exercises[i].ExerciseID == exerciseID {
			return &s.Exercises[i]
		}
	}
	s.Exercises = append(s.Exercises, ExerciseLog{ExerciseID: exerciseID})
	return &s.Exercises[len(s.Exercises)-1]
}

// TotalVolume sums weight x reps across every recorded set.
func (s *WorkoutSession) TotalVolume() float64 {
	var volume float64
	for _, ex := range s.Exercises {
		for _, set := range ex.Sets {
			volume += set.Weight * float64(set.Reps)
		}
	}
	return volume
}

// WorkoutLog is the immutable record a finished session converts into.
type WorkoutLog struct {
	ID          string    `bson:"_id" json:"id"`
	Date        time.Time `bson:"date" json:"date"`
	WorkoutName string    `bson:"workoutName" json:"workout_name"`
	Volume      float64   `bson:"volume" json:"volume"`
	Duration    int       `bson:"duration" json:"duration"` // minutes
	TraineeID   string    `bson:"traineeId,omitempty" json:"trainee_id,omitempty"`
}
