package store

import (
	"sync"

	"oko/coaching-app/internal/domain"
)

// State is the whole application state tree. It is what the persistence
// adapter snapshots and what every ledger operates on.
type State struct {
	Profile       *domain.Profile         `bson:"profile,omitempty" json:"profile,omitempty"`
	ActiveProgram *domain.Program         `bson:"activeProgram,omitempty" json:"active_program,omitempty"`
	Programs      []domain.Program        `bson:"programs" json:"programs"`
	Templates     []domain.Program        `bson:"templates" json:"templates"`
	Exercises     []domain.Exercise       `bson:"exercises" json:"exercises"`
	Logs          []domain.WorkoutLog     `bson:"logs" json:"logs"`
	Messages      []domain.Message        `bson:"messages" json:"messages"`
	WeightHistory []domain.WeightEntry    `bson:"weightHistory" json:"weight_history"`
	Session       *domain.WorkoutSession  `bson:"currentSession,omitempty" json:"current_session,omitempty"`
	Trainees      []domain.TraineeSummary `bson:"managedTrainees" json:"managed_trainees"`
	Gyms          []domain.Gym            `bson:"gyms" json:"gyms"`
	Attendance    []domain.AttendanceRecord `bson:"attendance" json:"attendance"`
	Meals         []domain.Meal           `bson:"meals" json:"meals"`
	MacroGoals    domain.MacroGoals       `bson:"macroGoals" json:"macro_goals"`
	Alerts        []domain.Alert          `bson:"alerts" json:"alerts"`
}

// TraineeByID finds a managed trainee's summary.
func (s *State) TraineeByID(id string) (*domain.TraineeSummary, bool) {
	for i := range s.Trainees {
		if s.Trainees[i].ID == id {
			return &s.Trainees[i], true
		}
	}
	return nil, false
}

// ProgramByID searches assigned programs first, then templates.
func (s *State) ProgramByID(id string) (*domain.Program, bool) {
	for i := range s.Programs {
		if s.Programs[i].ID == id {
			return &s.Programs[i], true
		}
	}
	for i := range s.Templates {
		if s.Templates[i].ID == id {
			return &s.Templates[i], true
		}
	}
	return nil, false
}

// ExerciseByID looks up a catalog entry.
func (s *State) ExerciseByID(id string) (*domain.Exercise, bool) {
	for i := range s.Exercises {
		if s.Exercises[i].ID == id {
			return &s.Exercises[i], true
		}
	}
	return nil, false
}

// GymByID looks up a gym reference record.
func (s *State) GymByID(id string) (*domain.Gym, bool) {
	for i := range s.Gyms {
		if s.Gyms[i].ID == id {
			return &s.Gyms[i], true
		}
	}
	return nil, false
}

// Store owns the mutable State. It is constructed explicitly and handed to
// the services that need it; there is no package-level singleton. All
// mutations run inside Update closures, which must validate before touching
// anything so a returned error leaves the tree unchanged.
type Store struct {
	mu    sync.RWMutex
	state *State
}

// New wraps an existing state tree (typically a loaded snapshot).
func New(state *State) *Store {
	if state == nil {
		state = &State{}
	}
	return &Store{state: state}
}

// Update runs fn with exclusive access to the state. The closure's error is
// returned as-is; by convention fn checks every precondition before its
// first mutation.
func (s *Store) Update(fn func(*State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.state)
}

// View runs fn with shared read access. fn must not retain pointers into the
// tree past its return.
func (s *Store) View(fn func(*State)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.state)
}
