package service

import (
	"context"
	"errors"

	"oko/coaching-app/internal/domain"
	"oko/coaching-app/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// --- Error Definitions ---
var (
	ErrProgramNotFound   = errors.New("program not found")
	ErrTemplateNotFound  = errors.New("template not found")
	ErrDayOrder          = errors.New("workout day numbers must be strictly increasing")
	ErrRestDayExercises  = errors.New("a rest day cannot prescribe exercises")
	ErrUnknownExercise   = errors.New("workout references an unknown exercise")
	ErrExerciseNameBlank = errors.New("exercise needs a name in at least one locale")
)

// ProgramService covers program authoring, the reusable template shelf, the
// exercise catalog and program assignment.
type ProgramService interface {
	// CreateProgram validates and stores a trainer-authored program.
	CreateProgram(ctx context.Context, program domain.Program) (*domain.Program, error)
	// SaveTemplate stores the program as a reusable, unassigned template.
	SaveTemplate(ctx context.Context, program domain.Program) (*domain.Program, error)
	// InstantiateTemplate copies a template into a fresh assignable program
	// with new IDs throughout.
	InstantiateTemplate(ctx context.Context, templateID, nameFa string) (*domain.Program, error)
	// AssignProgram points each trainee's roster entry at the program. The
	// program is referenced, not cloned. All trainees are checked before any
	// is assigned.
	AssignProgram(ctx context.Context, programID string, traineeIDs []string) error
	// AddExercise appends a trainer-authored entry to the shared catalog.
	AddExercise(ctx context.Context, exercise domain.Exercise) (*domain.Exercise, error)
	Catalog(ctx context.Context) []domain.Exercise
	Templates(ctx context.Context) []domain.Program
}

type programService struct {
	store  *store.Store
	logger *zap.SugaredLogger
}

// NewProgramService creates a new instance of programService.
func NewProgramService(st *store.Store, logger *zap.SugaredLogger) ProgramService {
	return &programService{store: st, logger: logger}
}

// checkProgram enforces the structural invariants: monotonic day numbers,
// rest days without exercises, and catalog-backed exercise references.
func checkProgram(state *store.State, p *domain.Program) error {
	lastDay := 0
	for i := range p.WorkoutDays {
		day := &p.WorkoutDays[i]
		if day.DayNumber <= lastDay {
			return ErrDayOrder
		}
		lastDay = day.DayNumber
		if day.RestDay && len(day.Exercises) > 0 {
			return ErrRestDayExercises
		}
		for _, we := range day.Exercises {
			if _, ok := state.ExerciseByID(we.ExerciseID); !ok {
				return ErrUnknownExercise
			}
		}
	}
	return nil
}

func fillProgramIDs(p *domain.Program) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	for i := range p.WorkoutDays {
		day := &p.WorkoutDays[i]
		if day.ID == "" {
			day.ID = uuid.NewString()
		}
		for j := range day.Exercises {
			if day.Exercises[j].ID == "" {
				day.Exercises[j].ID = uuid.NewString()
			}
		}
	}
}

func (s *programService) CreateProgram(ctx context.Context, program domain.Program) (*domain.Program, error) {
	fillProgramIDs(&program)
	program.IsTemplate = false
	err := s.store.Update(func(state *store.State) error {
		if err := checkProgram(state, &program); err != nil {
			return err
		}
		state.Programs = append(state.Programs, program)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Infow("program created", "program_id", program.ID, "days", len(program.WorkoutDays))
	return &program, nil
}

func (s *programService) SaveTemplate(ctx context.Context, program domain.Program) (*domain.Program, error) {
	fillProgramIDs(&program)
	program.IsTemplate = true
	program.IsActive = false
	err := s.store.Update(func(state *store.State) error {
		if err := checkProgram(state, &program); err != nil {
			return err
		}
		state.Templates = append(state.Templates, program)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &program, nil
}

func (s *programService) InstantiateTemplate(ctx context.Context, templateID, nameFa string) (*domain.Program, error) {
	var created *domain.Program
	err := s.store.Update(func(state *store.State) error {
		var tpl *domain.Program
		for i := range state.Templates {
			if state.Templates[i].ID == templateID {
				tpl = &state.Templates[i]
				break
			}
		}
		if tpl == nil {
			return ErrTemplateNotFound
		}
		program := *tpl
		program.WorkoutDays = make([]domain.WorkoutDay, len(tpl.WorkoutDays))
		for i, day := range tpl.WorkoutDays {
			copied := day
			copied.ID = uuid.NewString()
			copied.Exercises = append([]domain.WorkoutExercise(nil), day.Exercises...)
			for j := range copied.Exercises {
				copied.Exercises[j].ID = uuid.NewString()
			}
			program.WorkoutDays[i] = copied
		}
		program.ID = uuid.NewString()
		program.IsTemplate = false
		program.IsActive = true
		if nameFa != "" {
			program.NameFa = nameFa
		}
		state.Programs = append(state.Programs, program)
		created = &program
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *programService) AssignProgram(ctx context.Context, programID string, traineeIDs []string) error {
	err := s.store.Update(func(state *store.State) error {
		program, ok := state.ProgramByID(programID)
		if !ok {
			return ErrProgramNotFound
		}
		for _, id := range traineeIDs {
			if _, ok := state.TraineeByID(id); !ok {
				return ErrTraineeNotFound
			}
		}
		name := program.NameFa
		if name == "" {
			name = program.NameEn
		}
		for _, id := range traineeIDs {
			t, _ := state.TraineeByID(id)
			t.ActiveProgramID = program.ID
			t.ActiveProgramName = name
		}
		return nil
	})
	if err == nil {
		s.logger.Infow("program assigned", "program_id", programID, "trainees", len(traineeIDs))
	}
	return err
}

func (s *programService) AddExercise(ctx context.Context, exercise domain.Exercise) (*domain.Exercise, error) {
	if exercise.NameEn == "" && exercise.NameFa == "" {
		return nil, ErrExerciseNameBlank
	}
	if exercise.ID == "" {
		exercise.ID = uuid.NewString()
	}
	err := s.store.Update(func(state *store.State) error {
		state.Exercises = append([]domain.Exercise{exercise}, state.Exercises...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (s *programService) Catalog(ctx context.Context) []domain.Exercise {
	var out []domain.Exercise
	s.store.View(func(state *store.State) {
		out = append(out, state.Exercises...)
	})
	return out
}

func (s *programService) Templates(ctx context.Context) []domain.Program {
	var out []domain.Program
	s.store.View(func(state *store.State) {
		out = append(out, state.Templates...)
	})
	return out
}
