package service

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Errors shared across services.
var (
	ErrTraineeNotFound = errors.New("trainee is not managed by this trainer")
	ErrGymNotFound     = errors.New("gym not found")
	ErrValidation      = errors.New("validation failed")
)

// One validator instance for every service; struct tags carry the rules.
var validate = validator.New()

func validateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		return errors.Join(ErrValidation, err)
	}
	return nil
}
