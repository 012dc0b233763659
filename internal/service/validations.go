package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/x3momentum/internal/error_values"
	"github.com/limbo/x3momentum/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("workout_type", func(fl validator.FieldLevel) bool {
			return entity.WorkoutType(fl.Field().String()).Valid()
		})
		validate.RegisterValidation("calendar_date", func(fl validator.FieldLevel) bool {
			_, err := entity.ParseDate(fl.Field().String())
			return err == nil
		})
	})
}

// validationError flattens validator output into one error wrapping ErrValidation.
func validationError(err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		joined := make([]error, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			joined = append(joined, fieldErr)
		}
		return fmt.Errorf("%w: %w", errorvalues.ErrValidation, errors.Join(joined...))
	}
	return fmt.Errorf("%w: unexpected: %w", errorvalues.ErrValidation, err)
}

func validateWorkoutType(wt entity.WorkoutType) error {
	if err := validate.Var(string(wt), "required,workout_type"); err != nil {
		return fmt.Errorf("%w: %q", errorvalues.ErrInvalidWorkoutType, wt)
	}
	return nil
}
