package errorvalues

import "errors"

var (
	ErrProfileNotFound    = errors.New("profile doesn't exist")
	ErrProfileExists      = errors.New("profile already exists")
	ErrLogEntryNotFound   = errors.New("daily log entry doesn't exist")
	ErrInvalidDateRange   = errors.New("date is before program start")
	ErrDateNotAllowed     = errors.New("date is in the future")
	ErrInvalidWorkoutType = errors.New("invalid workout type")
	ErrDataInconsistency  = errors.New("daily log is inconsistent with exercise log")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrInvalidToken       = errors.New("invalid token")
	ErrValidation         = errors.New("validation error")
)
