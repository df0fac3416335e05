package queries

import "projector-reservation/internal/pkg/errs"

var (
	ErrValidation        = errs.New("validation failed")
	ErrNotFound          = errs.New("resource not found")
	ErrDatabaseOperation = errs.New("database operation failed")
)
