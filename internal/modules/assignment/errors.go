package assignment

import "errors"

var (
	ErrValidation     = errors.New("validation error")
	ErrNotFound       = errors.New("not_found")
	ErrForbidden      = errors.New("forbidden")
	ErrPendingExists  = errors.New("pending request already exists for pet")
	ErrInvalidState   = errors.New("invalid_state_transition")
	ErrVetUnavailable = errors.New("vet is not accepting requests")
)
