package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrResourceInUse    = errors.New("the resource is still referenced by other records")
	ErrEmailTaken       = errors.New("an account with this email address already exists")
	ErrSequenceConflict = errors.New("a concurrent request generated the same number, please try again")
	ErrDefaultConflict  = errors.New("another payment method was set as default at the same time, please try again")
)

// userFacingErrors are passed through to clients as they are.
var userFacingErrors = []error{
	ErrResourceNotFound,
	ErrResourceInUse,
	ErrEmailTaken,
	ErrSequenceConflict,
	ErrDefaultConflict,
}
