package interfaces

import "errors"

// Sentinel errors shared by all repository backends
var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
)
