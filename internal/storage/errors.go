package storage

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrNotInitialized  = errors.New("storage not initialized, run 'habitual init' first")
	ErrNotLoaded       = errors.New("storage not loaded")
	ErrAlreadyArchived = errors.New("habit already archived")
	ErrNotArchived     = errors.New("habit is not archived")
)
