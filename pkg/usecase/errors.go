package usecase

import "errors"

// Sentinel errors for use case layer
var (
	// Validation errors
	ErrEmptyTargetText = errors.New("target text is empty")

	// Provider errors
	ErrEmbeddingFailed = errors.New("embedding provider call failed")
	ErrNoEmbedder      = errors.New("no embedding provider configured")
)
