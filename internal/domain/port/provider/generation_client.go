package provider

import (
	"context"
)

// GenerationRequest is the payload handed to the external video provider
type GenerationRequest struct {
	ImageURL string
	Prompt   string
	Mood     string
}

// GenerationResult is the provider's view of a job. ID is the correlation
// ID used for all later status queries; a response without one is invalid.
type GenerationResult struct {
	ID           string
	Status       string
	VideoURL     string
	ThumbnailURL string
	Error        string
}

// GenerationClient wraps the outbound calls to the video-generation
// provider. Implementations own retries, backoff and per-call timeouts;
// callers see either a validated result or a ProviderError after the
// retry budget is exhausted.
type GenerationClient interface {
	// StartGeneration submits a new generation job
	//
	// Possible errors:
	// - ProviderError: After the retry ceiling on 5xx/network failures
	// - ErrInvalidProviderResponse: If the response lacks a correlation ID
	StartGeneration(ctx context.Context, req GenerationRequest) (*GenerationResult, error)

	// GetGeneration queries the current status of a submitted job
	//
	// Possible errors:
	// - ProviderError: After the retry ceiling on 5xx/network failures
	// - ErrInvalidProviderResponse: If the response lacks a correlation ID
	GetGeneration(ctx context.Context, providerJobID string) (*GenerationResult, error)
}
