package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	errs "github.com/sketchmotion/credit-engine/internal/domain/error"
	coreport "github.com/sketchmotion/credit-engine/internal/domain/port/core"
	providerport "github.com/sketchmotion/credit-engine/internal/domain/port/provider"
)

// Config holds the generation provider client settings
type Config struct {
	BaseURL        string
	APIToken       string
	RequestTimeout time.Duration
	MaxRetries     int
	RetryBaseDelay time.Duration
}

// GenerationClient talks to the external video generation service over
// HTTP. Transient failures (5xx, network errors, 429) are retried with
// doubling backoff up to the configured ceiling; a 429 with Retry-After
// honors the server's delay instead.
type GenerationClient struct {
	config       Config
	httpClient   *http.Client
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewGenerationClient creates a new GenerationClient instance
func NewGenerationClient(config Config, timeProvider coreport.TimeProvider, logger coreport.Logger) *GenerationClient {
	if config.RequestTimeout <= 0 {
		config.RequestTimeout = 30 * time.Second
	}
	if config.MaxRetries <= 0 {
		config.MaxRetries = 3
	}
	if config.RetryBaseDelay <= 0 {
		config.RetryBaseDelay = 500 * time.Millisecond
	}

	return &GenerationClient{
		config: config,
		httpClient: &http.Client{
			Timeout: config.RequestTimeout,
		},
		timeProvider: timeProvider,
		logger:       logger,
	}
}

type startGenerationRequest struct {
	ImageURL string `json:"image_url"`
	Prompt   string `json:"prompt"`
	Mood     string `json:"mood"`
}

type generationResponse struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	VideoURL     string `json:"video_url,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Error        string `json:"error,omitempty"`
}

// StartGeneration submits a new generation to the provider. The returned
// result carries the provider's correlation ID; a response without one is
// rejected as invalid.
func (c *GenerationClient) StartGeneration(ctx context.Context, req providerport.GenerationRequest) (*providerport.GenerationResult, error) {
	body, err := json.Marshal(startGenerationRequest{
		ImageURL: req.ImageURL,
		Prompt:   req.Prompt,
		Mood:     req.Mood,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}

	resp, err := c.doWithRetries(ctx, "start_generation", func() (*http.Request, error) {
		httpReq, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/v1/generations", bytes.NewReader(body))
		if reqErr != nil {
			return nil, reqErr
		}
		httpReq.Header.Set("Content-Type", "application/json")
		return httpReq, nil
	})
	if err != nil {
		return nil, err
	}

	if resp.ID == "" {
		c.logger.Error("Provider accepted generation without a job ID", map[string]any{
			"status": resp.Status,
		})
		return nil, fmt.Errorf("%w: missing generation id", errs.ErrInvalidProviderResponse)
	}

	c.logger.Info("Generation submitted to provider", map[string]any{
		"provider_job_id": resp.ID,
		"status":          resp.Status,
	})

	return c.toResult(resp), nil
}

// GetGeneration fetches the current status of a generation from the provider
func (c *GenerationClient) GetGeneration(ctx context.Context, providerJobID string) (*providerport.GenerationResult, error) {
	if providerJobID == "" {
		return nil, fmt.Errorf("%w: provider job id is required", errs.ErrInvalidArgument)
	}

	resp, err := c.doWithRetries(ctx, "get_generation", func() (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+"/v1/generations/"+providerJobID, nil)
	})
	if err != nil {
		return nil, err
	}

	if resp.ID != "" && resp.ID != providerJobID {
		c.logger.Error("Provider returned mismatched generation id", map[string]any{
			"requested": providerJobID,
			"returned":  resp.ID,
		})
		return nil, fmt.Errorf("%w: generation id mismatch", errs.ErrInvalidProviderResponse)
	}
	resp.ID = providerJobID

	return c.toResult(resp), nil
}

func (c *GenerationClient) toResult(resp *generationResponse) *providerport.GenerationResult {
	return &providerport.GenerationResult{
		ID:           resp.ID,
		Status:       resp.Status,
		VideoURL:     resp.VideoURL,
		ThumbnailURL: resp.ThumbnailURL,
		Error:        resp.Error,
	}
}

// doWithRetries executes the request, retrying transient failures with
// doubling backoff. The request is rebuilt per attempt because bodies
// cannot be replayed.
func (c *GenerationClient) doWithRetries(ctx context.Context, operation string, build func() (*http.Request, error)) (*generationResponse, error) {
	var lastErr error
	delay := c.config.RetryBaseDelay

	for attempt := 1; attempt <= c.config.MaxRetries; attempt++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		httpReq, err := build()
		if err != nil {
			return nil, fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
		}
		httpReq.Header.Set("Authorization", "Bearer "+c.config.APIToken)
		httpReq.Header.Set("Accept", "application/json")

		resp, retryable, err := c.doOnce(httpReq, operation)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !retryable || attempt == c.config.MaxRetries {
			break
		}

		wait := delay
		if ra, ok := retryAfterDelay(err); ok {
			wait = ra
		}

		c.logger.Warn("Provider request failed, retrying", map[string]any{
			"operation": operation,
			"attempt":   attempt,
			"delay_ms":  wait.Milliseconds(),
			"error":     err.Error(),
		})

		c.timeProvider.Sleep(coreport.Duration(wait))
		delay *= 2
	}

	c.logger.Error("Provider request exhausted retries", map[string]any{
		"operation": operation,
		"attempts":  c.config.MaxRetries,
		"error":     lastErr.Error(),
	})
	return nil, errs.NewProviderError(operation, statusCodeOf(lastErr), c.config.MaxRetries, lastErr)
}

// doOnce performs one HTTP round trip. The bool reports whether the
// failure is worth retrying.
func (c *GenerationClient) doOnce(req *http.Request, operation string) (*generationResponse, bool, error) {
	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, err
	}
	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, 1<<20))
	if err != nil {
		return nil, true, err
	}

	switch {
	case httpResp.StatusCode >= 200 && httpResp.StatusCode < 300:
		var resp generationResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, false, fmt.Errorf("%w: %s", errs.ErrInvalidProviderResponse, err.Error())
		}
		return &resp, false, nil

	case httpResp.StatusCode == http.StatusTooManyRequests:
		return nil, true, &httpStatusError{
			StatusCode: httpResp.StatusCode,
			RetryAfter: parseRetryAfter(httpResp.Header.Get("Retry-After")),
			Body:       string(body),
		}

	case httpResp.StatusCode >= 500:
		return nil, true, &httpStatusError{StatusCode: httpResp.StatusCode, Body: string(body)}

	case httpResp.StatusCode == http.StatusNotFound:
		return nil, false, errs.ErrJobNotFound

	default:
		// 4xx other than 429 will not get better on retry
		return nil, false, &httpStatusError{StatusCode: httpResp.StatusCode, Body: string(body)}
	}
}

// httpStatusError wraps a non-2xx provider response
type httpStatusError struct {
	StatusCode int
	RetryAfter time.Duration
	Body       string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("provider returned status %d: %s", e.StatusCode, e.Body)
}

// parseRetryAfter parses the Retry-After header value in seconds
func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}
	seconds, err := strconv.Atoi(value)
	if err != nil || seconds <= 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}

func retryAfterDelay(err error) (time.Duration, bool) {
	var statusErr *httpStatusError
	if errors.As(err, &statusErr) && statusErr.RetryAfter > 0 {
		return statusErr.RetryAfter, true
	}
	return 0, false
}

func statusCodeOf(err error) int {
	var statusErr *httpStatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode
	}
	return 0
}
