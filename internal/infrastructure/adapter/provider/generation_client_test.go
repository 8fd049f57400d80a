package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	errs "github.com/sketchmotion/credit-engine/internal/domain/error"
	coreport "github.com/sketchmotion/credit-engine/internal/domain/port/core"
	providerport "github.com/sketchmotion/credit-engine/internal/domain/port/provider"
	coremocks "github.com/sketchmotion/credit-engine/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newClientUnderTest(t *testing.T, baseURL string, maxRetries int) (*GenerationClient, *coremocks.MockTimeProvider) {
	mockTime := coremocks.NewMockTimeProvider(t)

	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	client := NewGenerationClient(Config{
		BaseURL:        baseURL,
		APIToken:       "test-token",
		RequestTimeout: 5 * time.Second,
		MaxRetries:     maxRetries,
		RetryBaseDelay: 10 * time.Millisecond,
	}, mockTime, mockLogger)

	return client, mockTime
}

func TestStartGeneration(t *testing.T) {
	ctx := context.Background()

	req := providerport.GenerationRequest{
		ImageURL: "https://cdn.example.com/a.png",
		Prompt:   "a cat flying over the city",
		Mood:     "happy",
	}

	t.Run("Submits the generation and returns the provider ID", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/generations", r.URL.Path)
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var payload map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "https://cdn.example.com/a.png", payload["image_url"])
			assert.Equal(t, "a cat flying over the city", payload["prompt"])
			assert.Equal(t, "happy", payload["mood"])

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id": "gen-abc123", "status": "processing"}`))
		}))
		defer server.Close()

		client, _ := newClientUnderTest(t, server.URL, 3)
		result, err := client.StartGeneration(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "gen-abc123", result.ID)
		assert.Equal(t, "processing", result.Status)
	})

	t.Run("Retries a 503 with backoff and then succeeds", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			_, _ = w.Write([]byte(`{"id": "gen-abc123", "status": "pending"}`))
		}))
		defer server.Close()

		client, mockTime := newClientUnderTest(t, server.URL, 3)
		mockTime.EXPECT().Sleep(coreport.Duration(10 * time.Millisecond)).Once()

		result, err := client.StartGeneration(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "gen-abc123", result.ID)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("Honors Retry-After on a 429", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				w.Header().Set("Retry-After", "2")
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			_, _ = w.Write([]byte(`{"id": "gen-abc123", "status": "pending"}`))
		}))
		defer server.Close()

		client, mockTime := newClientUnderTest(t, server.URL, 3)
		mockTime.EXPECT().Sleep(coreport.Duration(2 * time.Second)).Once()

		result, err := client.StartGeneration(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "gen-abc123", result.ID)
	})

	t.Run("Exhausted retries surface a provider error", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client, mockTime := newClientUnderTest(t, server.URL, 2)
		mockTime.EXPECT().Sleep(coreport.Duration(10 * time.Millisecond)).Once()

		result, err := client.StartGeneration(ctx, req)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrProviderUnavailable)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("Rejects an accepted response without a generation ID", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status": "processing"}`))
		}))
		defer server.Close()

		client, _ := newClientUnderTest(t, server.URL, 3)
		result, err := client.StartGeneration(ctx, req)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidProviderResponse)
	})

	t.Run("Does not retry a 400", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client, _ := newClientUnderTest(t, server.URL, 3)
		result, err := client.StartGeneration(ctx, req)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrProviderUnavailable)
		assert.Equal(t, int32(1), calls.Load())
	})
}

func TestGetGeneration(t *testing.T) {
	ctx := context.Background()

	t.Run("Fetches the current status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/v1/generations/gen-abc123", r.URL.Path)
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

			_, _ = w.Write([]byte(`{"id": "gen-abc123", "status": "completed", "video_url": "https://cdn/video.mp4", "thumbnail_url": "https://cdn/thumb.jpg"}`))
		}))
		defer server.Close()

		client, _ := newClientUnderTest(t, server.URL, 3)
		result, err := client.GetGeneration(ctx, "gen-abc123")

		require.NoError(t, err)
		assert.Equal(t, "completed", result.Status)
		assert.Equal(t, "https://cdn/video.mp4", result.VideoURL)
		assert.Equal(t, "https://cdn/thumb.jpg", result.ThumbnailURL)
	})

	t.Run("Fills the ID when the provider omits it", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status": "processing"}`))
		}))
		defer server.Close()

		client, _ := newClientUnderTest(t, server.URL, 3)
		result, err := client.GetGeneration(ctx, "gen-abc123")

		require.NoError(t, err)
		assert.Equal(t, "gen-abc123", result.ID)
	})

	t.Run("Rejects a mismatched generation ID", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"id": "gen-other", "status": "processing"}`))
		}))
		defer server.Close()

		client, _ := newClientUnderTest(t, server.URL, 3)
		result, err := client.GetGeneration(ctx, "gen-abc123")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidProviderResponse)
	})

	t.Run("Unknown generation maps to not found without retries", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client, _ := newClientUnderTest(t, server.URL, 3)
		result, err := client.GetGeneration(ctx, "gen-missing")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrJobNotFound)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("Empty provider job ID is rejected locally", func(t *testing.T) {
		client, _ := newClientUnderTest(t, "http://unreachable.invalid", 3)

		result, err := client.GetGeneration(ctx, "")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	})
}
