package shell

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHostRequiresURL(t *testing.T) {
	_, err := NewHost(Config{})
	assert.Error(t, err)
}

func TestNewHostDefaultsRetryInterval(t *testing.T) {
	h, err := NewHost(Config{URL: "http://localhost:9999"})
	require.NoError(t, err)
	assert.Equal(t, DefaultRetry.Interval, h.cfg.Retry.Interval)
	assert.Equal(t, 0, h.cfg.Retry.MaxAttempts, "default is unbounded retries")
}

func TestRunInvokesUIWhenServiceAnswers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	h, err := NewHost(Config{URL: server.URL})
	require.NoError(t, err)

	uiCalled := false
	err = h.Run(context.Background(), func(_ context.Context) error {
		uiCalled = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, uiCalled)
}

func TestRunRetriesUntilServiceIsUp(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	h, err := NewHost(Config{
		URL:   server.URL,
		Retry: RetryPolicy{Interval: 10 * time.Millisecond},
	})
	require.NoError(t, err)

	err = h.Run(context.Background(), func(_ context.Context) error { return nil })
	require.NoError(t, err)
	assert.GreaterOrEqual(t, calls.Load(), int32(3))
}

func TestRunGivesUpAfterMaxAttempts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	h, err := NewHost(Config{
		URL:   server.URL,
		Retry: RetryPolicy{Interval: time.Millisecond, MaxAttempts: 3},
	})
	require.NoError(t, err)

	uiCalled := false
	err = h.Run(context.Background(), func(_ context.Context) error {
		uiCalled = true
		return nil
	})
	require.Error(t, err)
	assert.False(t, uiCalled, "the UI must not start when the service never answers")
}

func TestRunHonorsCancellation(t *testing.T) {
	// Nothing listens here; the probe fails until the context is canceled.
	h, err := NewHost(Config{
		URL:   "http://127.0.0.1:1",
		Retry: RetryPolicy{Interval: 50 * time.Millisecond},
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err = h.Run(ctx, func(_ context.Context) error { return nil })
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestProbeAcceptsNon500Responses(t *testing.T) {
	// A 404 health path still proves the listener answers.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	h, err := NewHost(Config{URL: server.URL, HealthPath: "/nope"})
	require.NoError(t, err)
	assert.NoError(t, h.probeOnce(context.Background()))
}
