// Package shell hosts the application the way the desktop wrapper does:
// point at a service URL (remote, or a locally spawned backend process), wait
// until it answers, then hand control to the UI. The supervised backend never
// outlives the host.
package shell

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"time"
)

// RetryPolicy controls how long the host keeps retrying the initial
// connection. The desktop wrapper this models retried forever on a fixed
// delay; MaxAttempts = 0 preserves that, a positive value bounds it.
type RetryPolicy struct {
	Interval    time.Duration
	MaxAttempts int
}

// DefaultRetry mirrors the wrapper's observed fixed 3-second delay.
var DefaultRetry = RetryPolicy{Interval: 3 * time.Second}

// Config configures a Host.
type Config struct {
	// URL is the service root the UI will talk to.
	URL string
	// HealthPath is probed until it answers. Defaults to "/".
	HealthPath string
	// BackendCmd, when non-empty, is a command line to spawn as the local
	// backend before probing.
	BackendCmd []string
	// Retry controls connection retries. Zero interval uses DefaultRetry.
	Retry RetryPolicy
}

// Host supervises the optional backend process and gates UI startup on
// service availability.
type Host struct {
	cfg    Config
	probe  *http.Client
	health string
}

// NewHost creates a Host.
func NewHost(cfg Config) (*Host, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("shell: service URL is required")
	}
	if cfg.Retry.Interval <= 0 {
		cfg.Retry.Interval = DefaultRetry.Interval
	}
	path := cfg.HealthPath
	if path == "" {
		path = "/"
	}
	return &Host{
		cfg:    cfg,
		probe:  &http.Client{Timeout: 5 * time.Second},
		health: cfg.URL + path,
	}, nil
}

// Run spawns the backend if configured, waits for the service to answer, and
// then invokes the UI. The backend is terminated when the UI returns, when
// ctx is canceled, and on abnormal host termination via the process group.
func (h *Host) Run(ctx context.Context, ui func(ctx context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if len(h.cfg.BackendCmd) > 0 {
		cmd := exec.CommandContext(ctx, h.cfg.BackendCmd[0], h.cfg.BackendCmd[1:]...) // #nosec G204
		cmd.Stdout = os.Stderr
		cmd.Stderr = os.Stderr
		if err := cmd.Start(); err != nil {
			return fmt.Errorf("failed to start backend: %w", err)
		}
		slog.Info("Started local backend", "pid", cmd.Process.Pid, "command", h.cfg.BackendCmd[0])

		// Reap the process when it exits; CommandContext kills it on cancel.
		backendDone := make(chan error, 1)
		go func() { backendDone <- cmd.Wait() }()
		defer func() {
			cancel()
			if err := <-backendDone; err != nil && ctx.Err() == nil {
				slog.Warn("Backend exited abnormally", "error", err)
			}
		}()
	}

	if err := h.waitReady(ctx); err != nil {
		return err
	}
	return ui(ctx)
}

// waitReady probes the health URL until it answers, the retry budget runs
// out, or ctx is canceled.
func (h *Host) waitReady(ctx context.Context) error {
	for attempt := 1; ; attempt++ {
		err := h.probeOnce(ctx)
		if err == nil {
			slog.Info("Service is reachable", "url", h.cfg.URL, "attempts", attempt)
			return nil
		}

		if h.cfg.Retry.MaxAttempts > 0 && attempt >= h.cfg.Retry.MaxAttempts {
			return fmt.Errorf("service at %s not reachable after %d attempts: %w", h.cfg.URL, attempt, err)
		}

		slog.Warn("Service not reachable yet, retrying",
			"url", h.cfg.URL,
			"attempt", attempt,
			"retry_in", h.cfg.Retry.Interval,
			"error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(h.cfg.Retry.Interval):
		}
	}
}

func (h *Host) probeOnce(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.health, nil)
	if err != nil {
		return err
	}
	resp, err := h.probe.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	// Any response means the service is up; even a 404 health path proves
	// the listener answers.
	if resp.StatusCode >= 500 {
		return fmt.Errorf("service answered %d", resp.StatusCode)
	}
	return nil
}
