package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/kairenq/payment-transactions/internal/shell"
	"github.com/kairenq/payment-transactions/internal/tui"
)

func shellCmd() *cobra.Command {
	var (
		backendCmd    []string
		healthPath    string
		retryInterval time.Duration
		maxRetries    int
	)

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Run the UI with a supervised local backend",
		Long: `Start (or wait for) the backend and then launch the terminal UI.

When --backend-cmd is given, the backend is spawned as a child process and
terminated when the UI exits. The UI does not start until the service
answers; by default the connection is retried every 3 seconds forever.

Examples:
  # Wait for an already-running local backend
  paytx shell

  # Spawn the backend and give up after 10 attempts
  paytx shell --backend-cmd "uvicorn app.main:app" --max-retries 10`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			host, err := shell.NewHost(shell.Config{
				URL:        serverURL(),
				HealthPath: healthPath,
				BackendCmd: backendCmd,
				Retry: shell.RetryPolicy{
					Interval:    retryInterval,
					MaxAttempts: maxRetries,
				},
			})
			if err != nil {
				return err
			}

			client, tokens, err := newAPIClient()
			if err != nil {
				return err
			}
			return host.Run(cmd.Context(), func(ctx context.Context) error {
				return tui.Run(ctx, client, tokens)
			})
		},
	}

	cmd.Flags().StringSliceVar(&backendCmd, "backend-cmd", nil, "command to spawn as the local backend")
	cmd.Flags().StringVar(&healthPath, "health-path", "", "path probed for readiness (default /)")
	cmd.Flags().DurationVar(&retryInterval, "retry-interval", shell.DefaultRetry.Interval, "delay between connection attempts")
	cmd.Flags().IntVar(&maxRetries, "max-retries", 0, "connection attempt limit (0 retries forever)")
	return cmd
}
