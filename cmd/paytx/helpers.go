package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/kairenq/payment-transactions/internal/api"
	"github.com/kairenq/payment-transactions/internal/session"
)

const defaultServerURL = "http://localhost:8000"

// serverURL resolves the backend base URL from config.
func serverURL() string {
	if url := viper.GetString("server.url"); url != "" {
		return url
	}
	return defaultServerURL
}

// newTokenStore opens the persisted credential store. The path can be
// overridden via config for tests and multi-account setups.
func newTokenStore() (*session.FileTokenStore, error) {
	return session.NewFileTokenStore(viper.GetString("credentials.path"))
}

// newAPIClient builds the API client with the persisted token store attached.
func newAPIClient() (*api.Client, *session.FileTokenStore, error) {
	tokens, err := newTokenStore()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open credential store: %w", err)
	}
	client, err := api.NewClient(api.Config{
		BaseURL: serverURL(),
		Timeout: viper.GetDuration("server.timeout"),
		Tokens:  tokens,
	})
	if err != nil {
		return nil, nil, err
	}
	return client, tokens, nil
}

// newSessionStore builds the session store for CLI commands, with
// notifications routed to the log.
func newSessionStore() (*session.Store, *api.Client, error) {
	client, tokens, err := newAPIClient()
	if err != nil {
		return nil, nil, err
	}
	return session.NewStore(client, tokens, nil), client, nil
}

// dataPath returns a path under the application's XDG data directory.
func dataPath(name string) (string, error) {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "paytx", name), nil
}

// parseDate accepts the date formats commands take on the command line.
func parseDate(value string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", "2006-01-02 15:04", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q (want YYYY-MM-DD)", value)
}
