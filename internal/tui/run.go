package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kairenq/payment-transactions/internal/api"
	"github.com/kairenq/payment-transactions/internal/session"
)

// Run starts the interactive UI against the given API client and token store.
// It blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, apiClient *api.Client, tokens api.TokenStore) error {
	notices := &noticeBuffer{}
	sess := session.NewStore(apiClient, tokens, notices)

	p := tea.NewProgram(
		newModel(apiClient, sess, notices),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running UI: %w", err)
	}
	return nil
}
