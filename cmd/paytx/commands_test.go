package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func subcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, sub := range cmd.Commands() {
		if sub.Name() == name {
			return sub
		}
	}
	return nil
}

func TestAuthCmd(t *testing.T) {
	cmd := authCmd()
	for _, name := range []string{"login", "register", "logout", "whoami", "sheets"} {
		assert.NotNil(t, subcommand(cmd, name), "%s subcommand should exist", name)
	}
}

func TestTransactionsCmd(t *testing.T) {
	cmd := transactionsCmd()
	for _, name := range []string{"list", "show", "add", "update", "delete", "history"} {
		assert.NotNil(t, subcommand(cmd, name), "%s subcommand should exist", name)
	}

	list := subcommand(cmd, "list")
	require.NotNil(t, list)
	for _, flag := range []string{"type", "status", "category", "skip", "limit"} {
		assert.NotNil(t, list.Flag(flag), "%s flag should exist", flag)
	}

	add := subcommand(cmd, "add")
	require.NotNil(t, add)
	flag := add.Flag("type")
	require.NotNil(t, flag)
	assert.Equal(t, "expense", flag.DefValue, "new transactions default to expense")
}

func TestCategoriesCmd(t *testing.T) {
	cmd := categoriesCmd()
	for _, name := range []string{"list", "add", "update", "delete"} {
		assert.NotNil(t, subcommand(cmd, name), "%s subcommand should exist", name)
	}
}

func TestChartCmd(t *testing.T) {
	cmd := chartCmd()
	for _, name := range []string{"monthly", "daily", "category", "status", "top"} {
		assert.NotNil(t, subcommand(cmd, name), "%s subcommand should exist", name)
	}

	monthly := subcommand(cmd, "monthly")
	require.NotNil(t, monthly)
	flag := monthly.Flag("months")
	require.NotNil(t, flag)
	assert.Equal(t, "6", flag.DefValue)

	daily := subcommand(cmd, "daily")
	require.NotNil(t, daily)
	flag = daily.Flag("days")
	require.NotNil(t, flag)
	assert.Equal(t, "30", flag.DefValue)
}

func TestAdminCmd(t *testing.T) {
	cmd := adminCmd()
	for _, name := range []string{"users", "stats", "pending", "review"} {
		assert.NotNil(t, subcommand(cmd, name), "%s subcommand should exist", name)
	}

	users := subcommand(cmd, "users")
	require.NotNil(t, users)
	for _, name := range []string{"list", "update", "delete"} {
		assert.NotNil(t, subcommand(users, name), "users %s subcommand should exist", name)
	}

	review := subcommand(cmd, "review")
	require.NotNil(t, review)
	assert.NotNil(t, review.Flag("reject"))
}

func TestShellCmdFlags(t *testing.T) {
	cmd := shellCmd()
	for _, flag := range []string{"backend-cmd", "health-path", "retry-interval", "max-retries"} {
		assert.NotNil(t, cmd.Flag(flag), "%s flag should exist", flag)
	}
	assert.Equal(t, "0", cmd.Flag("max-retries").DefValue, "retries are unbounded by default")
	assert.Equal(t, "3s", cmd.Flag("retry-interval").DefValue)
}

func TestImportOFXCmdFlags(t *testing.T) {
	cmd := importOFXCmd()
	assert.NotNil(t, cmd.Flag("dry-run"))
	assert.NotNil(t, cmd.Flag("currency"))
}

func TestParseDate(t *testing.T) {
	for _, input := range []string{"2024-03-15", "2024-03-15 10:30", "2024-03-15T10:30:00Z"} {
		_, err := parseDate(input)
		assert.NoError(t, err, input)
	}
	_, err := parseDate("yesterday")
	assert.Error(t, err)
}
