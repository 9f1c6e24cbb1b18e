package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/kairenq/payment-transactions/internal/cli"
	"github.com/kairenq/payment-transactions/internal/sheets"
)

func authCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage authentication",
		Long:  `Log in, register, and inspect the current session.`,
	}

	cmd.AddCommand(loginCmd())
	cmd.AddCommand(registerCmd())
	cmd.AddCommand(logoutCmd())
	cmd.AddCommand(whoamiCmd())
	cmd.AddCommand(authSheetsCmd())

	return cmd
}

func loginCmd() *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the backend",
		Long:  `Exchange a username and password for a session token, stored locally.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, _, err := newSessionStore()
			if err != nil {
				return err
			}

			if username == "" {
				username, err = promptLine("Username: ")
				if err != nil {
					return err
				}
			}
			password, err := promptPassword("Password: ")
			if err != nil {
				return err
			}

			if !store.Login(cmd.Context(), username, password) {
				return fmt.Errorf("login failed")
			}
			fmt.Println(cli.FormatSuccess("Logged in as " + username))
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "username (prompted when omitted)")
	return cmd
}

func registerCmd() *cobra.Command {
	var (
		username string
		email    string
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Long:  `Create a new account on the backend and log in with it.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, _, err := newSessionStore()
			if err != nil {
				return err
			}

			if username == "" {
				username, err = promptLine("Username: ")
				if err != nil {
					return err
				}
			}
			if email == "" {
				email, err = promptLine("Email: ")
				if err != nil {
					return err
				}
			}
			password, err := promptPassword("Password: ")
			if err != nil {
				return err
			}

			if !store.Register(cmd.Context(), username, email, password) {
				return fmt.Errorf("registration failed")
			}
			fmt.Println(cli.FormatSuccess("Registered and logged in as " + username))
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "username (prompted when omitted)")
	cmd.Flags().StringVarP(&email, "email", "e", "", "email address (prompted when omitted)")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out",
		Long:  `Invalidate the server session and remove the stored token. The local token is removed even if the server cannot be reached.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, _, err := newSessionStore()
			if err != nil {
				return err
			}
			store.Logout(cmd.Context())
			fmt.Println(cli.FormatSuccess("Logged out"))
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, err := newAPIClient()
			if err != nil {
				return err
			}
			user, err := client.CurrentUser(cmd.Context())
			if err != nil {
				return fmt.Errorf("not logged in: %w", err)
			}
			fmt.Printf("%s (%s)\n", user.Username, user.Email)
			fmt.Printf("role: %s  active: %t  member since: %s\n",
				user.Role, user.IsActive, user.CreatedAt.Format("2006-01-02"))
			return nil
		},
	}
}

func authSheetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sheets",
		Short: "Authorize Google Sheets export",
		Long:  `Run the browser OAuth2 consent flow for Google Sheets and print the refresh token to put in your config.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientID := viper.GetString("sheets.client_id")
			clientSecret := viper.GetString("sheets.client_secret")
			if clientID == "" || clientSecret == "" {
				return fmt.Errorf("sheets.client_id and sheets.client_secret must be set in config")
			}

			tokenFile, err := dataPath("sheets-token.json")
			if err != nil {
				return err
			}
			token, err := sheets.AuthorizeInteractive(cmd.Context(), sheets.OAuth2Config{
				ClientID:     clientID,
				ClientSecret: clientSecret,
				TokenFile:    tokenFile,
			})
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Authorization complete"))
			fmt.Println("Add this to your config file:")
			fmt.Printf("\nsheets:\n  refresh_token: %s\n", token.RefreshToken)
			return nil
		},
	}
}

func promptLine(prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(password), nil
}
