package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kairenq/payment-transactions/internal/cli"
	"github.com/kairenq/payment-transactions/internal/model"
)

func adminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative operations",
		Long:  `User management and transaction moderation. Requires the admin role.`,
	}

	cmd.AddCommand(adminUsersCmd())
	cmd.AddCommand(adminStatsCmd())
	cmd.AddCommand(adminPendingCmd())
	cmd.AddCommand(adminReviewCmd())

	return cmd
}

func adminUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage user accounts",
	}

	cmd.AddCommand(adminListUsersCmd())
	cmd.AddCommand(adminUpdateUserCmd())
	cmd.AddCommand(adminDeleteUserCmd())

	return cmd
}

func adminListUsersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all users",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, err := newAPIClient()
			if err != nil {
				return err
			}
			users, err := client.ListUsers(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list users: %w", err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Username"),
				cli.HeaderStyle.Render("Email"),
				cli.HeaderStyle.Render("Role"),
				cli.HeaderStyle.Render("Active"),
				cli.HeaderStyle.Render("Created"))
			for _, u := range users {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\t%s\n",
					u.ID, u.Username, u.Email, u.Role, u.IsActive,
					u.CreatedAt.Format("2006-01-02"))
			}
			return nil
		},
	}
}

func adminUpdateUserCmd() *cobra.Command {
	var (
		role   string
		active bool
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a user's role or active flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user ID %q", args[0])
			}

			var update model.UserUpdate
			if cmd.Flags().Changed("role") {
				r := model.Role(role)
				if !r.Valid() {
					return fmt.Errorf("invalid role %q (user, admin)", role)
				}
				update.Role = &r
			}
			if cmd.Flags().Changed("active") {
				update.IsActive = &active
			}
			if update == (model.UserUpdate{}) {
				return fmt.Errorf("nothing to update; pass --role or --active")
			}

			client, _, err := newAPIClient()
			if err != nil {
				return err
			}
			user, err := client.UpdateUser(cmd.Context(), id, update)
			if err != nil {
				return fmt.Errorf("failed to update user: %w", err)
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated user %q (role %s, active %t)",
				user.Username, user.Role, user.IsActive)))
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "new role (user, admin)")
	cmd.Flags().BoolVar(&active, "active", true, "set the active flag")
	return cmd
}

func adminDeleteUserCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user and all their data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user ID %q", args[0])
			}
			// Refused locally; the backend enforces it too.
			if id == model.BootstrapAdminID {
				return fmt.Errorf("the bootstrap administrator cannot be deleted")
			}

			if !force {
				answer, err := promptLine(fmt.Sprintf("Delete user #%d and ALL their data? (y/N) ", id))
				if err != nil {
					return err
				}
				if !strings.EqualFold(answer, "y") {
					fmt.Println(cli.InfoStyle.Render("Aborted."))
					return nil
				}
			}

			client, _, err := newAPIClient()
			if err != nil {
				return err
			}
			if err := client.DeleteUser(cmd.Context(), id); err != nil {
				return fmt.Errorf("failed to delete user: %w", err)
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted user #%d", id)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")
	return cmd
}

func adminStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show account statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, err := newAPIClient()
			if err != nil {
				return err
			}
			stats, err := client.AdminStats(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load admin stats: %w", err)
			}
			fmt.Println(cli.FormatTitle("Accounts"))
			fmt.Printf("total users:          %d\n", stats.TotalUsers)
			fmt.Printf("active users:         %d\n", stats.ActiveUsers)
			fmt.Printf("admins:               %d\n", stats.AdminCount)
			fmt.Printf("new in the last week: %d\n", stats.RecentRegistrations)
			return nil
		},
	}
}

func adminPendingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "List transactions awaiting review",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, err := newAPIClient()
			if err != nil {
				return err
			}
			pending, err := client.PendingTransactions(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list pending transactions: %w", err)
			}
			if len(pending) == 0 {
				fmt.Println(cli.InfoStyle.Render("The moderation queue is empty."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("User"),
				cli.HeaderStyle.Render("Date"),
				cli.HeaderStyle.Render("Amount"),
				cli.HeaderStyle.Render("Description"))
			for _, tx := range pending {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					tx.ID, tx.UserUsername,
					tx.TransactionDate.Format("2006-01-02"),
					renderAmount(tx), tx.Description)
			}
			return nil
		},
	}
}

func adminReviewCmd() *cobra.Command {
	var reject bool

	cmd := &cobra.Command{
		Use:   "review <id>",
		Short: "Approve or reject a pending transaction",
		Long:  `Settle a pending transaction: approval completes it, rejection fails it.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid transaction ID %q", args[0])
			}

			status := model.StatusCompleted
			if reject {
				status = model.StatusFailed
			}

			client, _, err := newAPIClient()
			if err != nil {
				return err
			}
			tx, err := client.ReviewTransaction(cmd.Context(), id, status)
			if err != nil {
				return fmt.Errorf("failed to review transaction: %w", err)
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Transaction #%d is now %s", tx.ID, tx.Status)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&reject, "reject", false, "reject instead of approve")
	return cmd
}
