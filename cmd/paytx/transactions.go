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

func transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"tx"},
		Short:   "Manage transactions",
		Long:    `List, create, update, and delete your payment transactions.`,
	}

	cmd.AddCommand(listTransactionsCmd())
	cmd.AddCommand(showTransactionCmd())
	cmd.AddCommand(addTransactionCmd())
	cmd.AddCommand(updateTransactionCmd())
	cmd.AddCommand(deleteTransactionCmd())
	cmd.AddCommand(historyCmd())

	return cmd
}

func listTransactionsCmd() *cobra.Command {
	var (
		txType     string
		txStatus   string
		categoryID int64
		skip       int
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Long:  `List your transactions, newest first, with optional server-side filters.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, err := newAPIClient()
			if err != nil {
				return err
			}

			filter := model.TransactionFilter{
				Type:       model.TransactionType(txType),
				Status:     model.TransactionStatus(txStatus),
				CategoryID: categoryID,
				Skip:       skip,
				Limit:      limit,
			}
			if filter.Type != "" && !filter.Type.Valid() {
				return fmt.Errorf("invalid type %q (income, expense, transfer)", txType)
			}
			if filter.Status != "" && !filter.Status.Valid() {
				return fmt.Errorf("invalid status %q (pending, completed, failed, cancelled)", txStatus)
			}

			transactions, err := client.ListTransactions(cmd.Context(), filter)
			if err != nil {
				return fmt.Errorf("failed to list transactions: %w", err)
			}
			if len(transactions) == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions found."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Date"),
				cli.HeaderStyle.Render("Type"),
				cli.HeaderStyle.Render("Amount"),
				cli.HeaderStyle.Render("Status"),
				cli.HeaderStyle.Render("Category"),
				cli.HeaderStyle.Render("Description"))
			for _, tx := range transactions {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
					tx.ID,
					tx.TransactionDate.Format("2006-01-02"),
					tx.Type,
					renderAmount(tx),
					tx.Status,
					categoryLabel(tx),
					tx.Description)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&txType, "type", "t", "", "filter by type (income, expense, transfer)")
	cmd.Flags().StringVarP(&txStatus, "status", "s", "", "filter by status (pending, completed, failed, cancelled)")
	cmd.Flags().Int64VarP(&categoryID, "category", "c", 0, "filter by category ID")
	cmd.Flags().IntVar(&skip, "skip", 0, "skip the first N results")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "return at most N results")
	return cmd
}

func showTransactionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid transaction ID %q", args[0])
			}

			client, _, err := newAPIClient()
			if err != nil {
				return err
			}
			tx, err := client.GetTransaction(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to get transaction: %w", err)
			}

			fmt.Println(cli.FormatTitle(fmt.Sprintf("Transaction #%d", tx.ID)))
			fmt.Printf("date:        %s\n", tx.TransactionDate.Format("2006-01-02 15:04"))
			fmt.Printf("type:        %s\n", tx.Type)
			fmt.Printf("amount:      %s %s\n", renderAmount(*tx), tx.Currency)
			fmt.Printf("status:      %s\n", tx.Status)
			fmt.Printf("category:    %s\n", categoryLabel(*tx))
			if tx.Description != "" {
				fmt.Printf("description: %s\n", tx.Description)
			}
			if tx.Recipient != "" {
				fmt.Printf("recipient:   %s\n", tx.Recipient)
			}
			if tx.Sender != "" {
				fmt.Printf("sender:      %s\n", tx.Sender)
			}
			return nil
		},
	}
}

func addTransactionCmd() *cobra.Command {
	var (
		txType      string
		currency    string
		description string
		recipient   string
		sender      string
		date        string
		categoryID  int64
	)

	cmd := &cobra.Command{
		Use:   "add <amount>",
		Short: "Create a transaction",
		Long:  `Create a transaction. New transactions start pending until the backend settles them.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil || amount <= 0 {
				return fmt.Errorf("invalid amount %q", args[0])
			}

			params := model.TransactionParams{
				Type:        model.TransactionType(txType),
				Amount:      amount,
				Currency:    currency,
				Description: description,
				Recipient:   recipient,
				Sender:      sender,
			}
			if !params.Type.Valid() {
				return fmt.Errorf("invalid type %q (income, expense, transfer)", txType)
			}
			if categoryID > 0 {
				params.CategoryID = &categoryID
			}
			if date != "" {
				t, err := parseDate(date)
				if err != nil {
					return err
				}
				dt := model.NewDateTime(t)
				params.TransactionDate = &dt
			}

			client, _, err := newAPIClient()
			if err != nil {
				return err
			}
			tx, err := client.CreateTransaction(cmd.Context(), params)
			if err != nil {
				return fmt.Errorf("failed to create transaction: %w", err)
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created transaction #%d (%s)", tx.ID, tx.Status)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&txType, "type", "t", "expense", "transaction type (income, expense, transfer)")
	cmd.Flags().StringVar(&currency, "currency", "", "currency code (backend default when omitted)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "description")
	cmd.Flags().StringVar(&recipient, "recipient", "", "recipient")
	cmd.Flags().StringVar(&sender, "sender", "", "sender")
	cmd.Flags().StringVar(&date, "date", "", "transaction date (YYYY-MM-DD, default now)")
	cmd.Flags().Int64VarP(&categoryID, "category", "c", 0, "category ID")
	return cmd
}

func updateTransactionCmd() *cobra.Command {
	var (
		description string
		categoryID  int64
		amount      float64
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a transaction",
		Long:  `Update the given fields of a transaction; everything else is left unchanged.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid transaction ID %q", args[0])
			}

			var update model.TransactionUpdate
			if cmd.Flags().Changed("description") {
				update.Description = &description
			}
			if cmd.Flags().Changed("category") {
				update.CategoryID = &categoryID
			}
			if cmd.Flags().Changed("amount") {
				if amount <= 0 {
					return fmt.Errorf("amount must be positive")
				}
				update.Amount = &amount
			}
			if update == (model.TransactionUpdate{}) {
				return fmt.Errorf("nothing to update; pass at least one flag")
			}

			client, _, err := newAPIClient()
			if err != nil {
				return err
			}
			tx, err := client.UpdateTransaction(cmd.Context(), id, update)
			if err != nil {
				return fmt.Errorf("failed to update transaction: %w", err)
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated transaction #%d", tx.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "new description")
	cmd.Flags().Int64VarP(&categoryID, "category", "c", 0, "new category ID")
	cmd.Flags().Float64VarP(&amount, "amount", "a", 0, "new amount")
	return cmd
}

func deleteTransactionCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid transaction ID %q", args[0])
			}

			if !force {
				answer, err := promptLine(fmt.Sprintf("Delete transaction #%d? (y/N) ", id))
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
			if err := client.DeleteTransaction(cmd.Context(), id); err != nil {
				return fmt.Errorf("failed to delete transaction: %w", err)
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted transaction #%d", id)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")
	return cmd
}

func historyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history <id>",
		Short: "Show a transaction's audit history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid transaction ID %q", args[0])
			}

			client, _, err := newAPIClient()
			if err != nil {
				return err
			}
			events, err := client.TransactionHistory(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to get history: %w", err)
			}
			if len(events) == 0 {
				fmt.Println(cli.InfoStyle.Render("No recorded changes."))
				return nil
			}

			for _, ev := range events {
				line := fmt.Sprintf("%s  %s", ev.CreatedAt.Format("2006-01-02 15:04"), ev.Action)
				if ev.OldStatus != "" || ev.NewStatus != "" {
					line += fmt.Sprintf("  %s -> %s", ev.OldStatus, ev.NewStatus)
				}
				if ev.Notes != "" {
					line += "  " + cli.SubtleStyle.Render(ev.Notes)
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}

func renderAmount(tx model.Transaction) string {
	amount := fmt.Sprintf("%.2f", tx.Amount)
	switch tx.Type {
	case model.TypeIncome:
		return cli.IncomeStyle.Render("+" + amount)
	case model.TypeExpense:
		return cli.ExpenseStyle.Render("-" + amount)
	}
	return amount
}

func categoryLabel(tx model.Transaction) string {
	if tx.CategoryName == "" {
		return cli.SubtleStyle.Render("(uncategorized)")
	}
	return tx.CategoryName
}
