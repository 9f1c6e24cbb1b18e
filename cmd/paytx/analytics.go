package main

import (
	"context"
	"fmt"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/kairenq/payment-transactions/internal/api"
	"github.com/kairenq/payment-transactions/internal/cli"
	"github.com/kairenq/payment-transactions/internal/model"
)

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show your account summary",
		Long:  `Show totals, balance, and recent activity. Totals only count completed transactions.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, err := newAPIClient()
			if err != nil {
				return err
			}

			// The dashboard batch: everything fetched together, shown together.
			var (
				stats  *model.Stats
				recent []model.Transaction
			)
			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				var err error
				stats, err = client.Stats(ctx)
				return err
			})
			g.Go(func() error {
				var err error
				recent, err = client.RecentActivity(ctx, model.DefaultRecentLimit)
				return err
			})
			if err := g.Wait(); err != nil {
				return fmt.Errorf("failed to load stats: %w", err)
			}

			fmt.Println(cli.FormatTitle("Account summary"))
			fmt.Printf("balance:       %.2f\n", stats.Balance)
			fmt.Printf("income:        %s\n", cli.IncomeStyle.Render(fmt.Sprintf("%.2f", stats.TotalIncome)))
			fmt.Printf("expenses:      %s\n", cli.ExpenseStyle.Render(fmt.Sprintf("%.2f", stats.TotalExpense)))
			fmt.Printf("transactions:  %d (%d pending, %d completed, %d failed, %d cancelled)\n",
				stats.TotalTransactions, stats.PendingCount, stats.CompletedCount,
				stats.FailedCount, stats.CancelledCount)

			if len(recent) > 0 {
				fmt.Println()
				fmt.Println(cli.HeaderStyle.Render("Recent activity"))
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				for _, tx := range recent {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
						tx.TransactionDate.Format("2006-01-02"),
						renderAmount(tx),
						tx.Status,
						tx.Description)
				}
				w.Flush()
			}
			return nil
		},
	}
}

func chartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Show analytics charts",
		Long:  `Tabular renderings of the analytics chart endpoints.`,
	}

	cmd.AddCommand(chartMonthlyCmd())
	cmd.AddCommand(chartDailyCmd())
	cmd.AddCommand(chartCategoryCmd())
	cmd.AddCommand(chartStatusCmd())
	cmd.AddCommand(topCategoriesCmd())

	return cmd
}

func chartMonthlyCmd() *cobra.Command {
	var months int

	cmd := &cobra.Command{
		Use:   "monthly",
		Short: "Monthly income/expense trend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !slices.Contains(model.MonthWindows, months) {
				return fmt.Errorf("invalid window %d months (choose from %v)", months, model.MonthWindows)
			}
			client, _, err := newAPIClient()
			if err != nil {
				return err
			}
			points, err := client.MonthlyChart(cmd.Context(), months)
			if err != nil {
				return fmt.Errorf("failed to load monthly chart: %w", err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.HeaderStyle.Render("Month"),
				cli.HeaderStyle.Render("Income"),
				cli.HeaderStyle.Render("Expense"))
			for _, pt := range points {
				fmt.Fprintf(w, "%s\t%s\t%s\n", pt.Month,
					cli.IncomeStyle.Render(fmt.Sprintf("%.2f", pt.Income)),
					cli.ExpenseStyle.Render(fmt.Sprintf("%.2f", pt.Expense)))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&months, "months", "m", model.DefaultMonths, "window size in months (3, 6, 12)")
	return cmd
}

func chartDailyCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Daily income/expense trend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !slices.Contains(model.DayWindows, days) {
				return fmt.Errorf("invalid window %d days (choose from %v)", days, model.DayWindows)
			}
			client, _, err := newAPIClient()
			if err != nil {
				return err
			}
			points, err := client.DailyChart(cmd.Context(), days)
			if err != nil {
				return fmt.Errorf("failed to load daily chart: %w", err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.HeaderStyle.Render("Date"),
				cli.HeaderStyle.Render("Income"),
				cli.HeaderStyle.Render("Expense"))
			for _, pt := range points {
				fmt.Fprintf(w, "%s\t%s\t%s\n", pt.Date,
					cli.IncomeStyle.Render(fmt.Sprintf("%.2f", pt.Income)),
					cli.ExpenseStyle.Render(fmt.Sprintf("%.2f", pt.Expense)))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&days, "days", "w", model.DefaultDays, "window size in days (7, 14, 30, 90)")
	return cmd
}

func chartCategoryCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "category",
		Short: "Completed spending by category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !slices.Contains(model.DayWindows, days) {
				return fmt.Errorf("invalid window %d days (choose from %v)", days, model.DayWindows)
			}
			client, _, err := newAPIClient()
			if err != nil {
				return err
			}
			chartSlices, err := client.CategoryChart(cmd.Context(), days)
			if err != nil {
				return fmt.Errorf("failed to load category chart: %w", err)
			}
			if len(chartSlices) == 0 {
				fmt.Println(cli.InfoStyle.Render("No completed expenses in the window."))
				return nil
			}

			var total float64
			for _, s := range chartSlices {
				total += s.Total
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.HeaderStyle.Render("Category"),
				cli.HeaderStyle.Render("Total"),
				cli.HeaderStyle.Render("Share"))
			for _, s := range chartSlices {
				fmt.Fprintf(w, "%s\t%.2f\t%.1f%%\n", s.Category, s.Total, s.Total/total*100)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&days, "days", "w", model.DefaultDays, "window size in days (7, 14, 30, 90)")
	return cmd
}

func chartStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Transaction counts by status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, err := newAPIClient()
			if err != nil {
				return err
			}
			counts, err := client.StatusChart(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load status chart: %w", err)
			}
			for _, c := range counts {
				fmt.Printf("%-10s %d\n", c.Status, c.Count)
			}
			return nil
		},
	}
}

func topCategoriesCmd() *cobra.Command {
	var (
		limit  int
		txType string
	)

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Top categories by amount",
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := model.TransactionType(txType)
			if t != "" && !t.Valid() {
				return fmt.Errorf("invalid type %q (income, expense, transfer)", txType)
			}
			client, _, err := newAPIClient()
			if err != nil {
				return err
			}
			top, err := client.TopCategories(cmd.Context(), limit, t)
			if err != nil {
				return fmt.Errorf("failed to load top categories: %w", err)
			}
			for i, tc := range top {
				fmt.Printf("%d. %-24s %10.2f  %s\n", i+1, tc.Category, tc.TotalAmount,
					cli.SubtleStyle.Render(fmt.Sprintf("%d transactions", tc.TransactionCount)))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", model.DefaultTopLimit, "number of categories")
	cmd.Flags().StringVarP(&txType, "type", "t", "", "restrict to one type (income, expense, transfer)")
	return cmd
}

// fetchAll pulls every transaction page by page for export commands.
func fetchAll(ctx context.Context, client *api.Client) ([]model.Transaction, error) {
	const pageSize = 200
	var all []model.Transaction
	for skip := 0; ; skip += pageSize {
		page, err := client.ListTransactions(ctx, model.TransactionFilter{Skip: skip, Limit: pageSize})
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < pageSize {
			return all, nil
		}
	}
}
