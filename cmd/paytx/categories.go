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

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage categories",
		Long:  `List, add, update, and delete the shared transaction categories.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(updateCategoryCmd())
	cmd.AddCommand(deleteCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, err := newAPIClient()
			if err != nil {
				return err
			}
			categories, err := client.ListCategories(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list categories: %w", err)
			}
			if len(categories) == 0 {
				fmt.Println(cli.InfoStyle.Render("No categories found. Use 'paytx categories add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Name"),
				cli.HeaderStyle.Render("Description"))
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				strings.Repeat("-", 4),
				strings.Repeat("-", 20),
				strings.Repeat("-", 50))
			for _, cat := range categories {
				desc := cat.Description
				if desc == "" {
					desc = cli.SubtleStyle.Render("(no description)")
				}
				name := cat.Name
				if cat.Icon != "" {
					name = cat.Icon + " " + name
				}
				fmt.Fprintf(w, "%d\t%s\t%s\n", cat.ID, name, desc)
			}
			return nil
		},
	}
}

func addCategoryCmd() *cobra.Command {
	var (
		description string
		color       string
		icon        string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newAPIClient()
			if err != nil {
				return err
			}
			cat, err := client.CreateCategory(cmd.Context(), model.CategoryParams{
				Name:        args[0],
				Description: description,
				Color:       color,
				Icon:        icon,
			})
			if err != nil {
				return fmt.Errorf("failed to create category: %w", err)
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created category %q (#%d)", cat.Name, cat.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "category description")
	cmd.Flags().StringVar(&color, "color", "", "display color, e.g. #2196F3")
	cmd.Flags().StringVar(&icon, "icon", "", "display icon")
	return cmd
}

func updateCategoryCmd() *cobra.Command {
	var (
		name        string
		description string
		color       string
		icon        string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a category",
		Long:  `Update the given fields of a category; everything else is left unchanged.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid category ID %q", args[0])
			}

			var update model.CategoryUpdate
			if cmd.Flags().Changed("name") {
				update.Name = &name
			}
			if cmd.Flags().Changed("description") {
				update.Description = &description
			}
			if cmd.Flags().Changed("color") {
				update.Color = &color
			}
			if cmd.Flags().Changed("icon") {
				update.Icon = &icon
			}
			if update == (model.CategoryUpdate{}) {
				return fmt.Errorf("nothing to update; pass at least one flag")
			}

			client, _, err := newAPIClient()
			if err != nil {
				return err
			}
			cat, err := client.UpdateCategory(cmd.Context(), id, update)
			if err != nil {
				return fmt.Errorf("failed to update category: %w", err)
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated category %q", cat.Name)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "new name")
	cmd.Flags().StringVarP(&description, "description", "d", "", "new description")
	cmd.Flags().StringVar(&color, "color", "", "new display color")
	cmd.Flags().StringVar(&icon, "icon", "", "new display icon")
	return cmd
}

func deleteCategoryCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category",
		Long:  `Delete a category. Its transactions are kept and become uncategorized.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid category ID %q", args[0])
			}

			if !force {
				answer, err := promptLine(fmt.Sprintf("Delete category #%d? Its transactions become uncategorized. (y/N) ", id))
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
			if err := client.DeleteCategory(cmd.Context(), id); err != nil {
				return fmt.Errorf("failed to delete category: %w", err)
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted category #%d", id)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")
	return cmd
}
