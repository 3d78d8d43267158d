package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/recall-sh/recall/internal/cli"
	"github.com/recall-sh/recall/internal/model"
)

func categoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "category <id> <short|medium|long>",
		Short: "Override an item's category and reschedule its reminders",
		Long: `Set an item's difficulty category manually. A manual override is sticky:
automatic re-classification never changes the category afterwards. Existing
reminders are cancelled and rescheduled under the new offset table.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			newCategory := model.Category(args[1])
			if !newCategory.IsValid() {
				return fmt.Errorf("invalid category %q (want short, medium or long)", args[1])
			}

			eng, _, err := initEngine(ctx)
			if err != nil {
				return err
			}

			item, ok := findItem(eng, args[0])
			if !ok {
				return fmt.Errorf("no item with id %q", args[0])
			}

			eng.UpdateCategory(ctx, item.ID, newCategory)
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Category set to %s for %s", newCategory, item.ID[:8])))
			return nil
		},
	}
}
