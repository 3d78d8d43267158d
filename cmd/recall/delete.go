package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/recall-sh/recall/internal/cli"
)

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete items and cancel their reminders",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			eng, _, err := initEngine(ctx)
			if err != nil {
				return err
			}

			ids := make([]string, 0, len(args))
			for _, arg := range args {
				if item, ok := findItem(eng, arg); ok {
					ids = append(ids, item.ID)
				}
			}

			eng.DeleteItems(ctx, ids)
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted %d of %d requested items", len(ids), len(args))))
			return nil
		},
	}
}
