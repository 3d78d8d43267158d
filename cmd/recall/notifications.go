package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/recall-sh/recall/internal/cli"
)

func notificationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Inspect and manage pending reminder alerts",
	}

	cmd.AddCommand(pendingCmd())
	cmd.AddCommand(cancelAllCmd())

	return cmd
}

func pendingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "List pending reminder alerts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			eng, notifier, err := initEngine(ctx)
			if err != nil {
				return err
			}
			resyncSink(ctx, eng, notifier)

			pending := eng.PendingNotifications(ctx)
			if len(pending) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No pending reminders."))
				return nil
			}

			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("%s Pending reminders (%d)", cli.BellIcon, len(pending))))
			for _, p := range pending {
				fmt.Printf("  %s  %s\n",
					p.FireAt.Format("2006-01-02 15:04:05"),
					p.Body)
			}
			return nil
		},
	}
}

func cancelAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel-all",
		Short: "Cancel every pending reminder alert",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			eng, _, err := initEngine(ctx)
			if err != nil {
				return err
			}

			eng.CancelAll(ctx)
			fmt.Println(cli.FormatSuccess("All pending reminders cancelled"))
			return nil
		},
	}
}
