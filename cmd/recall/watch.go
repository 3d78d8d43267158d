package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/recall-sh/recall/internal/cli"
)

func watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Run in the foreground and deliver reminders as they come due",
		Long: `Keep the process alive so the in-process sink can fire reminder alerts at
their scheduled times. Stops on interrupt.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			eng, notifier, err := initEngine(ctx)
			if err != nil {
				return err
			}
			resyncSink(ctx, eng, notifier)

			pending := eng.PendingNotifications(ctx)
			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("%s Watching %d pending reminders (ctrl+c to stop)", cli.BellIcon, len(pending))))

			<-ctx.Done()
			return nil
		},
	}
}
