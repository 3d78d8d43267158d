package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/recall-sh/recall/internal/cli"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tracked items with their next reminder",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			eng, _, err := initEngine(ctx)
			if err != nil {
				return err
			}

			items := eng.Items()
			if len(items) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No items yet. Add something you want to remember!"))
				return nil
			}

			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("%s Recall list", cli.BrainIcon)))
			for _, item := range items {
				next, ok := eng.NextUpcoming(item)
				fmt.Println(cli.FormatItemLine(item, next, ok))
				if item.Reviewable() && item.Progress.TotalReviews > 0 {
					fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf(
						"    %d reviews (%d easy / %d good / %d hard), multiplier %.2fx",
						item.Progress.TotalReviews,
						item.Progress.EasyCount,
						item.Progress.GoodCount,
						item.Progress.HardCount,
						item.Progress.CurrentIntervalMultiplier)))
				}
			}
			return nil
		},
	}
}

func timelineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "timeline <id>",
		Short: "Show an item's full reminder timeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			eng, _, err := initEngine(ctx)
			if err != nil {
				return err
			}

			item, ok := findItem(eng, args[0])
			if !ok {
				return fmt.Errorf("no item with id %q", args[0])
			}

			now := time.Now()
			fmt.Println(cli.TitleStyle.Render(item.Content))
			for _, date := range eng.ReminderTimeline(item) {
				line := date.Format("2006-01-02 15:04:05")
				if date.Before(now) {
					line = cli.SubtleStyle.Render(line + "  (passed)")
				}
				fmt.Println("  " + line)
			}
			return nil
		},
	}
}
