package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/recall-sh/recall/internal/cli"
	"github.com/recall-sh/recall/internal/model"
)

func reviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "review <id> <easy|good|hard>",
		Short: "Record a review outcome for a flashcard",
		Long: `Record how well a flashcard was recalled. Easy reviews stretch future
reminder intervals, hard reviews compress them, good reviews drift the
intervals back toward the baseline.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			difficulty, err := model.ParseReviewDifficulty(args[1])
			if err != nil {
				return err
			}

			eng, _, err := initEngine(ctx)
			if err != nil {
				return err
			}

			item, ok := findItem(eng, args[0])
			if !ok {
				return fmt.Errorf("no item with id %q", args[0])
			}
			if !item.Reviewable() {
				return fmt.Errorf("item %s is a note, not a flashcard", args[0])
			}

			eng.RecordReview(ctx, item.ID, difficulty)

			updated, _ := eng.Item(item.ID)
			fmt.Println(cli.FormatSuccess(fmt.Sprintf(
				"Recorded %s review, multiplier now %.2fx",
				difficulty, updated.Progress.CurrentIntervalMultiplier)))
			return nil
		},
	}
}
