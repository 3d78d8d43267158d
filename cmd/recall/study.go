package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/recall-sh/recall/internal/cli"
	"github.com/recall-sh/recall/internal/model"
	"github.com/recall-sh/recall/internal/tui"
)

func studyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "study",
		Short: "Start an interactive flashcard study session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			eng, _, err := initEngine(ctx)
			if err != nil {
				return err
			}

			var cards []model.Item
			for _, item := range eng.Items() {
				if item.Reviewable() {
					cards = append(cards, item)
				}
			}
			if len(cards) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No flashcards to study. Add one with: recall add --flashcard"))
				return nil
			}

			program := tea.NewProgram(tui.NewStudyModel(ctx, eng, cards))
			finished, err := program.Run()
			if err != nil {
				return fmt.Errorf("study session failed: %w", err)
			}

			if m, ok := finished.(tui.StudyModel); ok {
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Reviewed %d cards.", m.Reviewed())))
			}
			return nil
		},
	}
}
