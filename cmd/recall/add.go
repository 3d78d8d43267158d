package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/recall-sh/recall/internal/cli"
	"github.com/recall-sh/recall/internal/model"
)

func addCmd() *cobra.Command {
	var (
		categoryFlag   string
		backFlag       string
		flashcard      bool
		postpone       bool
		scheduleAnyway bool
	)

	cmd := &cobra.Command{
		Use:   "add <content>",
		Short: "Add content to remember",
		Long: `Add a note or flashcard and schedule its forgetting-curve reminders.

If any reminder would fire during the night window you are asked whether to
postpone it until the morning. Use --postpone or --schedule-anyway to decide
without a prompt.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			content := strings.Join(args, " ")

			if flashcard && backFlag == "" {
				return fmt.Errorf("--flashcard requires --back")
			}

			var manualCategory model.Category
			if categoryFlag != "" {
				manualCategory = model.Category(categoryFlag)
				if !manualCategory.IsValid() {
					return fmt.Errorf("invalid category %q (want short, medium or long)", categoryFlag)
				}
			}

			eng, _, err := initEngine(ctx)
			if err != nil {
				return err
			}

			classifyText := content
			if flashcard {
				classifyText = content + " " + backFlag
			}

			conflict := eng.EvaluateConflict(classifyText, manualCategory)
			if conflict != nil {
				if !postpone && !scheduleAnyway {
					postpone = promptPostpone(conflict)
				}
				if !postpone {
					conflict = nil
				}
			}

			var item *model.Item
			if flashcard {
				item = eng.AddFlashcard(ctx, content, backFlag, manualCategory, conflict)
			} else {
				item = eng.AddNote(ctx, content, manualCategory, conflict)
			}
			if item == nil {
				return fmt.Errorf("nothing to add")
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added %s %s (%s)", item.Kind, item.ID[:8], item.Category)))
			if conflict != nil {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("%d night reminders postponed until morning", conflict.ConflictCount())))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&categoryFlag, "category", "c", "", "override the category (short, medium, long)")
	cmd.Flags().BoolVar(&flashcard, "flashcard", false, "add a reviewable flashcard instead of a note")
	cmd.Flags().StringVar(&backFlag, "back", "", "answer side of the flashcard")
	cmd.Flags().BoolVar(&postpone, "postpone", false, "postpone night reminders without prompting")
	cmd.Flags().BoolVar(&scheduleAnyway, "schedule-anyway", false, "keep night reminders without prompting")

	return cmd
}

// promptPostpone shows the night-window alert and reads the user's decision.
func promptPostpone(conflict *model.NightConflict) bool {
	fmt.Println(cli.FormatConflictAlert(conflict))
	fmt.Print("Postpone until morning? [Y/n] ")

	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return true
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "" || answer == "y" || answer == "yes"
}
