// Package tui implements the interactive flashcard study session.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/recall-sh/recall/internal/cli"
	"github.com/recall-sh/recall/internal/model"
)

// Reviewer records review outcomes. Satisfied by engine.Engine.
type Reviewer interface {
	RecordReview(ctx context.Context, itemID string, difficulty model.ReviewDifficulty)
}

// StudyModel drives one study session over a set of flashcards: show the
// front, reveal the back, rate the recall.
type StudyModel struct {
	reviewer Reviewer
	ctx      context.Context
	cards    []model.Item
	progress progress.Model
	index    int
	reviewed int
	revealed bool
	done     bool
	width    int
}

// NewStudyModel creates a study session over the given flashcards.
func NewStudyModel(ctx context.Context, reviewer Reviewer, cards []model.Item) StudyModel {
	return StudyModel{
		reviewer: reviewer,
		ctx:      ctx,
		cards:    cards,
		progress: progress.New(progress.WithDefaultGradient()),
	}
}

// Reviewed returns how many cards were rated during the session.
func (m StudyModel) Reviewed() int {
	return m.reviewed
}

// Init implements tea.Model.
func (m StudyModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m StudyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = msg.Width - 8

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.done = true
			return m, tea.Quit

		case " ", "enter":
			if !m.revealed {
				m.revealed = true
			}

		case "e", "1":
			return m.rate(model.ReviewEasy)
		case "g", "2":
			return m.rate(model.ReviewGood)
		case "h", "3":
			return m.rate(model.ReviewHard)
		}
	}

	return m, nil
}

func (m StudyModel) rate(difficulty model.ReviewDifficulty) (tea.Model, tea.Cmd) {
	if !m.revealed || m.index >= len(m.cards) {
		return m, nil
	}

	m.reviewer.RecordReview(m.ctx, m.cards[m.index].ID, difficulty)
	m.reviewed++
	m.index++
	m.revealed = false

	if m.index >= len(m.cards) {
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m StudyModel) View() string {
	if m.done || m.index >= len(m.cards) {
		return cli.FormatSuccess(fmt.Sprintf("Session complete: %d cards reviewed.\n", m.reviewed))
	}

	card := m.cards[m.index]

	var b strings.Builder
	b.WriteString(cli.TitleStyle.Render(fmt.Sprintf("%s Study session", cli.CardIcon)))
	b.WriteString("\n")
	b.WriteString(m.progress.ViewAs(float64(m.index) / float64(len(m.cards))))
	b.WriteString("\n\n")

	b.WriteString(cli.BoxStyle.Render(card.Content))
	b.WriteString("\n\n")

	if m.revealed {
		b.WriteString(cli.BoxStyle.BorderForeground(cli.SuccessColor).Render(card.BackContent))
		b.WriteString("\n\n")
		b.WriteString(ratingBar())
	} else {
		b.WriteString(cli.SubtleStyle.Render("space: reveal answer   q: quit"))
	}

	b.WriteString("\n")
	return b.String()
}

func ratingBar() string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		cli.SuccessStyle.Render("[e]asy  "),
		cli.WarningStyle.Render("[g]ood  "),
		cli.ErrorStyle.Render("[h]ard  "),
		cli.SubtleStyle.Render("q: quit"),
	)
}
