// Package classification provides heuristic text-complexity analysis for
// assigning content to a difficulty category.
package classification

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/recall-sh/recall/internal/model"
)

// Word-count thresholds separating the categories. Character counts act as a
// secondary signal for dense content with few but long words.
const (
	shortWordLimit  = 12
	mediumWordLimit = 40
	shortCharLimit  = 80
	mediumCharLimit = 280
)

// AnalysisResult carries the recommended category together with the measured
// signals, for display in pre-flight UI.
type AnalysisResult struct {
	Category  model.Category
	Reason    string
	WordCount int
	CharCount int
}

// Analyzer implements service.Classifier with word and character count
// heuristics. The zero value is ready to use.
type Analyzer struct{}

// NewAnalyzer creates a text-complexity analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Classify returns the category for the given text. It is total: empty or
// whitespace-only text falls back to the short category.
func (a *Analyzer) Classify(text string) model.Category {
	return a.Analyze(text).Category
}

// Analyze measures the text and returns the recommended category with the
// signals that produced it.
func (a *Analyzer) Analyze(text string) AnalysisResult {
	words := len(strings.Fields(text))
	chars := utf8.RuneCountInString(strings.TrimSpace(text))

	result := AnalysisResult{WordCount: words, CharCount: chars}

	switch {
	case words <= shortWordLimit && chars <= shortCharLimit:
		result.Category = model.CategoryShort
		result.Reason = fmt.Sprintf("%d words, compact enough for a compressed timeline", words)
	case words <= mediumWordLimit && chars <= mediumCharLimit:
		result.Category = model.CategoryMedium
		result.Reason = fmt.Sprintf("%d words, needs a moderately spread timeline", words)
	default:
		result.Category = model.CategoryLong
		result.Reason = fmt.Sprintf("%d words, long content gets the widest intervals", words)
	}

	return result
}
