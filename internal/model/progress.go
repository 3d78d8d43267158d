package model

import "fmt"

// ReviewDifficulty is the user's assessment of recall quality for one review.
type ReviewDifficulty string

const (
	// ReviewEasy means the content was recalled effortlessly; future gaps lengthen.
	ReviewEasy ReviewDifficulty = "easy"
	// ReviewGood means the content was recalled with some effort; gaps drift back toward baseline.
	ReviewGood ReviewDifficulty = "good"
	// ReviewHard means the content was recalled with difficulty; future gaps shorten.
	ReviewHard ReviewDifficulty = "hard"
)

// ParseReviewDifficulty converts a user-supplied string to a ReviewDifficulty.
func ParseReviewDifficulty(s string) (ReviewDifficulty, error) {
	switch ReviewDifficulty(s) {
	case ReviewEasy, ReviewGood, ReviewHard:
		return ReviewDifficulty(s), nil
	}
	return "", fmt.Errorf("invalid review difficulty: %q", s)
}

// Multiplier adjustment policy. Easy and Hard move the multiplier in opposite
// directions; Good nudges it back toward 1.0. The floor keeps the multiplier
// strictly positive no matter how many Hard reviews accumulate.
const (
	easyMultiplierStep = 1.2
	hardMultiplierStep = 0.85
	goodReversionRate  = 0.05
	multiplierFloor    = 0.1
	multiplierCeiling  = 3.0
)

// StudyProgress holds the per-item review history and the running interval
// multiplier applied to all future reminder offsets.
type StudyProgress struct {
	TotalReviews              int
	EasyCount                 int
	GoodCount                 int
	HardCount                 int
	CurrentIntervalMultiplier float64
}

// NewStudyProgress returns the initial progress state: no reviews, multiplier 1.0.
func NewStudyProgress() StudyProgress {
	return StudyProgress{CurrentIntervalMultiplier: 1.0}
}

// RecordReview appends one review outcome and adjusts the interval multiplier.
// Easy never decreases the multiplier, Hard never increases it, and the result
// stays within (0, multiplierCeiling]. History is append-only: a mis-recorded
// review is corrected by recording a compensating one, not by rollback.
func (p *StudyProgress) RecordReview(difficulty ReviewDifficulty) {
	p.TotalReviews++

	switch difficulty {
	case ReviewEasy:
		p.EasyCount++
		p.CurrentIntervalMultiplier *= easyMultiplierStep
	case ReviewHard:
		p.HardCount++
		p.CurrentIntervalMultiplier *= hardMultiplierStep
	case ReviewGood:
		p.GoodCount++
		p.CurrentIntervalMultiplier += (1.0 - p.CurrentIntervalMultiplier) * goodReversionRate
	}

	if p.CurrentIntervalMultiplier < multiplierFloor {
		p.CurrentIntervalMultiplier = multiplierFloor
	}
	if p.CurrentIntervalMultiplier > multiplierCeiling {
		p.CurrentIntervalMultiplier = multiplierCeiling
	}
}
