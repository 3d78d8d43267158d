package model

import (
	"time"

	"github.com/google/uuid"
)

// Category is a coarse difficulty/length classification of content. It selects
// which offset table drives the reminder schedule.
type Category string

const (
	// CategoryShort represents short content with a compressed reminder timeline.
	CategoryShort Category = "short"
	// CategoryMedium represents medium-length content.
	CategoryMedium Category = "medium"
	// CategoryLong represents long content with a spread-out timeline.
	CategoryLong Category = "long"
)

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryShort, CategoryMedium, CategoryLong:
		return true
	}
	return false
}

// ItemKind distinguishes plain reminder items from reviewable flashcards.
type ItemKind string

const (
	// KindNote is a simple reminder item; it is never reviewed.
	KindNote ItemKind = "note"
	// KindFlashcard is a reviewable item with adaptive study progress.
	KindFlashcard ItemKind = "flashcard"
)

// Item is one memorization target tracked by the scheduling engine.
type Item struct {
	CreatedAt      time.Time
	ID             string
	Kind           ItemKind
	Content        string // For flashcards this is the front/question side.
	BackContent    string // Answer side; empty for notes.
	Category       Category
	ManualCategory bool // Once set, automatic re-classification never overwrites Category.
	Progress       StudyProgress
}

// NewItem creates a note item with a fresh ID and creation time.
func NewItem(content string, category Category, manual bool) Item {
	return Item{
		ID:             uuid.NewString(),
		CreatedAt:      time.Now(),
		Kind:           KindNote,
		Content:        content,
		Category:       category,
		ManualCategory: manual,
		Progress:       NewStudyProgress(),
	}
}

// NewFlashcard creates a reviewable flashcard item with a fresh ID and creation time.
func NewFlashcard(front, back string, category Category, manual bool) Item {
	item := NewItem(front, category, manual)
	item.Kind = KindFlashcard
	item.BackContent = back
	return item
}

// Reviewable reports whether the item participates in the adaptive review loop.
func (i Item) Reviewable() bool {
	return i.Kind == KindFlashcard
}
