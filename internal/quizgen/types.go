package quizgen

import "time"

// Type is the subject matter of a generated question.
type Type string

const (
	TypeSymbol   Type = "elementSymbol"
	TypeCategory Type = "elementCategory"
	TypeProperty Type = "elementProperty"
)

// Question is one multiple-choice question. Questions are built once by the
// Generator and never mutated afterward.
type Question struct {
	// ID is the 1-based sequence number within the generated batch,
	// assigned after the final shuffle.
	ID int

	// Type is the question's subject matter.
	Type Type

	// Prompt is the localized question text.
	Prompt string

	// Options holds exactly 4 unique candidate answers in shuffled order.
	Options []string

	// CorrectAnswer is the right option. Always a member of Options.
	CorrectAnswer string
}

// TypeSet is the set of question types enabled for a quiz.
type TypeSet struct {
	Symbol   bool
	Category bool
	Property bool
}

// AllTypes enables every question type.
func AllTypes() TypeSet {
	return TypeSet{Symbol: true, Category: true, Property: true}
}

// Active resolves the enabled types. An empty set means every type,
// matching the "none selected defaults to all" behavior of the settings
// form.
func (ts TypeSet) Active() []Type {
	var active []Type
	if ts.Symbol {
		active = append(active, TypeSymbol)
	}
	if ts.Category {
		active = append(active, TypeCategory)
	}
	if ts.Property {
		active = append(active, TypeProperty)
	}
	if len(active) == 0 {
		return []Type{TypeSymbol, TypeCategory, TypeProperty}
	}
	return active
}

// Settings configures one quiz.
type Settings struct {
	// QuestionCount is the requested number of questions.
	QuestionCount int

	// Types selects which question types to generate.
	Types TypeSet

	// TimeLimit bounds the whole quiz. Zero means unbounded.
	TimeLimit time.Duration
}

// DefaultSettings mirrors the stock quiz configuration: 10 questions,
// every type enabled, no time limit.
func DefaultSettings() Settings {
	return Settings{
		QuestionCount: 10,
		Types:         AllTypes(),
	}
}
