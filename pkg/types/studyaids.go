// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Flashcard is a question/answer pair generated from the notes.
type Flashcard struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// QuizItem is a multiple-choice question. Answer holds the text of the
// correct option, not its index.
type QuizItem struct {
	Question string   `json:"question" yaml:"question"`
	Options  []string `json:"options" yaml:"options"`
	Answer   string   `json:"answer" yaml:"answer"`
}

// StudyAids is the bundle returned by the generative service for one
// document. All three slices are non-nil once the generator has
// normalised a response.
type StudyAids struct {
	// Topics lists the main topics in document order (5-7 requested).
	Topics []string `json:"topics" yaml:"topics"`

	// Flashcards lists the question/answer cards (5 requested).
	Flashcards []Flashcard `json:"flashcards" yaml:"flashcards"`

	// Quiz lists the multiple-choice questions (5 requested, 4 options each).
	Quiz []QuizItem `json:"quiz" yaml:"quiz"`
}

// RevisionEntry schedules one topic for review. ReviseOn is formatted
// as YYYY-MM-DD.
type RevisionEntry struct {
	Topic    string `json:"topic" yaml:"topic"`
	ReviseOn string `json:"revise_on" yaml:"revise_on"`
}

// DateLayout is the layout used for RevisionEntry.ReviseOn.
const DateLayout = "2006-01-02"
