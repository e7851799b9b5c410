package game

import (
	"time"
)

// Phase is the top-level mode of the game loop
type Phase string

const (
	PhaseNameEntry   Phase = "NAME_ENTRY"
	PhasePlaying     Phase = "PLAYING"
	PhaseShowCorrect Phase = "SHOW_CORRECT"
	PhaseShowAnswer  Phase = "SHOW_ANSWER"
	PhaseGameOver    Phase = "GAME_OVER"
)

func (p Phase) String() string {
	return string(p)
}

// Timed reports whether the phase ends on its own once a deadline passes
func (p Phase) Timed() bool {
	return p == PhaseShowCorrect || p == PhaseShowAnswer
}

// EventType represents different types of game events
type EventType string

const (
	EventTypeSessionStarted   EventType = "session_started"
	EventTypeWordStarted      EventType = "word_started"
	EventTypeHintsReady       EventType = "hints_ready"
	EventTypeAttemptSucceeded EventType = "attempt_succeeded"
	EventTypeAttemptFailed    EventType = "attempt_failed"
	EventTypeWordExhausted    EventType = "word_exhausted"
	EventTypeGameOver         EventType = "game_over"
	EventTypeSessionReset     EventType = "session_reset"
)

// GameEvent represents an event that occurred during a session
type GameEvent struct {
	Type      EventType      `json:"type"`
	SessionID string         `json:"session_id"`
	Timestamp time.Time      `json:"timestamp"`
	Payload   map[string]any `json:"payload,omitempty"`
}

// CommandType is the small input alphabet the engine accepts
type CommandType string

const (
	CommandChar      CommandType = "char"
	CommandBackspace CommandType = "backspace"
	CommandSubmit    CommandType = "submit"
	CommandRestart   CommandType = "restart"
	CommandQuit      CommandType = "quit"
)

// Command is one player input
type Command struct {
	Type CommandType
	Char rune
}

// HintSet is the ordered list of clues for one word, index 0 shown first
type HintSet []string

// Verdict is the outcome of a submitted guess
type Verdict int

const (
	VerdictCorrect Verdict = iota + 1
	VerdictIncorrect
)

func (v Verdict) String() string {
	switch v {
	case VerdictCorrect:
		return "correct"
	case VerdictIncorrect:
		return "incorrect"
	}
	return "unknown"
}

// GuessResult is returned for every evaluated submission
type GuessResult struct {
	Verdict        Verdict `json:"verdict"`
	Exhausted      bool    `json:"exhausted"`
	LivesRemaining int     `json:"lives_remaining"`
}

// RoundView is the read-only projection of the current word
type RoundView struct {
	Masked         string `json:"masked"`
	WordLength     int    `json:"word_length"`
	LivesRemaining int    `json:"lives_remaining"`
	Hint           string `json:"hint,omitempty"`
	HintNumber     int    `json:"hint_number"`
	HintCount      int    `json:"hint_count"`
	Typed          string `json:"typed"`
	AwaitingHints  bool   `json:"awaiting_hints"`
}

// Snapshot is everything a presentation layer needs to draw one frame
type Snapshot struct {
	Phase          Phase      `json:"phase"`
	PlayerName     string     `json:"player_name"`
	Score          int        `json:"score"`
	FailedWords    int        `json:"failed_words"`
	MaxFailedWords int        `json:"max_failed_words"`
	WordsSolved    int        `json:"words_solved"`
	Round          *RoundView `json:"round,omitempty"`
	Answer         string     `json:"answer,omitempty"`
	Deadline       *time.Time `json:"deadline,omitempty"`
	Rank           string     `json:"rank,omitempty"`
	NextRankIn     int        `json:"next_rank_in,omitempty"`
}
