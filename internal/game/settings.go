package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"

	"intellispell-go/internal/game/modes"
)

// DefaultWords is the curated base pool
var DefaultWords = []string{
	"school", "pencil", "teacher", "planet", "forest", "garden", "friend",
	"python", "robot", "future", "science", "energy", "library", "picture",
	"student", "computer", "keyboard", "battery", "language", "festival",
	"history", "morning", "evening", "reading", "writing", "respect",
	"courage", "holiday", "practice", "creative", "learning", "technology",
	"curiosity", "imagination", "celebrate", "together", "solution", "problem",
}

const (
	DefaultGeneratedBatch  = 60
	DefaultGeneratedMinLen = 5
	DefaultGeneratedMaxLen = 9
	DefaultShowDuration    = 2 * time.Second
	DefaultMaxNameLength   = 18
	DefaultTickInterval    = 33 * time.Millisecond
	DefaultHintTimeout     = 10 * time.Second
)

// Settings is the configuration surface of one session
type Settings struct {
	Rules modes.Rules

	Words           []string
	AutoGenerate    bool
	GeneratedBatch  int
	GeneratedMinLen int
	GeneratedMaxLen int

	ShowCorrectFor time.Duration
	ShowAnswerFor  time.Duration
	MaxNameLength  int
	TickInterval   time.Duration

	AsyncHints  bool
	HintTimeout time.Duration
}

// DefaultSettings returns the settings of the classic game
func DefaultSettings() Settings {
	return Settings{
		Rules:           modes.DefaultRules(modes.ModeClassic),
		Words:           append([]string(nil), DefaultWords...),
		AutoGenerate:    true,
		GeneratedBatch:  DefaultGeneratedBatch,
		GeneratedMinLen: DefaultGeneratedMinLen,
		GeneratedMaxLen: DefaultGeneratedMaxLen,
		ShowCorrectFor:  DefaultShowDuration,
		ShowAnswerFor:   DefaultShowDuration,
		MaxNameLength:   DefaultMaxNameLength,
		TickInterval:    DefaultTickInterval,
		AsyncHints:      true,
		HintTimeout:     DefaultHintTimeout,
	}
}

// Validate normalizes the word list in place and reports the first
// configuration problem as a *ConfigurationError
func (s *Settings) Validate() error {
	if err := modes.ValidateRules(s.Rules); err != nil {
		return &ConfigurationError{Field: "rules", Reason: err.Error()}
	}

	words := lo.Uniq(lo.Map(s.Words, func(w string, _ int) string {
		return strings.ToLower(strings.TrimSpace(w))
	}))
	if len(words) == 0 {
		return &ConfigurationError{Field: "words", Reason: "word list is empty"}
	}
	for _, w := range words {
		if !isWord(w) {
			return &ConfigurationError{Field: "words", Reason: fmt.Sprintf("%q is not a lowercase letter word", w)}
		}
	}
	s.Words = words

	if s.AutoGenerate {
		if s.GeneratedBatch < 1 {
			return &ConfigurationError{Field: "generated_batch", Reason: "must be at least 1"}
		}
		if s.GeneratedMinLen < 1 || s.GeneratedMaxLen < s.GeneratedMinLen {
			return &ConfigurationError{
				Field:  "generated_length",
				Reason: fmt.Sprintf("range %d-%d is invalid", s.GeneratedMinLen, s.GeneratedMaxLen),
			}
		}
	}

	if s.ShowCorrectFor < 0 || s.ShowAnswerFor < 0 {
		return &ConfigurationError{Field: "show_duration", Reason: "must not be negative"}
	}
	if s.MaxNameLength < 1 {
		return &ConfigurationError{Field: "max_name_length", Reason: "must be at least 1"}
	}
	if s.TickInterval <= 0 {
		return &ConfigurationError{Field: "tick_interval", Reason: "must be positive"}
	}
	if s.HintTimeout <= 0 {
		return &ConfigurationError{Field: "hint_timeout", Reason: "must be positive"}
	}

	return nil
}

func isWord(w string) bool {
	if w == "" {
		return false
	}
	for _, r := range w {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
