package modes

import (
	"fmt"
)

// GameMode names a preset combination of reveal policy and hint style
type GameMode string

const (
	ModeClassic   GameMode = "classic"    // progressive clues, letters revealed left to right
	ModeCluesOnly GameMode = "clues_only" // progressive clues, nothing revealed
	ModeMystery   GameMode = "mystery"    // a single clue, letters revealed at random
)

// RevealPolicy decides which letter becomes visible after a failed guess
type RevealPolicy string

const (
	RevealSequential RevealPolicy = "sequential"
	RevealRandom     RevealPolicy = "random"
	RevealNone       RevealPolicy = "none"
)

// HintStyle decides how many hints a word carries
type HintStyle string

const (
	HintsProgressive HintStyle = "progressive"
	HintsSingle      HintStyle = "single"
)

const (
	DefaultLivesPerWord   = 3
	DefaultMaxFailedWords = 5
	DefaultCorrectReward  = 10
)

// Rules represents the scoring and progression configuration of a session
type Rules struct {
	Mode           GameMode     `json:"mode"`
	Reveal         RevealPolicy `json:"reveal"`
	Hints          HintStyle    `json:"hints"`
	LivesPerWord   int          `json:"lives_per_word"`
	MaxFailedWords int          `json:"max_failed_words"`
	CorrectReward  int          `json:"correct_reward"`
}

// HintCount returns the number of hints a word carries under these rules
func (r Rules) HintCount() int {
	if r.Hints == HintsSingle {
		return 1
	}
	return 3
}

// DefaultRules returns default rules for each game mode
func DefaultRules(mode GameMode) Rules {
	base := Rules{
		Mode:           mode,
		LivesPerWord:   DefaultLivesPerWord,
		MaxFailedWords: DefaultMaxFailedWords,
		CorrectReward:  DefaultCorrectReward,
	}

	switch mode {
	case ModeCluesOnly:
		base.Reveal = RevealNone
		base.Hints = HintsProgressive

	case ModeMystery:
		base.Reveal = RevealRandom
		base.Hints = HintsSingle

	default:
		base.Mode = ModeClassic
		base.Reveal = RevealSequential
		base.Hints = HintsProgressive
	}

	return base
}

// ParseMode resolves a configured mode name
func ParseMode(s string) (GameMode, error) {
	switch GameMode(s) {
	case ModeClassic, ModeCluesOnly, ModeMystery:
		return GameMode(s), nil
	case "":
		return ModeClassic, nil
	}
	return "", fmt.Errorf("unknown game mode %q", s)
}

// ValidateRules validates game rules
func ValidateRules(rules Rules) error {
	switch rules.Reveal {
	case RevealSequential, RevealRandom, RevealNone:
	default:
		return fmt.Errorf("unknown reveal policy %q", rules.Reveal)
	}

	switch rules.Hints {
	case HintsProgressive, HintsSingle:
	default:
		return fmt.Errorf("unknown hint style %q", rules.Hints)
	}

	if rules.LivesPerWord < 1 {
		return fmt.Errorf("lives per word must be at least 1")
	}
	if rules.MaxFailedWords < 1 {
		return fmt.Errorf("max failed words must be at least 1")
	}
	if rules.CorrectReward < 0 {
		return fmt.Errorf("correct reward must not be negative")
	}

	return nil
}
