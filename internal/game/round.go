package game

import (
	"math/rand"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"intellispell-go/internal/game/modes"
)

const maskGlyph = "_"

// maxTypedFactor caps a typed guess at this many times the word length
const maxTypedFactor = 2

// RoundState tracks one word from its first hint until it is solved or exhausted
type RoundState struct {
	word      string
	lives     int
	revealed  []bool
	policy    modes.RevealPolicy
	hints     HintSet
	hintIndex int
	hintCount int
	typed     []rune
	awaiting  bool
	finished  bool
	rng       *rand.Rand
	lower     cases.Caser
}

// NewRoundState starts a word with no hints yet; SetHints makes it playable
func NewRoundState(word string, rules modes.Rules, rng *rand.Rand) *RoundState {
	return &RoundState{
		word:      word,
		lives:     rules.LivesPerWord,
		revealed:  make([]bool, len(word)),
		policy:    rules.Reveal,
		hintCount: rules.HintCount(),
		awaiting:  true,
		rng:       rng,
		lower:     cases.Lower(language.Und),
	}
}

// SetHints fills the hint set once; later calls are ignored
func (r *RoundState) SetHints(hints HintSet) bool {
	if !r.awaiting || len(hints) == 0 {
		return false
	}
	r.hints = append(HintSet(nil), hints...)
	r.hintIndex = 0
	r.awaiting = false
	return true
}

// Submit evaluates a guess against the current word
func (r *RoundState) Submit(raw string) (GuessResult, error) {
	if r.finished {
		return GuessResult{}, ErrRoundFinished
	}
	if r.awaiting {
		return GuessResult{}, ErrHintsPending
	}

	guess := r.lower.String(strings.TrimSpace(raw))
	r.typed = r.typed[:0]

	if guess == r.word {
		r.finished = true
		return GuessResult{Verdict: VerdictCorrect, LivesRemaining: r.lives}, nil
	}

	r.lives--
	r.revealNext()
	if r.hintIndex < len(r.hints)-1 {
		r.hintIndex++
	}

	result := GuessResult{Verdict: VerdictIncorrect, LivesRemaining: r.lives}
	if r.lives == 0 {
		r.finished = true
		result.Exhausted = true
	}
	return result, nil
}

// SubmitTyped submits whatever the player has typed so far
func (r *RoundState) SubmitTyped() (GuessResult, error) {
	return r.Submit(string(r.typed))
}

// AppendChar accepts letters only, stored lower-case, up to twice the word
// length
func (r *RoundState) AppendChar(c rune) error {
	if r.finished {
		return ErrRoundFinished
	}
	if r.awaiting {
		return ErrHintsPending
	}
	if !unicode.IsLetter(c) || len(r.typed) >= maxTypedFactor*len(r.word) {
		return ErrRejectedInput
	}
	r.typed = append(r.typed, []rune(r.lower.String(string(c)))...)
	return nil
}

func (r *RoundState) Backspace() error {
	if r.finished {
		return ErrRoundFinished
	}
	if r.awaiting {
		return ErrHintsPending
	}
	if len(r.typed) > 0 {
		r.typed = r.typed[:len(r.typed)-1]
	}
	return nil
}

func (r *RoundState) revealNext() {
	var hidden []int
	for i, shown := range r.revealed {
		if !shown {
			hidden = append(hidden, i)
		}
	}
	if len(hidden) == 0 {
		return
	}

	switch r.policy {
	case modes.RevealSequential:
		r.revealed[hidden[0]] = true
	case modes.RevealRandom:
		r.revealed[hidden[r.rng.Intn(len(hidden))]] = true
	}
}

// Masked shows revealed letters and a placeholder elsewhere, space separated
func (r *RoundState) Masked() string {
	glyphs := make([]string, len(r.word))
	for i := range r.word {
		if r.revealed[i] {
			glyphs[i] = r.word[i : i+1]
		} else {
			glyphs[i] = maskGlyph
		}
	}
	return strings.Join(glyphs, " ")
}

// Hint returns the clue currently shown, empty while hints are pending
func (r *RoundState) Hint() string {
	if len(r.hints) == 0 {
		return ""
	}
	return r.hints[r.hintIndex]
}

func (r *RoundState) RevealedCount() int {
	n := 0
	for _, shown := range r.revealed {
		if shown {
			n++
		}
	}
	return n
}

func (r *RoundState) Word() string        { return r.word }
func (r *RoundState) Lives() int          { return r.lives }
func (r *RoundState) HintIndex() int      { return r.hintIndex }
func (r *RoundState) Hints() HintSet      { return append(HintSet(nil), r.hints...) }
func (r *RoundState) Typed() string       { return string(r.typed) }
func (r *RoundState) AwaitingHints() bool { return r.awaiting }
func (r *RoundState) Finished() bool      { return r.finished }

// View projects the round for a presentation layer
func (r *RoundState) View() *RoundView {
	view := &RoundView{
		Masked:         r.Masked(),
		WordLength:     len(r.word),
		LivesRemaining: r.lives,
		Hint:           r.Hint(),
		HintCount:      len(r.hints),
		Typed:          r.Typed(),
		AwaitingHints:  r.awaiting,
	}
	if !r.awaiting {
		view.HintNumber = r.hintIndex + 1
	} else {
		view.HintCount = r.hintCount
	}
	return view
}
