package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// HintSource produces raw hint text, one "Hint <n>: ..." line per hint
type HintSource interface {
	FetchHints(ctx context.Context, word string, count int) (string, error)
}

// HintProvider never fails: it always returns a full hint set for the word
type HintProvider interface {
	GetHints(ctx context.Context, word string) HintSet
	Fallback(word string) HintSet
}

var hintLine = regexp.MustCompile(`^Hint (\d+): (.+)$`)

type hintService struct {
	source  HintSource
	count   int
	timeout time.Duration
	logger  *slog.Logger
}

// NewHintService wraps source; a nil source always yields the local fallback
func NewHintService(source HintSource, count int, timeout time.Duration, logger *slog.Logger) HintProvider {
	if logger == nil {
		logger = slog.Default()
	}
	return &hintService{
		source:  source,
		count:   count,
		timeout: timeout,
		logger:  logger,
	}
}

func (s *hintService) GetHints(ctx context.Context, word string) (hints HintSet) {
	if s.source == nil {
		return s.Fallback(word)
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("hint source panicked", "word_length", len(word), "panic", r)
			hints = s.Fallback(word)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.source.FetchHints(ctx, word, s.count)
	if err == nil {
		hints, err = ParseHints(text, s.count)
	}
	if err != nil {
		level := slog.LevelWarn
		if errors.Is(err, context.Canceled) {
			level = slog.LevelDebug
		}
		s.logger.Log(ctx, level, "using local hints", "error", err)
		return s.Fallback(word)
	}

	return hints
}

// Fallback derives clues from the word's letters alone, never the word itself
func (s *hintService) Fallback(word string) HintSet {
	hints := LocalHints(word)
	if s.count > 0 && s.count < len(hints) {
		hints = hints[:s.count]
	}
	return hints
}

// LocalHints returns exactly three deterministic clues built from letter facts
func LocalHints(word string) HintSet {
	word = strings.ToLower(word)
	if word == "" {
		return HintSet{"No clue available.", "No clue available.", "No clue available."}
	}

	vowelCount := 0
	for _, r := range word {
		if strings.ContainsRune(vowels, r) {
			vowelCount++
		}
	}

	return HintSet{
		fmt.Sprintf("This word has %d letters.", len(word)),
		fmt.Sprintf("It starts with '%c' and has %d vowel(s).", word[0], vowelCount),
		fmt.Sprintf("It ends with '%c'.", word[len(word)-1]),
	}
}

// ParseHints accepts only sequentially numbered "Hint <n>: " lines, exactly count of them
func ParseHints(text string, count int) (HintSet, error) {
	var hints HintSet
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		m := hintLine.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("%w: unexpected line %q", ErrMalformedResponse, line)
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n != len(hints)+1 {
			return nil, fmt.Errorf("%w: hint numbered %s out of order", ErrMalformedResponse, m[1])
		}
		clue := strings.TrimSpace(m[2])
		if clue == "" {
			return nil, fmt.Errorf("%w: hint %d is empty", ErrMalformedResponse, n)
		}
		hints = append(hints, clue)
	}

	if len(hints) != count {
		return nil, fmt.Errorf("%w: got %d hints, want %d", ErrMalformedResponse, len(hints), count)
	}
	return hints, nil
}

// FormatHints renders clues in the line convention ParseHints accepts
func FormatHints(hints []string) string {
	lines := make([]string, len(hints))
	for i, h := range hints {
		lines[i] = fmt.Sprintf("Hint %d: %s", i+1, h)
	}
	return strings.Join(lines, "\n")
}
