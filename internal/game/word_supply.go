package game

import (
	"math/rand"
	"sort"

	"golang.org/x/exp/maps"
)

const (
	vowels     = "aeiou"
	consonants = "bcdfghjklmnpqrstvwxyz"

	// generation attempts allowed per requested word before settling for a smaller batch
	generateAttemptFactor = 64
)

// DeckState is the lifecycle of the deck
type DeckState int

const (
	DeckActive DeckState = iota
	DeckExhausted
)

func (s DeckState) String() string {
	if s == DeckExhausted {
		return "exhausted"
	}
	return "active"
}

// WordSupply owns the deck and hands out words without repeats until the
// deck runs dry, then refills it from a source that always exists
type WordSupply struct {
	curated      []string
	deck         []string
	state        DeckState
	last         string
	refills      int
	autoGenerate bool
	batch        int
	minLen       int
	maxLen       int
	rng          *rand.Rand
}

// NewWordSupply builds a shuffled deck from validated settings
func NewWordSupply(settings Settings, rng *rand.Rand) *WordSupply {
	s := &WordSupply{
		curated:      append([]string(nil), settings.Words...),
		autoGenerate: settings.AutoGenerate,
		batch:        settings.GeneratedBatch,
		minLen:       settings.GeneratedMinLen,
		maxLen:       settings.GeneratedMaxLen,
		rng:          rng,
	}
	s.Reset()
	return s
}

// Next pops a word, refilling first when the deck is exhausted
func (s *WordSupply) Next() string {
	if s.state == DeckExhausted {
		s.refill()
	}

	word := s.deck[len(s.deck)-1]
	s.deck = s.deck[:len(s.deck)-1]
	s.last = word
	if len(s.deck) == 0 {
		s.state = DeckExhausted
	}
	return word
}

// Reset discards the current deck and deals a fresh curated one
func (s *WordSupply) Reset() {
	s.deck = s.shuffled(s.curated)
	s.state = DeckActive
	s.last = ""
	s.refills = 0
}

func (s *WordSupply) State() DeckState { return s.state }
func (s *WordSupply) Remaining() int   { return len(s.deck) }
func (s *WordSupply) Refills() int     { return s.refills }

func (s *WordSupply) refill() {
	if s.autoGenerate {
		s.deck = s.generateBatch()
	} else {
		s.deck = s.shuffled(s.curated)
	}
	s.refills++

	// the word popped next sits at the end; keep it from echoing the previous one
	if n := len(s.deck); n > 1 && s.deck[n-1] == s.last {
		j := s.rng.Intn(n - 1)
		s.deck[n-1], s.deck[j] = s.deck[j], s.deck[n-1]
	}
	s.state = DeckActive
}

func (s *WordSupply) shuffled(words []string) []string {
	deck := append([]string(nil), words...)
	s.rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}

func (s *WordSupply) generateBatch() []string {
	seen := make(map[string]struct{}, s.batch)
	for attempts := 0; len(seen) < s.batch && attempts < s.batch*generateAttemptFactor; attempts++ {
		seen[s.generateWord()] = struct{}{}
	}

	words := maps.Keys(seen)
	sort.Strings(words)
	return s.shuffled(words)
}

// generateWord alternates consonants and vowels so the result is pronounceable
func (s *WordSupply) generateWord() string {
	length := s.minLen + s.rng.Intn(s.maxLen-s.minLen+1)
	startConsonant := s.rng.Intn(2) == 0

	w := make([]byte, length)
	for i := range w {
		useConsonant := (i%2 == 0) == startConsonant
		if useConsonant {
			w[i] = consonants[s.rng.Intn(len(consonants))]
		} else {
			w[i] = vowels[s.rng.Intn(len(vowels))]
		}
	}
	return string(w)
}
