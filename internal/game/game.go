package game

import (
	"context"
	"log/slog"
	"math/rand"
	"strings"
	"time"
	"unicode"

	"intellispell-go/internal/game/ranking"
)

// hintGrace is how long past the hint timeout a pending fetch may stay
// unanswered before the controller substitutes local hints itself
const hintGrace = 500 * time.Millisecond

// HintResult carries an async hint fetch back to the controller
type HintResult struct {
	token uint64
	Word  string
	Hints HintSet
}

type hintRequest struct {
	token    uint64
	word     string
	ch       chan HintResult
	cancel   context.CancelFunc
	deadline time.Time
}

type Option func(*Controller)

func WithClock(clock func() time.Time) Option {
	return func(c *Controller) { c.clock = clock }
}

func WithRand(rng *rand.Rand) Option {
	return func(c *Controller) { c.rng = rng }
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) { c.logger = logger }
}

func WithEventSink(sink func(GameEvent)) Option {
	return func(c *Controller) { c.sink = sink }
}

func WithID(id string) Option {
	return func(c *Controller) { c.ID = id }
}

// Controller is the phase machine of one single-player session. It is not
// safe for concurrent use; one goroutine (see Run) owns it.
type Controller struct {
	ID string

	settings Settings
	hints    HintProvider
	supply   *WordSupply
	session  *SessionState
	round    *RoundState

	phase    Phase
	name     []rune
	answer   string
	deadline time.Time

	pending   *hintRequest
	nextToken uint64
	version   uint64
	done      bool

	rng    *rand.Rand
	clock  func() time.Time
	logger *slog.Logger
	sink   func(GameEvent)
}

// NewController validates settings and deals the first deck. A nil provider
// means local hints only.
func NewController(settings Settings, hints HintProvider, opts ...Option) (*Controller, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	c := &Controller{
		settings: settings,
		hints:    hints,
		phase:    PhaseNameEntry,
		clock:    time.Now,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if c.hints == nil {
		c.hints = NewHintService(nil, settings.Rules.HintCount(), settings.HintTimeout, c.logger)
	}
	c.logger = c.logger.With("session_id", c.ID)

	c.supply = NewWordSupply(c.settings, c.rng)
	c.session = NewSessionState(settings.Rules.MaxFailedWords)

	return c, nil
}

// Handle applies one player command. Rejected input leaves state untouched.
func (c *Controller) Handle(ctx context.Context, cmd Command, now time.Time) error {
	var err error
	switch cmd.Type {
	case CommandChar:
		err = c.Char(cmd.Char)
	case CommandBackspace:
		err = c.Backspace()
	case CommandSubmit:
		_, err = c.Submit(ctx, now)
	case CommandRestart:
		c.Restart()
	case CommandQuit:
		c.Quit()
	default:
		err = ErrUnknownCommand
	}
	return err
}

func (c *Controller) Char(r rune) error {
	switch c.phase {
	case PhaseNameEntry:
		if !unicode.IsPrint(r) || len(c.name) >= c.settings.MaxNameLength {
			return ErrRejectedInput
		}
		c.name = append(c.name, r)
	case PhasePlaying:
		if err := c.round.AppendChar(r); err != nil {
			return err
		}
	default:
		return ErrWrongPhase
	}
	c.version++
	return nil
}

func (c *Controller) Backspace() error {
	switch c.phase {
	case PhaseNameEntry:
		if len(c.name) > 0 {
			c.name = c.name[:len(c.name)-1]
		}
	case PhasePlaying:
		if err := c.round.Backspace(); err != nil {
			return err
		}
	default:
		return ErrWrongPhase
	}
	c.version++
	return nil
}

// Submit confirms the name, evaluates the typed guess, or restarts after game
// over, depending on the phase. The result is only meaningful while playing.
func (c *Controller) Submit(ctx context.Context, now time.Time) (GuessResult, error) {
	switch c.phase {
	case PhaseNameEntry:
		name := strings.TrimSpace(string(c.name))
		if name == "" {
			return GuessResult{}, ErrRejectedInput
		}
		c.session.PlayerName = name
		c.emit(EventTypeSessionStarted, map[string]any{"player": name})
		c.startWord(ctx, now)
		return GuessResult{}, nil

	case PhasePlaying:
		return c.submitGuess(ctx, now)

	case PhaseGameOver:
		c.Restart()
		return GuessResult{}, nil
	}
	return GuessResult{}, ErrWrongPhase
}

func (c *Controller) submitGuess(ctx context.Context, now time.Time) (GuessResult, error) {
	guess := c.round.Typed()
	result, err := c.round.SubmitTyped()
	if err != nil {
		return result, err
	}
	c.version++

	word := c.round.Word()
	if result.Verdict == VerdictCorrect {
		c.session.RecordCorrect(c.settings.Rules.CorrectReward)
		c.emit(EventTypeAttemptSucceeded, map[string]any{
			"word":  word,
			"lives": result.LivesRemaining,
			"score": c.session.Score,
		})
		c.answer = word
		if c.settings.ShowCorrectFor == 0 {
			c.startWord(ctx, now)
		} else {
			c.enterTimed(PhaseShowCorrect, now.Add(c.settings.ShowCorrectFor))
		}
		return result, nil
	}

	c.emit(EventTypeAttemptFailed, map[string]any{
		"guess": guess,
		"lives": result.LivesRemaining,
	})
	if result.Exhausted {
		c.session.RecordFailure()
		c.emit(EventTypeWordExhausted, map[string]any{
			"word":         word,
			"failed_words": c.session.FailedWords,
		})
		c.answer = word
		if c.settings.ShowAnswerFor == 0 {
			c.afterAnswer(ctx, now)
		} else {
			c.enterTimed(PhaseShowAnswer, now.Add(c.settings.ShowAnswerFor))
		}
	}
	return result, nil
}

// Tick fires deadlines that have been reached by now
func (c *Controller) Tick(ctx context.Context, now time.Time) bool {
	changed := false

	if c.pending != nil && !now.Before(c.pending.deadline) {
		c.logger.Warn("hint fetch overdue, using local hints")
		c.ApplyHints(HintResult{
			token: c.pending.token,
			Word:  c.pending.word,
			Hints: c.hints.Fallback(c.pending.word),
		})
		changed = true
	}

	if c.phase.Timed() && !now.Before(c.deadline) {
		switch c.phase {
		case PhaseShowCorrect:
			c.startWord(ctx, now)
		case PhaseShowAnswer:
			c.afterAnswer(ctx, now)
		}
		changed = true
	}

	return changed
}

// ApplyHints installs the result of the pending fetch. Results that do not
// belong to it (stale, duplicate, or for a session since reset) are dropped.
func (c *Controller) ApplyHints(res HintResult) bool {
	if c.pending == nil || res.token != c.pending.token {
		c.logger.Debug("discarding stale hints", "word_length", len(res.Word))
		return false
	}
	c.pending.cancel()
	c.pending = nil

	hints := res.Hints
	if len(hints) == 0 {
		hints = c.hints.Fallback(res.Word)
	}
	if c.round == nil || !c.round.SetHints(hints) {
		return false
	}

	c.version++
	c.emit(EventTypeHintsReady, map[string]any{"count": len(hints)})
	return true
}

// PendingHints is nil unless an async fetch is outstanding, so it can sit in
// a select unconditionally
func (c *Controller) PendingHints() <-chan HintResult {
	if c.pending == nil {
		return nil
	}
	return c.pending.ch
}

// Restart abandons the session and returns to name entry with a fresh deck
func (c *Controller) Restart() {
	c.cancelPending()
	c.supply.Reset()
	c.session.Reset()
	c.round = nil
	c.name = nil
	c.answer = ""
	c.deadline = time.Time{}
	c.phase = PhaseNameEntry
	c.version++
	c.emit(EventTypeSessionReset, nil)
}

func (c *Controller) Quit() {
	c.cancelPending()
	c.done = true
}

func (c *Controller) Done() bool { return c.done }

func (c *Controller) Phase() Phase { return c.phase }

func (c *Controller) Session() SessionState { return *c.session }

// Round exposes the current round for inspection; nil outside a word
func (c *Controller) Round() *RoundState { return c.round }

// Version changes whenever the snapshot may have changed
func (c *Controller) Version() uint64 { return c.version }

func (c *Controller) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:          c.phase,
		PlayerName:     c.session.PlayerName,
		Score:          c.session.Score,
		FailedWords:    c.session.FailedWords,
		MaxFailedWords: c.session.MaxFailedWords,
		WordsSolved:    c.session.WordsSolved,
	}

	switch c.phase {
	case PhaseNameEntry:
		snap.PlayerName = string(c.name)
	case PhasePlaying:
		snap.Round = c.round.View()
	case PhaseShowCorrect, PhaseShowAnswer:
		snap.Answer = c.answer
		deadline := c.deadline
		snap.Deadline = &deadline
	case PhaseGameOver:
		snap.Answer = c.answer
		snap.Rank = ranking.GetRankByPoints(c.session.Score).Title
		snap.NextRankIn = ranking.WordsToNextRank(c.session.Score, c.settings.Rules.CorrectReward)
	}

	return snap
}

func (c *Controller) afterAnswer(ctx context.Context, now time.Time) {
	if c.session.IsOver() {
		c.gameOver()
		return
	}
	c.startWord(ctx, now)
}

func (c *Controller) gameOver() {
	c.cancelPending()
	c.phase = PhaseGameOver
	c.deadline = time.Time{}
	c.version++
	c.emit(EventTypeGameOver, map[string]any{
		"score":        c.session.Score,
		"words_solved": c.session.WordsSolved,
	})
	c.logger.Info("game over", "player", c.session.PlayerName, "score", c.session.Score)
}

func (c *Controller) enterTimed(phase Phase, deadline time.Time) {
	c.phase = phase
	c.deadline = deadline
	c.version++
}

func (c *Controller) startWord(ctx context.Context, now time.Time) {
	c.cancelPending()

	word := c.supply.Next()
	c.round = NewRoundState(word, c.settings.Rules, c.rng)
	c.phase = PhasePlaying
	c.answer = ""
	c.deadline = time.Time{}
	c.version++
	c.emit(EventTypeWordStarted, map[string]any{
		"word_length": len(word),
		"deck_left":   c.supply.Remaining(),
	})

	if !c.settings.AsyncHints {
		c.round.SetHints(c.hints.GetHints(ctx, word))
		return
	}

	c.nextToken++
	reqCtx, cancel := context.WithCancel(ctx)
	req := &hintRequest{
		token:    c.nextToken,
		word:     word,
		ch:       make(chan HintResult, 1),
		cancel:   cancel,
		deadline: now.Add(c.settings.HintTimeout + hintGrace),
	}
	c.pending = req

	provider := c.hints
	go func() {
		req.ch <- HintResult{token: req.token, Word: word, Hints: provider.GetHints(reqCtx, word)}
	}()
}

func (c *Controller) cancelPending() {
	if c.pending == nil {
		return
	}
	c.pending.cancel()
	c.pending = nil
}

func (c *Controller) emit(eventType EventType, payload map[string]any) {
	if c.sink == nil {
		return
	}
	c.sink(GameEvent{
		Type:      eventType,
		SessionID: c.ID,
		Timestamp: c.clock(),
		Payload:   payload,
	})
}
