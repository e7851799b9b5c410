package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runController(ctx context.Context, c *Controller, cmds <-chan Command) (<-chan Snapshot, <-chan error) {
	snaps := make(chan Snapshot, 100)
	done := make(chan error, 1)
	go func() {
		done <- c.Run(ctx, cmds, func(s Snapshot) error {
			snaps <- s
			return nil
		})
		close(snaps)
	}()
	return snaps, done
}

func TestRunPublishesOnChange(t *testing.T) {
	c := newTestController(t, testSettings("school"), schoolProvider())
	cmds := make(chan Command)
	snaps, done := runController(context.Background(), c, cmds)

	for _, r := range "Ada" {
		cmds <- Command{Type: CommandChar, Char: r}
	}
	cmds <- Command{Type: CommandSubmit}
	cmds <- Command{Type: CommandQuit}
	require.NoError(t, <-done)

	var got []Snapshot
	for s := range snaps {
		got = append(got, s)
	}
	require.Len(t, got, 5)
	assert.Equal(t, PhaseNameEntry, got[0].Phase)
	assert.Empty(t, got[0].PlayerName)
	assert.Equal(t, "Ad", got[2].PlayerName)

	last := got[len(got)-1]
	assert.Equal(t, PhasePlaying, last.Phase)
	assert.Equal(t, "Ada", last.PlayerName)
	require.NotNil(t, last.Round)
	assert.Equal(t, schoolHints[0], last.Round.Hint)
}

func TestRunStops(t *testing.T) {
	t.Run("closed input", func(t *testing.T) {
		c := newTestController(t, testSettings("school"), nil)
		cmds := make(chan Command)
		_, done := runController(context.Background(), c, cmds)

		close(cmds)
		assert.NoError(t, <-done)
	})

	t.Run("cancelled context", func(t *testing.T) {
		c := newTestController(t, testSettings("school"), nil)
		ctx, cancel := context.WithCancel(context.Background())
		_, done := runController(ctx, c, make(chan Command))

		cancel()
		assert.NoError(t, <-done)
	})

	t.Run("publish failure", func(t *testing.T) {
		c := newTestController(t, testSettings("school"), nil)
		errGone := errors.New("connection gone")

		err := c.Run(context.Background(), make(chan Command), func(Snapshot) error {
			return errGone
		})
		assert.ErrorIs(t, err, errGone)
	})
}

func TestRunAppliesAsyncHints(t *testing.T) {
	settings := testSettings("school")
	settings.AsyncHints = true
	provider := newGatedProvider(schoolHints)
	c := newTestController(t, settings, provider)

	ctx, cancel := context.WithCancel(context.Background())
	cmds := make(chan Command)
	snaps, done := runController(ctx, c, cmds)

	for _, r := range "Ada" {
		cmds <- Command{Type: CommandChar, Char: r}
	}
	cmds <- Command{Type: CommandSubmit}
	close(provider.release)

	timeout := time.After(5 * time.Second)
wait:
	for {
		select {
		case s := <-snaps:
			if s.Round != nil && !s.Round.AwaitingHints {
				assert.Equal(t, schoolHints[0], s.Round.Hint)
				break wait
			}
		case <-timeout:
			t.Error("hints never arrived")
			break wait
		}
	}

	cancel()
	assert.NoError(t, <-done)
}
