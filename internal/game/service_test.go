package game

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartSession(t *testing.T) {
	service := NewGameService(testSettings("school"), nil, quietLogger())
	ctx := context.Background()

	ctrl, err := service.StartSession(ctx)
	require.NoError(t, err)
	assert.NotNil(t, ctrl)
	_, err = uuid.Parse(ctrl.ID)
	assert.NoError(t, err)
	assert.Equal(t, PhaseNameEntry, ctrl.Phase())

	other, err := service.StartSession(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, ctrl.ID, other.ID)
	assert.Equal(t, 2, service.ActiveSessions())

	require.NoError(t, service.EndSession(ctrl.ID))
	assert.Equal(t, 1, service.ActiveSessions())
	assert.ErrorIs(t, service.EndSession(ctrl.ID), ErrSessionNotFound)
}

func TestStartSessionInvalidSettings(t *testing.T) {
	service := NewGameService(testSettings(), nil, quietLogger())

	_, err := service.StartSession(context.Background())
	var cfgErr *ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, 0, service.ActiveSessions())
}

func TestServiceEvents(t *testing.T) {
	service := NewGameService(testSettings("school"), nil, quietLogger())
	ctrl, err := service.StartSession(context.Background())
	require.NoError(t, err)

	typeText(t, ctrl, "Ada")
	_, err = ctrl.Submit(context.Background(), time.Now())
	require.NoError(t, err)

	event := <-service.Events()
	assert.Equal(t, EventTypeSessionStarted, event.Type)
	assert.Equal(t, ctrl.ID, event.SessionID)
	assert.Equal(t, "Ada", event.Payload["player"])

	event = <-service.Events()
	assert.Equal(t, EventTypeWordStarted, event.Type)
	assert.Equal(t, 6, event.Payload["word_length"])
}

func TestServiceEventsNeverBlock(t *testing.T) {
	service := NewGameService(testSettings("school"), nil, quietLogger())
	ctrl, err := service.StartSession(context.Background())
	require.NoError(t, err)

	// nobody drains the channel; restarts must still return
	for i := 0; i < 500; i++ {
		ctrl.Restart()
	}
	assert.Len(t, service.Events(), cap(service.(*gameService).eventChan))
}
