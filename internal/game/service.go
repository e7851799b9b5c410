package game

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

// GameService keeps track of live sessions. Each controller it hands out is
// owned by the caller's goroutine; the service only counts and observes.
type GameService interface {
	StartSession(ctx context.Context) (*Controller, error)
	EndSession(id string) error
	ActiveSessions() int
	Events() <-chan GameEvent
}

type gameService struct {
	settings  Settings
	hints     HintProvider
	logger    *slog.Logger
	eventChan chan GameEvent

	mu       sync.Mutex
	sessions map[string]*Controller
}

func NewGameService(settings Settings, hints HintProvider, logger *slog.Logger) GameService {
	if logger == nil {
		logger = slog.Default()
	}
	return &gameService{
		settings:  settings,
		hints:     hints,
		logger:    logger,
		eventChan: make(chan GameEvent, 100),
		sessions:  make(map[string]*Controller),
	}
}

func (s *gameService) StartSession(ctx context.Context) (*Controller, error) {
	id := uuid.New().String()

	ctrl, err := NewController(s.settings, s.hints,
		WithID(id),
		WithLogger(s.logger),
		WithEventSink(s.emitEvent),
	)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.sessions[id] = ctrl
	s.mu.Unlock()

	s.logger.DebugContext(ctx, "session registered", "session_id", id)
	return ctrl, nil
}

func (s *gameService) EndSession(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

func (s *gameService) ActiveSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// emitEvent never blocks a game loop; events are diagnostics and may be dropped
func (s *gameService) emitEvent(event GameEvent) {
	select {
	case s.eventChan <- event:
	default:
		s.logger.Debug("event dropped", "type", event.Type, "session_id", event.SessionID)
	}
}

func (s *gameService) Events() <-chan GameEvent {
	return s.eventChan
}
