package game

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/tomasen/realip"
)

// maxFrameSize bounds one inbound websocket frame
const maxFrameSize = 512

// CommandMessage is one inbound websocket frame
type CommandMessage struct {
	Type string `json:"type" validate:"required,oneof=char backspace submit restart quit"`
	Char string `json:"char,omitempty" validate:"max=1"`
}

type Handler struct {
	service  GameService
	upgrader websocket.Upgrader
	validate *validator.Validate
	logger   *slog.Logger
}

func NewHandler(service GameService, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// the play client is served from anywhere during local play
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

// ParseCommand validates a frame and turns it into a controller command
func (h *Handler) ParseCommand(msg CommandMessage) (Command, error) {
	if err := h.validate.Struct(msg); err != nil {
		return Command{}, fmt.Errorf("%w: %v", ErrUnknownCommand, err)
	}

	cmd := Command{Type: CommandType(msg.Type)}
	if cmd.Type == CommandChar {
		runes := []rune(msg.Char)
		if len(runes) != 1 {
			return Command{}, ErrRejectedInput
		}
		cmd.Char = runes[0]
	}
	return cmd, nil
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(map[string]any{
		"ok":       true,
		"sessions": h.service.ActiveSessions(),
	})
	if err != nil {
		h.logger.Debug("failed to write health response", "error", err)
	}
}

// Play binds one websocket connection to one new session for its lifetime
func (h *Handler) Play(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "remote", realip.FromRequest(r), "error", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxFrameSize)

	ctrl, err := h.service.StartSession(r.Context())
	if err != nil {
		h.logger.Error("failed to start session", "error", err)
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "session unavailable"))
		return
	}
	defer h.service.EndSession(ctrl.ID)

	logger := h.logger.With("session_id", ctrl.ID)
	logger.Info("session opened", "remote", realip.FromRequest(r))

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	cmds := make(chan Command)
	go h.readCommands(ctx, conn, cmds, logger)

	err = ctrl.Run(ctx, cmds, func(snap Snapshot) error {
		data, err := json.Marshal(snap)
		if err != nil {
			return fmt.Errorf("failed to encode snapshot: %w", err)
		}
		return conn.WriteMessage(websocket.TextMessage, data)
	})
	if err != nil {
		logger.Warn("session ended with error", "error", err)
		return
	}

	conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye"))
	logger.Info("session closed", "score", ctrl.Session().Score)
}

func (h *Handler) readCommands(ctx context.Context, conn *websocket.Conn, cmds chan<- Command, logger *slog.Logger) {
	defer close(cmds)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var msg CommandMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			logger.Debug("undecodable frame", "error", err)
			continue
		}
		cmd, err := h.ParseCommand(msg)
		if err != nil {
			logger.Debug("invalid command", "type", msg.Type, "error", err)
			continue
		}

		select {
		case cmds <- cmd:
		case <-ctx.Done():
			return
		}
	}
}

func (h *Handler) Routes() *httprouter.Router {
	router := httprouter.New()

	router.GET("/health", h.Health)
	router.GET("/play", h.Play)

	return router
}
