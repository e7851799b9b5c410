package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"intellispell-go/config"
	"intellispell-go/internal/game"
	"intellispell-go/internal/infrastructure/aws"
	"intellispell-go/internal/infrastructure/aws/lambda"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	settings, err := cfg.GameSettings()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source, err := newHintSource(ctx, cfg)
	if err != nil {
		return err
	}
	if cfg.HintProvider == "openai" && cfg.OpenAIAPIKey == "" {
		logger.Warn("OPENAI_API_KEY is not set, every word will use local hints")
	}
	hints := game.NewHintService(source, settings.Rules.HintCount(), settings.HintTimeout, logger)

	service := game.NewGameService(settings, hints, logger)
	go logEvents(ctx, service.Events(), logger)

	handler := game.NewHandler(service, logger)
	srv := newServer(ctx, cfg.Port, handler.Routes())

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", srv.Addr, "mode", settings.Rules.Mode, "hints", cfg.HintProvider)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down", "timeout", cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// newServer ties every request context to ctx. Shutdown does not track
// hijacked websockets, so cancelling ctx is what ends their sessions.
func newServer(ctx context.Context, port int, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	}
	return slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
}

// newHintSource returns nil for "none", which makes every word use local hints
func newHintSource(ctx context.Context, cfg *config.Config) (game.HintSource, error) {
	switch cfg.HintProvider {
	case "openai":
		return game.NewOpenAISource(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL), nil
	case "static":
		return game.NewStaticSource(nil), nil
	case "lambda":
		awsCfg, err := aws.NewAWSConfig(ctx, cfg.AWSRegion)
		if err != nil {
			return nil, err
		}
		return lambda.NewHintSource(awsCfg.Lambda, cfg.HintLambdaFunction), nil
	}
	return nil, nil
}

func logEvents(ctx context.Context, events <-chan game.GameEvent, logger *slog.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-events:
			logger.Debug("game event",
				"type", event.Type,
				"session_id", event.SessionID,
				"payload", event.Payload,
			)
		}
	}
}
