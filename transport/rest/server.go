package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/rocketscienceinc/gridgame-view/internal/entity"
)

const (
	shutdownTimeout = 5 * time.Second
	responseTimeout = 10 * time.Second
)

type viewController interface {
	StartNewGame(ctx context.Context)
	UndoMove(ctx context.Context)
	MakeMove(ctx context.Context, x, y int)
	State() entity.ViewState
}

type Server struct {
	logger  *slog.Logger
	handler http.Handler
}

// New - wires the view routes. live serves the websocket endpoint and may be nil.
func New(logger *slog.Logger, controller viewController, live http.Handler) *Server {
	logger = logger.With("component", "rest")

	h := newHandlers(logger, controller)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.PageHandler)
	mux.HandleFunc("GET /newgame", h.NewGameHandler)
	mux.HandleFunc("GET /undo", h.UndoHandler)
	mux.HandleFunc("GET /play", h.PlayHandler)
	mux.HandleFunc("GET /state", h.StateHandler)
	mux.HandleFunc("GET /ping", PingHandler)

	if live != nil {
		mux.Handle("GET /ws", live)
	}

	return &Server{
		logger:  logger,
		handler: mux,
	}
}

func (that *Server) Handler() http.Handler {
	return that.handler
}

// Start - serves until ctx is canceled, then shuts down gracefully.
// requestTimeout is the game server request timeout; actions wait for the game
// server before redirecting, so the write timeout covers it.
func (that *Server) Start(ctx context.Context, port string, requestTimeout time.Duration) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: writeTimeout(requestTimeout),
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
		that.logger.Info("shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
		return nil
	}
}

// writeTimeout - zero (no limit) when game server requests have no timeout.
func writeTimeout(requestTimeout time.Duration) time.Duration {
	if requestTimeout <= 0 {
		return 0
	}

	return requestTimeout + responseTimeout
}
