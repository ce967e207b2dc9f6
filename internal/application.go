package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/gridgame-view/internal/config"
	"github.com/rocketscienceinc/gridgame-view/internal/gameserver"
	"github.com/rocketscienceinc/gridgame-view/internal/repository"
	"github.com/rocketscienceinc/gridgame-view/internal/repository/storage"
	"github.com/rocketscienceinc/gridgame-view/internal/usecase"
	"github.com/rocketscienceinc/gridgame-view/transport/rest"
	"github.com/rocketscienceinc/gridgame-view/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	gameClient, err := gameserver.New(logger, conf.GameServer.BaseURL, conf.GameServer.RequestTimeout)
	if err != nil {
		return fmt.Errorf("could not create game server client: %w", err)
	}

	sessionID := conf.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	opts := []usecase.Option{usecase.WithResume(conf.ResumeOnStart)}

	if conf.Redis.Enabled {
		if conf.Redis.Host == "" {
			return ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		opts = append(opts, usecase.WithStore(repository.NewViewStateRepository(redisStorage.Connection)))
	}

	controller := usecase.NewViewController(logger, sessionID, gameClient, opts...)

	wsServer := websocket.New(logger, controller)
	controller.Subscribe(wsServer.Broadcast)

	httpServer := rest.New(logger, controller, wsServer)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort, "session_id", sessionID)
		httpErrCh <- httpServer.Start(ctx, conf.HTTPPort, conf.GameServer.RequestTimeout)
	}()

	go controller.Initialize(ctx)

	select {
	case err = <-httpErrCh:
		if err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		if err = <-httpErrCh; err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	}
}
