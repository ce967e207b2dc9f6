package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/rocketscienceinc/gridgame-view/internal/apperror"
	"github.com/rocketscienceinc/gridgame-view/internal/render"
)

type handlers struct {
	logger     *slog.Logger
	controller viewController
}

func newHandlers(logger *slog.Logger, controller viewController) *handlers {
	return &handlers{
		logger:     logger,
		controller: controller,
	}
}

func (that *handlers) PageHandler(w http.ResponseWriter, _ *http.Request) {
	log := that.logger.With("method", "PageHandler")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")

	if err := render.HTML(w, that.controller.State()); err != nil {
		log.Error("failed to render page", "error", err)
	}
}

func (that *handlers) NewGameHandler(w http.ResponseWriter, r *http.Request) {
	that.controller.StartNewGame(detach(r))
	redirectHome(w, r)
}

func (that *handlers) UndoHandler(w http.ResponseWriter, r *http.Request) {
	that.controller.UndoMove(detach(r))
	redirectHome(w, r)
}

func (that *handlers) PlayHandler(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "PlayHandler")

	x, err := parseCoordinate(r, "x")
	if err != nil {
		log.Warn("rejected move", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	y, err := parseCoordinate(r, "y")
	if err != nil {
		log.Warn("rejected move", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	that.controller.MakeMove(detach(r), x, y)
	redirectHome(w, r)
}

func (that *handlers) StateHandler(w http.ResponseWriter, _ *http.Request) {
	log := that.logger.With("method", "StateHandler")

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(that.controller.State()); err != nil {
		log.Error("failed to encode state", "error", err)
	}
}

func parseCoordinate(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", apperror.ErrInvalidCoordinate, name, raw)
	}

	if value < 0 {
		return 0, fmt.Errorf("%w: %s=%d", apperror.ErrInvalidCoordinate, name, value)
	}

	return value, nil
}

// detach - game server requests run to completion even if the browser leaves.
func detach(r *http.Request) context.Context {
	return context.WithoutCancel(r.Context())
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
