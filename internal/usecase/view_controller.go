package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rocketscienceinc/gridgame-view/internal/entity"
	"github.com/rocketscienceinc/gridgame-view/internal/repository"
)

type gameServerDep interface {
	NewGame(ctx context.Context) (*entity.Snapshot, error)
	Undo(ctx context.Context) (*entity.Snapshot, error)
	Play(ctx context.Context, x, y int) (*entity.Snapshot, error)
}

type viewStateRepoDep interface {
	Save(ctx context.Context, state *entity.ViewState) error
	GetBySessionID(ctx context.Context, sessionID string) (*entity.ViewState, error)
}

// Listener receives every newly applied view state, in apply order. It must
// not call back into the controller.
type Listener func(state entity.ViewState)

type Option func(*ViewController)

// WithStore persists each applied view state.
func WithStore(store viewStateRepoDep) Option {
	return func(that *ViewController) {
		that.store = store
	}
}

// WithResume makes Initialize restore a stored view state instead of
// starting a new game. It has no effect without a store.
func WithResume(resume bool) Option {
	return func(that *ViewController) {
		that.resume = resume
	}
}

func WithClock(now func() time.Time) Option {
	return func(that *ViewController) {
		that.now = now
	}
}

// ViewController owns the view state and mirrors the game server into it.
// Operations never return errors: failures are logged and leave the state as
// it was.
type ViewController struct {
	logger     *slog.Logger
	gameServer gameServerDep
	store      viewStateRepoDep
	resume     bool
	now        func() time.Time

	initOnce sync.Once
	issued   atomic.Uint64

	mu        sync.RWMutex
	state     entity.ViewState
	listeners []Listener

	// deliverMu serializes persistence and listeners; delivered is the seq
	// of the last state handed to them.
	deliverMu sync.Mutex
	delivered uint64
}

func NewViewController(logger *slog.Logger, sessionID string, gameServer gameServerDep, opts ...Option) *ViewController {
	controller := &ViewController{
		logger:     logger.With("component", "view_controller", "session_id", sessionID),
		gameServer: gameServer,
		now:        time.Now,
		state:      entity.NewViewState(sessionID),
	}

	for _, opt := range opts {
		opt(controller)
	}

	return controller
}

// Initialize - populates the first snapshot. Only the first call does any work.
func (that *ViewController) Initialize(ctx context.Context) {
	that.initOnce.Do(func() {
		if that.resume && that.restore(ctx) {
			return
		}

		that.StartNewGame(ctx)
	})
}

func (that *ViewController) StartNewGame(ctx context.Context) {
	that.run(ctx, "StartNewGame", that.gameServer.NewGame)
}

func (that *ViewController) UndoMove(ctx context.Context) {
	that.run(ctx, "UndoMove", that.gameServer.Undo)
}

// MakeMove - sends a move for (x, y). Whether the cell is playable is for the
// game server to decide.
func (that *ViewController) MakeMove(ctx context.Context, x, y int) {
	that.run(ctx, "MakeMove", func(ctx context.Context) (*entity.Snapshot, error) {
		return that.gameServer.Play(ctx, x, y)
	}, "x", x, "y", y)
}

// State - returns a copy of the current view state.
func (that *ViewController) State() entity.ViewState {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.state.Clone()
}

func (that *ViewController) Subscribe(listener Listener) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.listeners = append(that.listeners, listener)
}

func (that *ViewController) run(
	ctx context.Context,
	method string,
	fetch func(ctx context.Context) (*entity.Snapshot, error),
	attrs ...any,
) {
	seq := that.issued.Add(1)
	log := that.logger.With(append([]any{"method", method, "seq", seq}, attrs...)...)

	snapshot, err := fetch(ctx)
	if err != nil {
		log.Error("game server request failed", "error", err)
		return
	}

	state, applied := that.apply(seq, snapshot)
	if !applied {
		log.Debug("stale snapshot discarded", "applied_seq", state.Seq)
		return
	}

	log.Info("snapshot applied", "cells", len(state.Snapshot.Cells), "instructions", state.Snapshot.Instructions)

	that.deliver(ctx, log, state, true)
}

// apply - replaces the view state unless a newer request already did.
func (that *ViewController) apply(seq uint64, snapshot *entity.Snapshot) (entity.ViewState, bool) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if seq < that.state.Seq {
		return that.state.Clone(), false
	}

	that.state = entity.ViewState{
		SessionID: that.state.SessionID,
		Seq:       seq,
		Snapshot:  snapshot.Clone(),
		UpdatedAt: that.now(),
	}

	return that.state.Clone(), true
}

// deliver - persists and publishes state unless a newer one was applied or
// delivered in the meantime.
func (that *ViewController) deliver(ctx context.Context, log *slog.Logger, state entity.ViewState, persist bool) {
	that.deliverMu.Lock()
	defer that.deliverMu.Unlock()

	if state.Seq <= that.delivered || state.Seq < that.appliedSeq() {
		log.Debug("superseded view state not delivered", "delivered_seq", that.delivered)
		return
	}

	if persist && that.store != nil {
		if err := that.store.Save(ctx, &state); err != nil {
			log.Error("failed to persist view state", "error", err)
		}
	}

	that.notify(state)
	that.delivered = state.Seq
}

func (that *ViewController) appliedSeq() uint64 {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.state.Seq
}

// restore - applies the stored view state for this session, if any.
func (that *ViewController) restore(ctx context.Context) bool {
	log := that.logger.With("method", "restore")

	if that.store == nil {
		return false
	}

	sessionID := that.State().SessionID

	stored, err := that.store.GetBySessionID(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, repository.ErrViewStateNotFound) {
			log.Error("failed to load view state", "error", fmt.Errorf("session %s: %w", sessionID, err))
		}
		return false
	}

	seq := that.issued.Add(1)

	state, applied := that.apply(seq, &stored.Snapshot)
	if !applied {
		return true
	}

	log.Info("view state restored", "stored_seq", stored.Seq, "cells", len(state.Snapshot.Cells))

	that.deliver(ctx, log, state, false)

	return true
}

// notify - runs listeners outside the state lock.
func (that *ViewController) notify(state entity.ViewState) {
	that.mu.RLock()
	listeners := make([]Listener, len(that.listeners))
	copy(listeners, that.listeners)
	that.mu.RUnlock()

	for _, listener := range listeners {
		listener(state.Clone())
	}
}
