package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/gridgame-view/internal/entity"
)

var ErrViewStateNotFound = errors.New("view state not found")

type ViewStateRepository interface {
	Save(ctx context.Context, state *entity.ViewState) error
	GetBySessionID(ctx context.Context, sessionID string) (*entity.ViewState, error)
	DeleteBySessionID(ctx context.Context, sessionID string) error
}

type dbViewState struct {
	client *redis.Client
}

func NewViewStateRepository(client *redis.Client) ViewStateRepository {
	return &dbViewState{
		client: client,
	}
}

func (that *dbViewState) Save(ctx context.Context, state *entity.ViewState) error {
	stateJSON, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("could not marshal view state: %w", err)
	}

	err = that.client.Set(ctx, viewKey(state.SessionID), stateJSON, 0).Err()
	if err != nil {
		return fmt.Errorf("failed to set view state: %w", err)
	}

	return nil
}

func (that *dbViewState) GetBySessionID(ctx context.Context, sessionID string) (*entity.ViewState, error) {
	response, err := that.client.Get(ctx, viewKey(sessionID)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrViewStateNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get view state: %w", err)
	}

	var state entity.ViewState
	if err = json.Unmarshal([]byte(response), &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal view state: %w", err)
	}

	return &state, nil
}

func (that *dbViewState) DeleteBySessionID(ctx context.Context, sessionID string) error {
	deleted, err := that.client.Del(ctx, viewKey(sessionID)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete view state: %w", err)
	}

	if deleted == 0 {
		return ErrViewStateNotFound
	}

	return nil
}

func viewKey(sessionID string) string {
	return "view:" + sessionID
}
