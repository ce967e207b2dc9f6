package repository

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gridgame-view/internal/entity"
	"github.com/rocketscienceinc/gridgame-view/testing/suite"
)

func newTestState() *entity.ViewState {
	state := entity.NewViewState("session-1")
	state.Seq = 3
	state.Snapshot = entity.Snapshot{
		Cells: []entity.Cell{
			{X: 1, Y: 0, Playable: false, Attributes: map[string]json.RawMessage{"text": json.RawMessage(`"X"`)}},
			{X: 0, Y: 0, Playable: true},
		},
		Instructions: "Player O's turn",
	}

	return &state
}

func TestViewStateRepository_Save(t *testing.T) {
	ctx, st := suite.New(t)

	repo := NewViewStateRepository(st.Storage)

	// When: Save is called
	err := repo.Save(ctx, newTestState())

	// Then: no error should be returned
	require.NoError(t, err)
}

func TestViewStateRepository_GetBySessionID(t *testing.T) {
	t.Run("GetBySessionID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		repo := NewViewStateRepository(st.Storage)

		// Given: a saved view state
		state := newTestState()
		require.NoError(t, repo.Save(ctx, state))

		// When: GetBySessionID is called
		loaded, err := repo.GetBySessionID(ctx, state.SessionID)

		// Then: cells keep their order and attributes
		require.NoError(t, err)
		assert.Equal(t, state.Seq, loaded.Seq)
		assert.Equal(t, state.Snapshot.Instructions, loaded.Snapshot.Instructions)
		require.Len(t, loaded.Snapshot.Cells, 2)
		assert.Equal(t, 1, loaded.Snapshot.Cells[0].X)
		assert.Equal(t, "X", loaded.Snapshot.Cells[0].Text())
		assert.True(t, loaded.Snapshot.Cells[1].Playable)
	})

	t.Run("GetBySessionID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		repo := NewViewStateRepository(st.Storage)

		// When: GetBySessionID is called with an unknown session
		loaded, err := repo.GetBySessionID(ctx, "unknown")

		// Then: ErrViewStateNotFound should be returned
		require.ErrorIs(t, err, ErrViewStateNotFound)
		assert.Nil(t, loaded)
	})
}

func TestViewStateRepository_DeleteBySessionID(t *testing.T) {
	t.Run("DeleteBySessionID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		repo := NewViewStateRepository(st.Storage)

		state := newTestState()
		require.NoError(t, repo.Save(ctx, state))

		// When: DeleteBySessionID is called
		err := repo.DeleteBySessionID(ctx, state.SessionID)

		// Then: the state is gone
		require.NoError(t, err)

		_, err = repo.GetBySessionID(ctx, state.SessionID)
		require.ErrorIs(t, err, ErrViewStateNotFound)
	})

	t.Run("DeleteBySessionID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		repo := NewViewStateRepository(st.Storage)

		err := repo.DeleteBySessionID(ctx, "unknown")

		require.ErrorIs(t, err, ErrViewStateNotFound)
	})
}
