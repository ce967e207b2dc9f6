package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSnapshot(t *testing.T) {
	t.Run("Keeps cells in server order with display attributes", func(t *testing.T) {
		// Given: a response body with two cells in non-sorted order
		body := []byte(`{
			"cells": [
				{"x": 1, "y": 0, "playable": false, "text": "X", "clazz": "taken"},
				{"x": 0, "y": 0, "playable": true, "text": ""}
			],
			"instructions": "Player O's turn"
		}`)

		// When: parsing the snapshot
		snapshot, err := ParseSnapshot(body)

		// Then: cells should keep the received order and attributes
		require.NoError(t, err)
		require.Len(t, snapshot.Cells, 2)
		assert.Equal(t, 1, snapshot.Cells[0].X)
		assert.False(t, snapshot.Cells[0].Playable)
		assert.Equal(t, "X", snapshot.Cells[0].Text())
		assert.Equal(t, "taken", snapshot.Cells[0].Class())
		assert.Equal(t, 0, snapshot.Cells[1].X)
		assert.True(t, snapshot.Cells[1].Playable)
		assert.Equal(t, "Player O's turn", snapshot.Instructions)
	})

	t.Run("Accepts an empty board", func(t *testing.T) {
		// When: parsing a snapshot without cells
		snapshot, err := ParseSnapshot([]byte(`{"cells": [], "instructions": ""}`))

		// Then: it should be valid and non-nil
		require.NoError(t, err)
		assert.NotNil(t, snapshot.Cells)
		assert.Empty(t, snapshot.Cells)
	})

	t.Run("Rejects missing instructions", func(t *testing.T) {
		// When: instructions field is absent
		_, err := ParseSnapshot([]byte(`{"cells": []}`))

		// Then: ErrMissingField should be returned
		require.ErrorIs(t, err, ErrMissingField)
	})

	t.Run("Rejects missing cells", func(t *testing.T) {
		// When: cells field is absent
		_, err := ParseSnapshot([]byte(`{"instructions": "Your turn"}`))

		// Then: ErrMissingField should be returned
		require.ErrorIs(t, err, ErrMissingField)
	})

	t.Run("Rejects null cells", func(t *testing.T) {
		_, err := ParseSnapshot([]byte(`{"cells": null, "instructions": ""}`))

		require.ErrorIs(t, err, ErrInvalidField)
	})

	t.Run("Rejects cell without playable flag", func(t *testing.T) {
		// When: a cell misses the playable field
		_, err := ParseSnapshot([]byte(`{"cells": [{"x": 0, "y": 0}], "instructions": ""}`))

		// Then: ErrMissingField should be returned
		require.ErrorIs(t, err, ErrMissingField)
	})

	t.Run("Rejects non-integer coordinates", func(t *testing.T) {
		_, err := ParseSnapshot([]byte(`{"cells": [{"x": "a", "y": 0, "playable": true}], "instructions": ""}`))

		require.ErrorIs(t, err, ErrInvalidField)
	})

	t.Run("Rejects negative coordinates", func(t *testing.T) {
		_, err := ParseSnapshot([]byte(`{"cells": [{"x": -1, "y": 0, "playable": true}], "instructions": ""}`))

		require.ErrorIs(t, err, ErrNegativeCoord)
	})

	t.Run("Rejects non-object body", func(t *testing.T) {
		_, err := ParseSnapshot([]byte(`[1,2,3]`))

		require.Error(t, err)
	})

	t.Run("Rejects null body", func(t *testing.T) {
		_, err := ParseSnapshot([]byte(`null`))

		require.ErrorIs(t, err, ErrInvalidField)
	})
}

func TestCell_MarshalJSON(t *testing.T) {
	// Given: a cell carrying an opaque attribute
	cell := Cell{
		X:          2,
		Y:          1,
		Playable:   true,
		Attributes: map[string]json.RawMessage{"text": json.RawMessage(`"O"`)},
	}

	// When: encoding and decoding it again
	data, err := json.Marshal(cell)
	require.NoError(t, err)

	var decoded Cell
	require.NoError(t, json.Unmarshal(data, &decoded))

	// Then: coordinates and attributes should survive
	assert.Equal(t, 2, decoded.X)
	assert.Equal(t, 1, decoded.Y)
	assert.True(t, decoded.Playable)
	assert.Equal(t, "O", decoded.Text())
}

func TestCell_Text(t *testing.T) {
	t.Run("Returns empty string for non-string attribute", func(t *testing.T) {
		cell := Cell{Attributes: map[string]json.RawMessage{"text": json.RawMessage(`42`)}}

		assert.Equal(t, "", cell.Text())
	})

	t.Run("Prefers class over clazz", func(t *testing.T) {
		cell := Cell{Attributes: map[string]json.RawMessage{
			"class": json.RawMessage(`"a"`),
			"clazz": json.RawMessage(`"b"`),
		}}

		assert.Equal(t, "a", cell.Class())
	})
}

func TestViewState(t *testing.T) {
	t.Run("New view state is empty", func(t *testing.T) {
		state := NewViewState("session")

		assert.True(t, state.IsEmpty())
		assert.Equal(t, "session", state.SessionID)
		assert.NotNil(t, state.Snapshot.Cells)
	})

	t.Run("Clone does not share the cell slice", func(t *testing.T) {
		// Given: a view state with one cell
		state := NewViewState("session")
		state.Snapshot = Snapshot{Cells: []Cell{{X: 0, Y: 0, Playable: true}}, Instructions: "Your turn"}

		// When: the clone is modified
		clone := state.Clone()
		clone.Snapshot.Cells[0].Playable = false

		// Then: the original remains unchanged
		assert.True(t, state.Snapshot.Cells[0].Playable)
		assert.False(t, state.IsEmpty())
	})

	t.Run("Clone does not share cell attributes", func(t *testing.T) {
		// Given: a view state whose cell carries a label
		state := NewViewState("session")
		state.Snapshot = Snapshot{
			Cells: []Cell{{X: 1, Y: 0, Attributes: map[string]json.RawMessage{
				"text": json.RawMessage(`"X"`),
			}}},
		}

		// When: the clone's attributes are modified
		clone := state.Clone()
		clone.Snapshot.Cells[0].Attributes["text"] = json.RawMessage(`"O"`)
		clone.Snapshot.Cells[0].Attributes["class"] = json.RawMessage(`"won"`)

		// Then: the original cell is untouched
		assert.Equal(t, "X", state.Snapshot.Cells[0].Text())
		assert.Empty(t, state.Snapshot.Cells[0].Class())
		assert.Len(t, state.Snapshot.Cells[0].Attributes, 1)
	})

	t.Run("IsEmpty works on a returned value", func(t *testing.T) {
		newState := func() ViewState { return NewViewState("session") }

		assert.True(t, newState().IsEmpty())
		assert.True(t, newState().Clone().IsEmpty())
	})
}
