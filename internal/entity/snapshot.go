package entity

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const (
	attrText      = "text"
	attrClass     = "class"
	attrClassLong = "clazz"
)

var (
	ErrMissingField  = errors.New("missing required field")
	ErrInvalidField  = errors.New("invalid field value")
	ErrNegativeCoord = errors.New("negative cell coordinate")
)

// Cell is one grid position as sent by the game server. Fields other than
// x, y and playable are kept verbatim in Attributes.
type Cell struct {
	X          int                        `json:"x"`
	Y          int                        `json:"y"`
	Playable   bool                       `json:"playable"`
	Attributes map[string]json.RawMessage `json:"-"`
}

func (that *Cell) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("cell is not an object: %w", err)
	}

	if fields == nil {
		return fmt.Errorf("%w: cell is null", ErrInvalidField)
	}

	var cell Cell
	if err := decodeRequired(fields, "x", &cell.X); err != nil {
		return err
	}

	if err := decodeRequired(fields, "y", &cell.Y); err != nil {
		return err
	}

	if err := decodeRequired(fields, "playable", &cell.Playable); err != nil {
		return err
	}

	delete(fields, "x")
	delete(fields, "y")
	delete(fields, "playable")

	if len(fields) > 0 {
		cell.Attributes = fields
	}

	*that = cell

	return cell.Validate()
}

func (that Cell) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(that.Attributes)+3)
	for key, value := range that.Attributes {
		out[key] = value
	}

	out["x"] = json.RawMessage(fmt.Sprintf("%d", that.X))
	out["y"] = json.RawMessage(fmt.Sprintf("%d", that.Y))
	out["playable"] = json.RawMessage(fmt.Sprintf("%t", that.Playable))

	return json.Marshal(out)
}

func (that Cell) clone() Cell {
	if that.Attributes == nil {
		return that
	}

	attributes := make(map[string]json.RawMessage, len(that.Attributes))
	for key, value := range that.Attributes {
		attributes[key] = append(json.RawMessage(nil), value...)
	}
	that.Attributes = attributes

	return that
}

func (that *Cell) Validate() error {
	if that.X < 0 || that.Y < 0 {
		return fmt.Errorf("%w: (%d,%d)", ErrNegativeCoord, that.X, that.Y)
	}

	return nil
}

// Text returns the "text" display attribute, or "" when absent or not a string.
func (that *Cell) Text() string {
	return that.stringAttr(attrText)
}

// Class returns the CSS class display attribute.
func (that *Cell) Class() string {
	if class := that.stringAttr(attrClass); class != "" {
		return class
	}

	return that.stringAttr(attrClassLong)
}

func (that *Cell) stringAttr(name string) string {
	raw, ok := that.Attributes[name]
	if !ok {
		return ""
	}

	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return ""
	}

	return value
}

// Snapshot is the full board at one instant.
type Snapshot struct {
	Cells        []Cell `json:"cells"`
	Instructions string `json:"instructions"`
}

// ParseSnapshot decodes a game server response body. Both "cells" and
// "instructions" must be present; nothing partial is returned on error.
func ParseSnapshot(data []byte) (*Snapshot, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("snapshot is not an object: %w", err)
	}

	if fields == nil {
		return nil, fmt.Errorf("%w: snapshot is null", ErrInvalidField)
	}

	rawCells, ok := fields["cells"]
	if !ok {
		return nil, fmt.Errorf("%w: cells", ErrMissingField)
	}

	if bytes.Equal(bytes.TrimSpace(rawCells), []byte("null")) {
		return nil, fmt.Errorf("%w: cells is null", ErrInvalidField)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(rawCells, &snapshot.Cells); err != nil {
		return nil, fmt.Errorf("decode cells: %w", err)
	}

	if err := decodeRequired(fields, "instructions", &snapshot.Instructions); err != nil {
		return nil, err
	}

	if snapshot.Cells == nil {
		snapshot.Cells = []Cell{}
	}

	return &snapshot, nil
}

// Clone copies the cells along with their attribute maps.
func (that Snapshot) Clone() Snapshot {
	cells := make([]Cell, len(that.Cells))
	for i, cell := range that.Cells {
		cells[i] = cell.clone()
	}

	return Snapshot{Cells: cells, Instructions: that.Instructions}
}

// ViewState is the controller's copy of the latest applied snapshot.
type ViewState struct {
	SessionID string    `json:"session_id"`
	Seq       uint64    `json:"seq"`
	Snapshot  Snapshot  `json:"snapshot"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

func NewViewState(sessionID string) ViewState {
	return ViewState{
		SessionID: sessionID,
		Snapshot:  Snapshot{Cells: []Cell{}, Instructions: ""},
	}
}

func (that ViewState) IsEmpty() bool {
	return len(that.Snapshot.Cells) == 0 && that.Snapshot.Instructions == ""
}

func (that ViewState) Clone() ViewState {
	clone := that
	clone.Snapshot = that.Snapshot.Clone()

	return clone
}

func decodeRequired(fields map[string]json.RawMessage, name string, target any) error {
	raw, ok := fields[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrMissingField, name)
	}

	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return fmt.Errorf("%w: %s is null", ErrInvalidField, name)
	}

	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidField, name, err)
	}

	return nil
}
