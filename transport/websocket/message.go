package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/gridgame-view/internal/entity"
	"github.com/rocketscienceinc/gridgame-view/internal/render"
)

const actionBoardUpdate = "board:update"

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type BoardPayload struct {
	Seq          uint64           `json:"seq"`
	Instructions string           `json:"instructions"`
	Elements     []render.Element `json:"elements"`
	Text         string           `json:"text"`
	HTML         string           `json:"html"`
}

func newBoardMessage(state entity.ViewState) ([]byte, error) {
	fragment, err := render.Fragment(state)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(BoardPayload{
		Seq:          state.Seq,
		Instructions: state.Snapshot.Instructions,
		Elements:     render.Elements(state),
		Text:         render.Text(state),
		HTML:         fragment,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal board payload: %w", err)
	}

	data, err := json.Marshal(Message{Action: actionBoardUpdate, Payload: payload})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	return data, nil
}
