package render

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/rocketscienceinc/gridgame-view/internal/entity"
)

const (
	PathPlay    = "/play"
	PathNewGame = "/newgame"
	PathUndo    = "/undo"
)

// Element is one rendered cell.
type Element struct {
	Index       int    `json:"index"`
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Interactive bool   `json:"interactive"`
	Href        string `json:"href,omitempty"`
	Text        string `json:"text"`
	Class       string `json:"class,omitempty"`
}

// Elements maps cells to elements in snapshot order. Only playable cells
// get a move link.
func Elements(state entity.ViewState) []Element {
	elements := make([]Element, 0, len(state.Snapshot.Cells))

	for i, cell := range state.Snapshot.Cells {
		element := Element{
			Index: i,
			X:     cell.X,
			Y:     cell.Y,
			Text:  cell.Text(),
			Class: cell.Class(),
		}

		if cell.Playable {
			element.Interactive = true
			element.Href = PlayHref(cell.X, cell.Y)
		}

		elements = append(elements, element)
	}

	return elements
}

func PlayHref(x, y int) string {
	query := url.Values{}
	query.Set("x", strconv.Itoa(x))
	query.Set("y", strconv.Itoa(y))

	return fmt.Sprintf("%s?%s", PathPlay, query.Encode())
}

// columns - widest x seen plus one, at least one.
func columns(state entity.ViewState) int {
	width := 0
	for _, cell := range state.Snapshot.Cells {
		if cell.X+1 > width {
			width = cell.X + 1
		}
	}

	if width == 0 {
		return 1
	}

	return width
}
