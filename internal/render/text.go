package render

import (
	"strings"

	"github.com/rocketscienceinc/gridgame-view/internal/entity"
)

const emptyLabel = "."

// Text renders state for a terminal. A new row starts whenever a cell's y
// differs from the previous one; playable cells are bracketed.
func Text(state entity.ViewState) string {
	var out strings.Builder

	out.WriteString(state.Snapshot.Instructions)
	out.WriteString("\n")

	prevY := 0
	for i, element := range Elements(state) {
		if i > 0 {
			if element.Y != prevY {
				out.WriteString("\n")
			} else {
				out.WriteString(" ")
			}
		}

		label := element.Text
		if label == "" {
			label = emptyLabel
		}

		if element.Interactive {
			out.WriteString("[" + label + "]")
		} else {
			out.WriteString(" " + label + " ")
		}

		prevY = element.Y
	}

	if len(state.Snapshot.Cells) > 0 {
		out.WriteString("\n")
	}

	return out.String()
}
