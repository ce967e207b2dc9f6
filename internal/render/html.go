package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/rocketscienceinc/gridgame-view/internal/entity"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Game</title>
<style>
#board { display: grid; gap: 2px; margin: 1em 0; }
#board > div { width: 4em; height: 4em; border: 1px solid #888; display: flex; align-items: center; justify-content: center; }
#board a { display: block; width: 100%; height: 100%; text-decoration: none; }
#board a:hover { background: #eef; }
#bottombar a { display: inline-block; padding: 0.3em 1em; border: 1px solid #888; border-radius: 3px; color: inherit; text-decoration: none; }
</style>
</head>
<body>
{{ template "content" . }}
<script>
(function () {
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var socket = new WebSocket(proto + location.host + "/ws");
  var applied = Number(document.getElementById("content").dataset.seq) || 0;
  socket.onmessage = function (event) {
    var msg = JSON.parse(event.data);
    if (msg.action !== "board:update" || !msg.payload || msg.payload.seq < applied) {
      return;
    }
    applied = msg.payload.seq;
    document.getElementById("content").outerHTML = msg.payload.html;
  };
})();
</script>
</body>
</html>
{{ define "content" }}<div id="content" data-seq="{{ .Seq }}">
<div id="instructions">{{ .Instructions }}</div>
<div id="board" style="grid-template-columns: repeat({{ .Columns }}, 4em);">
{{- range .Elements }}
{{- if .Interactive }}
<div class="{{ .Class }}"><a href="{{ .Href }}">{{ .Text }}</a></div>
{{- else }}
<div class="{{ .Class }}">{{ .Text }}</div>
{{- end }}
{{- end }}
</div>
<div id="bottombar">
<a href="{{ .NewGameHref }}" role="button">New Game</a>
<a href="{{ .UndoHref }}" role="button">Undo</a>
</div>
</div>{{ end }}`))

type pageData struct {
	Seq          uint64
	Instructions string
	Columns      int
	Elements     []Element
	NewGameHref  string
	UndoHref     string
}

func newPageData(state entity.ViewState) pageData {
	return pageData{
		Seq:          state.Seq,
		Instructions: state.Snapshot.Instructions,
		Columns:      columns(state),
		Elements:     Elements(state),
		NewGameHref:  PathNewGame,
		UndoHref:     PathUndo,
	}
}

// HTML - writes the full page for state.
func HTML(w io.Writer, state entity.ViewState) error {
	if err := pageTemplate.Execute(w, newPageData(state)); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}

	return nil
}

// Fragment - renders only the instructions, board and controls, as pushed to
// open pages on every update.
func Fragment(state entity.ViewState) (string, error) {
	var buf bytes.Buffer
	if err := pageTemplate.ExecuteTemplate(&buf, "content", newPageData(state)); err != nil {
		return "", fmt.Errorf("failed to render fragment: %w", err)
	}

	return buf.String(), nil
}
