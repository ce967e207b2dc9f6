package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gridgame-view/internal/entity"
	"github.com/rocketscienceinc/gridgame-view/internal/gameserver"
	"github.com/rocketscienceinc/gridgame-view/internal/usecase"
)

// fakeGameServer answers a one-cell game: the first move ends it, undo
// without moves is rejected.
type fakeGameServer struct {
	mu       sync.Mutex
	moves    int
	requests []string
}

func (that *fakeGameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.requests = append(that.requests, r.URL.RequestURI())

	switch r.URL.Path {
	case "/newgame":
		that.moves = 0
	case "/play":
		if that.moves > 0 {
			http.Error(w, "cell taken", http.StatusBadRequest)
			return
		}
		that.moves++
	case "/undo":
		if that.moves == 0 {
			http.Error(w, "nothing to undo", http.StatusBadRequest)
			return
		}
		that.moves--
	default:
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if that.moves == 0 {
		_, _ = w.Write([]byte(`{"cells":[{"x":0,"y":0,"playable":true}],"instructions":"Your turn"}`))
		return
	}

	_, _ = w.Write([]byte(`{"cells":[{"x":0,"y":0,"playable":false,"text":"X"}],"instructions":"Game over"}`))
}

func (that *fakeGameServer) Requests() []string {
	that.mu.Lock()
	defer that.mu.Unlock()

	return append([]string(nil), that.requests...)
}

type testEnv struct {
	game       *fakeGameServer
	controller *usecase.ViewController
	view       http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	game := &fakeGameServer{}
	gameSrv := httptest.NewServer(game)
	t.Cleanup(gameSrv.Close)

	client, err := gameserver.New(logger, gameSrv.URL, 0)
	require.NoError(t, err)

	controller := usecase.NewViewController(logger, "session", client)

	return &testEnv{
		game:       game,
		controller: controller,
		view:       New(logger, controller, nil).Handler(),
	}
}

func (that *testEnv) get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	that.view.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	return rec
}

func TestViewServer_EndToEnd(t *testing.T) {
	// Given: an initialized view showing one playable cell
	env := newTestEnv(t)
	env.controller.Initialize(context.Background())

	page := env.get(t, "/")
	require.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), `<div id="instructions">Your turn</div>`)
	assert.Contains(t, page.Body.String(), `<a href="/play?x=0&amp;y=0">`)

	// When: the cell is clicked
	move := env.get(t, "/play?x=0&y=0")

	// Then: the browser is sent back to the board, now finished
	assert.Equal(t, http.StatusSeeOther, move.Code)
	assert.Equal(t, "/", move.Header().Get("Location"))

	page = env.get(t, "/")
	assert.Contains(t, page.Body.String(), `<div id="instructions">Game over</div>`)
	assert.NotContains(t, page.Body.String(), `<a href="/play`)
	assert.Contains(t, env.game.Requests(), "/play?x=0&y=0")
}

func TestViewServer_UndoWithoutMoves(t *testing.T) {
	// Given: a fresh game
	env := newTestEnv(t)
	env.controller.Initialize(context.Background())
	before := env.get(t, "/").Body.String()
	stateBefore := env.controller.State()

	// When: undo is requested and the server rejects it
	rec := env.get(t, "/undo")

	// Then: nothing changes for the user
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, stateBefore, env.controller.State())
	assert.Equal(t, before, env.get(t, "/").Body.String())
}

func TestViewServer_NewGame(t *testing.T) {
	// Given: a finished game
	env := newTestEnv(t)
	env.controller.Initialize(context.Background())
	env.get(t, "/play?x=0&y=0")

	// When: New Game is clicked
	rec := env.get(t, "/newgame")

	// Then: the board is reset
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "Your turn", env.controller.State().Snapshot.Instructions)
}

func TestViewServer_PlayRejectsBadCoordinates(t *testing.T) {
	env := newTestEnv(t)

	for _, target := range []string{"/play", "/play?x=a&y=0", "/play?x=0", "/play?x=-1&y=0"} {
		t.Run(target, func(t *testing.T) {
			rec := env.get(t, target)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	assert.Empty(t, env.game.Requests())
}

func TestViewServer_State(t *testing.T) {
	// Given: an initialized view
	env := newTestEnv(t)
	env.controller.Initialize(context.Background())

	// When: the state endpoint is requested
	rec := env.get(t, "/state")

	// Then: it returns the current view state as json
	require.Equal(t, http.StatusOK, rec.Code)

	var state entity.ViewState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.Equal(t, "Your turn", state.Snapshot.Instructions)
	require.Len(t, state.Snapshot.Cells, 1)
	assert.True(t, state.Snapshot.Cells[0].Playable)
}

func TestViewServer_Ping(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get(t, "/ping")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestViewServer_UnknownRoute(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get(t, "/nope")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
