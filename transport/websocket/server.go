package websocket

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/gridgame-view/internal/entity"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
	sendBuffer = 8
)

type stateSource interface {
	State() entity.ViewState
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Server pushes every applied view state to connected pages.
type Server struct {
	logger   *slog.Logger
	source   stateSource
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
}

func New(logger *slog.Logger, source stateSource) *Server {
	return &Server{
		logger: logger.With("component", "websocket"),
		source: source,
		upgrader: websocket.Upgrader{
			HandshakeTimeout: 5 * time.Second,
			ReadBufferSize:   1024,
			WriteBufferSize:  4096,
		},
		clients: make(map[*client]struct{}),
	}
}

// ServeHTTP - upgrades the connection and sends the current board right away.
func (that *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}

	initial, err := newBoardMessage(that.source.State())
	if err != nil {
		log.Error("failed to build initial message", "error", err)
		_ = conn.Close()
		return
	}
	c.send <- initial

	that.register(c)
	log.Info("WebSocket connection established", "remote", conn.RemoteAddr().String())

	go that.writePump(c)
	that.readPump(c)
}

// Broadcast - queues state for every connection. Slow connections that
// cannot keep up are dropped.
func (that *Server) Broadcast(state entity.ViewState) {
	log := that.logger.With("method", "Broadcast")

	data, err := newBoardMessage(state)
	if err != nil {
		log.Error("failed to build message", "error", err)
		return
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	for c := range that.clients {
		select {
		case c.send <- data:
		default:
			log.Warn("dropping slow connection", "remote", c.conn.RemoteAddr().String())
			delete(that.clients, c)
			close(c.send)
		}
	}
}

func (that *Server) Connections() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.clients)
}

func (that *Server) register(c *client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.clients[c] = struct{}{}
}

func (that *Server) unregister(c *client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.clients[c]; ok {
		delete(that.clients, c)
		close(c.send)
	}
}

// readPump - the page never sends anything meaningful; reading keeps pong
// handling alive and detects closed connections.
func (that *Server) readPump(c *client) {
	defer func() {
		that.unregister(c)
		_ = c.conn.Close()
	}()

	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				that.logger.Warn("connection closed unexpectedly", "error", err)
			}
			return
		}
	}
}

func (that *Server) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				that.logger.Warn("failed to write message", "error", err)
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
