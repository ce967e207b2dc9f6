package gameserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/gridgame-view/internal/apperror"
	"github.com/rocketscienceinc/gridgame-view/internal/entity"
)

const (
	pathNewGame = "/newgame"
	pathUndo    = "/undo"
	pathPlay    = "/play"

	headerRequestID = "X-Request-ID"

	maxBodySize = 1 << 20
)

var ErrInvalidBaseURL = errors.New("invalid game server base url")

// Client talks to the remote game server. Every endpoint answers with a
// full board snapshot.
type Client struct {
	logger     *slog.Logger
	baseURL    *url.URL
	httpClient *http.Client
}

// New - creates a client for the game server at baseURL. A zero timeout leaves
// request lifetime to the caller's context.
func New(logger *slog.Logger, baseURL string, timeout time.Duration) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidBaseURL, parsed.Scheme)
	}

	if parsed.Host == "" {
		return nil, fmt.Errorf("%w: empty host", ErrInvalidBaseURL)
	}

	return &Client{
		logger:     logger.With("component", "gameserver"),
		baseURL:    parsed,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

func (that *Client) NewGame(ctx context.Context) (*entity.Snapshot, error) {
	return that.get(ctx, pathNewGame, nil)
}

func (that *Client) Undo(ctx context.Context) (*entity.Snapshot, error) {
	return that.get(ctx, pathUndo, nil)
}

func (that *Client) Play(ctx context.Context, x, y int) (*entity.Snapshot, error) {
	query := url.Values{}
	query.Set("x", strconv.Itoa(x))
	query.Set("y", strconv.Itoa(y))

	return that.get(ctx, pathPlay, query)
}

// get - performs a GET on path and decodes the snapshot from the response.
func (that *Client) get(ctx context.Context, path string, query url.Values) (*entity.Snapshot, error) {
	requestID := uuid.New().String()
	log := that.logger.With("method", "get", "path", path, "request_id", requestID)

	endpoint := that.endpoint(path, query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set(headerRequestID, requestID)

	started := time.Now()

	resp, err := that.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrTransport, err)
	}
	defer resp.Body.Close()

	log.Debug("game server responded", "status", resp.StatusCode, "elapsed", time.Since(started))

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", apperror.ErrTransport, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %d %s: %s", apperror.ErrUnexpectedStatus,
			resp.StatusCode, http.StatusText(resp.StatusCode), strings.TrimSpace(preview(body)))
	}

	if len(body) > maxBodySize {
		return nil, fmt.Errorf("%w: body exceeds %d bytes", apperror.ErrMalformedResponse, maxBodySize)
	}

	snapshot, err := entity.ParseSnapshot(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrMalformedResponse, err)
	}

	return snapshot, nil
}

func (that *Client) endpoint(path string, query url.Values) string {
	target := *that.baseURL
	target.Path = strings.TrimSuffix(target.Path, "/") + path
	target.RawQuery = ""

	if len(query) > 0 {
		target.RawQuery = query.Encode()
	}

	return target.String()
}

func preview(body []byte) string {
	const limit = 200
	if len(body) > limit {
		return string(body[:limit])
	}

	return string(body)
}
