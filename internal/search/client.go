// Package search fetches movies from the backend and reports progress as actions.
package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"moviesearch/internal/actions"
	"moviesearch/internal/domain"
	"moviesearch/internal/store"
)

// Client performs movie searches against a backend
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for requests
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a client for the backend at baseURL (scheme and host, no path).
// The default HTTP client has no timeout.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Pending tracks one GetMovies call. It completes once the last action for the
// call has been dispatched or the call has given up.
type Pending struct {
	done chan struct{}
	once sync.Once
}

func newPending() *Pending {
	return &Pending{done: make(chan struct{})}
}

func (p *Pending) finish() {
	p.once.Do(func() { close(p.done) })
}

// Done is closed when the call has finished
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the call has finished
func (p *Pending) Wait() {
	<-p.done
}

// GetMovies runs one search for params.
//
// UPDATE_FETCHING(true) is dispatched before GetMovies returns. The request then
// runs in the background: when a response arrives UPDATE_FETCHING(false) is
// dispatched, followed by UPDATE_MOVIES once the body has been decoded.
// Failures are logged and never dispatched; after a transport failure the
// fetching flag stays set. Overlapping calls are not serialized.
func (c *Client) GetMovies(ctx context.Context, d store.Dispatcher, params domain.SearchParams) *Pending {
	pending := newPending()
	d.Dispatch(actions.UpdateFetching(true))

	log := c.logger.With(zap.String("search_id", uuid.NewString()))

	req, err := c.newRequest(ctx, params)
	if err != nil {
		log.Warn("caught exception", zap.Error(err))
		pending.finish()
		return pending
	}
	log.Debug("search requested", zap.String("url", req.URL.String()))

	go func() {
		defer pending.finish()
		c.fetch(req, d, log)
	}()
	return pending
}

func (c *Client) newRequest(ctx context.Context, params domain.SearchParams) (*http.Request, error) {
	return http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+RequestPath(params), nil)
}

func (c *Client) fetch(req *http.Request, d store.Dispatcher, log *zap.Logger) {
	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn("request error", zap.Error(err))
		return
	}
	defer resp.Body.Close()

	// Any HTTP response counts as received, whatever its status
	log.Info("got response", zap.Int("status", resp.StatusCode))
	d.Dispatch(actions.UpdateFetching(false))

	body, err := decodeResponse(resp.Body)
	if err != nil {
		log.Warn("request error", zap.Error(err))
		return
	}
	d.Dispatch(actions.UpdateMovies(body.Movies))
}

// decodeResponse parses the whole body as one search response.
// Trailing data and a top-level null are rejected.
func decodeResponse(r io.Reader) (*domain.SearchResponse, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	var body *domain.SearchResponse
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, fmt.Errorf("parse response body: %w", err)
	}
	if body == nil {
		return nil, errors.New("parse response body: null response")
	}
	return body, nil
}
