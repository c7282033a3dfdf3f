package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

const defaultStateTTL = time.Minute

// HTTPClient fetches the registry state document over HTTP and caches it for
// a short TTL. A stale snapshot is served when a refresh fails and a previous
// fetch succeeded, so transient registry outages do not break the read path.
type HTTPClient struct {
	url    string
	ttl    time.Duration
	client *http.Client
	logger *zap.Logger
	now    func() time.Time

	mu        sync.Mutex
	cached    State
	fetchedAt time.Time
}

func NewHTTPClient(url string, ttl time.Duration, logger *zap.Logger) (*HTTPClient, error) {
	if url == "" {
		return nil, errors.New("registry url is required")
	}
	if ttl <= 0 {
		ttl = defaultStateTTL
	}

	return &HTTPClient{
		url:    url,
		ttl:    ttl,
		client: &http.Client{Timeout: 10 * time.Second},
		logger: logger.Named("registry"),
		now:    time.Now,
	}, nil
}

func (c *HTTPClient) State(ctx context.Context) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.fetchedAt.IsZero() && c.now().Sub(c.fetchedAt) < c.ttl {
		return c.cached, nil
	}

	state, err := c.fetch(ctx)
	if err != nil {
		if c.fetchedAt.IsZero() {
			return State{}, err
		}
		c.logger.Warn("registry refresh failed, serving stale state",
			zap.Time("fetched_at", c.fetchedAt),
			zap.Error(err),
		)
		return c.cached, nil
	}

	c.cached = state
	c.fetchedAt = c.now()
	return state, nil
}

func (c *HTTPClient) fetch(ctx context.Context) (State, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return State{}, fmt.Errorf("build registry request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return State{}, fmt.Errorf("fetch registry state: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return State{}, fmt.Errorf("registry responded with status %d", resp.StatusCode)
	}

	var state State
	if err := json.NewDecoder(resp.Body).Decode(&state); err != nil {
		return State{}, fmt.Errorf("decode registry state: %w", err)
	}
	return state, nil
}
