package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultRateDelay = 100 * time.Millisecond // 100ms between requests (10 req/sec)
)

// Client is the deck backend API client with rate limiting. Every call
// makes exactly one attempt: transport failures and non-2xx statuses are
// returned to the caller, never retried.
type Client struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	baseURL     string
}

// Options configures a Client.
type Options struct {
	Timeout   time.Duration
	RateDelay time.Duration // minimum delay between requests
	Token     string        // bearer token attached to backend requests
}

// DefaultOptions returns the default client options.
func DefaultOptions() Options {
	return Options{
		Timeout:   defaultTimeout,
		RateDelay: defaultRateDelay,
	}
}

// NewClient creates a client for the backend at baseURL.
func NewClient(baseURL string, opts Options) *Client {
	if opts.Timeout == 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.RateDelay == 0 {
		opts.RateDelay = defaultRateDelay
	}

	transport := http.RoundTripper(http.DefaultTransport)
	if opts.Token != "" {
		if u, err := url.Parse(baseURL); err == nil {
			transport = &authTransport{
				base:  http.DefaultTransport,
				token: opts.Token,
				host:  u.Host,
			}
		}
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   opts.Timeout,
			Transport: transport,
		},
		rateLimiter: rate.NewLimiter(rate.Every(opts.RateDelay), 1),
		baseURL:     baseURL,
	}
}

// authTransport attaches a bearer token to requests whose destination
// matches the backend host. Other hosts pass through untouched.
type authTransport struct {
	base  http.RoundTripper
	token string
	host  string
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Host == t.host {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+t.token)
	}
	return t.base.RoundTrip(req)
}

// GetCards queries the card catalog.
func (c *Client) GetCards(ctx context.Context, query CardQuery) (*CardListResponse, error) {
	u := fmt.Sprintf("%s/cards?%s", c.baseURL, query.params().Encode())

	var result CardListResponse
	if err := c.doRequest(ctx, http.MethodGet, u, nil, &result); err != nil {
		return nil, fmt.Errorf("failed to load cards: %w", err)
	}

	return &result, nil
}

// GetDecks retrieves all saved deck records.
func (c *Client) GetDecks(ctx context.Context) ([]DeckRecord, error) {
	u := fmt.Sprintf("%s/decks", c.baseURL)

	var result []DeckRecord
	if err := c.doRequest(ctx, http.MethodGet, u, nil, &result); err != nil {
		return nil, fmt.Errorf("failed to load decks: %w", err)
	}

	return result, nil
}

// GetDeck retrieves a deck's full detail by ID.
func (c *Client) GetDeck(ctx context.Context, id int) (*DeckDetails, error) {
	u := fmt.Sprintf("%s/decks/%d", c.baseURL, id)

	var result DeckDetails
	if err := c.doRequest(ctx, http.MethodGet, u, nil, &result); err != nil {
		return nil, fmt.Errorf("failed to load deck %d: %w", id, err)
	}

	return &result, nil
}

// CreateDeck creates a new deck and returns the created record.
func (c *Client) CreateDeck(ctx context.Context, req CreateDeckRequest) (*DeckRecord, error) {
	u := fmt.Sprintf("%s/decks", c.baseURL)

	var result DeckRecord
	if err := c.doRequest(ctx, http.MethodPost, u, req, &result); err != nil {
		return nil, fmt.Errorf("failed to create deck: %w", err)
	}

	return &result, nil
}

// UpdateDeck replaces a deck's name, description and card list. The format
// is immutable after creation.
func (c *Client) UpdateDeck(ctx context.Context, id int, req UpdateDeckRequest) (*DeckRecord, error) {
	u := fmt.Sprintf("%s/decks/%d", c.baseURL, id)

	var result DeckRecord
	if err := c.doRequest(ctx, http.MethodPut, u, req, &result); err != nil {
		return nil, fmt.Errorf("failed to update deck %d: %w", id, err)
	}

	return &result, nil
}

// DeleteDeck deletes a saved deck by ID.
func (c *Client) DeleteDeck(ctx context.Context, id int) error {
	u := fmt.Sprintf("%s/decks/%d", c.baseURL, id)

	if err := c.doRequest(ctx, http.MethodDelete, u, nil, nil); err != nil {
		return fmt.Errorf("failed to delete deck %d: %w", id, err)
	}

	return nil
}

// GetRandomCard retrieves a representative card for a deck. The response
// carries a nil card when the deck has none.
func (c *Client) GetRandomCard(ctx context.Context, deckID int) (*RandomCard, error) {
	u := fmt.Sprintf("%s/decks/%d/random", c.baseURL, deckID)

	var result RandomCard
	if err := c.doRequest(ctx, http.MethodGet, u, nil, &result); err != nil {
		return nil, fmt.Errorf("failed to load random card for deck %d: %w", deckID, err)
	}

	return &result, nil
}

// doRequest performs one rate-limited HTTP request and decodes the JSON
// response into result (skipped when result is nil).
func (c *Client) doRequest(ctx context.Context, method, url string, body, result any) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait failed: %w", err)
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }() //nolint:errcheck // Ignore error on cleanup

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	if result == nil {
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if err := json.Unmarshal(data, result); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}
