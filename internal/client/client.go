// Package client talks to adventofcode.com: puzzle input and text
// downloads, answer submission, and star-progress scraping. It does no
// retrying or backoff; HTTP failures propagate to the caller, and the
// cache layer is what keeps traffic down.
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// BaseURL is the production endpoint; tests point it at a local server.
const BaseURL = "https://adventofcode.com"

// userAgent identifies this tool per the AoC automation guidelines.
const userAgent = "github.com/Apsurt/aocenv"

// Client is an authenticated adventofcode.com client.
type Client struct {
	http    *http.Client
	baseURL string
	session string
	logger  *zap.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the endpoint, used in tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New returns a client authenticated with the given session cookie.
func New(session string, logger *zap.Logger, opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{Timeout: 30 * time.Second},
		baseURL: BaseURL,
		session: session,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	return c
}

// Input downloads the puzzle input for a day. The returned text is exactly
// what the site serves, trailing newline included.
func (c *Client) Input(ctx context.Context, year, day int) (string, error) {
	path := fmt.Sprintf("/%d/day/%d/input", year, day)
	body, err := c.get(ctx, path)
	if err != nil {
		return "", fmt.Errorf("client: fetch input %d day %d: %w", year, day, err)
	}
	return body, nil
}

// Instructions downloads the puzzle page for a day and renders the
// <article> content as markdown suitable for terminal display. After part 1
// is solved the same page carries part 2, so the result reflects current
// progress.
func (c *Client) Instructions(ctx context.Context, year, day int) (string, error) {
	path := fmt.Sprintf("/%d/day/%d", year, day)
	body, err := c.get(ctx, path)
	if err != nil {
		return "", fmt.Errorf("client: fetch instructions %d day %d: %w", year, day, err)
	}
	md, err := articlesToMarkdown(body)
	if err != nil {
		return "", fmt.Errorf("client: render instructions: %w", err)
	}
	return md, nil
}

// Submit posts an answer for a puzzle part and returns the site's verdict.
func (c *Client) Submit(ctx context.Context, year, day, part int, answer string) (Verdict, string, error) {
	form := url.Values{}
	form.Set("level", fmt.Sprint(part))
	form.Set("answer", answer)

	endpoint := fmt.Sprintf("%s/%d/day/%d/answer", c.baseURL, year, day)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return 0, "", fmt.Errorf("client: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.decorate(req)

	c.logger.Info("submitting answer",
		zap.Int("year", year), zap.Int("day", day), zap.Int("part", part))

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("client: submit: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, "", fmt.Errorf("client: submit: unexpected status %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, "", fmt.Errorf("client: submit: read body: %w", err)
	}

	msg, err := articleText(string(body))
	if err != nil {
		return 0, "", fmt.Errorf("client: submit: %w (is your session cookie up to date?)", err)
	}
	verdict, err := ClassifyResponse(msg)
	if err != nil {
		return 0, msg, err
	}
	return verdict, msg, nil
}

// Stars scrapes the per-day star counts (0, 1 or 2) from the calendar page
// of a year. Days missing from the result have no stars.
func (c *Client) Stars(ctx context.Context, year int) (map[int]int, error) {
	body, err := c.get(ctx, fmt.Sprintf("/%d", year))
	if err != nil {
		return nil, fmt.Errorf("client: fetch calendar %d: %w", year, err)
	}
	return parseCalendar(body)
}

func (c *Client) get(ctx context.Context, path string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return "", err
	}
	c.decorate(req)

	c.logger.Debug("fetching", zap.String("path", path))
	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (c *Client) decorate(req *http.Request) {
	req.Header.Set("User-Agent", userAgent)
	if c.session != "" {
		req.AddCookie(&http.Cookie{Name: "session", Value: c.session})
	}
}
