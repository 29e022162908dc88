// Package remote is a client of the remote ingestion service. Request and response shapes
// are fixed by the service and must not change.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/postgen/pkg/domain"
)

const maxResponseSize = 16 * 1024 * 1024

// Client talks to the remote ingestion service. It never retries, recovery is up to the user.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

// Config holds remote client settings
type Config struct {
	BaseURL string
	Token   string // optional bearer token
	Timeout time.Duration
}

// FetchResult is the response of the fetch-articles call
type FetchResult struct {
	Articles      []domain.Article `json:"articles"`
	TopArticles   string           `json:"topArticles"`
	LinkedinPosts string           `json:"linkedinPosts"`
}

// StatusError is a non-200 response with the service's message
type StatusError struct {
	Op      string
	Code    int
	Message string
	kind    error
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: status %d", e.Op, e.Code)
	}
	return fmt.Sprintf("%s: status %d: %s", e.Op, e.Code, e.Message)
}

// Unwrap returns the taxonomy error, domain.ErrValidationRejected or domain.ErrTransport
func (e *StatusError) Unwrap() error { return e.kind }

// NewClient makes a remote service client
func NewClient(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 5 * time.Minute
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

// CheckScan asks whether today's ingestion already ran
func (c *Client) CheckScan(ctx context.Context) (bool, error) {
	var resp struct {
		ScanDone bool `json:"scanDone"`
	}
	if err := c.call(ctx, "check scan", http.MethodGet, "/check-scan", nil, &resp, domain.ErrTransport); err != nil {
		return false, err
	}
	return resp.ScanDone, nil
}

// ValidateFeed asks the service to validate the RSS format of feedURL.
// A rejection is reported as *StatusError wrapping domain.ErrValidationRejected.
func (c *Client) ValidateFeed(ctx context.Context, feedURL string) error {
	req := struct {
		URL string `json:"url"`
	}{URL: feedURL}
	return c.call(ctx, "validate feed", http.MethodPost, "/validate-feed", req, nil, domain.ErrValidationRejected)
}

// FetchArticles runs one ingestion cycle on the service for the given feeds and context
func (c *Client) FetchArticles(ctx context.Context, feeds []string, openAIContext string) (*FetchResult, error) {
	req := struct {
		Feeds         []string `json:"feeds"`
		OpenAIContext string   `json:"openAiContext"`
	}{Feeds: feeds, OpenAIContext: openAIContext}

	var resp FetchResult
	if err := c.call(ctx, "fetch articles", http.MethodPost, "/fetch-articles", req, &resp, domain.ErrTransport); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteUser removes the user from both the auth system and the users table, returns the service message
func (c *Client) DeleteUser(ctx context.Context, userID string) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	path := "/delete-user/" + url.PathEscape(userID)
	if err := c.call(ctx, "delete user", http.MethodDelete, path, nil, &resp, domain.ErrTransport); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// call makes a JSON request. Non-200 responses become *StatusError with rejectKind,
// network and decoding failures wrap domain.ErrTransport.
func (c *Client) call(ctx context.Context, op, method, path string, body, result any, rejectKind error) error {
	var reqBody io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: marshal request: %w", op, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%s: create request: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	lgr.Printf("[DEBUG] remote %s %s", method, path)
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("%s: read response: %w: %w", op, domain.ErrTransport, err)
	}

	if resp.StatusCode != http.StatusOK {
		var msg struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(data, &msg) // message is optional
		return &StatusError{Op: op, Code: resp.StatusCode, Message: msg.Message, kind: rejectKind}
	}

	if result == nil {
		return nil
	}
	if err := json.Unmarshal(data, result); err != nil {
		return fmt.Errorf("%s: decode response: %w: %w", op, domain.ErrTransport, err)
	}
	return nil
}
