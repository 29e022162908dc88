// Package ingest drives the feed management and article ingestion workflow of the dashboard.
// Coordinator owns the feed list, posts, ingestion context and the last ingestion run.
// Every operation requires an authenticated session.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/postgen/pkg/auth"
	"github.com/umputun/postgen/pkg/domain"
	"github.com/umputun/postgen/pkg/remote"
)

//go:generate moq -out mocks/feed_store.go -pkg mocks -skip-ensure -fmt goimports . FeedStore
//go:generate moq -out mocks/post_store.go -pkg mocks -skip-ensure -fmt goimports . PostStore
//go:generate moq -out mocks/context_store.go -pkg mocks -skip-ensure -fmt goimports . ContextStore
//go:generate moq -out mocks/service.go -pkg mocks -skip-ensure -fmt goimports . Service

// user visible messages
const (
	MsgInvalidFeed    = "Invalid RSS feed format"
	MsgValidateFailed = "Error validating feed. Please try again."
	MsgAddFeedFailed  = "Error adding feed. Please try again."
	MsgRemoveFailed   = "Error deleting feed. Please try again."
	MsgNoFeeds        = "No RSS feeds available to fetch articles."
	MsgFetchFailed    = "Failed to fetch articles."
	MsgScanCheck      = "Error checking scan status."
	MsgSaveContext    = "Error saving context. Please try again."
	MsgLoadPosts      = "Error fetching posts."
	MsgLoadFeeds      = "Error fetching RSS feeds."
	MsgFeedAdded      = "Feed added."
	MsgContextSaved   = "Context saved."
	MsgArticlesReady  = "Articles fetched."
)

// ErrScanInProgress is returned when ingestion is triggered while another run is in flight
var ErrScanInProgress = fmt.Errorf("%w: ingestion already in progress", domain.ErrPreconditionFailed)

// FeedStore is the feeds collection of the data store
type FeedStore interface {
	GetFeeds(ctx context.Context) ([]domain.Feed, error)
	CreateFeed(ctx context.Context, feed *domain.Feed) error
	DeleteFeed(ctx context.Context, id int64) error
}

// PostStore is the posts collection of the data store
type PostStore interface {
	GetPosts(ctx context.Context) ([]domain.Post, error)
}

// ContextStore keeps the single ingestion context record
type ContextStore interface {
	GetContext(ctx context.Context) (string, error)
	SaveContext(ctx context.Context, value string) error
}

// Service is the remote ingestion service
type Service interface {
	CheckScan(ctx context.Context) (bool, error)
	ValidateFeed(ctx context.Context, feedURL string) error
	FetchArticles(ctx context.Context, feeds []string, openAIContext string) (*remote.FetchResult, error)
}

// Params for NewCoordinator
type Params struct {
	Auth     auth.StateSource
	Feeds    FeedStore
	Posts    PostStore
	Contexts ContextStore
	Service  Service
}

// Feed validation states shown next to the add feed form
const (
	ValidationValid   = "valid"
	ValidationInvalid = "invalid"
)

// Snapshot is a consistent copy of the coordinator state
type Snapshot struct {
	Feeds      []domain.Feed        `json:"feeds"`
	Posts      []domain.Post        `json:"posts"`
	Context    string               `json:"context"`
	Run        *domain.IngestionRun `json:"run,omitempty"`
	Scanning   bool                 `json:"scanning"`
	Validation string               `json:"validation,omitempty"`
	Notice     domain.Notice        `json:"notice"`
}

// Coordinator manages feeds and runs ingestion cycles
type Coordinator struct {
	Params
	now func() time.Time

	mu            sync.RWMutex
	feeds         []domain.Feed
	feedsLoaded   bool
	posts         []domain.Post
	storedContext string
	contextLoaded bool
	run           *domain.IngestionRun // replaced as a whole, never modified
	scanning      bool
	validation    string
	notice        domain.Notice
	autoTriggered bool
}

// NewCoordinator makes a coordinator with empty state
func NewCoordinator(params Params) *Coordinator {
	return &Coordinator{Params: params, now: time.Now}
}

// Load reads feeds, the saved context and posts concurrently, then checks the scan status,
// which may start the automatic ingestion. Feeds are loaded first so the automatic run sees them.
func (c *Coordinator) Load(ctx context.Context) error {
	if err := c.authorize(ctx); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return c.loadFeeds(gctx) })
	g.Go(func() error { return c.loadContext(gctx) })
	g.Go(func() error { return c.loadPosts(gctx) })
	if err := g.Wait(); err != nil {
		return fmt.Errorf("load dashboard: %w", err)
	}

	if _, err := c.CheckScanStatus(ctx); err != nil {
		return fmt.Errorf("load dashboard: %w", err)
	}
	return nil
}

// ListFeeds re-reads feeds from the store and returns them in store order
func (c *Coordinator) ListFeeds(ctx context.Context) ([]domain.Feed, error) {
	if err := c.authorize(ctx); err != nil {
		return nil, err
	}
	if err := c.loadFeeds(ctx); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.Feed(nil), c.feeds...), nil
}

// AddFeed validates the url with the remote service, stores it and re-lists feeds.
// A rejected url never reaches the store.
func (c *Coordinator) AddFeed(ctx context.Context, feedURL string) (*domain.Feed, error) {
	if err := c.authorize(ctx); err != nil {
		return nil, err
	}
	c.setNotice(domain.Notice{})
	c.setValidation("")

	if err := c.Service.ValidateFeed(ctx, feedURL); err != nil {
		if !errors.Is(err, domain.ErrValidationRejected) {
			// validation didn't happen, the url is neither valid nor invalid
			lgr.Printf("[WARN] can't validate feed %s: %v", feedURL, err)
			c.setNotice(domain.Notice{Error: MsgValidateFailed})
			return nil, fmt.Errorf("validate feed %s: %w", feedURL, err)
		}
		lgr.Printf("[WARN] feed %s rejected: %v", feedURL, err)
		c.setValidation(ValidationInvalid)
		c.setNotice(domain.Notice{Error: MsgInvalidFeed})
		return nil, fmt.Errorf("validate feed %s: %w", feedURL, err)
	}

	feed := &domain.Feed{URL: feedURL}
	if err := c.Feeds.CreateFeed(ctx, feed); err != nil {
		lgr.Printf("[WARN] failed to store feed %s: %v", feedURL, err)
		c.setValidation(ValidationInvalid)
		c.setNotice(domain.Notice{Error: MsgAddFeedFailed})
		return nil, fmt.Errorf("add feed %s: %w", feedURL, err)
	}
	lgr.Printf("[INFO] feed added: %s (id=%d)", feedURL, feed.ID)

	c.setValidation(ValidationValid)
	c.setNotice(domain.Notice{Success: MsgFeedAdded})
	if err := c.loadFeeds(ctx); err != nil {
		return feed, err
	}
	return feed, nil
}

// RemoveFeed deletes a feed and re-lists feeds
func (c *Coordinator) RemoveFeed(ctx context.Context, id int64) error {
	if err := c.authorize(ctx); err != nil {
		return err
	}
	if err := c.Feeds.DeleteFeed(ctx, id); err != nil {
		lgr.Printf("[WARN] failed to delete feed %d: %v", id, err)
		c.setNotice(domain.Notice{Error: MsgRemoveFailed})
		return fmt.Errorf("remove feed %d: %w", id, err)
	}
	lgr.Printf("[INFO] feed %d removed", id)
	return c.loadFeeds(ctx)
}

// CheckScanStatus asks the remote service whether today's scan already ran. If it did not,
// ingestion is started automatically, at most once per coordinator lifetime.
// A failed automatic run is reported through the notice, not the returned error.
func (c *Coordinator) CheckScanStatus(ctx context.Context) (bool, error) {
	if err := c.authorize(ctx); err != nil {
		return false, err
	}

	done, err := c.Service.CheckScan(ctx)
	if err != nil {
		lgr.Printf("[WARN] failed to check scan status: %v", err)
		c.setNotice(domain.Notice{Error: MsgScanCheck})
		return false, fmt.Errorf("check scan status: %w", err)
	}
	if done {
		lgr.Printf("[DEBUG] scan already done today")
		return true, nil
	}

	c.mu.Lock()
	trigger := !c.autoTriggered
	c.autoTriggered = true
	c.mu.Unlock()
	if !trigger {
		lgr.Printf("[DEBUG] scan not done, automatic ingestion already triggered")
		return false, nil
	}

	lgr.Printf("[INFO] scan not done today, starting ingestion")
	if _, err := c.RunIngestion(ctx); err != nil {
		lgr.Printf("[WARN] automatic ingestion failed: %v", err)
	}
	return false, nil
}

// RunIngestion sends all feed urls and the effective context to the remote service and
// replaces the ingestion run with the response. With no feeds it fails without a remote call.
// On failure the previous run stays.
func (c *Coordinator) RunIngestion(ctx context.Context) (*domain.IngestionRun, error) {
	if err := c.authorize(ctx); err != nil {
		return nil, err
	}
	if err := c.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.scanning {
		c.mu.Unlock()
		return nil, ErrScanInProgress
	}
	if len(c.feeds) == 0 {
		c.notice = domain.Notice{Error: MsgNoFeeds}
		c.mu.Unlock()
		return nil, fmt.Errorf("run ingestion: %w: no feeds", domain.ErrPreconditionFailed)
	}
	urls := make([]string, len(c.feeds))
	for i, f := range c.feeds {
		urls[i] = f.URL
	}
	openAIContext := domain.EffectiveContext(c.storedContext)
	c.scanning = true
	c.notice = domain.Notice{}
	c.mu.Unlock()

	lgr.Printf("[INFO] fetching articles for %d feeds", len(urls))
	lgr.Printf("[DEBUG] feeds %v, context %q", urls, openAIContext)
	resp, err := c.Service.FetchArticles(ctx, urls, openAIContext)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.scanning = false
	if err != nil {
		lgr.Printf("[WARN] failed to fetch articles: %v", err)
		c.notice = domain.Notice{Error: MsgFetchFailed}
		return nil, fmt.Errorf("run ingestion: %w", err)
	}

	run := &domain.IngestionRun{
		Articles:       resp.Articles,
		TopArticles:    resp.TopArticles,
		GeneratedPosts: resp.LinkedinPosts,
		CompletedAt:    c.now(),
	}
	c.run = run
	c.notice = domain.Notice{Success: MsgArticlesReady}
	lgr.Printf("[INFO] ingestion completed, %d articles", len(run.Articles))
	return run, nil
}

// SaveContext stores the ingestion context as is, an empty value falls back to the default on read
func (c *Coordinator) SaveContext(ctx context.Context, value string) error {
	if err := c.authorize(ctx); err != nil {
		return err
	}
	if err := c.Contexts.SaveContext(ctx, value); err != nil {
		lgr.Printf("[WARN] failed to save ingestion context: %v", err)
		c.setNotice(domain.Notice{Error: MsgSaveContext})
		return fmt.Errorf("save context: %w", err)
	}

	c.mu.Lock()
	c.storedContext, c.contextLoaded = value, true
	c.notice = domain.Notice{Success: MsgContextSaved}
	c.mu.Unlock()
	lgr.Printf("[INFO] ingestion context saved, %d chars", len(value))
	return nil
}

// Context returns the effective ingestion context
func (c *Coordinator) Context(ctx context.Context) (string, error) {
	if err := c.authorize(ctx); err != nil {
		return "", err
	}
	if err := c.loadContext(ctx); err != nil {
		return "", err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return domain.EffectiveContext(c.storedContext), nil
}

// RefreshPosts re-reads posts from the store
func (c *Coordinator) RefreshPosts(ctx context.Context) ([]domain.Post, error) {
	if err := c.authorize(ctx); err != nil {
		return nil, err
	}
	if err := c.loadPosts(ctx); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.Post(nil), c.posts...), nil
}

// Snapshot returns a copy of the current state
func (c *Coordinator) Snapshot(ctx context.Context) (Snapshot, error) {
	if err := c.authorize(ctx); err != nil {
		return Snapshot{}, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Snapshot{
		Feeds:      append([]domain.Feed(nil), c.feeds...),
		Posts:      append([]domain.Post(nil), c.posts...),
		Context:    domain.EffectiveContext(c.storedContext),
		Run:        c.run,
		Scanning:   c.scanning,
		Validation: c.validation,
		Notice:     c.notice,
	}, nil
}

func (c *Coordinator) authorize(ctx context.Context) error {
	if _, err := auth.Require(ctx, c.Auth, domain.RequireAuthenticated); err != nil {
		return fmt.Errorf("ingestion access: %w", err)
	}
	return nil
}

// ensureLoaded reads feeds and context if nothing loaded them yet
func (c *Coordinator) ensureLoaded(ctx context.Context) error {
	c.mu.RLock()
	feedsLoaded, contextLoaded := c.feedsLoaded, c.contextLoaded
	c.mu.RUnlock()
	if !feedsLoaded {
		if err := c.loadFeeds(ctx); err != nil {
			return err
		}
	}
	if !contextLoaded {
		return c.loadContext(ctx)
	}
	return nil
}

func (c *Coordinator) loadFeeds(ctx context.Context) error {
	feeds, err := c.Feeds.GetFeeds(ctx)
	if err != nil {
		lgr.Printf("[WARN] failed to get feeds: %v", err)
		c.setNotice(domain.Notice{Error: MsgLoadFeeds})
		return fmt.Errorf("list feeds: %w", err)
	}
	c.mu.Lock()
	c.feeds, c.feedsLoaded = feeds, true
	c.mu.Unlock()
	return nil
}

func (c *Coordinator) loadContext(ctx context.Context) error {
	value, err := c.Contexts.GetContext(ctx)
	if err != nil {
		lgr.Printf("[WARN] failed to get ingestion context: %v", err)
		return fmt.Errorf("get context: %w", err)
	}
	c.mu.Lock()
	c.storedContext, c.contextLoaded = value, true
	c.mu.Unlock()
	return nil
}

func (c *Coordinator) loadPosts(ctx context.Context) error {
	posts, err := c.Posts.GetPosts(ctx)
	if err != nil {
		lgr.Printf("[WARN] failed to get posts: %v", err)
		c.setNotice(domain.Notice{Error: MsgLoadPosts})
		return fmt.Errorf("get posts: %w", err)
	}
	c.mu.Lock()
	c.posts = posts
	c.mu.Unlock()
	return nil
}

func (c *Coordinator) setNotice(n domain.Notice) {
	c.mu.Lock()
	c.notice = n
	c.mu.Unlock()
}

func (c *Coordinator) setValidation(v string) {
	c.mu.Lock()
	c.validation = v
	c.mu.Unlock()
}
