package ingest

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/postgen/pkg/domain"
	"github.com/umputun/postgen/pkg/ingest/mocks"
	"github.com/umputun/postgen/pkg/remote"
	"github.com/umputun/postgen/pkg/repository"
)

// authSource is a resolved auth state
type authSource domain.AuthState

func (a authSource) Wait(context.Context) (domain.AuthState, error) { return domain.AuthState(a), nil }

var (
	signedIn  = authSource{Session: domain.Session{UserID: "u1", Email: "u1@example.com", Present: true}, Role: domain.RoleUser}
	anonymous = authSource{Session: domain.NoSession, Role: domain.RoleUnknown}
)

// memFeeds is an in-memory FeedStore
type memFeeds struct {
	mu     sync.Mutex
	feeds  []domain.Feed
	nextID int64
}

func (m *memFeeds) GetFeeds(context.Context) ([]domain.Feed, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Feed(nil), m.feeds...), nil
}

func (m *memFeeds) CreateFeed(_ context.Context, feed *domain.Feed) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	feed.ID = m.nextID
	m.feeds = append(m.feeds, *feed)
	return nil
}

func (m *memFeeds) DeleteFeed(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, f := range m.feeds {
		if f.ID == id {
			m.feeds = append(m.feeds[:i], m.feeds[i+1:]...)
			return nil
		}
	}
	return domain.ErrLookupAbsent
}

func feedsStore(urls ...string) *mocks.FeedStoreMock {
	mem := &memFeeds{}
	for _, u := range urls {
		_ = mem.CreateFeed(context.Background(), &domain.Feed{URL: u})
	}
	return &mocks.FeedStoreMock{
		GetFeedsFunc:   mem.GetFeeds,
		CreateFeedFunc: mem.CreateFeed,
		DeleteFeedFunc: mem.DeleteFeed,
	}
}

func postsStore(posts ...domain.Post) *mocks.PostStoreMock {
	return &mocks.PostStoreMock{GetPostsFunc: func(context.Context) ([]domain.Post, error) { return posts, nil }}
}

func contextStore(value string) *mocks.ContextStoreMock {
	var mu sync.Mutex
	return &mocks.ContextStoreMock{
		GetContextFunc: func(context.Context) (string, error) {
			mu.Lock()
			defer mu.Unlock()
			return value, nil
		},
		SaveContextFunc: func(_ context.Context, v string) error {
			mu.Lock()
			defer mu.Unlock()
			value = v
			return nil
		},
	}
}

func TestCoordinator_Unauthenticated(t *testing.T) {
	feeds, svc := feedsStore("a.xml"), &mocks.ServiceMock{}
	c := NewCoordinator(Params{Auth: anonymous, Feeds: feeds, Posts: postsStore(), Contexts: contextStore(""), Service: svc})
	ctx := context.Background()

	assert.ErrorIs(t, c.Load(ctx), domain.ErrUnauthenticated)
	_, err := c.ListFeeds(ctx)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	_, err = c.AddFeed(ctx, "b.xml")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	assert.ErrorIs(t, c.RemoveFeed(ctx, 1), domain.ErrUnauthenticated)
	_, err = c.CheckScanStatus(ctx)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	_, err = c.RunIngestion(ctx)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	assert.ErrorIs(t, c.SaveContext(ctx, "x"), domain.ErrUnauthenticated)
	_, err = c.Context(ctx)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	_, err = c.RefreshPosts(ctx)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	_, err = c.Snapshot(ctx)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	assert.Empty(t, feeds.GetFeedsCalls())
	assert.Empty(t, feeds.CreateFeedCalls())
	assert.Empty(t, feeds.DeleteFeedCalls())
}

func TestCoordinator_RunIngestionNoFeeds(t *testing.T) {
	svc := &mocks.ServiceMock{} // any remote call panics
	c := NewCoordinator(Params{Auth: signedIn, Feeds: feedsStore(), Posts: postsStore(), Contexts: contextStore(""), Service: svc})

	run, err := c.RunIngestion(context.Background())
	require.ErrorIs(t, err, domain.ErrPreconditionFailed)
	assert.Nil(t, run)
	assert.Empty(t, svc.FetchArticlesCalls())

	snap, err := c.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, MsgNoFeeds, snap.Notice.Error)
	assert.False(t, snap.Scanning)
	assert.Nil(t, snap.Run)
}

func TestCoordinator_LoadTriggersScanOnce(t *testing.T) {
	articles := []domain.Article{{ID: "1", Title: "first", Link: "http://a/1"}, {ID: "2", Title: "second", Link: "http://b/2"}}
	svc := &mocks.ServiceMock{
		CheckScanFunc: func(context.Context) (bool, error) { return false, nil },
		FetchArticlesFunc: func(_ context.Context, feeds []string, openAIContext string) (*remote.FetchResult, error) {
			return &remote.FetchResult{Articles: articles, TopArticles: "A,B", LinkedinPosts: "post1\npost2"}, nil
		},
	}
	posts := postsStore(domain.Post{ID: 1, Title: "old post"})
	c := NewCoordinator(Params{Auth: signedIn, Feeds: feedsStore("A.xml", "B.xml"), Posts: posts,
		Contexts: contextStore("hospital CIOs"), Service: svc})
	ts := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return ts }

	require.NoError(t, c.Load(context.Background()))

	require.Len(t, svc.FetchArticlesCalls(), 1)
	call := svc.FetchArticlesCalls()[0]
	assert.Equal(t, []string{"A.xml", "B.xml"}, call.Feeds)
	assert.Equal(t, "hospital CIOs", call.OpenAIContext)
	assert.Len(t, svc.CheckScanCalls(), 1, "scan status not re-checked after ingestion")

	snap, err := c.Snapshot(context.Background())
	require.NoError(t, err)
	require.NotNil(t, snap.Run)
	assert.Equal(t, domain.IngestionRun{Articles: articles, TopArticles: "A,B", GeneratedPosts: "post1\npost2", CompletedAt: ts}, *snap.Run)
	assert.Len(t, snap.Feeds, 2)
	assert.Len(t, snap.Posts, 1)
	assert.Equal(t, "hospital CIOs", snap.Context)
	assert.Equal(t, MsgArticlesReady, snap.Notice.Success)

	// explicit status check in the same lifetime doesn't start another run
	done, err := c.CheckScanStatus(context.Background())
	require.NoError(t, err)
	assert.False(t, done)
	assert.Len(t, svc.FetchArticlesCalls(), 1)
}

func TestCoordinator_LoadScanDone(t *testing.T) {
	svc := &mocks.ServiceMock{CheckScanFunc: func(context.Context) (bool, error) { return true, nil }}
	c := NewCoordinator(Params{Auth: signedIn, Feeds: feedsStore("A.xml"), Posts: postsStore(), Contexts: contextStore(""), Service: svc})

	require.NoError(t, c.Load(context.Background()))
	assert.Empty(t, svc.FetchArticlesCalls())

	snap, err := c.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultIngestionContext, snap.Context)
	assert.Nil(t, snap.Run)
}

func TestCoordinator_CheckScanStatusError(t *testing.T) {
	svc := &mocks.ServiceMock{CheckScanFunc: func(context.Context) (bool, error) {
		return false, fmt.Errorf("%w: connection refused", domain.ErrTransport)
	}}
	c := NewCoordinator(Params{Auth: signedIn, Feeds: feedsStore("A.xml"), Posts: postsStore(), Contexts: contextStore(""), Service: svc})

	err := c.Load(context.Background())
	require.ErrorIs(t, err, domain.ErrTransport)
	assert.Empty(t, svc.FetchArticlesCalls())

	snap, err := c.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, MsgScanCheck, snap.Notice.Error)
	assert.Len(t, snap.Feeds, 1, "feeds loaded despite scan check failure")
}

func TestCoordinator_RunIngestionFailureKeepsPreviousRun(t *testing.T) {
	fail := false
	svc := &mocks.ServiceMock{FetchArticlesFunc: func(context.Context, []string, string) (*remote.FetchResult, error) {
		if fail {
			return nil, &remote.StatusError{Op: "fetch articles", Code: 500}
		}
		return &remote.FetchResult{TopArticles: "first"}, nil
	}}
	c := NewCoordinator(Params{Auth: signedIn, Feeds: feedsStore("A.xml"), Posts: postsStore(), Contexts: contextStore(""), Service: svc})

	first, err := c.RunIngestion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultIngestionContext, svc.FetchArticlesCalls()[0].OpenAIContext)

	fail = true
	_, err = c.RunIngestion(context.Background())
	require.Error(t, err)

	snap, err := c.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Same(t, first, snap.Run)
	assert.Equal(t, MsgFetchFailed, snap.Notice.Error)
	assert.False(t, snap.Scanning)
}

func TestCoordinator_RunIngestionInProgress(t *testing.T) {
	started, release := make(chan struct{}), make(chan struct{})
	svc := &mocks.ServiceMock{FetchArticlesFunc: func(context.Context, []string, string) (*remote.FetchResult, error) {
		close(started)
		<-release
		return &remote.FetchResult{TopArticles: "top"}, nil
	}}
	c := NewCoordinator(Params{Auth: signedIn, Feeds: feedsStore("A.xml"), Posts: postsStore(), Contexts: contextStore(""), Service: svc})

	errCh := make(chan error, 1)
	go func() {
		_, err := c.RunIngestion(context.Background())
		errCh <- err
	}()
	<-started

	snap, err := c.Snapshot(context.Background())
	require.NoError(t, err)
	assert.True(t, snap.Scanning)

	_, err = c.RunIngestion(context.Background())
	assert.ErrorIs(t, err, ErrScanInProgress)
	assert.ErrorIs(t, err, domain.ErrPreconditionFailed)

	close(release)
	require.NoError(t, <-errCh)
	snap, err = c.Snapshot(context.Background())
	require.NoError(t, err)
	assert.False(t, snap.Scanning)
	assert.Equal(t, "top", snap.Run.TopArticles)
}

func TestCoordinator_RunIngestionAtomic(t *testing.T) {
	var mu sync.Mutex
	n := 0
	svc := &mocks.ServiceMock{FetchArticlesFunc: func(context.Context, []string, string) (*remote.FetchResult, error) {
		mu.Lock()
		n++
		id := strconv.Itoa(n)
		mu.Unlock()
		return &remote.FetchResult{Articles: []domain.Article{{ID: id}}, TopArticles: id, LinkedinPosts: id}, nil
	}}
	c := NewCoordinator(Params{Auth: signedIn, Feeds: feedsStore("A.xml"), Posts: postsStore(), Contexts: contextStore(""), Service: svc})

	stop := make(chan struct{})
	var wg sync.WaitGroup
	var torn []string
	var tornMu sync.Mutex
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				snap, err := c.Snapshot(context.Background())
				if err != nil || snap.Run == nil {
					continue
				}
				r := snap.Run
				if len(r.Articles) != 1 || r.Articles[0].ID != r.TopArticles || r.TopArticles != r.GeneratedPosts {
					tornMu.Lock()
					torn = append(torn, fmt.Sprintf("%+v", *r))
					tornMu.Unlock()
				}
			}
		}()
	}

	for i := 0; i < 50; i++ {
		_, err := c.RunIngestion(context.Background())
		require.NoError(t, err)
	}
	close(stop)
	wg.Wait()
	assert.Empty(t, torn)
}

func TestCoordinator_AddFeed(t *testing.T) {
	t.Run("rejected url never stored", func(t *testing.T) {
		feeds := feedsStore("A.xml")
		svc := &mocks.ServiceMock{ValidateFeedFunc: func(context.Context, string) error {
			return fmt.Errorf("validate feed: %w: not a feed", domain.ErrValidationRejected)
		}}
		c := NewCoordinator(Params{Auth: signedIn, Feeds: feeds, Posts: postsStore(), Contexts: contextStore(""), Service: svc})

		_, err := c.AddFeed(context.Background(), "http://example.com/page.html")
		require.ErrorIs(t, err, domain.ErrValidationRejected)
		assert.Empty(t, feeds.CreateFeedCalls())

		list, err := c.ListFeeds(context.Background())
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "A.xml", list[0].URL)

		snap, err := c.Snapshot(context.Background())
		require.NoError(t, err)
		assert.Equal(t, MsgInvalidFeed, snap.Notice.Error)
		assert.Equal(t, ValidationInvalid, snap.Validation)
	})

	t.Run("validation transport failure", func(t *testing.T) {
		feeds := feedsStore()
		svc := &mocks.ServiceMock{ValidateFeedFunc: func(context.Context, string) error {
			return fmt.Errorf("%w: timeout", domain.ErrTransport)
		}}
		c := NewCoordinator(Params{Auth: signedIn, Feeds: feeds, Posts: postsStore(), Contexts: contextStore(""), Service: svc})

		_, err := c.AddFeed(context.Background(), "http://example.com/rss")
		require.ErrorIs(t, err, domain.ErrTransport)
		assert.NotErrorIs(t, err, domain.ErrValidationRejected)
		assert.Empty(t, feeds.CreateFeedCalls())

		snap, err := c.Snapshot(context.Background())
		require.NoError(t, err)
		assert.Equal(t, MsgValidateFailed, snap.Notice.Error)
		assert.Empty(t, snap.Validation, "not marked invalid")
	})

	t.Run("store failure", func(t *testing.T) {
		feeds := feedsStore()
		feeds.CreateFeedFunc = func(context.Context, *domain.Feed) error { return errors.New("disk full") }
		svc := &mocks.ServiceMock{ValidateFeedFunc: func(context.Context, string) error { return nil }}
		c := NewCoordinator(Params{Auth: signedIn, Feeds: feeds, Posts: postsStore(), Contexts: contextStore(""), Service: svc})

		_, err := c.AddFeed(context.Background(), "http://example.com/rss")
		require.Error(t, err)
		snap, err := c.Snapshot(context.Background())
		require.NoError(t, err)
		assert.Equal(t, MsgAddFeedFailed, snap.Notice.Error)
		assert.Empty(t, snap.Feeds)
	})

	t.Run("valid", func(t *testing.T) {
		svc := &mocks.ServiceMock{ValidateFeedFunc: func(context.Context, string) error { return nil }}
		c := NewCoordinator(Params{Auth: signedIn, Feeds: feedsStore("A.xml"), Posts: postsStore(), Contexts: contextStore(""), Service: svc})

		feed, err := c.AddFeed(context.Background(), "B.xml")
		require.NoError(t, err)
		assert.Equal(t, int64(2), feed.ID)
		require.Len(t, svc.ValidateFeedCalls(), 1)
		assert.Equal(t, "B.xml", svc.ValidateFeedCalls()[0].FeedURL)

		snap, err := c.Snapshot(context.Background())
		require.NoError(t, err)
		require.Len(t, snap.Feeds, 2)
		assert.Equal(t, "B.xml", snap.Feeds[1].URL)
		assert.Equal(t, ValidationValid, snap.Validation)
		assert.Equal(t, domain.Notice{Success: MsgFeedAdded}, snap.Notice)
	})
}

func TestCoordinator_RemoveFeed(t *testing.T) {
	c := NewCoordinator(Params{Auth: signedIn, Feeds: feedsStore("A.xml", "B.xml"), Posts: postsStore(),
		Contexts: contextStore(""), Service: &mocks.ServiceMock{}})
	ctx := context.Background()

	require.NoError(t, c.RemoveFeed(ctx, 1))
	list, err := c.ListFeeds(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "B.xml", list[0].URL)

	err = c.RemoveFeed(ctx, 42)
	require.ErrorIs(t, err, domain.ErrLookupAbsent)
	snap, err := c.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, MsgRemoveFailed, snap.Notice.Error)
	assert.Len(t, snap.Feeds, 1)
}

func TestCoordinator_Context(t *testing.T) {
	contexts := contextStore("")
	c := NewCoordinator(Params{Auth: signedIn, Feeds: feedsStore(), Posts: postsStore(), Contexts: contexts, Service: &mocks.ServiceMock{}})
	ctx := context.Background()

	value, err := c.Context(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultIngestionContext, value)

	require.NoError(t, c.SaveContext(ctx, "payers and providers"))
	value, err = c.Context(ctx)
	require.NoError(t, err)
	assert.Equal(t, "payers and providers", value)

	require.NoError(t, c.SaveContext(ctx, ""))
	require.Len(t, contexts.SaveContextCalls(), 2)
	assert.Empty(t, contexts.SaveContextCalls()[1].Value, "empty value stored as is")
	value, err = c.Context(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultIngestionContext, value)

	contexts.SaveContextFunc = func(context.Context, string) error { return errors.New("locked") }
	require.Error(t, c.SaveContext(ctx, "new"))
	snap, err := c.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, MsgSaveContext, snap.Notice.Error)
}

func TestCoordinator_RefreshPosts(t *testing.T) {
	posts := postsStore(domain.Post{ID: 1, Title: "one"})
	c := NewCoordinator(Params{Auth: signedIn, Feeds: feedsStore(), Posts: posts, Contexts: contextStore(""), Service: &mocks.ServiceMock{}})

	res, err := c.RefreshPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, res, 1)

	posts.GetPostsFunc = func(context.Context) ([]domain.Post, error) { return nil, errors.New("db closed") }
	_, err = c.RefreshPosts(context.Background())
	require.Error(t, err)
	snap, err := c.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Posts, 1, "previous posts kept")
	assert.Equal(t, MsgLoadPosts, snap.Notice.Error)
}

func TestCoordinator_WithRepository(t *testing.T) {
	ctx := context.Background()
	repos, err := repository.NewRepositories(ctx, repository.Config{DSN: ":memory:", MaxOpenConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })

	svc := &mocks.ServiceMock{
		ValidateFeedFunc: func(_ context.Context, feedURL string) error {
			if feedURL == "bad" {
				return &remote.StatusError{Op: "validate feed", Code: 400, Message: "invalid"}
			}
			return nil
		},
		FetchArticlesFunc: func(_ context.Context, feeds []string, _ string) (*remote.FetchResult, error) {
			return &remote.FetchResult{TopArticles: fmt.Sprint(feeds)}, nil
		},
	}
	c := NewCoordinator(Params{Auth: signedIn, Feeds: repos.Feed, Posts: repos.Post, Contexts: repos.Context, Service: svc})

	_, err = c.AddFeed(ctx, "A.xml")
	require.NoError(t, err)
	_, err = c.AddFeed(ctx, "bad")
	require.Error(t, err)
	_, err = c.AddFeed(ctx, "B.xml")
	require.NoError(t, err)

	stored, err := repos.Feed.GetFeeds(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 2)

	require.NoError(t, c.SaveContext(ctx, "clinics"))
	run, err := c.RunIngestion(ctx)
	require.NoError(t, err)
	assert.Equal(t, "[A.xml B.xml]", run.TopArticles)
	assert.Equal(t, "clinics", svc.FetchArticlesCalls()[0].OpenAIContext)
}
