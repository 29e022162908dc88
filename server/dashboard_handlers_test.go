package server

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/postgen/pkg/domain"
	"github.com/umputun/postgen/pkg/ingest"
	"github.com/umputun/postgen/server/mocks"
)

func TestServer_Dashboard(t *testing.T) {
	loads := make(chan struct{}, 4)
	coord := &mocks.CoordinatorMock{
		LoadFunc: func(ctx context.Context) error {
			loads <- struct{}{}
			return nil
		},
		SnapshotFunc: func(ctx context.Context) (ingest.Snapshot, error) {
			return ingest.Snapshot{
				Feeds:   []domain.Feed{{ID: 1, URL: "https://example.com/a.xml"}},
				Context: domain.DefaultIngestionContext,
				Notice:  domain.Notice{Success: ingest.MsgFeedAdded},
			}, nil
		},
	}
	srv := testServer(t, Deps{Auth: stateOf(userState), Coordinator: coord})

	w := doRequest(t, srv, http.MethodGet, "/api/v1/dashboard", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	res := decodeBody(t, w)
	assert.Equal(t, domain.DefaultIngestionContext, res["context"])
	assert.Len(t, res["feeds"], 1)
	assert.Equal(t, map[string]any{"success": ingest.MsgFeedAdded}, res["notice"])

	w = doRequest(t, srv, http.MethodGet, "/api/v1/dashboard", "")
	require.Equal(t, http.StatusOK, w.Code)

	select {
	case <-loads:
	case <-time.After(time.Second):
		t.Fatal("dashboard load not started")
	}
	time.Sleep(20 * time.Millisecond)
	assert.Len(t, coord.LoadCalls(), 1, "load runs once per process")
}

func TestServer_DashboardLoadRetriedAfterUnauthenticated(t *testing.T) {
	loads := make(chan struct{}, 4)
	coord := &mocks.CoordinatorMock{
		LoadFunc: func(ctx context.Context) error {
			defer func() { loads <- struct{}{} }()
			return fmt.Errorf("load: %w", domain.ErrUnauthenticated)
		},
		SnapshotFunc: func(ctx context.Context) (ingest.Snapshot, error) { return ingest.Snapshot{}, nil },
	}
	srv := testServer(t, Deps{Auth: stateOf(userState), Coordinator: coord})

	doRequest(t, srv, http.MethodGet, "/api/v1/dashboard", "")
	<-loads
	require.Eventually(t, func() bool {
		srv.lock.Lock()
		defer srv.lock.Unlock()
		return !srv.loaded
	}, time.Second, 5*time.Millisecond)

	doRequest(t, srv, http.MethodGet, "/api/v1/dashboard", "")
	<-loads
	assert.Len(t, coord.LoadCalls(), 2)
}

func TestServer_Feeds(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		coord := &mocks.CoordinatorMock{
			ListFeedsFunc: func(ctx context.Context) ([]domain.Feed, error) {
				return []domain.Feed{{ID: 1, URL: "https://example.com/a.xml"}, {ID: 2, URL: "https://example.com/b.xml"}}, nil
			},
		}
		srv := testServer(t, Deps{Auth: stateOf(userState), Coordinator: coord})
		w := doRequest(t, srv, http.MethodGet, "/api/v1/feeds", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeBody(t, w)["feeds"], 2)
	})

	t.Run("add", func(t *testing.T) {
		coord := &mocks.CoordinatorMock{
			AddFeedFunc: func(ctx context.Context, feedURL string) (*domain.Feed, error) {
				return &domain.Feed{ID: 3, URL: feedURL}, nil
			},
		}
		srv := testServer(t, Deps{Auth: stateOf(userState), Coordinator: coord})
		w := doRequest(t, srv, http.MethodPost, "/api/v1/feeds", `{"url":"https://example.com/c.xml"}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		assert.Equal(t, "https://example.com/c.xml", decodeBody(t, w)["url"])
		require.Len(t, coord.AddFeedCalls(), 1)
	})

	t.Run("add empty url", func(t *testing.T) {
		coord := &mocks.CoordinatorMock{}
		srv := testServer(t, Deps{Auth: stateOf(userState), Coordinator: coord})
		w := doRequest(t, srv, http.MethodPost, "/api/v1/feeds", `{"url":""}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, coord.AddFeedCalls())
	})

	t.Run("add invalid feed uses notice", func(t *testing.T) {
		coord := &mocks.CoordinatorMock{
			AddFeedFunc: func(ctx context.Context, feedURL string) (*domain.Feed, error) {
				return nil, fmt.Errorf("validate %s: %w", feedURL, domain.ErrValidationRejected)
			},
			SnapshotFunc: func(ctx context.Context) (ingest.Snapshot, error) {
				return ingest.Snapshot{Notice: domain.Notice{Error: ingest.MsgInvalidFeed}}, nil
			},
		}
		srv := testServer(t, Deps{Auth: stateOf(userState), Coordinator: coord})
		w := doRequest(t, srv, http.MethodPost, "/api/v1/feeds", `{"url":"https://example.com/bad"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, ingest.MsgInvalidFeed, decodeBody(t, w)["error"])
	})

	t.Run("add feed with validation service down", func(t *testing.T) {
		coord := &mocks.CoordinatorMock{
			AddFeedFunc: func(ctx context.Context, feedURL string) (*domain.Feed, error) {
				return nil, fmt.Errorf("validate %s: %w: connection refused", feedURL, domain.ErrTransport)
			},
			SnapshotFunc: func(ctx context.Context) (ingest.Snapshot, error) {
				return ingest.Snapshot{Notice: domain.Notice{Error: ingest.MsgValidateFailed}}, nil
			},
		}
		srv := testServer(t, Deps{Auth: stateOf(userState), Coordinator: coord})
		w := doRequest(t, srv, http.MethodPost, "/api/v1/feeds", `{"url":"https://example.com/rss"}`)
		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, ingest.MsgValidateFailed, decodeBody(t, w)["error"])
	})

	t.Run("remove", func(t *testing.T) {
		coord := &mocks.CoordinatorMock{
			RemoveFeedFunc: func(ctx context.Context, id int64) error { return nil },
		}
		srv := testServer(t, Deps{Auth: stateOf(userState), Coordinator: coord})
		w := doRequest(t, srv, http.MethodDelete, "/api/v1/feeds/42", "")
		assert.Equal(t, http.StatusNoContent, w.Code)
		require.Len(t, coord.RemoveFeedCalls(), 1)
		assert.Equal(t, int64(42), coord.RemoveFeedCalls()[0].Id)
	})

	t.Run("remove bad id", func(t *testing.T) {
		coord := &mocks.CoordinatorMock{}
		srv := testServer(t, Deps{Auth: stateOf(userState), Coordinator: coord})
		w := doRequest(t, srv, http.MethodDelete, "/api/v1/feeds/abc", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, coord.RemoveFeedCalls())
	})

	t.Run("opml export", func(t *testing.T) {
		coord := &mocks.CoordinatorMock{
			ListFeedsFunc: func(ctx context.Context) ([]domain.Feed, error) {
				return []domain.Feed{{ID: 1, URL: "https://example.com/a.xml"}}, nil
			},
		}
		srv := testServer(t, Deps{Auth: stateOf(userState), Coordinator: coord})
		w := doRequest(t, srv, http.MethodGet, "/api/v1/feeds/opml", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/x-opml")
		assert.Contains(t, w.Body.String(), `xmlUrl="https://example.com/a.xml"`)
	})
}

func TestServer_Scan(t *testing.T) {
	t.Run("status", func(t *testing.T) {
		coord := &mocks.CoordinatorMock{
			CheckScanStatusFunc: func(ctx context.Context) (bool, error) { return true, nil },
		}
		srv := testServer(t, Deps{Auth: stateOf(userState), Coordinator: coord})
		w := doRequest(t, srv, http.MethodGet, "/api/v1/scan", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"scanDone":true}`, w.Body.String())
	})

	t.Run("run", func(t *testing.T) {
		coord := &mocks.CoordinatorMock{
			RunIngestionFunc: func(ctx context.Context) (*domain.IngestionRun, error) {
				return &domain.IngestionRun{
					Articles:       []domain.Article{{ID: "1", Title: "t1"}},
					TopArticles:    "top",
					GeneratedPosts: "posts",
				}, nil
			},
		}
		srv := testServer(t, Deps{Auth: stateOf(userState), Coordinator: coord})
		w := doRequest(t, srv, http.MethodPost, "/api/v1/scan", "")
		require.Equal(t, http.StatusOK, w.Code)
		res := decodeBody(t, w)
		assert.Equal(t, "top", res["top_articles"])
		assert.Len(t, res["articles"], 1)
	})

	t.Run("no feeds", func(t *testing.T) {
		coord := &mocks.CoordinatorMock{
			RunIngestionFunc: func(ctx context.Context) (*domain.IngestionRun, error) {
				return nil, fmt.Errorf("run: %w", domain.ErrPreconditionFailed)
			},
			SnapshotFunc: func(ctx context.Context) (ingest.Snapshot, error) {
				return ingest.Snapshot{Notice: domain.Notice{Error: ingest.MsgNoFeeds}}, nil
			},
		}
		srv := testServer(t, Deps{Auth: stateOf(userState), Coordinator: coord})
		w := doRequest(t, srv, http.MethodPost, "/api/v1/scan", "")
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, ingest.MsgNoFeeds, decodeBody(t, w)["error"])
	})

	t.Run("remote failure", func(t *testing.T) {
		coord := &mocks.CoordinatorMock{
			RunIngestionFunc: func(ctx context.Context) (*domain.IngestionRun, error) {
				return nil, fmt.Errorf("fetch: %w", domain.ErrTransport)
			},
			SnapshotFunc: func(ctx context.Context) (ingest.Snapshot, error) {
				return ingest.Snapshot{Notice: domain.Notice{Error: ingest.MsgFetchFailed}}, nil
			},
		}
		srv := testServer(t, Deps{Auth: stateOf(userState), Coordinator: coord})
		w := doRequest(t, srv, http.MethodPost, "/api/v1/scan", "")
		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, ingest.MsgFetchFailed, decodeBody(t, w)["error"])
	})
}

func TestServer_Context(t *testing.T) {
	stored := ""
	coord := &mocks.CoordinatorMock{
		ContextFunc: func(ctx context.Context) (string, error) { return domain.EffectiveContext(stored), nil },
		SaveContextFunc: func(ctx context.Context, value string) error {
			stored = value
			return nil
		},
	}
	srv := testServer(t, Deps{Auth: stateOf(userState), Coordinator: coord})

	w := doRequest(t, srv, http.MethodGet, "/api/v1/context", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.DefaultIngestionContext, decodeBody(t, w)["context"])

	w = doRequest(t, srv, http.MethodPut, "/api/v1/context", `{"context":"fintech news"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fintech news", decodeBody(t, w)["context"])
	require.Len(t, coord.SaveContextCalls(), 1)
}

func TestServer_RefreshPosts(t *testing.T) {
	coord := &mocks.CoordinatorMock{
		RefreshPostsFunc: func(ctx context.Context) ([]domain.Post, error) {
			return []domain.Post{{ID: 1, Title: "p1"}, {ID: 2, Title: "p2"}}, nil
		},
	}
	srv := testServer(t, Deps{Auth: stateOf(userState), Coordinator: coord})
	w := doRequest(t, srv, http.MethodPost, "/api/v1/posts/refresh", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["posts"], 2)
}

func TestServer_CoordinatorUnauthenticated(t *testing.T) {
	coord := &mocks.CoordinatorMock{
		ListFeedsFunc: func(ctx context.Context) ([]domain.Feed, error) {
			return nil, domain.ErrUnauthenticated
		},
		SnapshotFunc: func(ctx context.Context) (ingest.Snapshot, error) {
			return ingest.Snapshot{Notice: domain.Notice{Error: "something else"}}, nil
		},
	}
	srv := testServer(t, Deps{Auth: stateOf(userState), Coordinator: coord})
	w := doRequest(t, srv, http.MethodGet, "/api/v1/feeds", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, domain.ErrUnauthenticated.Error(), decodeBody(t, w)["error"])
	assert.Empty(t, coord.SnapshotCalls())
}
