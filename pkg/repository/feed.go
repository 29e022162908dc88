package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/postgen/pkg/domain"
)

// FeedRepository handles feed-related database operations
type FeedRepository struct {
	db *sqlx.DB
}

// feedSQL represents a feed for SQL operations
type feedSQL struct {
	ID        int64     `db:"id"`
	URL       string    `db:"url"`
	CreatedAt time.Time `db:"created_at"`
}

// NewFeedRepository creates a new feed repository
func NewFeedRepository(database *sqlx.DB) *FeedRepository {
	return &FeedRepository{db: database}
}

// CreateFeed inserts a new feed and sets its ID
func (r *FeedRepository) CreateFeed(ctx context.Context, feed *domain.Feed) error {
	if feed.CreatedAt.IsZero() {
		feed.CreatedAt = time.Now().UTC()
	}
	sqlFeed := &feedSQL{URL: feed.URL, CreatedAt: feed.CreatedAt}

	return withRetry(ctx, func() error {
		result, err := r.db.NamedExecContext(ctx, `INSERT INTO feeds (url, created_at) VALUES (:url, :created_at)`, sqlFeed)
		if err != nil {
			return fmt.Errorf("create feed: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("get insert id: %w", err)
		}
		feed.ID = id
		return nil
	})
}

// GetFeeds retrieves all feeds in insertion order
func (r *FeedRepository) GetFeeds(ctx context.Context) ([]domain.Feed, error) {
	var sqlFeeds []feedSQL
	if err := r.db.SelectContext(ctx, &sqlFeeds, "SELECT id, url, created_at FROM feeds ORDER BY id"); err != nil {
		return nil, fmt.Errorf("get feeds: %w", err)
	}

	feeds := make([]domain.Feed, len(sqlFeeds))
	for i, f := range sqlFeeds {
		feeds[i] = domain.Feed{ID: f.ID, URL: f.URL, CreatedAt: f.CreatedAt}
	}
	return feeds, nil
}

// DeleteFeed removes a feed, returns domain.ErrLookupAbsent if there is no such feed
func (r *FeedRepository) DeleteFeed(ctx context.Context, id int64) error {
	return withRetry(ctx, func() error {
		result, err := r.db.ExecContext(ctx, "DELETE FROM feeds WHERE id = ?", id)
		if err != nil {
			return fmt.Errorf("delete feed: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("get affected rows: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("delete feed %d: %w", id, domain.ErrLookupAbsent)
		}
		return nil
	})
}
