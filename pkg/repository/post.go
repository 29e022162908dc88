package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/postgen/pkg/domain"
)

// PostRepository handles generated posts
type PostRepository struct {
	db *sqlx.DB
}

type postSQL struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Excerpt     string    `db:"excerpt"`
	Tags        string    `db:"tags"` // JSON array
	OriginalURL string    `db:"original_url"`
	Text        string    `db:"text"`
	CreatedAt   time.Time `db:"created_at"`
}

// NewPostRepository creates a new post repository
func NewPostRepository(database *sqlx.DB) *PostRepository {
	return &PostRepository{db: database}
}

// CreatePost stores a generated post and sets its ID
func (r *PostRepository) CreatePost(ctx context.Context, post *domain.Post) error {
	tags := post.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now().UTC()
	}

	rec := &postSQL{
		Title:       post.Title,
		Excerpt:     post.Excerpt,
		Tags:        string(tagsJSON),
		OriginalURL: post.OriginalURL,
		Text:        post.Text,
		CreatedAt:   post.CreatedAt,
	}

	return withRetry(ctx, func() error {
		query := `
			INSERT INTO posts (title, excerpt, tags, original_url, text, created_at)
			VALUES (:title, :excerpt, :tags, :original_url, :text, :created_at)
		`
		result, err := r.db.NamedExecContext(ctx, query, rec)
		if err != nil {
			return fmt.Errorf("create post: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("get insert id: %w", err)
		}
		post.ID = id
		return nil
	})
}

// GetPosts retrieves all posts in insertion order
func (r *PostRepository) GetPosts(ctx context.Context) ([]domain.Post, error) {
	var recs []postSQL
	query := "SELECT id, title, excerpt, tags, original_url, text, created_at FROM posts ORDER BY id"
	if err := r.db.SelectContext(ctx, &recs, query); err != nil {
		return nil, fmt.Errorf("get posts: %w", err)
	}

	posts := make([]domain.Post, len(recs))
	for i, p := range recs {
		var tags []string
		if p.Tags != "" {
			if err := json.Unmarshal([]byte(p.Tags), &tags); err != nil {
				return nil, fmt.Errorf("unmarshal tags for post %d: %w", p.ID, err)
			}
		}
		posts[i] = domain.Post{
			ID:          p.ID,
			Title:       p.Title,
			Excerpt:     p.Excerpt,
			Tags:        tags,
			OriginalURL: p.OriginalURL,
			Text:        p.Text,
			CreatedAt:   p.CreatedAt,
		}
	}
	return posts, nil
}
