package domain

import "time"

// Feed represents a registered RSS source
type Feed struct {
	ID        int64     `json:"id"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

// Post represents a previously generated and persisted post
type Post struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	Tags        []string  `json:"tags"`
	OriginalURL string    `json:"original_url"`
	Text        string    `json:"text"`
	CreatedAt   time.Time `json:"created_at"`
}

// Article is a single article returned by the remote ingestion service
type Article struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Link    string `json:"link"`
	PubDate string `json:"pubDate"`
}

// IngestionRun is the result bundle of one ingestion cycle. It is never updated in place,
// a new run replaces the previous one as a whole.
type IngestionRun struct {
	Articles       []Article `json:"articles"`
	TopArticles    string    `json:"top_articles"`
	GeneratedPosts string    `json:"generated_posts"`
	CompletedAt    time.Time `json:"completed_at"`
}

// DefaultIngestionContext applies when the stored ingestion context is unset or empty
const DefaultIngestionContext = "articles relevant to executives at C-level and VP of healthcare organizations " +
	"such as Health Plans, Hospitals, Healthcare Vendors, Clearinghouses"

// EffectiveContext returns the stored context or the default one if it is empty
func EffectiveContext(stored string) string {
	if stored == "" {
		return DefaultIngestionContext
	}
	return stored
}
