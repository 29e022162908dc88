// Package feed renders generated posts as an RSS 2.0 feed and the registered feeds as OPML.
package feed

import (
	"encoding/xml"
	"fmt"
	"html"
	"strconv"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/postgen/pkg/domain"
)

const (
	feedTitle       = "Postgen - Generated Posts"
	feedDescription = "LinkedIn-ready posts generated from your RSS feeds"
)

// Generator creates RSS and OPML documents
type Generator struct {
	baseURL string
	policy  *bluemonday.Policy
	now     func() time.Time
}

// NewGenerator creates a new feed generator
func NewGenerator(baseURL string) *Generator {
	return &Generator{
		baseURL: strings.TrimRight(baseURL, "/"),
		policy:  bluemonday.StrictPolicy(),
		now:     time.Now,
	}
}

// GenerateRSS creates an RSS 2.0 feed from persisted posts, newest first as passed by the caller
func (g *Generator) GenerateRSS(posts []domain.Post) (string, error) {
	items := make([]*RSSItem, 0, len(posts))
	for _, p := range posts {
		items = append(items, g.convertToRSSItem(p))
	}

	feed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Content: "http://purl.org/rss/1.0/modules/content/",
		Channel: &RSSChannel{
			Title:         feedTitle,
			Link:          g.baseURL + "/",
			Description:   feedDescription,
			AtomLink:      &AtomLink{Href: g.baseURL + "/rss/posts", Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: g.now().Format(time.RFC1123Z),
			Items:         items,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}
	return xml.Header + string(output), nil
}

// convertToRSSItem makes an item from a post. Excerpt and title are reduced to plain text,
// the full post goes to content:encoded as is.
func (g *Generator) convertToRSSItem(p domain.Post) *RSSItem {
	item := &RSSItem{
		Title:       g.plainText(p.Title),
		Link:        p.OriginalURL,
		GUID:        GUID{Value: "post-" + strconv.FormatInt(p.ID, 10)},
		Description: g.plainText(p.Excerpt),
		Categories:  p.Tags,
	}
	if p.Text != "" {
		item.Content = &CDATA{Text: p.Text}
	}
	if !p.CreatedAt.IsZero() {
		item.PubDate = p.CreatedAt.Format(time.RFC1123Z)
	}
	return item
}

// plainText strips markup, leaving unescaped text for the xml encoder
func (g *Generator) plainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(g.policy.Sanitize(s)))
}

// GenerateOPML creates an OPML file with feed subscriptions
func (g *Generator) GenerateOPML(feeds []domain.Feed) (string, error) {
	outlines := make([]opmlOutline, 0, len(feeds))
	for _, f := range feeds {
		outlines = append(outlines, opmlOutline{Text: f.URL, Type: "rss", XMLURL: f.URL})
	}

	doc := opml{
		Version: "2.0",
		Head:    opmlHead{Title: "Postgen Feed Subscriptions", DateCreated: g.now().Format(time.RFC1123Z)},
		Body:    opmlBody{Outlines: outlines},
	}

	output, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal OPML: %w", err)
	}
	return xml.Header + string(output), nil
}
