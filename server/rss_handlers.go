package server

import (
	"net/http"

	"github.com/go-pkgz/lgr"
)

// rssHandler serves generated posts as an RSS feed
func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	posts, err := s.coordinator.RefreshPosts(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to get posts for RSS: %v", err)
		http.Error(w, "Failed to generate RSS feed", errorCode(err))
		return
	}

	rss, err := s.generator.GenerateRSS(posts)
	if err != nil {
		lgr.Printf("[ERROR] failed to generate RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		lgr.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}
