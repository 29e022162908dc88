package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/postgen/pkg/domain"
)

// dashboardHandler returns the dashboard state. The first call per process starts the
// dashboard load in background: feeds, context, posts and the scan status check.
func (s *Server) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	s.startLoad()

	snap, err := s.coordinator.Snapshot(r.Context())
	if err != nil {
		renderError(w, r, err, errorCode(err))
		return
	}
	renderJSON(w, r, http.StatusOK, snap)
}

// startLoad runs coordinator.Load once. A load rejected by the guard can be started again.
func (s *Server) startLoad() {
	s.lock.Lock()
	if s.loaded {
		s.lock.Unlock()
		return
	}
	s.loaded = true
	ctx := s.baseCtx
	s.lock.Unlock()

	go func() {
		err := s.coordinator.Load(ctx)
		if err == nil {
			lgr.Printf("[INFO] dashboard loaded")
			return
		}
		lgr.Printf("[WARN] dashboard load failed: %v", err)
		if errors.Is(err, domain.ErrUnauthenticated) {
			s.lock.Lock()
			s.loaded = false
			s.lock.Unlock()
		}
	}()
}

func (s *Server) listFeedsHandler(w http.ResponseWriter, r *http.Request) {
	feeds, err := s.coordinator.ListFeeds(r.Context())
	if err != nil {
		s.renderCoordinatorError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"feeds": feeds})
}

func (s *Server) addFeedHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL string `json:"url"`
	}
	if err := decodeJSON(r, &req); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	if req.URL == "" {
		renderError(w, r, errors.New("feed URL is required"), http.StatusBadRequest)
		return
	}

	feed, err := s.coordinator.AddFeed(r.Context(), req.URL)
	if err != nil {
		s.renderCoordinatorError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusCreated, feed)
}

func (s *Server) removeFeedHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, errors.New("invalid feed ID"), http.StatusBadRequest)
		return
	}
	if err := s.coordinator.RemoveFeed(r.Context(), id); err != nil {
		s.renderCoordinatorError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// scanStatusHandler may start an ingestion run if the scan isn't done yet
func (s *Server) scanStatusHandler(w http.ResponseWriter, r *http.Request) {
	s.extendDeadlines(w, r)
	done, err := s.coordinator.CheckScanStatus(r.Context())
	if err != nil {
		s.renderCoordinatorError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]bool{"scanDone": done})
}

func (s *Server) runIngestionHandler(w http.ResponseWriter, r *http.Request) {
	s.extendDeadlines(w, r)
	run, err := s.coordinator.RunIngestion(r.Context())
	if err != nil {
		s.renderCoordinatorError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, run)
}

func (s *Server) getContextHandler(w http.ResponseWriter, r *http.Request) {
	value, err := s.coordinator.Context(r.Context())
	if err != nil {
		s.renderCoordinatorError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"context": value})
}

func (s *Server) saveContextHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Context string `json:"context"`
	}
	if err := decodeJSON(r, &req); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	if err := s.coordinator.SaveContext(r.Context(), req.Context); err != nil {
		s.renderCoordinatorError(w, r, err)
		return
	}
	s.getContextHandler(w, r)
}

func (s *Server) refreshPostsHandler(w http.ResponseWriter, r *http.Request) {
	posts, err := s.coordinator.RefreshPosts(r.Context())
	if err != nil {
		s.renderCoordinatorError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"posts": posts})
}

func (s *Server) opmlHandler(w http.ResponseWriter, r *http.Request) {
	feeds, err := s.coordinator.ListFeeds(r.Context())
	if err != nil {
		s.renderCoordinatorError(w, r, err)
		return
	}
	opml, err := s.generator.GenerateOPML(feeds)
	if err != nil {
		lgr.Printf("[ERROR] failed to generate OPML: %v", err)
		http.Error(w, "Failed to generate OPML", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/x-opml; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="postgen-feeds.opml"`)
	if _, err := w.Write([]byte(opml)); err != nil {
		lgr.Printf("[ERROR] failed to write OPML response: %v", err)
	}
}

// renderCoordinatorError responds with the coordinator's user visible message if there is one
func (s *Server) renderCoordinatorError(w http.ResponseWriter, r *http.Request, err error) {
	s.renderNoticeError(w, r, err, func(ctx context.Context) (domain.Notice, error) {
		snap, serr := s.coordinator.Snapshot(ctx)
		return snap.Notice, serr
	})
}

// renderNoticeError renders err with the status from the error taxonomy and the current notice text
func (s *Server) renderNoticeError(w http.ResponseWriter, r *http.Request, err error,
	notice func(ctx context.Context) (domain.Notice, error)) {
	code := errorCode(err)
	msg := err.Error()
	if code != http.StatusUnauthorized && code != http.StatusForbidden {
		if n, nerr := notice(r.Context()); nerr == nil && n.Error != "" {
			msg = n.Error
		}
	}
	if code >= http.StatusInternalServerError {
		lgr.Printf("[WARN] %s %s: %v", r.Method, r.URL.Path, err)
	}
	renderJSON(w, r, code, map[string]string{"error": msg})
}
