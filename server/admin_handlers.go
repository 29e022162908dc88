package server

import (
	"context"
	"net/http"

	"github.com/umputun/postgen/pkg/domain"
)

func (s *Server) adminSnapshotHandler(w http.ResponseWriter, r *http.Request) {
	snap, err := s.admin.Snapshot(r.Context())
	if err != nil {
		s.renderAdminError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, snap)
}

func (s *Server) listUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := s.admin.LoadUsers(r.Context())
	if err != nil {
		s.renderAdminError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"users": users})
}

func (s *Server) deleteUserHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.admin.DeleteUser(r.Context(), r.PathValue("id")); err != nil {
		s.renderAdminError(w, r, err)
		return
	}
	s.adminSnapshotHandler(w, r)
}

func (s *Server) reloadArticlesHandler(w http.ResponseWriter, r *http.Request) {
	s.extendDeadlines(w, r)
	if err := s.admin.ReloadArticles(r.Context()); err != nil {
		s.renderAdminError(w, r, err)
		return
	}
	s.adminSnapshotHandler(w, r)
}

func (s *Server) renderAdminError(w http.ResponseWriter, r *http.Request, err error) {
	s.renderNoticeError(w, r, err, func(ctx context.Context) (domain.Notice, error) {
		snap, serr := s.admin.Snapshot(ctx)
		return snap.Notice, serr
	})
}
