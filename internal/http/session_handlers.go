package httpapi

import (
	"net/http"

	"protrain-backend-go/internal/models"
)

type SessionResponse struct {
	User *models.User `json:"user"`
}

func (s *Server) State(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, buildState(s.App.Snapshot()))
}

func (s *Server) CurrentSession(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, SessionResponse{User: s.App.Snapshot().User})
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req models.User
	if err := decodeJSON(r, &req); err != nil {
		writeResult(w, s.App.Snapshot(), err)
		return
	}
	snap, err := s.App.Login(r.Context(), req)
	writeResult(w, snap, err)
}

func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	snap, err := s.App.Logout(r.Context())
	writeResult(w, snap, err)
}
