package httpapi

import (
	"net/http"

	"protrain-backend-go/internal/services"

	"github.com/go-chi/chi/v5"
)

type ContactMessageRequest struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

func (s *Server) AddNotice(w http.ResponseWriter, r *http.Request) {
	var req services.NoticeInput
	if err := decodeJSON(r, &req); err != nil {
		writeResult(w, s.App.Snapshot(), err)
		return
	}
	snap, err := s.App.AddNotice(req)
	writeResult(w, snap, err)
}

func (s *Server) SendContactMessage(w http.ResponseWriter, r *http.Request) {
	var req ContactMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeResult(w, s.App.Snapshot(), err)
		return
	}
	snap, err := s.App.SendContactMessage(req.Name, req.Message)
	writeResult(w, snap, err)
}

func (s *Server) DeleteContactMessage(w http.ResponseWriter, r *http.Request) {
	snap, err := s.App.DeleteContactMessage(chi.URLParam(r, "messageId"))
	writeResult(w, snap, err)
}
