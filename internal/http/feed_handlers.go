package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type CreatePostRequest struct {
	Content string `json:"content"`
}

type CommentRequest struct {
	Text string `json:"text"`
}

func (s *Server) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if err := decodeJSON(r, &req); err != nil {
		writeResult(w, s.App.Snapshot(), err)
		return
	}
	snap, err := s.App.CreatePost(req.Content)
	writeResult(w, snap, err)
}

func (s *Server) ToggleLike(w http.ResponseWriter, r *http.Request) {
	snap, err := s.App.ToggleLike(chi.URLParam(r, "postId"))
	writeResult(w, snap, err)
}

func (s *Server) AddComment(w http.ResponseWriter, r *http.Request) {
	var req CommentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeResult(w, s.App.Snapshot(), err)
		return
	}
	snap, err := s.App.AddComment(chi.URLParam(r, "postId"), req.Text)
	writeResult(w, snap, err)
}

func (s *Server) ApprovePost(w http.ResponseWriter, r *http.Request) {
	snap, err := s.App.ApprovePost(chi.URLParam(r, "postId"))
	writeResult(w, snap, err)
}

func (s *Server) RejectPost(w http.ResponseWriter, r *http.Request) {
	snap, err := s.App.RejectPost(chi.URLParam(r, "postId"))
	writeResult(w, snap, err)
}
