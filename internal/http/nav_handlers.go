package httpapi

import (
	"net/http"

	"protrain-backend-go/internal/models"
	"protrain-backend-go/internal/services"
	"protrain-backend-go/internal/views"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Navigate(w http.ResponseWriter, r *http.Request) {
	item, ok := views.ParseNavItem(chi.URLParam(r, "item"))
	if !ok {
		writeResult(w, s.App.Snapshot(), services.ErrNotFound("Unknown navigation item"))
		return
	}
	snap, err := s.App.Navigate(item)
	writeResult(w, snap, err)
}

func (s *Server) Back(w http.ResponseWriter, r *http.Request) {
	snap, err := s.App.Back()
	writeResult(w, snap, err)
}

func (s *Server) SetLocation(w http.ResponseWriter, r *http.Request) {
	snap, err := s.App.SetLocation(models.Location(chi.URLParam(r, "location")))
	writeResult(w, snap, err)
}

func (s *Server) SelectStudent(w http.ResponseWriter, r *http.Request) {
	snap, err := s.App.SelectStudent(chi.URLParam(r, "studentId"))
	writeResult(w, snap, err)
}

func (s *Server) ToggleAddStudentForm(w http.ResponseWriter, r *http.Request) {
	snap, err := s.App.ToggleAddStudentForm()
	writeResult(w, snap, err)
}

func (s *Server) SetDraft(w http.ResponseWriter, r *http.Request) {
	var req views.Draft
	if err := decodeJSON(r, &req); err != nil {
		writeResult(w, s.App.Snapshot(), err)
		return
	}
	snap, err := s.App.SetDraft(req)
	writeResult(w, snap, err)
}

func (s *Server) SubmitAddStudentForm(w http.ResponseWriter, r *http.Request) {
	snap, err := s.App.SubmitAddStudentForm()
	writeResult(w, snap, err)
}
