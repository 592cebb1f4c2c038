package httpapi

import (
	"net/http"
	"strings"
	"time"

	"protrain-backend-go/internal/app"
	"protrain-backend-go/internal/models"

	"github.com/go-chi/chi/v5"
)

type PhotoRequest struct {
	URL string `json:"url"`
}

type TrainingLogRequest struct {
	Date     string `json:"date"`
	Exercise string `json:"exercise"`
	Result   string `json:"result"`
}

type TrainingLogResponse struct {
	Log   models.TrainingLog `json:"log"`
	State StateResponse      `json:"state"`
}

// UpdateStudentPhoto carries the prompt answer in the body; an empty url
// is a cancelled prompt.
func (s *Server) UpdateStudentPhoto(w http.ResponseWriter, r *http.Request) {
	var req PhotoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeResult(w, s.App.Snapshot(), err)
		return
	}
	answer := app.PrompterFunc(func(string) (string, bool) {
		url := strings.TrimSpace(req.URL)
		return url, url != ""
	})
	snap, err := s.App.UpdateStudentPhoto(r.Context(), chi.URLParam(r, "studentId"), answer)
	writeResult(w, snap, err)
}

func (s *Server) AddTrainingLog(w http.ResponseWriter, r *http.Request) {
	var req TrainingLogRequest
	if err := decodeJSON(r, &req); err != nil {
		writeResult(w, s.App.Snapshot(), err)
		return
	}
	snap, stored, err := s.App.AddTrainingLog(chi.URLParam(r, "studentId"), models.TrainingLog{
		Date:     req.Date,
		Exercise: req.Exercise,
		Result:   req.Result,
	})
	if err != nil {
		writeResult(w, snap, err)
		return
	}
	WriteJSON(w, http.StatusOK, TrainingLogResponse{Log: stored, State: buildState(snap)})
}

func (s *Server) UpdateTrainingLog(w http.ResponseWriter, r *http.Request) {
	var req TrainingLogRequest
	if err := decodeJSON(r, &req); err != nil {
		writeResult(w, s.App.Snapshot(), err)
		return
	}
	snap, err := s.App.UpdateTrainingLog(chi.URLParam(r, "studentId"), models.TrainingLog{
		ID:       chi.URLParam(r, "logId"),
		Date:     req.Date,
		Exercise: req.Exercise,
		Result:   req.Result,
	})
	writeResult(w, snap, err)
}

func (s *Server) RemoveTrainingLog(w http.ResponseWriter, r *http.Request) {
	snap, err := s.App.RemoveTrainingLog(chi.URLParam(r, "studentId"), chi.URLParam(r, "logId"))
	writeResult(w, snap, err)
}

func (s *Server) ToggleAttendance(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		WriteError(w, http.StatusBadRequest, "Date must be YYYY-MM-DD")
		return
	}
	snap, err := s.App.ToggleAttendance(chi.URLParam(r, "studentId"), date)
	writeResult(w, snap, err)
}
