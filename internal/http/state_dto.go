package httpapi

import (
	"protrain-backend-go/internal/app"
	"protrain-backend-go/internal/models"
	"protrain-backend-go/internal/services"
	"protrain-backend-go/internal/views"
)

// StateResponse is everything the presentation layer renders from.
type StateResponse struct {
	View               views.View              `json:"view"`
	SelectedStudent    *models.Student         `json:"selectedStudent"`
	ActiveLocation     models.Location         `json:"activeLocation"`
	ShowAddStudentForm bool                    `json:"showAddStudentForm"`
	Draft              views.Draft             `json:"draft"`
	User               *models.User            `json:"user"`
	CurrentStudent     *models.Student         `json:"currentStudent"`
	Students           []models.Student        `json:"students"`
	Team               []models.Student        `json:"team"`
	Posts              []models.Post           `json:"posts"`
	Notices            []models.Notice         `json:"notices"`
	ContactMessages    []models.ContactMessage `json:"contactMessages,omitempty"`
	PendingCount       int                     `json:"pendingCount"`
}

// buildState hides moderation data from anyone but trainers.
func buildState(snap app.Snapshot) StateResponse {
	resp := StateResponse{
		View:               snap.View.Current,
		SelectedStudent:    snap.View.Selected,
		ActiveLocation:     snap.View.ActiveLocation,
		ShowAddStudentForm: snap.View.ShowAddForm,
		Draft:              snap.View.Draft,
		User:               snap.User,
	}
	if snap.User == nil {
		return resp
	}
	resp.Students = snap.Collections.Students
	resp.Posts = snap.Collections.Posts
	resp.Notices = snap.Collections.Notices
	if own, ok := services.FindStudent(snap.Collections, snap.User.ID); ok {
		resp.CurrentStudent = &own
	}
	if snap.User.Role == models.RoleTrainer {
		resp.Team = services.StudentsAt(snap.Collections, snap.View.ActiveLocation)
		resp.ContactMessages = snap.Collections.Messages
		resp.PendingCount = services.PendingCount(snap.Collections)
	}
	return resp
}
