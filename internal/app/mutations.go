package app

import (
	"protrain-backend-go/internal/models"
	"protrain-backend-go/internal/services"
	"protrain-backend-go/internal/views"
)

func (a *App) SendContactMessage(name, message string) (Snapshot, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.requireSession(); err != nil {
		return a.reject("send_message", err)
	}
	a.data, _ = a.svc.SendContactMessage(a.data, name, message)
	return a.commit("send_message"), nil
}

func (a *App) DeleteContactMessage(msgID string) (Snapshot, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.requireTrainer(); err != nil {
		return a.reject("delete_message", err)
	}
	a.data = a.svc.DeleteContactMessage(a.data, msgID)
	return a.commit("delete_message"), nil
}

func (a *App) AddNotice(in services.NoticeInput) (Snapshot, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.requireTrainer(); err != nil {
		return a.reject("add_notice", err)
	}
	a.data, _ = a.svc.AddNotice(a.data, in)
	return a.commit("add_notice"), nil
}

func (a *App) CreatePost(content string) (Snapshot, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.requireSession(); err != nil {
		return a.reject("create_post", err)
	}
	a.data, _ = a.svc.CreatePost(a.data, a.user, content)
	return a.commit("create_post"), nil
}

func (a *App) ToggleLike(postID string) (Snapshot, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.requireSession(); err != nil {
		return a.reject("toggle_like", err)
	}
	a.data = a.svc.ToggleLike(a.data, a.user, postID)
	return a.commit("toggle_like"), nil
}

func (a *App) AddComment(postID, text string) (Snapshot, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.requireSession(); err != nil {
		return a.reject("add_comment", err)
	}
	a.data = a.svc.AddComment(a.data, a.user, postID, text)
	return a.commit("add_comment"), nil
}

func (a *App) ApprovePost(postID string) (Snapshot, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.requireTrainer(); err != nil {
		return a.reject("approve_post", err)
	}
	a.data = a.svc.ApprovePost(a.data, postID)
	return a.commit("approve_post"), nil
}

func (a *App) RejectPost(postID string) (Snapshot, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.requireTrainer(); err != nil {
		return a.reject("reject_post", err)
	}
	a.data = a.svc.RejectPost(a.data, postID)
	return a.commit("reject_post"), nil
}

// AddTrainingLog returns the stored log (with its new id) alongside the
// snapshot. The log is zero when the student does not exist.
func (a *App) AddTrainingLog(studentID string, log models.TrainingLog) (Snapshot, models.TrainingLog, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.requireSelfOrTrainer(studentID); err != nil {
		snap, err := a.reject("add_log", err)
		return snap, models.TrainingLog{}, err
	}
	var stored models.TrainingLog
	a.data, stored = a.svc.AddTrainingLog(a.data, studentID, log)
	a.view = views.RefreshSelected(a.view, a.data.Students)
	return a.commit("add_log"), stored, nil
}

func (a *App) RemoveTrainingLog(studentID, logID string) (Snapshot, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.requireSelfOrTrainer(studentID); err != nil {
		return a.reject("remove_log", err)
	}
	a.data = a.svc.RemoveTrainingLog(a.data, studentID, logID)
	a.view = views.RefreshSelected(a.view, a.data.Students)
	return a.commit("remove_log"), nil
}

func (a *App) UpdateTrainingLog(studentID string, log models.TrainingLog) (Snapshot, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.requireSelfOrTrainer(studentID); err != nil {
		return a.reject("update_log", err)
	}
	a.data = a.svc.UpdateTrainingLog(a.data, studentID, log)
	a.view = views.RefreshSelected(a.view, a.data.Students)
	return a.commit("update_log"), nil
}

func (a *App) ToggleAttendance(studentID, date string) (Snapshot, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.requireSelfOrTrainer(studentID); err != nil {
		return a.reject("toggle_attendance", err)
	}
	a.data = a.svc.ToggleAttendance(a.data, studentID, date)
	a.view = views.RefreshSelected(a.view, a.data.Students)
	return a.commit("toggle_attendance"), nil
}
