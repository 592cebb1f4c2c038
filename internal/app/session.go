package app

import (
	"context"
	"log"
	"strings"

	"protrain-backend-go/internal/models"
	"protrain-backend-go/internal/services"
	"protrain-backend-go/internal/views"
)

// Login makes user the session user, persists it and opens Info. A failed
// write is returned, but the in-memory login stands.
func (a *App) Login(ctx context.Context, user models.User) (Snapshot, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := validUser(user); err != nil {
		return a.reject("login", err)
	}
	a.user = &user
	a.view = views.Login(a.view)
	err := a.persist(ctx, user)
	return a.commit("login"), err
}

// Logout clears the session and the persisted record.
func (a *App) Logout(ctx context.Context) (Snapshot, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.user = nil
	a.view = views.Logout(a.view)
	var err error
	if clearErr := a.store.Clear(ctx); clearErr != nil {
		SessionWritesFailed.Inc()
		log.Printf("session clear: %v", clearErr)
		err = services.WrapError(clearErr, "clear session")
	}
	return a.commit("logout"), err
}

// UpdateStudentPhoto asks prompter for a new url and applies it to every
// copy of the student: the collection entry, the session user when it is
// the same person (persisted), and the current selection. A cancelled or
// empty answer changes nothing.
func (a *App) UpdateStudentPhoto(ctx context.Context, studentID string, prompter Prompter) (Snapshot, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.requireSelfOrTrainer(studentID); err != nil {
		return a.reject("update_photo", err)
	}
	url, ok := prompter.Prompt(PhotoPrompt)
	url = strings.TrimSpace(url)
	if !ok || url == "" {
		return a.snapshot(), nil
	}
	a.data = a.svc.UpdateStudentPhoto(a.data, studentID, url)
	a.view = views.ApplyPhoto(a.view, studentID, url)
	var err error
	if a.user.ID == studentID {
		updated := *a.user
		updated.PhotoURL = url
		a.user = &updated
		err = a.persist(ctx, updated)
	}
	return a.commit("update_photo"), err
}

func (a *App) persist(ctx context.Context, user models.User) error {
	if err := a.store.Save(ctx, user); err != nil {
		SessionWritesFailed.Inc()
		log.Printf("session save for user %s: %v", user.ID, err)
		return services.WrapError(err, "save session")
	}
	return nil
}
