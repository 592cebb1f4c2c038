package app

import (
	"protrain-backend-go/internal/models"
	"protrain-backend-go/internal/services"
	"protrain-backend-go/internal/views"
)

func (a *App) Navigate(item views.NavItem) (Snapshot, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	next, d := views.Navigate(a.view, a.user, a.data.Students, item)
	if err := fromDecision(d); err != nil {
		return a.reject("navigate", err)
	}
	a.view = next
	return a.commit("navigate"), nil
}

func (a *App) Back() (Snapshot, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	next, d := views.Back(a.view, a.user)
	if err := fromDecision(d); err != nil {
		return a.reject("back", err)
	}
	a.view = next
	return a.commit("back"), nil
}

// SelectStudent opens a student card. Unknown ids are a no-op.
func (a *App) SelectStudent(studentID string) (Snapshot, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.requireSession(); err != nil {
		return a.reject("select_student", err)
	}
	st, ok := services.FindStudent(a.data, studentID)
	if !ok {
		return a.snapshot(), nil
	}
	next, d := views.SelectStudent(a.view, a.user, st)
	if err := fromDecision(d); err != nil {
		return a.reject("select_student", err)
	}
	a.view = next
	return a.commit("select_student"), nil
}

func (a *App) SetLocation(loc models.Location) (Snapshot, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !loc.Valid() {
		return a.reject("set_location", services.ErrBadRequest("Unknown location"))
	}
	next, d := views.SetLocation(a.view, a.user, loc)
	if err := fromDecision(d); err != nil {
		return a.reject("set_location", err)
	}
	a.view = next
	return a.commit("set_location"), nil
}

func (a *App) ToggleAddStudentForm() (Snapshot, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	next, d := views.ToggleAddForm(a.view, a.user)
	if err := fromDecision(d); err != nil {
		return a.reject("toggle_form", err)
	}
	a.view = next
	return a.commit("toggle_form"), nil
}

func (a *App) SetDraft(draft views.Draft) (Snapshot, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	next, d := views.SetDraft(a.view, a.user, draft)
	if err := fromDecision(d); err != nil {
		return a.reject("set_draft", err)
	}
	a.view = next
	return a.commit("set_draft"), nil
}

// SubmitAddStudentForm creates a student from the draft buffer.
func (a *App) SubmitAddStudentForm() (Snapshot, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.addStudent(a.view.Draft.Name, a.view.Draft.Age)
}

// AddStudent creates a student at the active location, then clears and
// hides the form. A blank name leaves everything, the draft included, as
// is.
func (a *App) AddStudent(name, age string) (Snapshot, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.addStudent(name, age)
}

func (a *App) addStudent(name, age string) (Snapshot, error) {
	if err := a.requireTrainer(); err != nil {
		return a.reject("add_student", err)
	}
	data, _, created := a.svc.AddStudent(a.data, name, age, a.view.ActiveLocation)
	if !created {
		return a.snapshot(), nil
	}
	a.data = data
	a.view = views.FormSubmitted(a.view)
	return a.commit("add_student"), nil
}
