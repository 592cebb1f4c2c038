// Package app owns the single application state: the session user, the
// view machine and the domain collections. Every intent runs to completion
// under one mutex, so callers on different goroutines observe a strictly
// sequential history.
package app

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"protrain-backend-go/internal/models"
	"protrain-backend-go/internal/services"
	"protrain-backend-go/internal/session"
	"protrain-backend-go/internal/views"
)

var (
	ErrNoSession = services.ErrUnauthorized("No active session")
	ErrDenied    = services.ErrForbidden("Not allowed")
)

// PhotoPrompt is the question asked before a photo change.
const PhotoPrompt = "Insira o URL da nova foto para este perfil:"

// Prompter asks the person in front of the screen for a value. ok=false
// means they cancelled.
type Prompter interface {
	Prompt(message string) (answer string, ok bool)
}

type PrompterFunc func(message string) (string, bool)

func (f PrompterFunc) Prompt(message string) (string, bool) {
	return f(message)
}

// Snapshot is a deep copy of the state; holding on to one is safe.
type Snapshot struct {
	User        *models.User       `json:"user"`
	View        views.State        `json:"viewState"`
	Collections models.Collections `json:"collections"`
}

// Listener receives every committed snapshot. It runs under the App lock
// and must neither block nor call back into the App.
type Listener func(Snapshot)

type App struct {
	mu        sync.Mutex
	store     session.Store
	svc       services.Service
	user      *models.User
	view      views.State
	data      models.Collections
	listeners []Listener
}

// New builds the App over data and restores a saved session, if any. A
// corrupt record is discarded; any other store error is returned.
func New(ctx context.Context, store session.Store, svc services.Service, data models.Collections) (*App, error) {
	a := &App{
		store: store,
		svc:   svc,
		view:  views.Initial(),
		data:  data.Clone(),
	}
	saved, err := store.Load(ctx)
	if errors.Is(err, session.ErrCorrupt) {
		log.Printf("session restore: %v, clearing", err)
		if err := store.Clear(ctx); err != nil {
			return nil, services.WrapError(err, "clear corrupt session")
		}
		return a, nil
	}
	if err != nil {
		return nil, services.WrapError(err, "restore session")
	}
	if saved != nil {
		a.user = saved
		a.view = views.Login(a.view)
		log.Printf("session restored for user %s (%s)", saved.ID, saved.Role)
	}
	return a, nil
}

// Subscribe registers fn for every future commit.
func (a *App) Subscribe(fn Listener) {
	a.mu.Lock()
	a.listeners = append(a.listeners, fn)
	a.mu.Unlock()
}

func (a *App) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.snapshot()
}

func (a *App) snapshot() Snapshot {
	snap := Snapshot{View: a.view, Collections: a.data.Clone()}
	if a.user != nil {
		user := *a.user
		snap.User = &user
	}
	if a.view.Selected != nil {
		selected := a.view.Selected.Clone()
		snap.View.Selected = &selected
	}
	return snap
}

// commit publishes the current state. Caller holds a.mu.
func (a *App) commit(intent string) Snapshot {
	snap := a.snapshot()
	for _, fn := range a.listeners {
		fn(snap)
	}
	recordIntent(intent, outcomeApplied)
	return snap
}

// reject reports err for intent without touching state. Caller holds a.mu.
func (a *App) reject(intent string, err error) (Snapshot, error) {
	switch {
	case errors.Is(err, ErrDenied):
		recordIntent(intent, outcomeDenied)
	case errors.Is(err, ErrNoSession):
		recordIntent(intent, outcomeNoSession)
	default:
		recordIntent(intent, outcomeFailed)
	}
	return a.snapshot(), err
}

func (a *App) requireSession() error {
	if a.user == nil {
		return ErrNoSession
	}
	return nil
}

func (a *App) requireTrainer() error {
	if err := a.requireSession(); err != nil {
		return err
	}
	if a.user.Role != models.RoleTrainer {
		return ErrDenied
	}
	return nil
}

// requireSelfOrTrainer lets trainers act on anyone and students on their
// own record only.
func (a *App) requireSelfOrTrainer(studentID string) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	if a.user.Role == models.RoleTrainer || a.user.ID == studentID {
		return nil
	}
	return ErrDenied
}

func fromDecision(d views.Decision) error {
	if d == views.Denied {
		return ErrDenied
	}
	return nil
}

func validUser(user models.User) error {
	if strings.TrimSpace(user.ID) == "" {
		return services.ErrBadRequest("User id is required")
	}
	if !user.Role.Valid() {
		return services.ErrBadRequest("Unknown role")
	}
	return nil
}
