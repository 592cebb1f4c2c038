package services

import (
	"time"

	"github.com/google/uuid"
)

// Service applies intents to collection snapshots. Every method returns a
// new models.Collections and never writes through the one it was given;
// an intent aimed at an unknown id returns the input unchanged.
type Service struct {
	Now   func() time.Time
	NewID func() string
}

func New() Service {
	return Service{
		Now:   func() time.Time { return time.Now().UTC() },
		NewID: uuid.NewString,
	}
}

func (s Service) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}

func (s Service) newID() string {
	if s.NewID == nil {
		return uuid.NewString()
	}
	return s.NewID()
}

// appendCopy appends to a fresh backing array so the caller's slice is
// never extended in place.
func appendCopy[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	return append(out, item)
}

func prependCopy[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, item)
	return append(out, items...)
}
