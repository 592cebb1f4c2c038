package services

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"protrain-backend-go/internal/models"
)

// StudentsAt lists the athletes training at loc ordered by name the way a
// Portuguese reader expects (accents do not push names to the end).
func StudentsAt(c models.Collections, loc models.Location) []models.Student {
	out := make([]models.Student, 0, len(c.Students))
	for _, st := range c.Students {
		if st.Location == loc {
			out = append(out, st.Clone())
		}
	}
	col := collate.New(language.Portuguese, collate.IgnoreCase)
	slices.SortStableFunc(out, func(a, b models.Student) int {
		return col.CompareString(a.Name, b.Name)
	})
	return out
}

// PendingCount is the moderation badge: posts awaiting review plus unread
// contact messages.
func PendingCount(c models.Collections) int {
	count := len(c.Messages)
	for _, p := range c.Posts {
		if p.Status == models.PostPending {
			count++
		}
	}
	return count
}

func FindStudent(c models.Collections, id string) (models.Student, bool) {
	for _, st := range c.Students {
		if st.ID == id {
			return st.Clone(), true
		}
	}
	return models.Student{}, false
}

func FindPost(c models.Collections, id string) (models.Post, bool) {
	for _, p := range c.Posts {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return models.Post{}, false
}
