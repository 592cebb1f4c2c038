package services

import (
	"strings"

	"protrain-backend-go/internal/models"
)

const (
	PlaceholderPhoto = "https://images.unsplash.com/photo-1599566150163-29194dcaad36?auto=format&fit=crop&q=80&w=100"
	DefaultAge       = 20
)

// AddStudent appends a new athlete at loc. A blank name is a no-op and
// reports false.
func (s Service) AddStudent(c models.Collections, name, age string, loc models.Location) (models.Collections, models.Student, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return c, models.Student{}, false
	}
	student := models.Student{
		ID:         s.newID(),
		Name:       name,
		Age:        ParseAge(age),
		PhotoURL:   PlaceholderPhoto,
		StartYear:  s.now().Year(),
		Location:   loc,
		Evolution:  []models.TrainingLog{},
		Attendance: []string{},
	}
	c.Students = appendCopy(c.Students, student)
	return c, student, true
}

// ParseAge reads the leading integer of raw. Anything unreadable, or zero,
// becomes DefaultAge.
func ParseAge(raw string) int {
	raw = strings.TrimSpace(raw)
	sign := 1
	if strings.HasPrefix(raw, "-") || strings.HasPrefix(raw, "+") {
		if raw[0] == '-' {
			sign = -1
		}
		raw = raw[1:]
	}
	value, digits := 0, 0
	for _, r := range raw {
		if r < '0' || r > '9' {
			break
		}
		value = value*10 + int(r-'0')
		digits++
		if value > 1<<20 {
			break
		}
	}
	if digits == 0 || value == 0 {
		return DefaultAge
	}
	return sign * value
}

// UpdateStudentPhoto only touches the collection copy; the session user and
// the selected student are handled by the caller.
func (s Service) UpdateStudentPhoto(c models.Collections, studentID, url string) models.Collections {
	url = strings.TrimSpace(url)
	if url == "" {
		return c
	}
	return updateStudent(c, studentID, func(st *models.Student) {
		st.PhotoURL = url
	})
}

// AddTrainingLog appends log under a freshly generated id and returns the
// stored entry.
func (s Service) AddTrainingLog(c models.Collections, studentID string, log models.TrainingLog) (models.Collections, models.TrainingLog) {
	if _, ok := FindStudent(c, studentID); !ok {
		return c, models.TrainingLog{}
	}
	log.ID = s.newID()
	return updateStudent(c, studentID, func(st *models.Student) {
		st.Evolution = appendCopy(st.Evolution, log)
	}), log
}

func (s Service) RemoveTrainingLog(c models.Collections, studentID, logID string) models.Collections {
	student, ok := FindStudent(c, studentID)
	if !ok || !hasLog(student, logID) {
		return c
	}
	return updateStudent(c, studentID, func(st *models.Student) {
		kept := make([]models.TrainingLog, 0, len(st.Evolution))
		for _, l := range st.Evolution {
			if l.ID != logID {
				kept = append(kept, l)
			}
		}
		st.Evolution = kept
	})
}

func (s Service) UpdateTrainingLog(c models.Collections, studentID string, updated models.TrainingLog) models.Collections {
	student, ok := FindStudent(c, studentID)
	if !ok || !hasLog(student, updated.ID) {
		return c
	}
	return updateStudent(c, studentID, func(st *models.Student) {
		logs := make([]models.TrainingLog, len(st.Evolution))
		for i, l := range st.Evolution {
			if l.ID == updated.ID {
				l = updated
			}
			logs[i] = l
		}
		st.Evolution = logs
	})
}

// ToggleAttendance removes date when present and adds it otherwise.
func (s Service) ToggleAttendance(c models.Collections, studentID, date string) models.Collections {
	return updateStudent(c, studentID, func(st *models.Student) {
		if st.HasAttended(date) {
			kept := make([]string, 0, len(st.Attendance))
			for _, d := range st.Attendance {
				if d != date {
					kept = append(kept, d)
				}
			}
			st.Attendance = kept
			return
		}
		st.Attendance = appendCopy(st.Attendance, date)
	})
}

func updateStudent(c models.Collections, studentID string, fn func(*models.Student)) models.Collections {
	idx := -1
	for i := range c.Students {
		if c.Students[i].ID == studentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return c
	}
	students := append([]models.Student{}, c.Students...)
	updated := students[idx].Clone()
	fn(&updated)
	students[idx] = updated
	c.Students = students
	return c
}

func hasLog(st models.Student, logID string) bool {
	for _, l := range st.Evolution {
		if l.ID == logID {
			return true
		}
	}
	return false
}
