package models

import "time"

type Role string

const (
	RoleTrainer Role = "trainer"
	RoleStudent Role = "student"
)

func (r Role) Valid() bool {
	return r == RoleTrainer || r == RoleStudent
}

type Location string

const (
	LocationAlcanena Location = "Alcanena"
	LocationMinde    Location = "Minde"
)

func (l Location) Valid() bool {
	return l == LocationAlcanena || l == LocationMinde
}

type PostStatus string

const (
	PostPending  PostStatus = "pending"
	PostApproved PostStatus = "approved"
	PostRejected PostStatus = "rejected"
)

type Priority string

const (
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

// User is the session identity. It is the only record that gets persisted.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photoUrl"`
	Role     Role   `json:"role"`
}

type TrainingLog struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Exercise string `json:"exercise"`
	Result   string `json:"result"`
}

type Student struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Age        int           `json:"age"`
	PhotoURL   string        `json:"photoUrl"`
	StartYear  int           `json:"startYear"`
	Location   Location      `json:"location"`
	Evolution  []TrainingLog `json:"evolution"`
	Attendance []string      `json:"attendance"`
}

// Clone returns a copy that shares no slices with s.
func (s Student) Clone() Student {
	out := s
	out.Evolution = append([]TrainingLog{}, s.Evolution...)
	out.Attendance = append([]string{}, s.Attendance...)
	return out
}

// HasAttended reports whether date is in the attendance set.
func (s Student) HasAttended(date string) bool {
	for _, d := range s.Attendance {
		if d == date {
			return true
		}
	}
	return false
}

type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Post carries a snapshot of its author taken at creation time.
type Post struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	UserName  string     `json:"userName"`
	UserPhoto string     `json:"userPhoto"`
	Content   string     `json:"content"`
	ImageURL  string     `json:"imageUrl,omitempty"`
	Likes     []string   `json:"likes"`
	Comments  []Comment  `json:"comments"`
	Status    PostStatus `json:"status"`
	Timestamp time.Time  `json:"timestamp"`
}

func (p Post) Clone() Post {
	out := p
	out.Likes = append([]string{}, p.Likes...)
	out.Comments = append([]Comment{}, p.Comments...)
	return out
}

func (p Post) LikedBy(userID string) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

type Notice struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Priority  Priority  `json:"priority"`
}

type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Collections is the in-memory domain state. Values are treated as
// immutable; mutations build new slices.
type Collections struct {
	Students []Student        `json:"students"`
	Posts    []Post           `json:"posts"`
	Notices  []Notice         `json:"notices"`
	Messages []ContactMessage `json:"contactMessages"`
}

// Clone deep-copies every collection and nested sequence.
func (c Collections) Clone() Collections {
	out := Collections{
		Students: make([]Student, 0, len(c.Students)),
		Posts:    make([]Post, 0, len(c.Posts)),
		Notices:  append([]Notice{}, c.Notices...),
		Messages: append([]ContactMessage{}, c.Messages...),
	}
	for _, s := range c.Students {
		out.Students = append(out.Students, s.Clone())
	}
	for _, p := range c.Posts {
		out.Posts = append(out.Posts, p.Clone())
	}
	return out
}
