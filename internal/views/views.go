// Package views is the navigation state machine: one current view plus the
// selection state that travels with it.
//
// The machine is flat. There is no history stack; "back" has a fixed target
// per role. Every transition goes through Authorize first and a Denied
// decision leaves the state untouched.
package views

import (
	"strings"

	"protrain-backend-go/internal/models"
)

type View string

const (
	LoggedOut  View = "LOGGED_OUT"
	Info       View = "INFO"
	Feed       View = "FEED"
	Moderation View = "MODERATION"
	Attendance View = "ATTENDANCE"
	List       View = "LIST"
	Detail     View = "DETAIL"
	About      View = "ABOUT"
)

// NavItem is a navigation entry as the presentation layer shows it.
type NavItem string

const (
	NavHome       NavItem = "home"
	NavInfo       NavItem = "info"
	NavFeed       NavItem = "feed"
	NavAttendance NavItem = "attendance"
	NavTeam       NavItem = "team"
	NavAbout      NavItem = "about"
	NavModeration NavItem = "moderation"
)

var navTargets = map[NavItem]View{
	NavHome:       Info,
	NavInfo:       Info,
	NavFeed:       Feed,
	NavAttendance: Attendance,
	NavAbout:      About,
	NavModeration: Moderation,
}

func ParseNavItem(raw string) (NavItem, bool) {
	item := NavItem(strings.ToLower(strings.TrimSpace(raw)))
	if item == NavTeam {
		return item, true
	}
	_, ok := navTargets[item]
	return item, ok
}

type Draft struct {
	Name string `json:"name"`
	Age  string `json:"age"`
}

// State is a value; transitions return a new one.
type State struct {
	Current        View            `json:"view"`
	Selected       *models.Student `json:"selectedStudent"`
	ActiveLocation models.Location `json:"activeLocation"`
	ShowAddForm    bool            `json:"showAddStudentForm"`
	Draft          Draft           `json:"draft"`
}

func Initial() State {
	return State{Current: LoggedOut, ActiveLocation: models.LocationAlcanena}
}

func (s State) withSelected(st *models.Student) State {
	if st == nil {
		s.Selected = nil
		return s
	}
	copied := st.Clone()
	s.Selected = &copied
	return s
}

// SelectedStudentID returns the id of the selection, or "".
func (s State) SelectedStudentID() string {
	if s.Selected == nil {
		return ""
	}
	return s.Selected.ID
}
