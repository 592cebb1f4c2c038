package views

import "protrain-backend-go/internal/models"

// Login enters the app at Info. Selection and the add-student form are
// dropped, so nothing carries over from a previous session.
func Login(s State) State {
	s.Current = Info
	s.Selected = nil
	s.ShowAddForm = false
	s.Draft = Draft{}
	return s
}

// Logout forces LoggedOut and clears everything tied to the session. The
// active location is a preference and survives.
func Logout(s State) State {
	s.Current = LoggedOut
	s.Selected = nil
	s.ShowAddForm = false
	s.Draft = Draft{}
	return s
}

// Navigate follows a navigation item. NavTeam depends on the role: trainers
// land on List, students on their own Detail. A student with no athlete
// record stays where they are.
func Navigate(s State, user *models.User, students []models.Student, item NavItem) (State, Decision) {
	if item == NavTeam {
		return navigateTeam(s, user, students)
	}
	target, ok := navTargets[item]
	if !ok {
		return s, Denied
	}
	return goTo(s, user, target)
}

func navigateTeam(s State, user *models.User, students []models.Student) (State, Decision) {
	if isTrainer(user) {
		return goTo(s, user, List)
	}
	if Authorize(user, Detail) == Denied {
		return s, Denied
	}
	for i := range students {
		if students[i].ID == user.ID {
			s = s.withSelected(&students[i])
			s.Current = Detail
			return s, Allowed
		}
	}
	return s, Allowed
}

func goTo(s State, user *models.User, target View) (State, Decision) {
	if Authorize(user, target) == Denied {
		return s, Denied
	}
	s.Current = target
	return s, Allowed
}

// SelectStudent opens the detail page of st. Trainers may open anyone;
// students only themselves.
func SelectStudent(s State, user *models.User, st models.Student) (State, Decision) {
	if Authorize(user, Detail) == Denied {
		return s, Denied
	}
	if !isTrainer(user) && user.ID != st.ID {
		return s, Denied
	}
	s = s.withSelected(&st)
	s.Current = Detail
	return s, Allowed
}

// Back leaves Detail for List (trainer) or Feed. Outside Detail it does
// nothing.
func Back(s State, user *models.User) (State, Decision) {
	if s.Current != Detail {
		return s, Allowed
	}
	if isTrainer(user) {
		return goTo(s, user, List)
	}
	return goTo(s, user, Feed)
}

func SetLocation(s State, user *models.User, loc models.Location) (State, Decision) {
	if Authorize(user, List) == Denied {
		return s, Denied
	}
	if loc.Valid() {
		s.ActiveLocation = loc
	}
	return s, Allowed
}

func ToggleAddForm(s State, user *models.User) (State, Decision) {
	if Authorize(user, List) == Denied {
		return s, Denied
	}
	s.ShowAddForm = !s.ShowAddForm
	return s, Allowed
}

func SetDraft(s State, user *models.User, d Draft) (State, Decision) {
	if Authorize(user, List) == Denied {
		return s, Denied
	}
	s.Draft = d
	return s, Allowed
}

// FormSubmitted resets the add-student form after a student was created.
func FormSubmitted(s State) State {
	s.Draft = Draft{}
	s.ShowAddForm = false
	return s
}

// RefreshSelected replaces the selection with its current copy from
// students. Other selections are left as they are.
func RefreshSelected(s State, students []models.Student) State {
	if s.Selected == nil {
		return s
	}
	for i := range students {
		if students[i].ID == s.Selected.ID {
			return s.withSelected(&students[i])
		}
	}
	return s
}

// ApplyPhoto updates the selected copy when it is studentID.
func ApplyPhoto(s State, studentID, url string) State {
	if s.Selected == nil || s.Selected.ID != studentID {
		return s
	}
	updated := s.Selected.Clone()
	updated.PhotoURL = url
	s.Selected = &updated
	return s
}
