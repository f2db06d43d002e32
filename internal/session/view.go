package session

import (
	"errors"
	"strings"
)

var (
	ErrUnknownLanguage = errors.New("unsupported language")
	ErrUnknownView     = errors.New("unknown view")
)

const (
	ViewDashboard   = "dashboard"
	ViewAttendance  = "attendance"
	ViewEvents      = "events"
	ViewAssignments = "assignments"

	TabOverview = "overview"
)

var Languages = []string{"English", "Hindi", "Spanish", "French", "German", "Japanese"}

// Sections shown in the student navigation menu.
var Sections = []string{"ATTENDANCE", "ASSIGNMENTS", "EVENTS", "CLASS RECORDS"}

type StudentView struct {
	CurrentView      string `json:"current_view"`
	ActiveSection    string `json:"active_section,omitempty"`
	SelectedLanguage string `json:"selected_language"`
}

type AdminView struct {
	CurrentView string `json:"current_view"`
	ActiveTab   string `json:"active_tab"`
	SearchTerm  string `json:"search_term"`
}

func defaultStudentView() StudentView {
	return StudentView{CurrentView: ViewDashboard, SelectedLanguage: "English"}
}

func defaultAdminView() AdminView {
	return AdminView{CurrentView: ViewDashboard, ActiveTab: TabOverview}
}

func (s *Session) StudentView() StudentView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.student
}

func (s *Session) AdminView() AdminView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.admin
}

// SelectSection opens the attendance, events and assignments pages; any other
// section toggles its inline summary.
func (s *Session) SelectSection(section string) StudentView {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch strings.ToUpper(strings.TrimSpace(section)) {
	case "ATTENDANCE":
		s.student.CurrentView = ViewAttendance
	case "EVENTS":
		s.student.CurrentView = ViewEvents
	case "ASSIGNMENTS":
		s.student.CurrentView = ViewAssignments
	default:
		section = strings.ToUpper(strings.TrimSpace(section))
		if s.student.ActiveSection == section {
			s.student.ActiveSection = ""
		} else {
			s.student.ActiveSection = section
		}
	}
	return s.student
}

func (s *Session) SelectLanguage(lang string) (StudentView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range Languages {
		if strings.EqualFold(l, strings.TrimSpace(lang)) {
			s.student.SelectedLanguage = l
			return s.student, nil
		}
	}
	return s.student, ErrUnknownLanguage
}

func (s *Session) StudentBack() StudentView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.student.CurrentView = ViewDashboard
	return s.student
}

// ChangeTab routes "events" and "assignments" to their pages; other tabs stay on the
// dashboard.
func (s *Session) ChangeTab(tab string) (AdminView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tab = strings.ToLower(strings.TrimSpace(tab))
	switch tab {
	case "":
		return s.admin, ErrUnknownView
	case ViewEvents, ViewAssignments:
		s.admin.CurrentView = tab
	default:
		s.admin.ActiveTab = tab
		s.admin.CurrentView = ViewDashboard
	}
	return s.admin, nil
}

func (s *Session) SetSearch(term string) AdminView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.admin.SearchTerm = term
	return s.admin
}

func (s *Session) AdminBack() AdminView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.admin.CurrentView = ViewDashboard
	s.admin.ActiveTab = TabOverview
	return s.admin
}
