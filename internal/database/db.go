package database

import (
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/vaishnav/edutech_backend_v1/internal/models"
	"github.com/vaishnav/edutech_backend_v1/internal/utils"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrSubmissionsClosed = errors.New("assignment is not accepting submissions")
	ErrSubmissionLimit   = errors.New("maximum submissions reached")
	ErrMarksOutOfRange   = errors.New("marks out of range")
)

// Store keeps every collection in memory. Reads hand out copies so callers never
// alias store state; all writes go through the store's lock.
type Store struct {
	mu sync.RWMutex

	attendanceStats  models.AttendanceStats
	recentAttendance []models.AttendanceRecord
	missedClasses    []models.MissedClass

	assignments  []models.Assignment
	submissions  []models.Submission
	events       []models.Event
	certificates []models.Certificate

	profile models.StudentProfile

	adminStats     models.AdminStats
	recentStudents []models.StudentSummary
	activities     []models.Activity

	uploads []models.Upload
}

func Open() *Store {
	return &Store{}
}

// Attendance

func (s *Store) AttendanceStats() models.AttendanceStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.attendanceStats
}

func (s *Store) RecentAttendance() []models.AttendanceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.AttendanceRecord{}, s.recentAttendance...)
}

func (s *Store) MissedClasses() []models.MissedClass {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.MissedClass{}, s.missedClasses...)
}

// Profile

func (s *Store) Profile() models.StudentProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// Assignments

func (s *Store) ListAssignments() []models.Assignment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Assignment{}, s.assignments...)
}

func (s *Store) GetAssignment(id int) (models.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.assignmentIndex(id)
	if i < 0 {
		return models.Assignment{}, errors.Wrapf(ErrNotFound, "assignment %d", id)
	}
	return s.assignments[i], nil
}

// CreateAssignment assigns the next id under the write lock.
func (s *Store) CreateAssignment(a models.Assignment) models.Assignment {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int, 0, len(s.assignments))
	for _, x := range s.assignments {
		ids = append(ids, x.ID)
	}
	a.ID = utils.NextID(ids)
	s.assignments = append(s.assignments, a)
	return a
}

// UpdateAssignment applies fn to a copy and stores it when fn succeeds.
func (s *Store) UpdateAssignment(id int, fn func(a *models.Assignment) error) (models.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.assignmentIndex(id)
	if i < 0 {
		return models.Assignment{}, errors.Wrapf(ErrNotFound, "assignment %d", id)
	}
	a := s.assignments[i]
	if err := fn(&a); err != nil {
		return models.Assignment{}, err
	}
	a.ID = id
	s.assignments[i] = a
	return a, nil
}

// DeleteAssignment also drops the assignment's submissions.
func (s *Store) DeleteAssignment(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.assignmentIndex(id)
	if i < 0 {
		return errors.Wrapf(ErrNotFound, "assignment %d", id)
	}
	s.assignments = append(s.assignments[:i:i], s.assignments[i+1:]...)
	kept := s.submissions[:0:0]
	for _, sub := range s.submissions {
		if sub.AssignmentID != id {
			kept = append(kept, sub)
		}
	}
	s.submissions = kept
	return nil
}

func (s *Store) assignmentIndex(id int) int {
	for i, a := range s.assignments {
		if a.ID == id {
			return i
		}
	}
	return -1
}

// Submissions

// ListSubmissions returns submissions for one assignment, or all when assignmentID is 0.
func (s *Store) ListSubmissions(assignmentID int) []models.Submission {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Submission, 0, len(s.submissions))
	for _, sub := range s.submissions {
		if assignmentID == 0 || sub.AssignmentID == assignmentID {
			out = append(out, sub)
		}
	}
	return out
}

// AddSubmission accepts work only for live assignments below their submission cap.
func (s *Store) AddSubmission(sub models.Submission) (models.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.assignmentIndex(sub.AssignmentID)
	if i < 0 {
		return models.Submission{}, errors.Wrapf(ErrNotFound, "assignment %d", sub.AssignmentID)
	}
	a := &s.assignments[i]
	if a.Status != models.AssignmentLive {
		return models.Submission{}, errors.Wrapf(ErrSubmissionsClosed, "assignment %d is %s", a.ID, a.Status)
	}
	if a.MaxSubmissions != nil && a.Submissions >= *a.MaxSubmissions {
		return models.Submission{}, errors.Wrapf(ErrSubmissionLimit, "assignment %d", a.ID)
	}
	ids := make([]int, 0, len(s.submissions))
	for _, x := range s.submissions {
		ids = append(ids, x.ID)
	}
	sub.ID = utils.NextID(ids)
	s.submissions = append(s.submissions, sub)
	a.Submissions++
	return sub, nil
}

func (s *Store) GradeSubmission(id, marks int, feedback string) (models.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.submissions {
		sub := &s.submissions[i]
		if sub.ID != id {
			continue
		}
		if ai := s.assignmentIndex(sub.AssignmentID); ai >= 0 {
			if total := s.assignments[ai].TotalMarks; marks > total {
				return models.Submission{}, errors.Wrapf(ErrMarksOutOfRange, "max %d", total)
			}
		}
		if marks < 0 {
			return models.Submission{}, errors.Wrap(ErrMarksOutOfRange, "negative marks")
		}
		m := marks
		sub.Marks = &m
		sub.Feedback = feedback
		sub.Status = models.SubmissionGraded
		return *sub, nil
	}
	return models.Submission{}, errors.Wrapf(ErrNotFound, "submission %d", id)
}

// Events

func (s *Store) ListEvents() []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Event{}, s.events...)
}

func (s *Store) GetEvent(id int) (models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.eventIndex(id)
	if i < 0 {
		return models.Event{}, errors.Wrapf(ErrNotFound, "event %d", id)
	}
	return s.events[i], nil
}

func (s *Store) CreateEvent(e models.Event) models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int, 0, len(s.events))
	for _, x := range s.events {
		ids = append(ids, x.ID)
	}
	e.ID = utils.NextID(ids)
	s.events = append(s.events, e)
	return e
}

func (s *Store) UpdateEvent(id int, fn func(e *models.Event) error) (models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.eventIndex(id)
	if i < 0 {
		return models.Event{}, errors.Wrapf(ErrNotFound, "event %d", id)
	}
	e := s.events[i]
	if err := fn(&e); err != nil {
		return models.Event{}, err
	}
	e.ID = id
	s.events[i] = e
	return e, nil
}

func (s *Store) DeleteEvent(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.eventIndex(id)
	if i < 0 {
		return errors.Wrapf(ErrNotFound, "event %d", id)
	}
	s.events = append(s.events[:i:i], s.events[i+1:]...)
	return nil
}

func (s *Store) eventIndex(id int) int {
	for i, e := range s.events {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// Certificates

func (s *Store) ListCertificates() []models.Certificate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Certificate{}, s.certificates...)
}

func (s *Store) IssueCertificate(id int, issuedOn time.Time) (models.Certificate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.certificates {
		if s.certificates[i].ID == id {
			s.certificates[i].Status = models.CertificateIssued
			s.certificates[i].IssueDate = issuedOn.Format(utils.DateLayout)
			return s.certificates[i], nil
		}
	}
	return models.Certificate{}, errors.Wrapf(ErrNotFound, "certificate %d", id)
}

// Admin

func (s *Store) AdminStats() models.AdminStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.adminStats
}

// RecentStudents filters by a case-insensitive match on name or class.
func (s *Store) RecentStudents(term string) []models.StudentSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]models.StudentSummary, 0, len(s.recentStudents))
	for _, st := range s.recentStudents {
		if term == "" ||
			strings.Contains(strings.ToLower(st.Name), term) ||
			strings.Contains(strings.ToLower(st.Class), term) {
			out = append(out, st)
		}
	}
	return out
}

func (s *Store) Activities() []models.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Activity{}, s.activities...)
}

// Uploads

func (s *Store) AddUpload(u models.Upload) models.Upload {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = len(s.uploads) + 1
	s.uploads = append(s.uploads, u)
	return u
}

// ListUploads returns uploads for username, or all when username is empty.
func (s *Store) ListUploads(username string) []models.Upload {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Upload, 0, len(s.uploads))
	for _, u := range s.uploads {
		if username == "" || u.Username == username {
			out = append(out, u)
		}
	}
	return out
}
