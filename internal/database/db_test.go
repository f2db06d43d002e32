package database

import (
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaishnav/edutech_backend_v1/internal/models"
)

func seeded(t *testing.T) *Store {
	t.Helper()
	s := Open()
	Seed(s)
	return s
}

func TestCreateAssignmentUsesMaxPlusOne(t *testing.T) {
	s := seeded(t)

	a := s.CreateAssignment(models.Assignment{Title: "Biology Worksheet", Status: models.AssignmentLive})
	assert.Equal(t, 6, a.ID)

	require.NoError(t, s.DeleteAssignment(2))
	b := s.CreateAssignment(models.Assignment{Title: "Another"})
	assert.Equal(t, 7, b.ID)
}

func TestCreateAssignmentConcurrentIDsAreUnique(t *testing.T) {
	s := seeded(t)
	var wg sync.WaitGroup
	ids := make(chan int, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- s.CreateAssignment(models.Assignment{Title: "x"}).ID
		}()
	}
	wg.Wait()
	close(ids)
	seen := map[int]bool{}
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, 50)
}

func TestCreateEventUsesMaxPlusOne(t *testing.T) {
	s := seeded(t)
	e := s.CreateEvent(models.Event{Title: "Debate"})
	assert.Equal(t, 6, e.ID)

	got, err := s.GetEvent(6)
	require.NoError(t, err)
	assert.Equal(t, "Debate", got.Title)
}

func TestUpdateAndDeleteNotFound(t *testing.T) {
	s := seeded(t)
	_, err := s.UpdateAssignment(99, func(a *models.Assignment) error { return nil })
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(s.DeleteEvent(99), ErrNotFound))
	_, err = s.GetAssignment(99)
	assert.Equal(t, ErrNotFound, errors.Cause(err))
}

func TestUpdateAssignmentKeepsIDAndSkipsOnError(t *testing.T) {
	s := seeded(t)
	a, err := s.UpdateAssignment(1, func(a *models.Assignment) error {
		a.ID = 42
		a.Title = "Renamed"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, a.ID)
	assert.Equal(t, "Renamed", a.Title)

	_, err = s.UpdateAssignment(1, func(a *models.Assignment) error {
		a.Title = "Nope"
		return errors.New("boom")
	})
	require.Error(t, err)
	got, _ := s.GetAssignment(1)
	assert.Equal(t, "Renamed", got.Title)
}

func TestReadsReturnCopies(t *testing.T) {
	s := seeded(t)
	list := s.ListAssignments()
	list[0].Title = "mutated"
	got, _ := s.GetAssignment(1)
	assert.Equal(t, "Mathematics Problem Set 1", got.Title)
}

func TestAddSubmission(t *testing.T) {
	s := seeded(t)

	sub, err := s.AddSubmission(models.Submission{AssignmentID: 2, FileName: "lab.pdf", Status: models.SubmissionSubmitted})
	require.NoError(t, err)
	assert.Equal(t, 5, sub.ID)
	a, _ := s.GetAssignment(2)
	assert.Equal(t, 19, a.Submissions)
	assert.Len(t, s.ListSubmissions(2), 2)

	_, err = s.AddSubmission(models.Submission{AssignmentID: 4})
	assert.True(t, errors.Is(err, ErrSubmissionsClosed))

	_, err = s.AddSubmission(models.Submission{AssignmentID: 77})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestAddSubmissionLimit(t *testing.T) {
	s := seeded(t)
	_, err := s.UpdateAssignment(1, func(a *models.Assignment) error {
		max := 25
		a.MaxSubmissions = &max
		return nil
	})
	require.NoError(t, err)
	_, err = s.AddSubmission(models.Submission{AssignmentID: 1})
	assert.True(t, errors.Is(err, ErrSubmissionLimit))
}

func TestDeleteAssignmentDropsSubmissions(t *testing.T) {
	s := seeded(t)
	require.NoError(t, s.DeleteAssignment(1))
	assert.Empty(t, s.ListSubmissions(1))
	assert.Len(t, s.ListSubmissions(0), 2)
}

func TestGradeSubmission(t *testing.T) {
	s := seeded(t)
	sub, err := s.GradeSubmission(3, 70, "Solid report")
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionGraded, sub.Status)
	require.NotNil(t, sub.Marks)
	assert.Equal(t, 70, *sub.Marks)

	_, err = s.GradeSubmission(3, 76, "")
	assert.True(t, errors.Is(err, ErrMarksOutOfRange))
	_, err = s.GradeSubmission(3, -1, "")
	assert.True(t, errors.Is(err, ErrMarksOutOfRange))
	_, err = s.GradeSubmission(99, 1, "")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestGradeSubmissionZeroTotalMarks(t *testing.T) {
	s := seeded(t)
	a := s.CreateAssignment(models.Assignment{Title: "Reading Log", Status: models.AssignmentLive})
	require.Equal(t, 0, a.TotalMarks)
	sub, err := s.AddSubmission(models.Submission{AssignmentID: a.ID, FileName: "log.txt", Status: models.SubmissionSubmitted})
	require.NoError(t, err)

	_, err = s.GradeSubmission(sub.ID, 1, "")
	assert.True(t, errors.Is(err, ErrMarksOutOfRange))

	graded, err := s.GradeSubmission(sub.ID, 0, "Noted")
	require.NoError(t, err)
	require.NotNil(t, graded.Marks)
	assert.Equal(t, 0, *graded.Marks)
}

func TestIssueCertificate(t *testing.T) {
	s := seeded(t)
	c, err := s.IssueCertificate(4, time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, models.CertificateIssued, c.Status)
	assert.Equal(t, "2024-03-02", c.IssueDate)
}

func TestRecentStudentsSearch(t *testing.T) {
	s := seeded(t)
	assert.Len(t, s.RecentStudents(""), 5)
	assert.Len(t, s.RecentStudents("10-a"), 2)
	got := s.RecentStudents("  SARAH ")
	require.Len(t, got, 1)
	assert.Equal(t, "Sarah Wilson", got[0].Name)
}

func TestUploads(t *testing.T) {
	s := seeded(t)
	s.AddUpload(models.Upload{Kind: models.UploadLeaveLetter, FileName: "leave.pdf", Username: "student"})
	s.AddUpload(models.Upload{Kind: models.UploadODForm, FileName: "od.pdf", Username: "john.doe"})
	assert.Len(t, s.ListUploads(""), 2)
	got := s.ListUploads("student")
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)
}
