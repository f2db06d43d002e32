package models

type AssignmentStatus string

const (
	AssignmentLive      AssignmentStatus = "live"
	AssignmentCompleted AssignmentStatus = "completed"
	AssignmentOverdue   AssignmentStatus = "overdue"
)

type Assignment struct {
	ID             int              `json:"id"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	Subject        string           `json:"subject"`
	DueDate        string           `json:"due_date"`
	DueTime        string           `json:"due_time"`
	Status         AssignmentStatus `json:"status"`
	TotalMarks     int              `json:"total_marks"`
	Submissions    int              `json:"submissions"`
	MaxSubmissions *int             `json:"max_submissions,omitempty"`
	CreatedBy      string           `json:"created_by"`
	CreatedDate    string           `json:"created_date"`
}

// Pending reports whether the assignment still expects work from students.
func (a Assignment) Pending() bool {
	return a.Status == AssignmentLive || a.Status == AssignmentOverdue
}

type SubmissionStatus string

const (
	SubmissionSubmitted SubmissionStatus = "submitted"
	SubmissionGraded    SubmissionStatus = "graded"
	SubmissionLate      SubmissionStatus = "late"
)

type Submission struct {
	ID             int              `json:"id"`
	AssignmentID   int              `json:"assignment_id"`
	StudentName    string           `json:"student_name"`
	StudentID      string           `json:"student_id"`
	SubmissionDate string           `json:"submission_date"`
	SubmissionTime string           `json:"submission_time"`
	FileName       string           `json:"file_name"`
	Status         SubmissionStatus `json:"status"`
	Marks          *int             `json:"marks,omitempty"`
	Feedback       string           `json:"feedback,omitempty"`
}
