package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vaishnav/edutech_backend_v1/internal/database"
	"github.com/vaishnav/edutech_backend_v1/internal/models"
	"github.com/vaishnav/edutech_backend_v1/internal/utils"
)

const missingFieldsMsg = "Please fill in all required fields"

type AssignmentController struct {
	Store    *database.Store
	Uploader *Uploader
	Clock    Clock
	Log      *zap.Logger
}

type assignmentRequest struct {
	Title          string      `json:"title" binding:"required,notblank"`
	Description    string      `json:"description" binding:"required,notblank"`
	Subject        string      `json:"subject" binding:"required,notblank"`
	DueDate        string      `json:"due_date" binding:"required,notblank,isodate"`
	DueTime        string      `json:"due_time" binding:"required,notblank,clock"`
	TotalMarks     FlexibleInt `json:"total_marks"`
	MaxSubmissions FlexibleInt `json:"max_submissions"`
}

type gradeRequest struct {
	Marks    *int   `json:"marks" binding:"required"`
	Feedback string `json:"feedback"`
}

// List groups assignments by status. ?status= narrows to one group.
func (ac *AssignmentController) List(c *gin.Context) {
	groups := map[models.AssignmentStatus][]models.Assignment{
		models.AssignmentLive:      {},
		models.AssignmentCompleted: {},
		models.AssignmentOverdue:   {},
	}
	for _, a := range ac.Store.ListAssignments() {
		groups[a.Status] = append(groups[a.Status], a)
	}

	status := models.AssignmentStatus(strings.ToLower(strings.TrimSpace(c.Query("status"))))
	if status != "" {
		items, ok := groups[status]
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": items, "meta": gin.H{"status": status, "total": len(items)}})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data": groups,
		"meta": gin.H{
			"live":      len(groups[models.AssignmentLive]),
			"completed": len(groups[models.AssignmentCompleted]),
			"overdue":   len(groups[models.AssignmentOverdue]),
		},
	})
}

func (ac *AssignmentController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	a, err := ac.Store.GetAssignment(id)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"assignment":   a,
		"due_time_12h": utils.FormatClock(a.DueTime),
		"submissions":  ac.Store.ListSubmissions(id),
	})
}

func (ac *AssignmentController) ListSubmissions(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if _, err := ac.Store.GetAssignment(id); err != nil {
		storeError(c, err)
		return
	}
	items, meta := paginate(ac.Store.ListSubmissions(id), parsePage(c))
	c.JSON(http.StatusOK, gin.H{"data": items, "meta": meta})
}

func (ac *AssignmentController) Create(c *gin.Context) {
	var req assignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, missingFieldsMsg)
		return
	}
	due, err := utils.ParseSchedule(req.DueDate, req.DueTime, ac.Clock.location())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	now := ac.Clock.now()
	uVal, _ := c.Get("user")
	admin := uVal.(models.User)

	a := ac.Store.CreateAssignment(models.Assignment{
		Title:          strings.TrimSpace(req.Title),
		Description:    strings.TrimSpace(req.Description),
		Subject:        strings.TrimSpace(req.Subject),
		DueDate:        req.DueDate,
		DueTime:        req.DueTime,
		Status:         utils.ClassifyAssignment(due, now),
		TotalMarks:     req.TotalMarks.Value,
		MaxSubmissions: req.MaxSubmissions.Ptr(),
		CreatedBy:      admin.Username,
		CreatedDate:    now.Format(utils.DateLayout),
	})
	ac.Log.Info("assignment created", zap.Int("id", a.ID), zap.String("by", admin.Username))
	c.JSON(http.StatusCreated, a)
}

// Update replaces the editable fields and re-derives the status from the new due date.
func (ac *AssignmentController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req assignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, missingFieldsMsg)
		return
	}
	due, err := utils.ParseSchedule(req.DueDate, req.DueTime, ac.Clock.location())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	now := ac.Clock.now()
	a, err := ac.Store.UpdateAssignment(id, func(a *models.Assignment) error {
		a.Title = strings.TrimSpace(req.Title)
		a.Description = strings.TrimSpace(req.Description)
		a.Subject = strings.TrimSpace(req.Subject)
		a.DueDate = req.DueDate
		a.DueTime = req.DueTime
		a.TotalMarks = req.TotalMarks.Value
		a.MaxSubmissions = req.MaxSubmissions.Ptr()
		a.Status = utils.ClassifyAssignment(due, now)
		return nil
	})
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (ac *AssignmentController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ac.Store.DeleteAssignment(id); err != nil {
		storeError(c, err)
		return
	}
	ac.Log.Info("assignment deleted", zap.Int("id", id))
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// Submit records a student's file against a live assignment.
func (ac *AssignmentController) Submit(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if _, err := ac.Store.GetAssignment(id); err != nil {
		storeError(c, err)
		return
	}
	uVal, _ := c.Get("user")
	student := uVal.(models.User)
	name, ok := ac.Uploader.fileName(c, models.UploadAssignment)
	if !ok {
		return
	}
	now := ac.Clock.now()
	sub, err := ac.Store.AddSubmission(models.Submission{
		AssignmentID:   id,
		StudentName:    student.FullName,
		StudentID:      student.Username,
		SubmissionDate: now.Format(utils.DateLayout),
		SubmissionTime: now.Format(utils.ClockLayout),
		FileName:       name,
		Status:         models.SubmissionSubmitted,
	})
	if err != nil {
		storeError(c, err)
		return
	}
	ac.Uploader.record(models.UploadAssignment, name, student)
	c.JSON(http.StatusCreated, gin.H{"message": "Assignment uploaded successfully!", "submission": sub})
}

func (ac *AssignmentController) Grade(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req gradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "marks are required")
		return
	}
	sub, err := ac.Store.GradeSubmission(id, *req.Marks, strings.TrimSpace(req.Feedback))
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}
