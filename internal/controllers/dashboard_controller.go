package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vaishnav/edutech_backend_v1/internal/database"
	"github.com/vaishnav/edutech_backend_v1/internal/middleware"
	"github.com/vaishnav/edutech_backend_v1/internal/models"
	"github.com/vaishnav/edutech_backend_v1/internal/session"
)

const disciplineScore = 100

type DashboardController struct {
	Store *database.Store
}

type sectionRequest struct {
	Section string `json:"section" binding:"required,notblank"`
}

type languageRequest struct {
	Language string `json:"language" binding:"required,notblank"`
}

type sectionSummary struct {
	Name    string `json:"name"`
	Opens   string `json:"opens,omitempty"`
	Summary string `json:"summary,omitempty"`
}

func (d *DashboardController) Student(c *gin.Context) {
	s := middleware.CurrentSession(c)
	c.JSON(http.StatusOK, d.studentPayload(s, s.StudentView()))
}

func (d *DashboardController) SelectSection(c *gin.Context) {
	var req sectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "section is required")
		return
	}
	s := middleware.CurrentSession(c)
	c.JSON(http.StatusOK, d.studentPayload(s, s.SelectSection(req.Section)))
}

func (d *DashboardController) SelectLanguage(c *gin.Context) {
	var req languageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "language is required")
		return
	}
	s := middleware.CurrentSession(c)
	view, err := s.SelectLanguage(req.Language)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "languages": session.Languages})
		return
	}
	c.JSON(http.StatusOK, d.studentPayload(s, view))
}

func (d *DashboardController) StudentBack(c *gin.Context) {
	s := middleware.CurrentSession(c)
	c.JSON(http.StatusOK, d.studentPayload(s, s.StudentBack()))
}

func (d *DashboardController) studentPayload(s *session.Session, view session.StudentView) gin.H {
	profile := d.Store.Profile()
	stats := d.Store.AttendanceStats()
	return gin.H{
		"user":                  s.User,
		"view":                  view,
		"languages":             session.Languages,
		"sections":              d.sections(view, profile),
		"discipline_score":      disciplineScore,
		"academic_grade":        profile.LatestGrade(),
		"attendance_percentage": stats.AttendancePercentage,
	}
}

// sections lists the navigation menu. The active non-page section carries a summary.
func (d *DashboardController) sections(view session.StudentView, profile models.StudentProfile) []sectionSummary {
	out := make([]sectionSummary, 0, len(session.Sections))
	for _, name := range session.Sections {
		sec := sectionSummary{Name: name}
		switch name {
		case "ATTENDANCE":
			sec.Opens = "/api/v1/student/attendance"
		case "EVENTS":
			sec.Opens = "/api/v1/events"
		}
		if view.ActiveSection == name {
			switch name {
			case "ASSIGNMENTS":
				sec.Summary = d.assignmentSummary()
			case "CLASS RECORDS":
				sec.Summary = recentGrades(profile)
			}
		}
		out = append(out, sec)
	}
	return out
}

func (d *DashboardController) assignmentSummary() string {
	var pending []models.Assignment
	for _, a := range d.Store.ListAssignments() {
		if a.Pending() {
			pending = append(pending, a)
		}
	}
	if len(pending) == 0 {
		return "No assignments pending."
	}
	return fmt.Sprintf("%d assignments pending. Next due: %s (%s)", len(pending), pending[0].Title, pending[0].DueDate)
}

func recentGrades(p models.StudentProfile) string {
	if len(p.CIAExams) == 0 {
		return "No recent grades."
	}
	latest := p.CIAExams[len(p.CIAExams)-1]
	parts := make([]string, 0, len(latest.Marks))
	for _, m := range latest.Marks {
		parts = append(parts, fmt.Sprintf("%s (%d/%d)", m.Subject, m.Score, m.Max))
	}
	return fmt.Sprintf("Recent grades, %s: %s", latest.Exam, strings.Join(parts, ", "))
}
