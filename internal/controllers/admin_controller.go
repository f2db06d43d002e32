package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vaishnav/edutech_backend_v1/internal/database"
	"github.com/vaishnav/edutech_backend_v1/internal/middleware"
	"github.com/vaishnav/edutech_backend_v1/internal/session"
)

type AdminController struct {
	Store *database.Store
}

type tabRequest struct {
	Tab string `json:"tab" binding:"required,notblank"`
}

// Dashboard returns stats, the recent students table and recent activity. A q
// parameter, when present, replaces the session's search term.
func (a *AdminController) Dashboard(c *gin.Context) {
	s := middleware.CurrentSession(c)
	view := s.AdminView()
	if q, ok := c.GetQuery("q"); ok {
		view = s.SetSearch(strings.TrimSpace(q))
	}
	c.JSON(http.StatusOK, a.payload(s, view))
}

func (a *AdminController) ChangeTab(c *gin.Context) {
	var req tabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "tab is required")
		return
	}
	s := middleware.CurrentSession(c)
	view, err := s.ChangeTab(req.Tab)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, a.payload(s, view))
}

func (a *AdminController) Back(c *gin.Context) {
	s := middleware.CurrentSession(c)
	c.JSON(http.StatusOK, a.payload(s, s.AdminBack()))
}

func (a *AdminController) payload(s *session.Session, view session.AdminView) gin.H {
	students := a.Store.RecentStudents(view.SearchTerm)
	return gin.H{
		"user":              s.User,
		"view":              view,
		"stats":             a.Store.AdminStats(),
		"recent_students":   students,
		"recent_activities": a.Store.Activities(),
		"meta": gin.H{
			"search": view.SearchTerm,
			"total":  len(students),
		},
	}
}
