package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vaishnav/edutech_backend_v1/internal/database"
	"github.com/vaishnav/edutech_backend_v1/internal/models"
)

type AttendanceController struct {
	Store    *database.Store
	Uploader *Uploader
}

func (a *AttendanceController) Get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"stats":          a.Store.AttendanceStats(),
		"recent":         a.Store.RecentAttendance(),
		"missed_classes": a.Store.MissedClasses(),
	})
}

func (a *AttendanceController) UploadLeaveLetter(c *gin.Context) {
	uVal, _ := c.Get("user")
	up, ok := a.Uploader.accept(c, models.UploadLeaveLetter, uVal.(models.User))
	if !ok {
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Leave letter uploaded successfully!",
		"upload":  up,
	})
}
