package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/vaishnav/edutech_backend_v1/internal/database"
	"github.com/vaishnav/edutech_backend_v1/internal/validation"
)

// Clock supplies "now" in the school's time zone.
type Clock struct {
	Loc *time.Location
	Now func() time.Time
}

func (c Clock) now() time.Time {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	if c.Loc == nil {
		return now()
	}
	return now().In(c.Loc)
}

func (c Clock) location() *time.Location {
	if c.Loc == nil {
		return time.Local
	}
	return c.Loc
}

func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

// bindError writes a 400 for a failed ShouldBindJSON. Missing required fields get the
// form's generic message.
func bindError(c *gin.Context, err error, missingMsg string) {
	if missingMsg != "" && validation.IsMissing(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": missingMsg, "fields": validation.Translate(err)})
		return
	}
	if fields := validation.Translate(err); fields != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": fields})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// storeError maps store sentinel errors onto HTTP statuses.
func storeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, database.ErrSubmissionsClosed), errors.Is(err, database.ErrSubmissionLimit):
		c.JSON(http.StatusConflict, gin.H{"error": errors.Cause(err).Error()})
	case errors.Is(err, database.ErrMarksOutOfRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": errors.Cause(err).Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
