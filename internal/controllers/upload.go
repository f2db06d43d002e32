package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vaishnav/edutech_backend_v1/internal/database"
	"github.com/vaishnav/edutech_backend_v1/internal/metrics"
	"github.com/vaishnav/edutech_backend_v1/internal/models"
	"github.com/vaishnav/edutech_backend_v1/internal/utils"
)

const maxUploadBytes = 10 << 20

// Uploader reads the multipart "file" field. Only the file name is retained; the
// bytes are never stored.
type Uploader struct {
	Store   *database.Store
	Metrics *metrics.Registry
	Clock   Clock
}

// accept validates and records the upload. On failure it has already written the
// response.
func (u *Uploader) accept(c *gin.Context, kind models.UploadKind, user models.User) (models.Upload, bool) {
	name, ok := u.fileName(c, kind)
	if !ok {
		return models.Upload{}, false
	}
	return u.record(kind, name, user), true
}

// fileName checks the "file" field against kind's allowlist.
func (u *Uploader) fileName(c *gin.Context, kind models.UploadKind) (string, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return "", false
	}
	name, err := utils.CheckUploadName(kind, fh.Filename)
	if err != nil {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{
			"error":   err.Error(),
			"allowed": strings.Join(utils.AllowedExtensions(kind), ","),
		})
		return "", false
	}
	return name, true
}

func (u *Uploader) record(kind models.UploadKind, name string, user models.User) models.Upload {
	rec := u.Store.AddUpload(models.Upload{
		Kind:       kind,
		FileName:   name,
		Username:   user.Username,
		UploadedAt: u.Clock.now(),
	})
	if u.Metrics != nil {
		u.Metrics.Uploads.WithLabelValues(string(kind)).Inc()
	}
	return rec
}

// Mine lists the caller's uploads.
func (u *Uploader) Mine(c *gin.Context) {
	uVal, _ := c.Get("user")
	items, meta := paginate(u.Store.ListUploads(uVal.(models.User).Username), parsePage(c))
	c.JSON(http.StatusOK, gin.H{"data": items, "meta": meta})
}
