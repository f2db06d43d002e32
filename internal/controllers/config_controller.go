package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vaishnav/edutech_backend_v1/internal/config"
	"github.com/vaishnav/edutech_backend_v1/internal/models"
	"github.com/vaishnav/edutech_backend_v1/internal/session"
	"github.com/vaishnav/edutech_backend_v1/internal/utils"
)

type ConfigController struct {
	Cfg *config.Config
}

// Get exposes the client-facing settings: labels, menus and upload allowlists.
func (cc *ConfigController) Get(c *gin.Context) {
	uploads := gin.H{}
	for _, kind := range []models.UploadKind{
		models.UploadAssignment,
		models.UploadLeaveLetter,
		models.UploadODForm,
		models.UploadCertificate,
	} {
		uploads[string(kind)] = utils.AllowedExtensions(kind)
	}
	c.JSON(http.StatusOK, gin.H{
		"app_env":           cc.Cfg.AppEnv,
		"languages":         session.Languages,
		"sections":          session.Sections,
		"upload_extensions": uploads,
		"assistant_enabled": cc.Cfg.AssistantEnabled(),
		"timezone":          cc.Cfg.Location().String(),
	})
}
