package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/vaishnav/edutech_backend_v1/internal/auth"
	"github.com/vaishnav/edutech_backend_v1/internal/metrics"
	"github.com/vaishnav/edutech_backend_v1/internal/middleware"
	"github.com/vaishnav/edutech_backend_v1/internal/models"
	"github.com/vaishnav/edutech_backend_v1/internal/session"
)

type AuthController struct {
	Sessions *session.Manager
	Auth     middleware.AuthConfig
	Log      *zap.Logger
	Metrics  *metrics.Registry
}

func (a *AuthController) Login(c *gin.Context) {
	var req auth.Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "username and password are required")
		return
	}

	s, err := a.Sessions.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			a.count("invalid")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		a.count("error")
		a.Log.Error("login failed", zap.String("username", req.Username), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "login interrupted"})
		return
	}

	token, err := middleware.IssueToken(s, a.Auth, time.Now().UTC())
	if err != nil {
		a.Sessions.Logout(s.ID)
		a.Log.Error("issue token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	a.count("success")
	a.Log.Info("login", zap.String("username", s.User.Username), zap.String("role", string(s.User.Role)))

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "Bearer",
		"expires_in":   int(a.Auth.JWTExpiresIn.Seconds()),
		"role":         s.User.Role,
		"session_id":   s.ID,
		"dashboard":    DashboardFor(s.User.Role),
	})
}

// Logout ends the session; it succeeds even if the session was already gone.
func (a *AuthController) Logout(c *gin.Context) {
	if s := middleware.CurrentSession(c); s != nil {
		a.Sessions.Logout(s.ID)
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (a *AuthController) Me(c *gin.Context) {
	uVal, _ := c.Get(middleware.UserKey)
	user := uVal.(models.User)
	s := middleware.CurrentSession(c)
	c.JSON(http.StatusOK, gin.H{
		"username":   user.Username,
		"full_name":  user.FullName,
		"role":       user.Role,
		"session_id": s.ID,
		"created_at": s.CreatedAt,
		"dashboard":  DashboardFor(user.Role),
	})
}

func (a *AuthController) count(outcome string) {
	if a.Metrics != nil {
		a.Metrics.Logins.WithLabelValues(outcome).Inc()
	}
}
