package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vaishnav/edutech_backend_v1/internal/assistant"
	"github.com/vaishnav/edutech_backend_v1/internal/config"
	"github.com/vaishnav/edutech_backend_v1/internal/controllers"
	"github.com/vaishnav/edutech_backend_v1/internal/database"
	"github.com/vaishnav/edutech_backend_v1/internal/metrics"
	"github.com/vaishnav/edutech_backend_v1/internal/middleware"
	"github.com/vaishnav/edutech_backend_v1/internal/models"
	"github.com/vaishnav/edutech_backend_v1/internal/session"
	"github.com/vaishnav/edutech_backend_v1/internal/validation"
	"github.com/vaishnav/edutech_backend_v1/internal/ws"
)

// Deps is everything the router wires into controllers.
type Deps struct {
	Cfg       *config.Config
	Store     *database.Store
	Sessions  *session.Manager
	Assistant *assistant.Assistant
	Hub       *ws.ChatHub
	Metrics   *metrics.Registry
	Log       *zap.Logger
	Now       func() time.Time // nil means time.Now
}

func Register(r *gin.Engine, d Deps) {
	validation.Init()
	if d.Log == nil {
		d.Log = zap.NewNop()
	}

	corsCfg := cors.DefaultConfig()
	origins := d.Cfg.AllowedOrigins()
	if len(origins) == 1 && origins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
	}
	corsCfg.AddAllowHeaders("Authorization")
	r.Use(cors.New(corsCfg))

	authCfg := middleware.AuthConfig{
		JWTSecret:    d.Cfg.JWTSecret,
		JWTExpiresIn: d.Cfg.TokenTTL(),
	}
	clock := controllers.Clock{Loc: d.Cfg.Location(), Now: d.Now}
	uploader := &controllers.Uploader{Store: d.Store, Metrics: d.Metrics, Clock: clock}

	// Controllers
	authCtrl := &controllers.AuthController{Sessions: d.Sessions, Auth: authCfg, Log: d.Log, Metrics: d.Metrics}
	dashCtrl := &controllers.DashboardController{Store: d.Store}
	adminCtrl := &controllers.AdminController{Store: d.Store}
	attendanceCtrl := &controllers.AttendanceController{Store: d.Store, Uploader: uploader}
	assignCtrl := &controllers.AssignmentController{Store: d.Store, Uploader: uploader, Clock: clock, Log: d.Log}
	eventCtrl := &controllers.EventController{Store: d.Store, Uploader: uploader, Clock: clock, Log: d.Log}
	assistantCtrl := &controllers.AssistantController{Store: d.Store, Assistant: d.Assistant, Hub: d.Hub, Clock: clock}
	cfgCtrl := &controllers.ConfigController{Cfg: d.Cfg}

	// Public
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": d.Sessions.Count()})
	})
	if d.Metrics != nil {
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}
	r.GET("/api/v1/config/public", cfgCtrl.Get)

	authGroup := r.Group("/api/v1/auth")
	{
		authGroup.POST("/login", authCtrl.Login)
		authGroup.POST("/logout", middleware.OptionalAuth(d.Sessions, authCfg), authCtrl.Logout)
	}

	// Websocket clients may pass the token as ?token=
	wsAuth := authCfg
	wsAuth.AllowQueryToken = true
	r.GET("/api/v1/student/assistant/ws",
		middleware.AuthMiddleware(d.Sessions, wsAuth),
		middleware.RequireRoles(models.RoleStudent),
		assistantCtrl.Socket,
	)

	// Protected
	api := r.Group("/api/v1", middleware.AuthMiddleware(d.Sessions, authCfg))
	{
		api.GET("/auth/me", authCtrl.Me)

		// Shared sub-pages (both roles)
		api.GET("/assignments", assignCtrl.List)
		api.GET("/assignments/:id", assignCtrl.Get)
		api.GET("/assignments/:id/submissions", assignCtrl.ListSubmissions)
		api.GET("/events", eventCtrl.List)
		api.GET("/events/:id", eventCtrl.Get)
		api.GET("/certificates", eventCtrl.Certificates)
		api.GET("/uploads", uploader.Mine)

		student := api.Group("/student", middleware.RequireRoles(models.RoleStudent))
		{
			student.GET("/dashboard", dashCtrl.Student)
			student.POST("/dashboard/section", dashCtrl.SelectSection)
			student.PUT("/dashboard/language", dashCtrl.SelectLanguage)
			student.POST("/dashboard/back", dashCtrl.StudentBack)

			student.GET("/attendance", attendanceCtrl.Get)
			student.POST("/attendance/leave-letter", attendanceCtrl.UploadLeaveLetter)

			student.POST("/assignments/:id/submissions", assignCtrl.Submit)

			student.POST("/events/od-form", eventCtrl.UploadODForm)
			student.POST("/events/certificate", eventCtrl.UploadCertificate)

			student.GET("/assistant/messages", assistantCtrl.Messages)
			student.POST("/assistant/messages", assistantCtrl.Send)
		}

		admin := api.Group("/admin", middleware.RequireRoles(models.RoleAdmin))
		{
			admin.GET("/dashboard", adminCtrl.Dashboard)
			admin.POST("/dashboard/tab", adminCtrl.ChangeTab)
			admin.POST("/dashboard/back", adminCtrl.Back)

			admin.POST("/assignments", assignCtrl.Create)
			admin.PUT("/assignments/:id", assignCtrl.Update)
			admin.DELETE("/assignments/:id", assignCtrl.Delete)
			admin.PUT("/submissions/:id/grade", assignCtrl.Grade)

			admin.POST("/events", eventCtrl.Create)
			admin.PUT("/events/:id", eventCtrl.Update)
			admin.DELETE("/events/:id", eventCtrl.Delete)
			admin.POST("/certificates/:id/issue", eventCtrl.IssueCertificate)
		}
	}
}
