package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/vaishnav/edutech_backend_v1/internal/assistant"
	"github.com/vaishnav/edutech_backend_v1/internal/auth"
	"github.com/vaishnav/edutech_backend_v1/internal/config"
	"github.com/vaishnav/edutech_backend_v1/internal/database"
	"github.com/vaishnav/edutech_backend_v1/internal/logging"
	"github.com/vaishnav/edutech_backend_v1/internal/metrics"
	"github.com/vaishnav/edutech_backend_v1/internal/middleware"
	"github.com/vaishnav/edutech_backend_v1/internal/routes"
	"github.com/vaishnav/edutech_backend_v1/internal/session"
	"github.com/vaishnav/edutech_backend_v1/internal/ws"
)

func main() {
	// Load .env (non-fatal if missing in production)
	_ = godotenv.Load()

	cfg := config.Load()

	logger, err := logging.New(cfg.IsProduction())
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer logger.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	store := database.Open()
	database.Seed(store)

	accounts, err := auth.ParseAccounts(cfg.DemoUsers)
	if err != nil {
		logger.Fatal("invalid DEMO_USERS", zap.Error(err))
	}
	provider, err := auth.NewStaticProvider(accounts, 0)
	if err != nil {
		logger.Fatal("credential provider", zap.Error(err))
	}
	sessions := session.NewManager(provider,
		session.WithDelay(cfg.LoginLatency()),
		session.WithTTL(cfg.TokenTTL()),
	)

	reg := metrics.New()
	var gen assistant.Generator
	if cfg.AssistantEnabled() {
		gen = assistant.NewGeminiClient(cfg.GenAIURL)
	}
	bot := assistant.New(gen, cfg.AssistantTimeout(), logger.Named("assistant"), reg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := ws.NewChatHub()
	go hub.Run(ctx)
	go sessions.RunSweeper(ctx, time.Minute)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))
	routes.Register(r, routes.Deps{
		Cfg:       cfg,
		Store:     store,
		Sessions:  sessions,
		Assistant: bot,
		Hub:       hub,
		Metrics:   reg,
		Log:       logger,
	})

	port := cfg.Port
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{Addr: ":" + port, Handler: r}

	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr), zap.String("env", cfg.AppEnv), zap.Bool("assistant", gen != nil))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server exited with error", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}
