package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskboard/internal/auth"
	"taskboard/internal/config"
	"taskboard/internal/handler"
	"taskboard/internal/middleware"
	"taskboard/internal/repository"
	"taskboard/internal/service"
	"taskboard/internal/spreadsheet"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Server struct {
	Engine *gin.Engine
	Config *config.Config
}

func Init(cfg *config.Config) (*Server, error) {
	gw, err := spreadsheet.New(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create spreadsheet client: %w", err)
	}
	log.Println("✅ Connected to Google Sheets")

	if cfg.TemplateSheetID == "" {
		log.Printf("⚠️  %s is not set, board endpoints will fail", service.TemplateSetting)
	}

	return &Server{
		Engine: NewEngine(cfg, gw),
		Config: cfg,
	}, nil
}

// NewEngine wires repositories, services and handlers over gw.
func NewEngine(cfg *config.Config, gw spreadsheet.Gateway) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestID())

	// Initialize repositories
	memberRepo := repository.NewMemberRepository(gw)
	projectRepo := repository.NewProjectRepository(gw)
	taskRepo := repository.NewTaskRepository(gw)

	// Initialize services
	memberService := service.NewMemberService(memberRepo, cfg.TemplateSheetID)
	projectService := service.NewProjectService(projectRepo, cfg.TemplateSheetID)
	taskService := service.NewTaskService(taskRepo)

	var tokens *auth.Tokens
	if cfg.SessionsEnabled() {
		tokens = auth.NewTokens(cfg.JWTSecret, cfg.JWTExpiryHours)
	}

	// Initialize handlers
	memberHandler := handler.NewMemberHandler(memberService)
	projectHandler := handler.NewProjectHandler(projectService)
	taskHandler := handler.NewTaskHandler(taskService)
	sessionHandler := handler.NewSessionHandler(memberService, tokens)

	// Public routes
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.POST("/sessions", sessionHandler.Create)

	// Board routes, protected when sessions are enabled
	board := r.Group("/")
	if cfg.SessionsEnabled() {
		board.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	}
	{
		board.GET("/members", memberHandler.GetAll)

		// Project routes
		board.GET("/projects", projectHandler.GetAll)
		board.POST("/projects", projectHandler.Create)
		board.DELETE("/projects/:projectId", projectHandler.Delete)
		board.GET("/projects/:projectId/progress", taskHandler.Progress)
		board.GET("/projects/:projectId/reminders", taskHandler.Reminders)

		// Task routes
		board.GET("/projects/:projectId/tasks", taskHandler.GetAll)
		board.POST("/projects/:projectId/tasks", taskHandler.Create)
		board.PUT("/projects/:projectId/tasks", taskHandler.Update)
		board.DELETE("/projects/:projectId/tasks", taskHandler.Delete)
		board.POST("/projects/:projectId/tasks/move", taskHandler.Move)
	}
	return r
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		log.Printf("🚀 Server running on port %s\n", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %s", err)
	}

	log.Println("✅ Server exited properly")
}
