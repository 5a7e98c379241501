package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"taskflow/internal/auth"
	"taskflow/internal/config"
	"taskflow/internal/handler"
	"taskflow/internal/insight"
	"taskflow/internal/middleware"
	"taskflow/internal/model"
	"taskflow/internal/notify"
	"taskflow/internal/render"
	"taskflow/internal/repository"
	"taskflow/internal/store"
	"taskflow/internal/timeline"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
	Store  *store.Store

	log     *slog.Logger
	cleanup []func()
}

func openDB(cfg config.DBConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DSN())
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.Path)
	case config.DriverMemory:
		dialector = sqlite.Open("file::memory:")
	default:
		return nil, fmt.Errorf("unsupported DB driver %q", cfg.Driver)
	}
	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		return nil, err
	}
	if cfg.Driver == config.DriverMemory {
		// Every pooled connection would otherwise see its own empty database.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

func Init(cfg *config.Config, log *slog.Logger) (*Server, error) {
	db, err := openDB(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
	}
	log.Info("✅ Connected to database", "driver", cfg.DB.Driver)

	if err := db.AutoMigrate(&model.User{}, &model.Project{}, &model.ProjectMember{}, &model.Task{}); err != nil {
		return nil, fmt.Errorf("❌ failed to migrate DB: %w", err)
	}

	weekStart, err := cfg.Timeline.Weekday()
	if err != nil {
		return nil, err
	}
	theme := render.DefaultTheme()
	if cfg.Timeline.ThemePath != "" {
		if theme, err = render.LoadTheme(cfg.Timeline.ThemePath); err != nil {
			return nil, err
		}
	}

	// Application state
	st := store.New()
	syncer := repository.NewSyncer(db, st, log)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := syncer.Load(ctx); err != nil {
		return nil, fmt.Errorf("❌ failed to load store: %w", err)
	}
	stopSync := syncer.Start()

	toasts := notify.NewQueue(notify.WithDefaultDuration(cfg.Timeline.ToastDuration))
	calc := timeline.NewCalculator(timeline.Options{BaseDayWidth: cfg.Timeline.BaseDayWidth, WeekStart: weekStart})
	ctrl := timeline.NewController(st, toasts, cfg.Timeline.ToastDuration)
	stopRelease := st.Subscribe(func(e store.Event) {
		if e.Collection == store.Tasks && e.Kind == store.Deleted && ctrl.Release(e.ID) {
			log.Info("gesture released for deleted task", "task_id", e.ID)
		}
	})
	aggregator := insight.NewAggregator(log)

	// Identity
	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL())
	identity := auth.NewService(repository.NewUserRepository(db), tokens)

	// Setup Gin
	r := gin.Default()
	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	// Initialize handlers
	userHandler := handler.NewUserHandler(identity)
	projectHandler := handler.NewProjectHandler(st, identity, aggregator)
	taskHandler := handler.NewTaskHandler(st, time.Now)
	timelineHandler := handler.NewTimelineHandler(st, calc, ctrl, theme, time.Now)
	dashboardHandler := handler.NewDashboardHandler(st, identity, aggregator, time.Now)
	notificationHandler := handler.NewNotificationHandler(toasts)
	snapshotHandler := handler.NewSnapshotHandler(st)

	// Public routes
	r.GET("/health", healthHandler(db))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.POST("/register", userHandler.Register)
	r.POST("/login", userHandler.Login)

	// Protected routes - require authentication
	authorized := r.Group("/")
	authorized.Use(middleware.JWTAuthMiddleware(tokens))
	{
		authorized.GET("/me", userHandler.Me)

		// Project routes
		authorized.POST("/projects", projectHandler.CreateProject)
		authorized.GET("/projects", projectHandler.ListProjects)
		authorized.GET("/projects/:id", projectHandler.GetProject)
		authorized.PATCH("/projects/:id", projectHandler.UpdateProject)
		authorized.DELETE("/projects/:id", projectHandler.DeleteProject)
		authorized.POST("/projects/:id/select", projectHandler.SelectProject)
		authorized.DELETE("/selection/project", projectHandler.ClearSelection)
		authorized.POST("/projects/:id/members", projectHandler.AddMember)
		authorized.DELETE("/projects/:id/members/:user_id", projectHandler.RemoveMember)
		authorized.GET("/projects/:id/progress", projectHandler.GetProgress)

		// Task routes
		authorized.POST("/tasks", taskHandler.CreateTask)
		authorized.GET("/projects/:id/tasks", taskHandler.ListProjectTasks)
		authorized.GET("/tasks/:id", taskHandler.GetTask)
		authorized.PATCH("/tasks/:id", taskHandler.UpdateTask)
		authorized.DELETE("/tasks/:id", taskHandler.DeleteTask)
		authorized.POST("/tasks/:id/status", taskHandler.ChangeStatus)
		authorized.POST("/tasks/:id/priority", taskHandler.ChangePriority)
		authorized.POST("/tasks/:id/assignee", taskHandler.ChangeAssignee)
		authorized.POST("/tasks/:id/select", taskHandler.SelectTask)
		authorized.DELETE("/selection/task", taskHandler.ClearSelection)
		authorized.GET("/tasks/:id/health", taskHandler.GetHealth)

		// Timeline routes
		authorized.GET("/projects/:id/timeline", timelineHandler.GetTimeline)
		authorized.POST("/projects/:id/timeline/click", timelineHandler.Click)
		authorized.GET("/projects/:id/gantt.svg", timelineHandler.GanttSVG)
		authorized.POST("/timeline/zoom", timelineHandler.Zoom)
		authorized.GET("/timeline/gesture", timelineHandler.GetGesture)
		authorized.POST("/timeline/gesture/start", timelineHandler.StartGesture)
		authorized.POST("/timeline/gesture/move", timelineHandler.MoveGesture)
		authorized.POST("/timeline/gesture/end", timelineHandler.EndGesture)
		authorized.POST("/timeline/gesture/cancel", timelineHandler.CancelGesture)

		authorized.GET("/dashboard", dashboardHandler.GetDashboard)
		authorized.GET("/notifications", notificationHandler.ListNotifications)
		authorized.GET("/snapshot", snapshotHandler.Export)
		authorized.PUT("/snapshot", snapshotHandler.Import)
	}

	return &Server{
		Engine:  r,
		DB:      db,
		Config:  cfg,
		Store:   st,
		log:     log,
		cleanup: []func(){stopRelease, stopSync},
	}, nil
}

func healthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		s.log.Info("🚀 Server running", "port", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("❌ Failed to listen", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	s.log.Info("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		s.log.Error("❌ Server forced to shutdown", "error", err)
	}
	for _, stop := range s.cleanup {
		stop()
	}
	if sqlDB, err := s.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}

	s.log.Info("✅ Server exited properly")
}
