package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"learning_platform_backend/internal/config"
	"learning_platform_backend/internal/controller"
	"learning_platform_backend/internal/repository"
	"learning_platform_backend/internal/service"
	"learning_platform_backend/pkg/database"
	"learning_platform_backend/pkg/logger"
	"learning_platform_backend/pkg/monitoring"
	"learning_platform_backend/pkg/security"
	"learning_platform_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	services *services
	tracer   *sdktrace.TracerProvider
}

type repositories struct {
	user     *repository.UserRepository
	chapter  *repository.ChapterRepository
	progress *repository.ProgressRepository
	quiz     *repository.QuizResultRepository
	exercise *repository.ExerciseSubmissionRepository
	badge    *repository.BadgeRepository
}

type services struct {
	auth     *service.AuthService
	chapter  *service.ChapterService
	progress *service.ProgressService
	quiz     *service.QuizService
	exercise *service.ExerciseService
	badge    *service.BadgeService
}

type controllers struct {
	auth     *controller.AuthController
	chapter  *controller.ChapterController
	progress *controller.ProgressController
	quiz     *controller.QuizController
	exercise *controller.ExerciseController
	badge    *controller.BadgeController
	health   *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		chapter:  repository.NewChapterRepository(db),
		progress: repository.NewProgressRepository(db),
		quiz:     repository.NewQuizResultRepository(db),
		exercise: repository.NewExerciseSubmissionRepository(db),
		badge:    repository.NewBadgeRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.auth = service.NewAuthService(repos.user, cfg)
	s.chapter = service.NewChapterService(repos.chapter, cfg, rdb)
	s.badge = service.NewBadgeService(repos.badge, repos.user, repos.progress, repos.quiz, repos.exercise)
	s.progress = service.NewProgressService(repos.progress, s.badge)
	s.quiz = service.NewQuizService(repos.quiz, s.badge)
	s.exercise = service.NewExerciseService(repos.exercise, s.badge)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:     controller.NewAuthController(s.auth),
		chapter:  controller.NewChapterController(s.chapter),
		progress: controller.NewProgressController(s.progress),
		quiz:     controller.NewQuizController(s.quiz),
		exercise: controller.NewExerciseController(s.exercise),
		badge:    controller.NewBadgeController(s.badge),
		health:   controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests,
		time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("learning-platform", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	app.registerRoutes(router, controllers, cfg)

	// 启动时显式同步一次章节目录；单目录出错不阻塞启动
	loaded, errs := services.chapter.SyncFromFilesystem(cfg.Content.Path)
	logger.Log.Info("Chapter catalog bootstrap complete",
		zap.Int("loaded", loaded), zap.Int("errors", len(errs)))

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
