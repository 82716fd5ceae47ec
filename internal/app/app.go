package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"supercharge_backend/internal/catalog"
	"supercharge_backend/internal/config"
	"supercharge_backend/internal/controller"
	"supercharge_backend/internal/repository"
	"supercharge_backend/internal/service"
	"supercharge_backend/pkg/database"
	"supercharge_backend/pkg/logger"
	"supercharge_backend/pkg/monitoring"
	"supercharge_backend/pkg/security"
	"supercharge_backend/pkg/tracing"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config  *config.Config
	Router  *gin.Engine
	DB      *gorm.DB
	Redis   *redis.Client
	Catalog *catalog.Catalog
}

type repositories struct {
	user        *repository.UserRepository
	progress    *repository.ProgressRepository
	achievement *repository.AchievementRepository
	certificate *repository.CertificateRepository
	share       *repository.ShareRepository
}

type services struct {
	auth        *service.AuthService
	user        *service.UserService
	storage     *service.StorageService
	progress    *service.ProgressService
	achievement *service.AchievementService
	quiz        *service.QuizService
	certificate *service.CertificateService
	share       *service.ShareService
}

type controllers struct {
	auth        *controller.AuthController
	user        *controller.UserController
	catalog     *controller.CatalogController
	progress    *controller.ProgressController
	achievement *controller.AchievementController
	quiz        *controller.QuizController
	certificate *controller.CertificateController
	share       *controller.ShareController
	health      *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(db),
		progress:    repository.NewProgressRepository(db),
		achievement: repository.NewAchievementRepository(db),
		certificate: repository.NewCertificateRepository(db),
		share:       repository.NewShareRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user, s.storage)
	s.achievement = service.NewAchievementService(repos.achievement, repos.progress, a.Catalog)
	s.progress = service.NewProgressService(repos.progress, s.achievement, a.Catalog)
	s.quiz = service.NewQuizService(a.Catalog)
	s.certificate = service.NewCertificateService(repos.certificate, repos.progress, s.achievement, repos.user, a.Catalog, rdb)
	s.share = service.NewShareService(repos.share, repos.progress, s.achievement, repos.user, a.Catalog, rdb)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth),
		user:        controller.NewUserController(s.user),
		catalog:     controller.NewCatalogController(a.Catalog),
		progress:    controller.NewProgressController(s.progress),
		achievement: controller.NewAchievementController(s.achievement),
		quiz:        controller.NewQuizController(s.quiz),
		certificate: controller.NewCertificateController(s.certificate),
		share:       controller.NewShareController(s.share),
		health:      controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if cfg.ForceMigrate || cfg.MigrateOnly {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Failed to migrate database", zap.Error(err))
		}
		logger.Log.Info("Database migration completed")
		if cfg.MigrateOnly {
			os.Exit(0)
		}
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config:  cfg,
		DB:      db,
		Redis:   rdb,
		Catalog: catalog.Default(),
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("supercharge-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
