package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dsa_tracker_backend/internal/config"
	"dsa_tracker_backend/internal/controller"
	"dsa_tracker_backend/internal/repository"
	"dsa_tracker_backend/internal/service"
	"dsa_tracker_backend/internal/stats"
	"dsa_tracker_backend/internal/util"
	"dsa_tracker_backend/pkg/configwatcher"
	"dsa_tracker_backend/pkg/database"
	"dsa_tracker_backend/pkg/logger"
	"dsa_tracker_backend/pkg/mailer"
	"dsa_tracker_backend/pkg/monitoring"
	"dsa_tracker_backend/pkg/security"
	"dsa_tracker_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user        *repository.UserRepository
	problem     *repository.ProblemRepository
	chapter     *repository.ChapterRepository
	session     *repository.StudySessionRepository
	goal        *repository.GoalRepository
	schedule    *repository.ScheduleRepository
	snippet     *repository.SnippetRepository
	prefs       *repository.PreferencesRepository
	achievement *repository.AchievementRepository
}

type services struct {
	auth        *service.AuthService
	storage     *service.StorageService
	problem     *service.ProblemService
	chapter     *service.ChapterService
	session     *service.StudySessionService
	goal        *service.GoalService
	schedule    *service.ScheduleService
	snippet     *service.SnippetService
	achievement *service.AchievementService
	analytics   *service.AnalyticsService
	user        *service.UserService
	reminder    *service.ReminderService
}

type controllers struct {
	auth        *controller.AuthController
	problem     *controller.ProblemController
	chapter     *controller.ChapterController
	session     *controller.StudySessionController
	goal        *controller.GoalController
	schedule    *controller.ScheduleController
	snippet     *controller.SnippetController
	achievement *controller.AchievementController
	analytics   *controller.AnalyticsController
	user        *controller.UserController
	upload      *controller.UploadController
	reminder    *controller.ReminderController
	health      *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(db),
		problem:     repository.NewProblemRepository(db),
		chapter:     repository.NewChapterRepository(db),
		session:     repository.NewStudySessionRepository(db),
		goal:        repository.NewGoalRepository(db),
		schedule:    repository.NewScheduleRepository(db),
		snippet:     repository.NewSnippetRepository(db),
		prefs:       repository.NewPreferencesRepository(db),
		achievement: repository.NewAchievementRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	lookback := cfg.Stats.StreakLookbackDays
	if lookback <= 0 {
		lookback = stats.DefaultStreakLookbackDays
	}
	cache := service.NewStatsCache(rdb, cfg.Stats.CacheTTL)

	s := &services{}
	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, repos.prefs, cfg)
	s.problem = service.NewProblemService(repos.problem)
	s.chapter = service.NewChapterService(repos.chapter, repos.prefs)
	s.session = service.NewStudySessionService(repos.session, repos.prefs, cache, lookback)
	s.goal = service.NewGoalService(repos.goal)
	s.schedule = service.NewScheduleService(repos.schedule)
	s.snippet = service.NewSnippetService(repos.snippet)
	s.achievement = service.NewAchievementService(repos.problem, repos.chapter, repos.session, repos.prefs, repos.achievement, lookback)
	s.analytics = service.NewAnalyticsService(repos.problem, repos.chapter, repos.session, repos.prefs, cache, lookback)
	s.user = service.NewUserService(repos.user, repos.problem, repos.chapter, repos.session, repos.prefs, repos.achievement, cache, lookback)
	s.reminder = service.NewReminderService(repos.user, repos.prefs, repos.session, repos.problem, mailer.New(cfg.Email), cfg.Email.AppBaseURL)
	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth),
		problem:     controller.NewProblemController(s.problem),
		chapter:     controller.NewChapterController(s.chapter),
		session:     controller.NewStudySessionController(s.session),
		goal:        controller.NewGoalController(s.goal),
		schedule:    controller.NewScheduleController(s.schedule),
		snippet:     controller.NewSnippetController(s.snippet),
		achievement: controller.NewAchievementController(s.achievement),
		analytics:   controller.NewAnalyticsController(s.analytics),
		user:        controller.NewUserController(s.user),
		upload:      controller.NewUploadController(s.storage, s.problem),
		reminder:    controller.NewReminderController(s.reminder),
		health:      controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 600
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// 统计缓存是可选依赖，redis不可用时降级为每次重算
		logger.Log.Warn("Redis unavailable, stats cache disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("dsa-tracker", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	// 配置文件热更新只做日志提示，连接类配置需要重启生效
	go configwatcher.WatchConfig("configs/config.yaml", cfg, func(c interface{}) {
		logger.Log.Info("config file changed, restart to apply connection settings")
	})

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
