package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"antoanmang_backend/internal/config"
	"antoanmang_backend/internal/controller"
	"antoanmang_backend/internal/model"
	"antoanmang_backend/internal/repository"
	"antoanmang_backend/internal/service"
	"antoanmang_backend/pkg/database"
	"antoanmang_backend/pkg/logger"
	"antoanmang_backend/pkg/monitoring"
	"antoanmang_backend/pkg/security"
	"antoanmang_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	services *services
}

type services struct {
	bank        *service.QuestionBankService
	scoring     *service.ScoringService
	advice      *service.AdviceService
	submissions *service.SubmissionService
	report      *service.ReportService
	storage     *service.StorageService
	export      *service.ExportService
}

type controllers struct {
	quiz    *controller.QuizController
	advice  *controller.AdviceController
	teacher *controller.TeacherController
	health  *controller.HealthController
}

func (a *App) initServices(cfg *config.Config, bank *model.QuestionBank, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	s.bank = service.NewQuestionBankService(bank)
	s.scoring = service.NewScoringService(bank, cfg.Quiz.SafeThreshold, cfg.Quiz.MediumThreshold)
	s.advice = service.NewAdviceService(cfg.AI, bank)

	// CSDL hỏng ngay từ đầu: chạy luôn bằng kho bộ nhớ, không chặn khảo sát.
	var store repository.SubmissionStore
	if db != nil {
		store = repository.NewSubmissionRepository(db)
	} else {
		store = repository.NewMemorySubmissionStore()
	}
	s.submissions = service.NewSubmissionService(store, s.scoring, s.advice)

	s.report = service.NewReportService(s.submissions, rdb)
	s.submissions.OnAppend = s.report.Invalidate

	s.storage = service.NewStorageService(cfg)
	s.export = service.NewExportService(s.submissions, s.storage)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		quiz:    controller.NewQuizController(s.bank, s.submissions),
		advice:  controller.NewAdviceController(s.advice),
		teacher: controller.NewTeacherController(a.Config, s.submissions, s.report, s.export),
		health:  controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// ReloadConfig áp các thông số đổi được lúc chạy: ngưỡng phân loại,
// cấu hình AI, mật khẩu giáo viên.
func (a *App) ReloadConfig(newCfg *config.Config) {
	a.services.scoring.SetThresholds(newCfg.Quiz.SafeThreshold, newCfg.Quiz.MediumThreshold)
	a.services.advice.SetConfig(newCfg.AI)
	a.Config.Teacher = newCfg.Teacher
	logger.Log.Info("Config reloaded",
		zap.Int("safe_threshold", newCfg.Quiz.SafeThreshold),
		zap.Int("medium_threshold", newCfg.Quiz.MediumThreshold))
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	bank, err := model.LoadQuestionBank(cfg.Quiz.QuestionFile)
	if err != nil {
		logger.Log.Fatal("Failed to load question bank", zap.Error(err))
	}
	logger.Log.Info("Question bank loaded", zap.Int("questions", len(bank.Questions)))

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Warn("Failed to initialize database, submissions will only live in memory", zap.Error(err))
		db = nil
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Warn("Failed to initialize redis, report caching disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	services := app.initServices(cfg, bank, db, rdb)
	app.services = services
	controllers := app.initControllers(services, db)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("antoanmang-survey", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

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
