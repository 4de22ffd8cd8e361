package app

import (
	"antoanmang_backend/docs"
	"antoanmang_backend/internal/config"
	"antoanmang_backend/internal/middleware"
	"antoanmang_backend/internal/util"
	"antoanmang_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// Endpoint lời khuyên chỉ nhận POST; các method khác phải trả 405
	// thay vì 404 mặc định của gin.
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(ctx *gin.Context) {
		util.MethodNotAllowed(ctx)
	})

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)
		api.GET("/questions", c.quiz.GetQuestions)

		api.POST("/submissions", c.quiz.Submit)
		api.GET("/submissions/:id/advice", c.quiz.GetAdvice)
		api.DELETE("/submissions/:id/advice", c.quiz.ResetAdvice)

		api.POST("/advice", c.advice.GenerateAdvice)

		api.POST("/teacher/login", c.teacher.Login)
	}

	teacher := api.Group("/teacher")
	teacher.Use(middleware.TeacherAuthMiddleware(cfg))
	{
		teacher.GET("/submissions", c.teacher.ListSubmissions)
		teacher.GET("/report", c.teacher.GetReport)
		teacher.GET("/export", c.teacher.ExportSubmissions)
	}

	// Bản sao file xuất (chế độ lưu cục bộ).
	if cfg.Storage.Type == util.StorageLocal && cfg.Storage.LocalPath != "" {
		router.Static("/exports", cfg.Storage.LocalPath)
	}
}
