// @title An Toàn Mạng API
// @version 1.0
// @description Backend cho khảo sát an toàn mạng học đường: bộ câu hỏi, chấm điểm rủi ro, lời khuyên AI và dashboard giáo viên.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"log"

	"antoanmang_backend/internal/app"
	"antoanmang_backend/internal/config"
	"antoanmang_backend/pkg/configwatcher"
	"antoanmang_backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	go configwatcher.WatchConfig("configs/config.yaml", application.ReloadConfig)

	application.Run()
}
