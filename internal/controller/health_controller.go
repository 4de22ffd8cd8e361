package controller

import (
	"net/http"

	"antoanmang_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db}
}

// @Summary Kiểm tra sức khoẻ dịch vụ
// @Tags Hệ thống
// @Produce json
// @Success 200 {object} util.Response
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	dbStatus := "up"
	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil || sqlDB.Ping() != nil {
			dbStatus = "down"
		}
	} else {
		dbStatus = "down"
	}

	if dbStatus == "down" {
		// CSDL hỏng không làm sập dịch vụ: kho bài nộp chạy chế độ bộ nhớ.
		util.Error(ctx, http.StatusServiceUnavailable, "Database unavailable")
		return
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"database": dbStatus,
		},
	})
}
