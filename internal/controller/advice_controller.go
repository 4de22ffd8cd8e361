package controller

import (
	"errors"
	"net/http"

	"antoanmang_backend/internal/model"
	"antoanmang_backend/internal/service"
	"antoanmang_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AdviceController phơi endpoint sinh lời khuyên đồng bộ. Khuôn dạng
// phản hồi phẳng ({advice} / {error}) là hợp đồng client đang dựa vào,
// không dùng util.Response.
type AdviceController struct {
	Advice *service.AdviceService
}

func NewAdviceController(advice *service.AdviceService) *AdviceController {
	return &AdviceController{Advice: advice}
}

type GenerateAdviceRequest struct {
	Level         model.RiskLevel `json:"level"`
	Score         int             `json:"score"`
	StudentScores map[string]int  `json:"studentScores"`
}

// @Summary Sinh lời khuyên cho một kết quả khảo sát
// @Tags Lời khuyên
// @Accept json
// @Produce json
// @Param body body GenerateAdviceRequest true "Mức rủi ro, tổng điểm và điểm từng câu"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /advice [post]
func (c *AdviceController) GenerateAdvice(ctx *gin.Context) {
	var req GenerateAdviceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if !req.Level.Valid() {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid risk level"})
		return
	}

	// Mức An Toàn không cần lời khuyên và không gọi dịch vụ ngoài.
	if req.Level == model.RiskSafe {
		ctx.JSON(http.StatusOK, gin.H{"advice": ""})
		return
	}

	advice, err := c.Advice.GenerateAdvice(ctx.Request.Context(), req.Level, req.Score, req.StudentScores)
	if err != nil {
		if errors.Is(err, util.ErrMissingAPIKey) {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server configuration error: API key is missing. Please contact the administrator."})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred while generating advice."})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"advice": advice})
}
