package controller

import (
	"errors"

	"antoanmang_backend/internal/service"
	"antoanmang_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	Bank        *service.QuestionBankService
	Submissions *service.SubmissionService
}

func NewQuizController(bank *service.QuestionBankService, subs *service.SubmissionService) *QuizController {
	return &QuizController{Bank: bank, Submissions: subs}
}

// @Summary Lấy bộ câu hỏi khảo sát theo mục
// @Tags Khảo sát
// @Produce json
// @Success 200 {object} util.Response
// @Router /questions [get]
func (c *QuizController) GetQuestions(ctx *gin.Context) {
	util.Success(ctx, c.Bank.Sections())
}

// @Summary Nộp bài khảo sát
// @Tags Khảo sát
// @Accept json
// @Produce json
// @Param body body service.SubmitRequest true "Thông tin học sinh và câu trả lời"
// @Success 201 {object} util.Response
// @Router /submissions [post]
func (c *QuizController) Submit(ctx *gin.Context) {
	var req service.SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Submissions.Submit(req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrInvalidStudentInfo),
			errors.Is(err, util.ErrIncompleteAnswerSet),
			errors.Is(err, util.ErrInvalidAnswer):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, result)
}

// @Summary Thăm dò trạng thái lời khuyên của một bài nộp
// @Tags Khảo sát
// @Produce json
// @Param id path string true "Mã bài nộp"
// @Success 200 {object} util.Response
// @Router /submissions/{id}/advice [get]
func (c *QuizController) GetAdvice(ctx *gin.Context) {
	result, err := c.Submissions.AdviceStatus(ctx.Param("id"))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, result)
}

// @Summary Huỷ phiên lời khuyên (học sinh quay về màn hình đầu)
// @Tags Khảo sát
// @Produce json
// @Param id path string true "Mã bài nộp"
// @Success 200 {object} util.Response
// @Router /submissions/{id}/advice [delete]
func (c *QuizController) ResetAdvice(ctx *gin.Context) {
	c.Submissions.ResetAdvice(ctx.Param("id"))
	util.Success(ctx, nil)
}
