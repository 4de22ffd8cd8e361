package controller

import (
	"fmt"
	"net/http"
	"sort"

	"antoanmang_backend/internal/config"
	"antoanmang_backend/internal/service"
	"antoanmang_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TeacherController struct {
	Config      *config.Config
	Submissions *service.SubmissionService
	Report      *service.ReportService
	Export      *service.ExportService
}

func NewTeacherController(cfg *config.Config, subs *service.SubmissionService, report *service.ReportService, export *service.ExportService) *TeacherController {
	return &TeacherController{Config: cfg, Submissions: subs, Report: report, Export: export}
}

type TeacherLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// @Summary Đăng nhập dashboard giáo viên
// @Description So khớp mật khẩu chung tĩnh (plaintext). Đây chỉ là rào chắn tốc độ, không phải xác thực thật.
// @Tags Giáo viên
// @Accept json
// @Produce json
// @Param body body TeacherLoginRequest true "Mật khẩu"
// @Success 200 {object} util.Response
// @Failure 401 {object} util.Response
// @Router /teacher/login [post]
func (c *TeacherController) Login(ctx *gin.Context) {
	var req TeacherLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if req.Password != c.Config.Teacher.Password {
		util.Error(ctx, http.StatusUnauthorized, util.ErrWrongPassword.Error())
		return
	}

	token, err := util.GenerateTeacherJWT(c.Config.JWT.Secret, c.Config.JWT.ExpireTime)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"token": token})
}

// @Summary Danh sách bài khảo sát đã nộp
// @Tags Giáo viên
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /teacher/submissions [get]
func (c *TeacherController) ListSubmissions(ctx *gin.Context) {
	subs := c.Submissions.FindAll()

	// Mới nhất trước; đây là việc của tầng hiển thị, kho vẫn giữ thứ tự ghi.
	sort.SliceStable(subs, func(i, j int) bool {
		return subs[i].Timestamp > subs[j].Timestamp
	})

	util.Success(ctx, gin.H{
		"total":       len(subs),
		"submissions": subs,
	})
}

// @Summary Thống kê số lượng và tỉ lệ theo mức rủi ro
// @Tags Giáo viên
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /teacher/report [get]
func (c *TeacherController) GetReport(ctx *gin.Context) {
	util.Success(ctx, c.Report.Summary(ctx.Request.Context()))
}

// @Summary Xuất danh sách bài nộp ra file Excel
// @Tags Giáo viên
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} binary
// @Router /teacher/export [get]
func (c *TeacherController) ExportSubmissions(ctx *gin.Context) {
	data, filename, err := c.Export.Export(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	ctx.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
