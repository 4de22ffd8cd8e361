package middleware

import (
	"strings"

	"antoanmang_backend/internal/config"
	"antoanmang_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// TeacherAuthMiddleware yêu cầu token cấp ra sau khi qua rào mật khẩu
// giáo viên. Lưu ý: rào này chỉ là một mật khẩu chung tĩnh, không phải
// ranh giới bảo mật thật.
func TeacherAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseTeacherJWT(tokenString, cfg.JWT.Secret)
		if err != nil || claims.Role != "teacher" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("teacher", claims)
		c.Next()
	}
}
