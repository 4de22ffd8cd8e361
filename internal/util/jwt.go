package util

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// TeacherClaims chỉ mang một sự kiện: người giữ token đã qua được rào
// mật khẩu giáo viên. Không có danh tính hay phân quyền nào khác.
type TeacherClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func GenerateTeacherJWT(secret string, expiration time.Duration) (string, error) {
	expirationTime := time.Now().Add(expiration)

	claims := &TeacherClaims{
		Role: "teacher",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseTeacherJWT(tokenString, secret string) (*TeacherClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TeacherClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*TeacherClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, err
}

func GetTeacherFromContext(c *gin.Context) *TeacherClaims {
	v, exists := c.Get("teacher")
	if !exists {
		return nil
	}
	claims, ok := v.(*TeacherClaims)
	if !ok {
		return nil
	}
	return claims
}
