package middleware

import (
	"strings"

	"hotelbooking/response"
	"hotelbooking/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware xác thực Bearer token và gán userID vào context.
// Mọi route nghiệp vụ đều yêu cầu session hợp lệ.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, err := services.GetUserIDFromToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}

// CurrentUserID lấy userID đã được AuthMiddleware gán vào context
func CurrentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint)
	return userID, ok
}
