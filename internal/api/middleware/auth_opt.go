package middleware

import (
	"Lumigram/internal/pkg/redis"
	"Lumigram/internal/pkg/security"
	"Lumigram/internal/service"
	"context"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthOptionalMiddleware 可选鉴权：解析成功注入内部用户 ID，失败或缺失则按匿名处理
func AuthOptionalMiddleware(userSvc service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", uint64(0))

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")

		signature, err := security.ExtractSignature(token)
		if err != nil {
			c.Next()
			return
		}

		// 注销名单同样适用于可选鉴权，查询失败按匿名处理
		value, err := redis.GetValue(c.Request.Context(), signature)
		if err != nil || value != "" {
			c.Next()
			return
		}

		claims, err := security.ValidateToken(token)
		if err != nil {
			c.Next()
			return
		}

		user, err := userSvc.ResolveSubject(c.Request.Context(), claims.Subject)
		if err != nil || user == nil {
			c.Next()
			return
		}

		c.Set("user_id", user.ID)
		newCtx := context.WithValue(c.Request.Context(), "user_id", user.ID)
		c.Request = c.Request.WithContext(newCtx)
		c.Next()
	}
}
