package middleware

import (
	"Lumigram/internal/api/config"
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

const defaultRequestTimeout = 5 * time.Second

// TimeoutMiddleware 在请求边界挂上超时，下游数据库、对象存储和缓存
// 的调用统一受请求上下文的截止时间约束
func TimeoutMiddleware() gin.HandlerFunc {
	timeout := defaultRequestTimeout
	if config.Cfg != nil && config.Cfg.Server.RequestTimeout > 0 {
		timeout = time.Duration(config.Cfg.Server.RequestTimeout) * time.Second
	}

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
