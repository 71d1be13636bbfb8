package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/xiebiao/bookshelf/pkg/tracing"
)

const (
	// RequestIDKey gin.Context中请求ID的key
	RequestIDKey = "request_id"
	// RequestIDHeader 请求ID响应头(客户端传入时沿用)
	RequestIDHeader = "X-Request-ID"

	slowRequestThreshold = 3 * time.Second
)

// Logger 请求日志中间件
// 1. 生成或沿用请求ID,写入Context和响应头
// 2. 请求结束后输出一行访问日志(方法、路径、状态码、耗时、请求ID、TraceID)
// 3. 慢请求额外输出WARN
//
// 不记录请求体,避免日志膨胀
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		start := time.Now()

		c.Next()

		latency := time.Since(start)

		var errMsg string
		if len(c.Errors) > 0 {
			errMsg = c.Errors.String()
		}

		log.Printf("[GIN] %3d | %13v | %15s | %-7s %s | request_id=%s trace_id=%s %s",
			c.Writer.Status(),
			latency,
			c.ClientIP(),
			c.Request.Method,
			c.Request.URL.Path,
			requestID,
			tracing.ExtractTraceID(c.Request.Context()),
			errMsg,
		)

		if latency > slowRequestThreshold {
			log.Printf("[WARN] Slow request: %s %s took %v", c.Request.Method, c.Request.URL.Path, latency)
		}
	}
}

// GetRequestID 从Context获取请求ID
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
