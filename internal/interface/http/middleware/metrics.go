package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookshelf/pkg/metrics"
)

// Metrics Prometheus HTTP指标中间件
// path标签使用路由模板(/books/:id),避免每个ID生成一条时间序列
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		metrics.IncGauge(metrics.HTTPRequestsInProgress)
		defer metrics.DecGauge(metrics.HTTPRequestsInProgress)

		start := time.Now()
		c.Next()

		path := routePath(c)
		metrics.IncCounterVec(metrics.HTTPRequestsTotal, map[string]string{
			"method": c.Request.Method,
			"path":   path,
			"status": strconv.Itoa(c.Writer.Status()),
		})
		metrics.ObserveHistogramVec(metrics.HTTPRequestDuration, map[string]string{
			"method": c.Request.Method,
			"path":   path,
		}, time.Since(start).Seconds())
	}
}

// routePath 未匹配任何路由时返回固定值
func routePath(c *gin.Context) string {
	if p := c.FullPath(); p != "" {
		return p
	}
	return "unmatched"
}
