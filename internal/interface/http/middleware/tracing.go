package middleware

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"

	"github.com/xiebiao/bookshelf/pkg/tracing"
)

const httpTracerName = "bookshelf/http"

// Tracing 为每个请求创建根Span
// 上游传入traceparent时延续同一条链路,Span名为"方法 路由模板"
func Tracing() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := otel.GetTextMapPropagator().Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))

		ctx, span := tracing.StartSpan(ctx, httpTracerName, c.Request.Method+" "+routePath(c))
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.route", routePath(c)),
			attribute.Int("http.status_code", status),
			attribute.String("request.id", GetRequestID(c)),
		)
		if len(c.Errors) > 0 && status >= 500 {
			tracing.RecordError(span, c.Errors.Last().Err)
		}
	}
}
