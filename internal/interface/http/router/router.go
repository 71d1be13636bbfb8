package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/internal/interface/http/handler"
	"github.com/xiebiao/bookshelf/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
	"github.com/xiebiao/bookshelf/pkg/response"
)

// NewEngine 创建Gin引擎并注册全部路由
//
// 中间件顺序：Recovery → Logger(请求ID) → Tracing(根Span) → Metrics
func NewEngine(cfg *config.Config, bookHandler *handler.BookHandler, healthHandler *handler.HealthHandler) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.Logger(),
		middleware.Tracing(),
		middleware.Metrics(),
	)

	r.GET("/ping", healthHandler.Ping)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.Server.EnableSwagger {
		// http://localhost:3000/swagger/index.html
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	books := r.Group("/books")
	{
		books.GET("", bookHandler.ListBooks)
		books.POST("", bookHandler.CreateBook)
		// 静态段优先于:id
		books.GET("/recommendations", bookHandler.RecommendBook)
		books.GET("/:id", bookHandler.GetBook)
		books.PUT("/:id", bookHandler.UpdateBook)
		books.DELETE("/:id", bookHandler.DeleteBook)
		books.POST("/:id/favorite", bookHandler.ToggleFavorite)
	}

	// 未注册的路由同样返回JSON错误体
	r.NoRoute(func(c *gin.Context) {
		response.Error(c, apperrors.ErrNotFound)
	})

	return r
}
