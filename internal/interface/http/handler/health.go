package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/interface/http/dto"
	"github.com/xiebiao/bookshelf/pkg/response"
)

// HealthHandler 健康检查
type HealthHandler struct {
	bookService book.Service
}

// NewHealthHandler 创建健康检查处理器
func NewHealthHandler(bookService book.Service) *HealthHandler {
	return &HealthHandler{bookService: bookService}
}

// Ping 健康检查,顺带确认数据库可用
// @Summary      健康检查
// @Tags         系统
// @Produce      json
// @Success      200 {object} dto.HealthResponse
// @Failure      500 {object} response.ErrorBody "数据库不可用"
// @Router       /ping [get]
func (h *HealthHandler) Ping(c *gin.Context) {
	count, err := h.bookService.CountBooks(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.HealthResponse{
		Message: "pong",
		Status:  "healthy",
		Books:   count,
	})
}
