package book

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/pkg/metrics"
	"github.com/xiebiao/bookshelf/pkg/tracing"
)

// ToggleFavoriteUseCase 收藏切换用例
// 设计说明:
// 1. 翻转在存储层一条UPDATE内完成,并发切换不会丢失
// 2. 返回切换后的完整记录
type ToggleFavoriteUseCase struct {
	bookService book.Service
}

// NewToggleFavoriteUseCase 创建收藏切换用例
func NewToggleFavoriteUseCase(bookService book.Service) *ToggleFavoriteUseCase {
	return &ToggleFavoriteUseCase{
		bookService: bookService,
	}
}

// Execute 执行收藏切换
func (uc *ToggleFavoriteUseCase) Execute(ctx context.Context, id uint) (*BookResult, error) {
	ctx, span := startSpan(ctx, "ToggleFavorite", id)
	defer span.End()

	toggled, err := uc.bookService.ToggleFavorite(ctx, id)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Bool("book.is_favorite", toggled.IsFavorite))
	metrics.IncCounter(metrics.BookFavoriteTogglesTotal)
	return toResult(toggled), nil
}
