package book

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/pkg/metrics"
	"github.com/xiebiao/bookshelf/pkg/tracing"
)

// UpdateBookUseCase 图书更新用例
// 覆盖标题、作者、ISBN、出版年份,收藏状态保持不变
type UpdateBookUseCase struct {
	bookService book.Service
}

// NewUpdateBookUseCase 创建更新用例
func NewUpdateBookUseCase(bookService book.Service) *UpdateBookUseCase {
	return &UpdateBookUseCase{
		bookService: bookService,
	}
}

// Execute 执行更新用例
func (uc *UpdateBookUseCase) Execute(ctx context.Context, id uint, in BookInput) (*BookResult, error) {
	ctx, span := startSpan(ctx, "UpdateBook", id)
	defer span.End()

	updated, err := uc.bookService.UpdateBook(ctx, id, in.toDraft())
	if err != nil {
		recordValidationFailure(err)
		tracing.RecordError(span, err)
		return nil, err
	}

	metrics.IncCounter(metrics.BooksUpdatedTotal)
	return toResult(updated), nil
}
