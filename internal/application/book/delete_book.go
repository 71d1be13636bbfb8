package book

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/pkg/metrics"
	"github.com/xiebiao/bookshelf/pkg/tracing"
)

// DeleteBookUseCase 图书删除用例(物理删除,ID不会复用)
type DeleteBookUseCase struct {
	bookService book.Service
}

// NewDeleteBookUseCase 创建删除用例
func NewDeleteBookUseCase(bookService book.Service) *DeleteBookUseCase {
	return &DeleteBookUseCase{
		bookService: bookService,
	}
}

// Execute 执行删除用例
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id uint) error {
	ctx, span := startSpan(ctx, "DeleteBook", id)
	defer span.End()

	if err := uc.bookService.DeleteBook(ctx, id); err != nil {
		tracing.RecordError(span, err)
		return err
	}

	metrics.IncCounter(metrics.BooksDeletedTotal)
	return nil
}
