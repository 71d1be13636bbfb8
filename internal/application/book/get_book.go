package book

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/pkg/tracing"
)

// GetBookUseCase 图书详情用例
type GetBookUseCase struct {
	bookService book.Service
}

// NewGetBookUseCase 创建详情用例
func NewGetBookUseCase(bookService book.Service) *GetBookUseCase {
	return &GetBookUseCase{
		bookService: bookService,
	}
}

// Execute 执行详情查询
func (uc *GetBookUseCase) Execute(ctx context.Context, id uint) (*BookResult, error) {
	ctx, span := startSpan(ctx, "GetBook", id)
	defer span.End()

	found, err := uc.bookService.GetBook(ctx, id)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}
	return toResult(found), nil
}
