package book

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/pkg/metrics"
	"github.com/xiebiao/bookshelf/pkg/tracing"
)

// CreateBookUseCase 图书创建用例
// 设计说明:
// 1. 应用层负责用例编排,字段校验与ISBN唯一性由领域服务和仓储负责
// 2. 输入输出使用DTO,与HTTP层解耦
type CreateBookUseCase struct {
	bookService book.Service
}

// NewCreateBookUseCase 创建图书创建用例
func NewCreateBookUseCase(bookService book.Service) *CreateBookUseCase {
	return &CreateBookUseCase{
		bookService: bookService,
	}
}

// Execute 执行创建用例,新书收藏状态为false
func (uc *CreateBookUseCase) Execute(ctx context.Context, in BookInput) (*BookResult, error) {
	ctx, span := startSpan(ctx, "CreateBook", 0)
	defer span.End()

	created, err := uc.bookService.CreateBook(ctx, in.toDraft())
	if err != nil {
		recordValidationFailure(err)
		tracing.RecordError(span, err)
		return nil, err
	}

	metrics.IncCounter(metrics.BooksCreatedTotal)
	return toResult(created), nil
}
