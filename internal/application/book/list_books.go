package book

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/pkg/tracing"
)

// ListBooksUseCase 图书列表查询用例
// 设计说明:
// 1. 返回全部图书,不分页、不排序(顺序由存储决定)
// 2. 空书库返回空切片而不是nil,序列化为[]
type ListBooksUseCase struct {
	bookService book.Service
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(bookService book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{
		bookService: bookService,
	}
}

// Execute 执行列表查询用例
func (uc *ListBooksUseCase) Execute(ctx context.Context) ([]*BookResult, error) {
	ctx, span := startSpan(ctx, "ListBooks", 0)
	defer span.End()

	books, err := uc.bookService.ListBooks(ctx)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}

	list := make([]*BookResult, len(books))
	for i, b := range books {
		list[i] = toResult(b)
	}
	span.SetAttributes(attribute.Int("book.count", len(list)))

	return list, nil
}
