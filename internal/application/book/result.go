package book

import (
	"context"
	"encoding/json"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
	"github.com/xiebiao/bookshelf/pkg/metrics"
	"github.com/xiebiao/bookshelf/pkg/tracing"
)

// tracerName 应用层Span的来源标识
const tracerName = "bookshelf/application/book"

// BookResult 用例输出DTO
// 设计说明:
// 1. 字段与对外JSON一一对应,HTTP层直接序列化
// 2. 与领域实体解耦,实体增加字段不会意外暴露
type BookResult struct {
	ID            uint   `json:"id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	ISBN          string `json:"isbn"`
	PublishedYear int    `json:"published_year"`
	IsFavorite    bool   `json:"is_favorite"`
}

// BookInput 创建/更新用例的输入DTO
type BookInput struct {
	Title         string
	Author        string
	ISBN          string
	PublishedYear json.RawMessage // 保留原始JSON token,由领域层解析
}

func (in BookInput) toDraft() book.Draft {
	return book.Draft{
		Title:         in.Title,
		Author:        in.Author,
		ISBN:          in.ISBN,
		PublishedYear: in.PublishedYear,
	}
}

func toResult(b *book.Book) *BookResult {
	return &BookResult{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		ISBN:          b.ISBN,
		PublishedYear: b.PublishedYear,
		IsFavorite:    b.IsFavorite,
	}
}

// startSpan 为用例创建子Span,带上图书ID(为0时不设置)
func startSpan(ctx context.Context, name string, id uint) (context.Context, trace.Span) {
	ctx, span := tracing.StartSpan(ctx, tracerName, name)
	if id != 0 {
		span.SetAttributes(attribute.Int64("book.id", int64(id)))
	}
	return ctx, span
}

// recordValidationFailure 校验失败按错误信息计数
func recordValidationFailure(err error) {
	for _, rule := range []*apperrors.AppError{book.ErrFieldsRequired, book.ErrInvalidPublishedYear, book.ErrInvalidISBN} {
		if errors.Is(err, rule) {
			metrics.IncCounterVec(metrics.BookValidationFailuresTotal, map[string]string{"reason": rule.Message})
			return
		}
	}
}
