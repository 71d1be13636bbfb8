package book

import (
	"context"
	"errors"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/pkg/metrics"
	"github.com/xiebiao/bookshelf/pkg/tracing"
)

// RecommendBookUseCase 随机推荐用例
// 每本书被选中的概率相同,连续两次推荐可能返回同一本
type RecommendBookUseCase struct {
	bookService book.Service
}

// NewRecommendBookUseCase 创建推荐用例
func NewRecommendBookUseCase(bookService book.Service) *RecommendBookUseCase {
	return &RecommendBookUseCase{
		bookService: bookService,
	}
}

// Execute 执行推荐用例,书库为空时返回ErrNoBooksAvailable
func (uc *RecommendBookUseCase) Execute(ctx context.Context) (*BookResult, error) {
	ctx, span := startSpan(ctx, "RecommendBook", 0)
	defer span.End()

	picked, err := uc.bookService.RecommendBook(ctx)
	if err != nil {
		result := metrics.RecommendError
		if errors.Is(err, book.ErrNoBooksAvailable) {
			result = metrics.RecommendEmpty
		}
		metrics.IncCounterVec(metrics.BookRecommendationsTotal, map[string]string{"result": result})
		tracing.RecordError(span, err)
		return nil, err
	}

	metrics.IncCounterVec(metrics.BookRecommendationsTotal, map[string]string{"result": metrics.RecommendHit})
	return toResult(picked), nil
}
