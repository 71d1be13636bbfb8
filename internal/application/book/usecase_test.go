package book

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
	"github.com/xiebiao/bookshelf/pkg/metrics"
)

// mockService 领域服务Mock
type mockService struct {
	mock.Mock
}

func (m *mockService) CreateBook(ctx context.Context, draft book.Draft) (*book.Book, error) {
	args := m.Called(ctx, draft)
	if b := args.Get(0); b != nil {
		return b.(*book.Book), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) GetBook(ctx context.Context, id uint) (*book.Book, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*book.Book), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) ListBooks(ctx context.Context) ([]*book.Book, error) {
	args := m.Called(ctx)
	if b := args.Get(0); b != nil {
		return b.([]*book.Book), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) UpdateBook(ctx context.Context, id uint, draft book.Draft) (*book.Book, error) {
	args := m.Called(ctx, id, draft)
	if b := args.Get(0); b != nil {
		return b.(*book.Book), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) DeleteBook(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockService) RecommendBook(ctx context.Context) (*book.Book, error) {
	args := m.Called(ctx)
	if b := args.Get(0); b != nil {
		return b.(*book.Book), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) ToggleFavorite(ctx context.Context, id uint) (*book.Book, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*book.Book), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) CountBooks(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func dune() *book.Book {
	return &book.Book{ID: 1, Title: "Dune", Author: "Frank Herbert", ISBN: "9780441013593", PublishedYear: 1965}
}

func TestCreateBookUseCase(t *testing.T) {
	metrics.InitMetrics()
	ctx := context.Background()

	t.Run("成功创建", func(t *testing.T) {
		svc := new(mockService)
		in := BookInput{Title: "Dune", Author: "Frank Herbert", ISBN: "9780441013593", PublishedYear: json.RawMessage("1965")}
		svc.On("CreateBook", mock.Anything, in.toDraft()).Return(dune(), nil)

		got, err := NewCreateBookUseCase(svc).Execute(ctx, in)

		require.NoError(t, err)
		assert.Equal(t, &BookResult{ID: 1, Title: "Dune", Author: "Frank Herbert", ISBN: "9780441013593", PublishedYear: 1965}, got)
		svc.AssertExpectations(t)
	})

	t.Run("校验失败原样返回", func(t *testing.T) {
		svc := new(mockService)
		svc.On("CreateBook", mock.Anything, mock.Anything).Return(nil, book.ErrInvalidISBN)

		got, err := NewCreateBookUseCase(svc).Execute(ctx, BookInput{})

		assert.Nil(t, got)
		assert.ErrorIs(t, err, book.ErrInvalidISBN)
	})
}

func TestGetBookUseCase(t *testing.T) {
	svc := new(mockService)
	svc.On("GetBook", mock.Anything, uint(1)).Return(dune(), nil)
	svc.On("GetBook", mock.Anything, uint(2)).Return(nil, book.ErrBookNotFound)
	uc := NewGetBookUseCase(svc)

	got, err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Dune", got.Title)

	_, err = uc.Execute(context.Background(), 2)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

func TestListBooksUseCase(t *testing.T) {
	t.Run("空书库返回空切片", func(t *testing.T) {
		svc := new(mockService)
		svc.On("ListBooks", mock.Anything).Return([]*book.Book{}, nil)

		got, err := NewListBooksUseCase(svc).Execute(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("保持存储顺序", func(t *testing.T) {
		second := dune()
		second.ID = 2
		second.IsFavorite = true
		svc := new(mockService)
		svc.On("ListBooks", mock.Anything).Return([]*book.Book{dune(), second}, nil)

		got, err := NewListBooksUseCase(svc).Execute(context.Background())

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, uint(1), got[0].ID)
		assert.True(t, got[1].IsFavorite)
	})

	t.Run("存储错误", func(t *testing.T) {
		svc := new(mockService)
		svc.On("ListBooks", mock.Anything).Return(nil, apperrors.Wrap(errors.New("disk I/O error"), "Failed to list books"))

		_, err := NewListBooksUseCase(svc).Execute(context.Background())
		assert.Error(t, err)
	})
}

func TestUpdateBookUseCase(t *testing.T) {
	updated := dune()
	updated.Title = "Dune Messiah"
	updated.IsFavorite = true
	in := BookInput{Title: "Dune Messiah", Author: "Frank Herbert", ISBN: "9780441013593", PublishedYear: json.RawMessage("1969")}

	svc := new(mockService)
	svc.On("UpdateBook", mock.Anything, uint(1), in.toDraft()).Return(updated, nil)

	got, err := NewUpdateBookUseCase(svc).Execute(context.Background(), 1, in)

	require.NoError(t, err)
	assert.Equal(t, "Dune Messiah", got.Title)
	assert.True(t, got.IsFavorite)
	svc.AssertExpectations(t)
}

func TestDeleteBookUseCase(t *testing.T) {
	metrics.InitMetrics()
	svc := new(mockService)
	svc.On("DeleteBook", mock.Anything, uint(1)).Return(nil).Once()
	svc.On("DeleteBook", mock.Anything, uint(1)).Return(book.ErrBookNotFound).Once()
	uc := NewDeleteBookUseCase(svc)

	assert.NoError(t, uc.Execute(context.Background(), 1))
	assert.ErrorIs(t, uc.Execute(context.Background(), 1), book.ErrBookNotFound)
}

func TestRecommendBookUseCase(t *testing.T) {
	metrics.InitMetrics()

	t.Run("命中", func(t *testing.T) {
		svc := new(mockService)
		svc.On("RecommendBook", mock.Anything).Return(dune(), nil)

		got, err := NewRecommendBookUseCase(svc).Execute(context.Background())

		require.NoError(t, err)
		assert.Equal(t, uint(1), got.ID)
	})

	t.Run("空书库", func(t *testing.T) {
		svc := new(mockService)
		svc.On("RecommendBook", mock.Anything).Return(nil, book.ErrNoBooksAvailable)

		_, err := NewRecommendBookUseCase(svc).Execute(context.Background())
		assert.ErrorIs(t, err, book.ErrNoBooksAvailable)
	})
}

func TestToggleFavoriteUseCase(t *testing.T) {
	toggled := dune()
	toggled.IsFavorite = true
	svc := new(mockService)
	svc.On("ToggleFavorite", mock.Anything, uint(1)).Return(toggled, nil)
	svc.On("ToggleFavorite", mock.Anything, uint(9)).Return(nil, book.ErrBookNotFound)
	uc := NewToggleFavoriteUseCase(svc)

	got, err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, got.IsFavorite)

	_, err = uc.Execute(context.Background(), 9)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}
