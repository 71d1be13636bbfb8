package database

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

func setupTestDB(t *testing.T) (*gorm.DB, book.Repository) {
	t.Helper()

	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Driver:       config.DriverSQLite,
			Path:         filepath.Join(t.TempDir(), "books_test.db"),
			MaxOpenConns: 4,
			MaxIdleConns: 2,
		},
	}

	db, cleanup, err := NewDB(cfg)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	return db, NewBookRepository(db, NewTxManager(db))
}

func createTestBook(t *testing.T, repo book.Repository, isbn string) *book.Book {
	t.Helper()
	b := &book.Book{Title: "Dune", Author: "Herbert", ISBN: isbn, PublishedYear: 1965}
	require.NoError(t, repo.Create(context.Background(), b))
	return b
}

func countRows(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&BookModel{}).Count(&n).Error)
	return n
}

func TestBookRepository_CreateAndList(t *testing.T) {
	_, repo := setupTestDB(t)
	ctx := context.Background()

	b := createTestBook(t, repo, "9780441013593")

	assert.NotZero(t, b.ID, "应回填自增ID")
	assert.False(t, b.IsFavorite)

	books, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, b.ID, books[0].ID)
	assert.Equal(t, "9780441013593", books[0].ISBN)
}

func TestBookRepository_ListEmpty(t *testing.T) {
	_, repo := setupTestDB(t)

	books, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, books, "空表返回空切片而不是nil")
	assert.Empty(t, books)
}

func TestBookRepository_DuplicateISBN(t *testing.T) {
	db, repo := setupTestDB(t)
	ctx := context.Background()

	createTestBook(t, repo, "1234567890")

	err := repo.Create(ctx, &book.Book{Title: "Other", Author: "Someone", ISBN: "1234567890", PublishedYear: 2000})

	assert.ErrorIs(t, err, book.ErrISBNDuplicate)
	assert.Equal(t, int64(1), countRows(t, db), "冲突后行数不变")
}

func TestBookRepository_ConcurrentDuplicateInserts(t *testing.T) {
	db, repo := setupTestDB(t)
	ctx := context.Background()

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := repo.Create(ctx, &book.Book{Title: "Dune", Author: "Herbert", ISBN: "9780441013593", PublishedYear: 1965})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, book.ErrISBNDuplicate):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded, "只有一次插入成功")
	assert.Equal(t, workers-1, conflicts)
	assert.Equal(t, int64(1), countRows(t, db))
}

func TestBookRepository_Update(t *testing.T) {
	_, repo := setupTestDB(t)
	ctx := context.Background()

	b := createTestBook(t, repo, "9780441013593")
	_, err := repo.ToggleFavorite(ctx, b.ID)
	require.NoError(t, err)

	updated, err := repo.Update(ctx, &book.Book{ID: b.ID, Title: "Dune Messiah", Author: "Frank Herbert", ISBN: "9780441172696", PublishedYear: 1969})
	require.NoError(t, err)

	assert.Equal(t, b.ID, updated.ID)
	assert.Equal(t, "Dune Messiah", updated.Title)
	assert.Equal(t, 1969, updated.PublishedYear)
	assert.True(t, updated.IsFavorite, "更新不影响收藏状态")
}

func TestBookRepository_UpdateSameValues(t *testing.T) {
	_, repo := setupTestDB(t)

	b := createTestBook(t, repo, "9780441013593")

	updated, err := repo.Update(context.Background(), b)
	require.NoError(t, err, "值未变化也算更新成功")
	assert.Equal(t, b.ID, updated.ID)
}

func TestBookRepository_UpdateNotFound(t *testing.T) {
	db, repo := setupTestDB(t)
	createTestBook(t, repo, "9780441013593")

	_, err := repo.Update(context.Background(), &book.Book{ID: 999, Title: "X", Author: "Y", ISBN: "1234567890", PublishedYear: 2000})

	assert.ErrorIs(t, err, book.ErrBookNotFound)
	assert.Equal(t, int64(1), countRows(t, db))
}

func TestBookRepository_UpdateDuplicateISBN(t *testing.T) {
	_, repo := setupTestDB(t)
	ctx := context.Background()

	createTestBook(t, repo, "1111111111")
	second := createTestBook(t, repo, "2222222222")

	_, err := repo.Update(ctx, &book.Book{ID: second.ID, Title: "Dune", Author: "Herbert", ISBN: "1111111111", PublishedYear: 1965})
	assert.ErrorIs(t, err, book.ErrISBNDuplicate)

	reloaded, err := repo.FindByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "2222222222", reloaded.ISBN, "冲突时回滚")
}

func TestBookRepository_Delete(t *testing.T) {
	_, repo := setupTestDB(t)
	ctx := context.Background()

	b := createTestBook(t, repo, "9780441013593")

	require.NoError(t, repo.Delete(ctx, b.ID))
	assert.ErrorIs(t, repo.Delete(ctx, b.ID), book.ErrBookNotFound)

	_, err := repo.FindByID(ctx, b.ID)
	assert.ErrorIs(t, err, book.ErrBookNotFound)

	_, err = repo.Update(ctx, &book.Book{ID: b.ID, Title: "Dune", Author: "Herbert", ISBN: "9780441013593", PublishedYear: 1965})
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

func TestBookRepository_IDsNotReused(t *testing.T) {
	_, repo := setupTestDB(t)
	ctx := context.Background()

	first := createTestBook(t, repo, "1111111111")
	require.NoError(t, repo.Delete(ctx, first.ID))

	second := createTestBook(t, repo, "2222222222")
	assert.Greater(t, second.ID, first.ID, "删除最大ID后也不复用")
}

func TestBookRepository_ToggleFavorite(t *testing.T) {
	_, repo := setupTestDB(t)
	ctx := context.Background()

	b := createTestBook(t, repo, "9780441013593")

	toggled, err := repo.ToggleFavorite(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsFavorite)

	toggled, err = repo.ToggleFavorite(ctx, b.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsFavorite, "连续切换两次恢复原值")

	_, err = repo.ToggleFavorite(ctx, 999)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

func TestBookRepository_ConcurrentToggles(t *testing.T) {
	_, repo := setupTestDB(t)
	ctx := context.Background()

	b := createTestBook(t, repo, "9780441013593")

	const toggles = 10
	var wg sync.WaitGroup
	for i := 0; i < toggles; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.ToggleFavorite(ctx, b.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	final, err := repo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.False(t, final.IsFavorite, "偶数次切换后应为false")
}

func TestBookRepository_Random(t *testing.T) {
	_, repo := setupTestDB(t)
	ctx := context.Background()

	_, err := repo.Random(ctx)
	assert.ErrorIs(t, err, book.ErrNoBooksAvailable)

	only := createTestBook(t, repo, "9780441013593")
	for i := 0; i < 5; i++ {
		got, err := repo.Random(ctx)
		require.NoError(t, err)
		assert.Equal(t, only.ID, got.ID, "只有一本书时总是推荐它")
	}

	createTestBook(t, repo, "1234567890")
	seen := map[uint]bool{}
	for i := 0; i < 200 && len(seen) < 2; i++ {
		got, err := repo.Random(ctx)
		require.NoError(t, err)
		seen[got.ID] = true
	}
	assert.Len(t, seen, 2, "多本书时每本都有机会被推荐")
}

func TestBookRepository_Count(t *testing.T) {
	_, repo := setupTestDB(t)
	ctx := context.Background()

	createTestBook(t, repo, "1111111111")
	createTestBook(t, repo, "2222222222")

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestBookRepository_StorageFault(t *testing.T) {
	db, repo := setupTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = repo.List(context.Background())

	require.Error(t, err)
	assert.NotErrorIs(t, err, book.ErrBookNotFound)
	appErr := apperrors.GetAppError(err)
	assert.Equal(t, apperrors.ErrCodeDatabaseError, appErr.Code)
	assert.Equal(t, "Failed to list books", appErr.Message)

	err = repo.Delete(context.Background(), 7)
	appErr = apperrors.GetAppError(err)
	assert.Equal(t, apperrors.ErrCodeDatabaseError, appErr.Code)
	assert.Equal(t, "Failed to delete book 7", appErr.Message)
}

func TestIsDuplicateError(t *testing.T) {
	assert.False(t, isDuplicateError(nil))
	assert.True(t, isDuplicateError(gorm.ErrDuplicatedKey))
	assert.True(t, isDuplicateError(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}))
	assert.True(t, isDuplicateError(errors.New("Error 1062 (23000): Duplicate entry '123' for key 'books.idx_books_isbn'")))
	assert.True(t, isDuplicateError(errors.New(`ERROR: duplicate key value violates unique constraint "idx_books_isbn" (SQLSTATE 23505)`)))
	assert.False(t, isDuplicateError(errors.New("database is locked")))
}

func TestTxManager_RollbackOnError(t *testing.T) {
	db, repo := setupTestDB(t)
	tx := NewTxManager(db)
	ctx := context.Background()

	sentinel := errors.New("abort")
	err := tx.Transaction(ctx, func(ctx context.Context) error {
		require.NoError(t, repo.Create(ctx, &book.Book{Title: "Dune", Author: "Herbert", ISBN: "9780441013593", PublishedYear: 1965}))
		return sentinel
	})

	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, int64(0), countRows(t, db), "事务回滚后没有数据")
}
