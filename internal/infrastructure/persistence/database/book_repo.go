package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// bookRepository 图书仓储实现(GORM)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 处理数据库特定的错误(如ISBN重复),转换为业务错误
type bookRepository struct {
	db *gorm.DB
	tx *TxManager
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB, tx *TxManager) book.Repository {
	return &bookRepository{db: db, tx: tx}
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	// 1. 领域实体 → GORM模型
	model := toBookModel(b)

	// 2. 插入数据库
	if err := r.getDB(ctx).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return book.ErrISBNDuplicate
		}
		return dbError(err, "Failed to create book")
	}

	// 3. 回填自增ID
	b.ID = model.ID
	b.IsFavorite = model.IsFavorite

	return nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	return r.findByID(r.getDB(ctx), id)
}

// List 查询全部图书
// 不加ORDER BY,顺序由存储引擎决定
func (r *bookRepository) List(ctx context.Context) ([]*book.Book, error) {
	var models []BookModel
	if err := r.getDB(ctx).Find(&models).Error; err != nil {
		return nil, dbError(err, "Failed to list books")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books, nil
}

// Update 更新图书信息
// 在同一事务内:确认存在 → 更新可变字段 → 读回完整记录
// is_favorite不在更新列表中,保持原值
func (r *bookRepository) Update(ctx context.Context, b *book.Book) (*book.Book, error) {
	var updated *book.Book
	err := r.tx.Transaction(ctx, func(ctx context.Context) error {
		db := r.getDB(ctx)

		if _, err := r.findByID(db, b.ID); err != nil {
			return err
		}

		err := db.Model(&BookModel{}).
			Where("id = ?", b.ID).
			Updates(map[string]interface{}{
				"title":          b.Title,
				"author":         b.Author,
				"isbn":           b.ISBN,
				"published_year": b.PublishedYear,
			}).Error
		if err != nil {
			if isDuplicateError(err) {
				return book.ErrISBNDuplicate
			}
			return dbError(err, "Failed to update book %d", b.ID)
		}

		var findErr error
		updated, findErr = r.findByID(db, b.ID)
		return findErr
	})
	if err != nil {
		return nil, wrapTxError(err, "Failed to update book %d", b.ID)
	}
	return updated, nil
}

// Delete 删除图书(物理删除)
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	result := r.getDB(ctx).Delete(&BookModel{}, id)

	if result.Error != nil {
		return dbError(result.Error, "Failed to delete book %d", id)
	}

	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}

	return nil
}

// Random 随机取一本书
// SELECT * FROM books ORDER BY RANDOM() LIMIT 1,每行被选中的概率相同
func (r *bookRepository) Random(ctx context.Context) (*book.Book, error) {
	var model BookModel
	err := r.getDB(ctx).Order(randomOrder(r.db)).Take(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrNoBooksAvailable
		}
		return nil, dbError(err, "Failed to recommend book")
	}
	return toBookEntity(&model), nil
}

// ToggleFavorite 切换收藏状态
// UPDATE books SET is_favorite = NOT is_favorite WHERE id = ?
// 翻转在数据库内完成,并发切换由存储引擎串行化,不会丢失更新
func (r *bookRepository) ToggleFavorite(ctx context.Context, id uint) (*book.Book, error) {
	var toggled *book.Book
	err := r.tx.Transaction(ctx, func(ctx context.Context) error {
		db := r.getDB(ctx)

		result := db.Model(&BookModel{}).
			Where("id = ?", id).
			Update("is_favorite", gorm.Expr("NOT is_favorite"))
		if result.Error != nil {
			return dbError(result.Error, "Failed to toggle favorite for book %d", id)
		}
		if result.RowsAffected == 0 {
			return book.ErrBookNotFound
		}

		var findErr error
		toggled, findErr = r.findByID(db, id)
		return findErr
	})
	if err != nil {
		return nil, wrapTxError(err, "Failed to toggle favorite for book %d", id)
	}
	return toggled, nil
}

// Count 图书总数
func (r *bookRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.getDB(ctx).Model(&BookModel{}).Count(&total).Error; err != nil {
		return 0, dbError(err, "Failed to count books")
	}
	return total, nil
}

// =========================================
// 辅助函数
// =========================================

func (r *bookRepository) findByID(db *gorm.DB, id uint) (*book.Book, error) {
	var model BookModel
	if err := db.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, dbError(err, "Failed to find book %d", id)
	}
	return toBookEntity(&model), nil
}

// getDB 从context获取事务DB,如果没有则使用默认DB
func (r *bookRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

// wrapTxError 事务本身失败(BEGIN/COMMIT)时包装为存储错误,业务错误原样返回
func wrapTxError(err error, format string, args ...interface{}) error {
	if apperrors.IsAppError(err) {
		return err
	}
	return dbError(err, format, args...)
}

// toBookModel 领域实体 → GORM模型
func toBookModel(b *book.Book) *BookModel {
	return &BookModel{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		ISBN:          b.ISBN,
		PublishedYear: b.PublishedYear,
		IsFavorite:    b.IsFavorite,
	}
}

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) *book.Book {
	return &book.Book{
		ID:            model.ID,
		Title:         model.Title,
		Author:        model.Author,
		ISBN:          model.ISBN,
		PublishedYear: model.PublishedYear,
		IsFavorite:    model.IsFavorite,
	}
}
