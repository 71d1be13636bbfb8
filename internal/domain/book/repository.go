package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 便于Mock测试,不依赖具体数据库实现
// 3. 每个方法对应一次逻辑上的存储往返
type Repository interface {
	// Create 创建图书,回填自增ID
	// ISBN冲突返回ErrISBNDuplicate
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书
	FindByID(ctx context.Context, id uint) (*Book, error)

	// List 查询全部图书(不保证顺序)
	List(ctx context.Context) ([]*Book, error)

	// Update 覆盖标题、作者、ISBN、出版年份,不修改收藏状态
	// 返回更新后的完整记录
	Update(ctx context.Context, book *Book) (*Book, error)

	// Delete 永久删除图书
	Delete(ctx context.Context, id uint) error

	// Random 随机返回一本图书,书库为空时返回ErrNoBooksAvailable
	Random(ctx context.Context) (*Book, error)

	// ToggleFavorite 原子地翻转收藏状态,返回更新后的记录
	ToggleFavorite(ctx context.Context, id uint) (*Book, error)

	// Count 图书总数
	Count(ctx context.Context) (int64, error)
}
