package book

import (
	"context"
	"time"
)

// Service 图书领域服务接口
// 设计说明:
// 1. 写操作(创建、更新)在访问存储前先校验草稿
// 2. 读取、删除、收藏切换只针对已存在的ID,不做字段校验
// 3. 不依赖具体的Repository实现(依赖倒置)
type Service interface {
	// CreateBook 创建图书,收藏状态默认为false
	CreateBook(ctx context.Context, draft Draft) (*Book, error)

	// GetBook 根据ID获取图书
	GetBook(ctx context.Context, id uint) (*Book, error)

	// ListBooks 查询全部图书
	ListBooks(ctx context.Context) ([]*Book, error)

	// UpdateBook 覆盖图书的可变字段
	UpdateBook(ctx context.Context, id uint, draft Draft) (*Book, error)

	// DeleteBook 永久删除图书
	DeleteBook(ctx context.Context, id uint) error

	// RecommendBook 随机推荐一本图书
	RecommendBook(ctx context.Context) (*Book, error)

	// ToggleFavorite 切换收藏状态
	ToggleFavorite(ctx context.Context, id uint) (*Book, error)

	// CountBooks 图书总数(健康检查使用)
	CountBooks(ctx context.Context) (int64, error)
}

// Option 领域服务可选配置
type Option func(*service)

// WithClock 注入时钟,测试时固定"当前年份"
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// service 领域服务实现
type service struct {
	repo Repository
	now  func() time.Time
}

// NewService 创建图书领域服务
func NewService(repo Repository, opts ...Option) Service {
	s := &service{repo: repo, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateBook 创建图书
func (s *service) CreateBook(ctx context.Context, draft Draft) (*Book, error) {
	// 1. 字段校验
	if err := draft.Validate(s.now()); err != nil {
		return nil, err
	}

	// 2. 创建图书实体
	book := NewBook(draft)

	// 3. 持久化(ISBN冲突由Repository转换为ErrISBNDuplicate)
	if err := s.repo.Create(ctx, book); err != nil {
		return nil, err
	}

	return book, nil
}

// GetBook 根据ID获取图书
func (s *service) GetBook(ctx context.Context, id uint) (*Book, error) {
	if id == 0 {
		return nil, ErrBookNotFound
	}
	return s.repo.FindByID(ctx, id)
}

// ListBooks 查询全部图书
func (s *service) ListBooks(ctx context.Context) ([]*Book, error) {
	return s.repo.List(ctx)
}

// UpdateBook 更新图书
func (s *service) UpdateBook(ctx context.Context, id uint, draft Draft) (*Book, error) {
	// 1. 字段校验
	if err := draft.Validate(s.now()); err != nil {
		return nil, err
	}

	if id == 0 {
		return nil, ErrBookNotFound
	}

	// 2. 覆盖可变字段(收藏状态由Repository保持不变)
	book := &Book{ID: id}
	book.ApplyDraft(draft)

	// 3. 持久化
	return s.repo.Update(ctx, book)
}

// DeleteBook 删除图书
func (s *service) DeleteBook(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrBookNotFound
	}
	return s.repo.Delete(ctx, id)
}

// RecommendBook 随机推荐
func (s *service) RecommendBook(ctx context.Context) (*Book, error) {
	return s.repo.Random(ctx)
}

// ToggleFavorite 切换收藏状态
func (s *service) ToggleFavorite(ctx context.Context, id uint) (*Book, error) {
	if id == 0 {
		return nil, ErrBookNotFound
	}
	return s.repo.ToggleFavorite(ctx, id)
}

// CountBooks 图书总数
func (s *service) CountBooks(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
