package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/pkg/circuitbreaker"
	"github.com/xiebiao/bookshelf/pkg/metrics"
)

const (
	// bookListVersionKey 列表版本号,每次写操作后INCR
	bookListVersionKey = "books:list:ver"
	// bookListKeyPrefix 列表缓存key前缀,完整key为books:list:<版本号>
	bookListKeyPrefix = "books:list:"
)

func bookListKey(version string) string {
	return bookListKeyPrefix + version
}

// CachedRepository 带列表缓存的图书仓储(装饰器)
//
// 缓存策略：Cache-Aside
//   - List：先查缓存，未命中再查数据库并回填
//   - 列表按版本号分key存放，写操作成功后INCR版本号
//   - 读请求先取版本号再查数据库，回填写入取到的版本key；
//     期间若有写操作，旧列表落在旧版本key上，之后的读请求不会再读到
//
// Redis故障只记录日志并回退到数据库，数据库始终是唯一数据源：
//   - 所有Redis调用经过熔断器，连续失败后直接跳过缓存
//   - 写操作后的INCR失败（含熔断跳过）时标记dirty，
//     在INCR成功之前读请求不使用缓存，避免Redis恢复后读到旧列表
type CachedRepository struct {
	book.Repository
	client  *redis.Client
	listTTL time.Duration
	breaker *circuitbreaker.CircuitBreaker
	dirty   atomic.Bool
}

// NewCachedRepository 包装图书仓储
func NewCachedRepository(repo book.Repository, client *redis.Client, listTTL time.Duration) *CachedRepository {
	cfg := circuitbreaker.DefaultConfig()
	cfg.OnStateChange = func(name string, from, to circuitbreaker.State) {
		log.Printf("[WARN] 熔断器 %s: %s → %s", name, from, to)
		metrics.SetGaugeVec(metrics.CircuitBreakerState, map[string]string{"name": name}, float64(to))
	}

	return &CachedRepository{
		Repository: repo,
		client:     client,
		listTTL:    listTTL,
		breaker:    circuitbreaker.NewCircuitBreaker("redis-cache", cfg),
	}
}

// cachedBook 缓存中的图书结构
type cachedBook struct {
	ID            uint   `json:"id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	ISBN          string `json:"isbn"`
	PublishedYear int    `json:"published_year"`
	IsFavorite    bool   `json:"is_favorite"`
}

// List 查询全部图书(优先读缓存)
func (r *CachedRepository) List(ctx context.Context) ([]*book.Book, error) {
	books, version, ok := r.getList(ctx)
	if ok {
		return books, nil
	}

	books, err := r.Repository.List(ctx)
	if err != nil {
		return nil, err
	}

	if version != "" {
		r.setList(ctx, version, books)
	}
	return books, nil
}

// Create 创建图书并失效列表缓存
func (r *CachedRepository) Create(ctx context.Context, b *book.Book) error {
	if err := r.Repository.Create(ctx, b); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

// Update 更新图书并失效列表缓存
func (r *CachedRepository) Update(ctx context.Context, b *book.Book) (*book.Book, error) {
	updated, err := r.Repository.Update(ctx, b)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx)
	return updated, nil
}

// Delete 删除图书并失效列表缓存
func (r *CachedRepository) Delete(ctx context.Context, id uint) error {
	if err := r.Repository.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

// ToggleFavorite 切换收藏并失效列表缓存
func (r *CachedRepository) ToggleFavorite(ctx context.Context, id uint) (*book.Book, error) {
	toggled, err := r.Repository.ToggleFavorite(ctx, id)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx)
	return toggled, nil
}

// getList 读取当前版本的列表缓存
// 未命中时返回读到的版本号,Redis不可用时版本号为空(不回填)
func (r *CachedRepository) getList(ctx context.Context) ([]*book.Book, string, bool) {
	if r.dirty.Load() {
		// 上次失效没成功，先补上
		r.invalidate(ctx)
		return nil, "", false
	}

	var version string
	var val []byte
	err := r.breaker.Execute(func() error {
		v, err := r.client.Get(ctx, bookListVersionKey).Result()
		switch {
		case errors.Is(err, redis.Nil):
			v = "0"
		case err != nil:
			return err
		}

		version = v
		val, err = r.client.Get(ctx, bookListKey(v)).Bytes()
		if errors.Is(err, redis.Nil) {
			val = nil
			return nil
		}
		return err
	})
	if err != nil {
		if !errors.Is(err, circuitbreaker.ErrOpenState) {
			log.Printf("[WARN] 读取图书列表缓存失败: %v", err)
		}
		// 版本号已读到也不回填,Redis此时不可靠
		return nil, "", false
	}
	if val == nil {
		return nil, version, false
	}

	var cached []cachedBook
	if err := json.Unmarshal(val, &cached); err != nil {
		log.Printf("[WARN] 图书列表缓存反序列化失败: %v", err)
		return nil, version, false
	}

	books := make([]*book.Book, len(cached))
	for i, c := range cached {
		books[i] = &book.Book{
			ID:            c.ID,
			Title:         c.Title,
			Author:        c.Author,
			ISBN:          c.ISBN,
			PublishedYear: c.PublishedYear,
			IsFavorite:    c.IsFavorite,
		}
	}
	return books, version, true
}

// setList 回填指定版本的列表缓存
func (r *CachedRepository) setList(ctx context.Context, version string, books []*book.Book) {
	cached := make([]cachedBook, len(books))
	for i, b := range books {
		cached[i] = cachedBook{
			ID:            b.ID,
			Title:         b.Title,
			Author:        b.Author,
			ISBN:          b.ISBN,
			PublishedYear: b.PublishedYear,
			IsFavorite:    b.IsFavorite,
		}
	}

	val, err := json.Marshal(cached)
	if err != nil {
		log.Printf("[WARN] 图书列表序列化失败: %v", err)
		return
	}
	if r.dirty.Load() {
		return
	}
	err = r.breaker.Execute(func() error {
		return r.client.Set(ctx, bookListKey(version), val, r.listTTL).Err()
	})
	if err != nil && !errors.Is(err, circuitbreaker.ErrOpenState) {
		log.Printf("[WARN] 写入图书列表缓存失败: %v", err)
	}
}

// invalidate 递增列表版本号,旧版本key随TTL过期
func (r *CachedRepository) invalidate(ctx context.Context) {
	err := r.breaker.Execute(func() error {
		return r.client.Incr(ctx, bookListVersionKey).Err()
	})
	if err != nil {
		r.dirty.Store(true)
		if !errors.Is(err, circuitbreaker.ErrOpenState) {
			log.Printf("[WARN] 递增图书列表版本失败: %v", err)
		}
		return
	}
	r.dirty.Store(false)
}
