package redis

import (
	"context"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
)

// NewClient 创建Redis客户端
// 设计说明：
// 1. 配置连接池参数（PoolSize、MinIdleConns）
// 2. 配置超时参数（DialTimeout、ReadTimeout、WriteTimeout）
// 3. 测试连接可用性
// 未启用Redis时返回nil客户端，调用方据此跳过缓存
func NewClient(cfg *config.Config) (*redis.Client, func(), error) {
	if !cfg.Redis.Enabled {
		return nil, func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})

	// 测试连接
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Redis.DialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("Redis连接失败: %w", err)
	}

	log.Printf("✓ Redis连接成功 (%s)", cfg.Redis.Addr())

	cleanup := func() {
		if err := client.Close(); err != nil {
			log.Printf("关闭Redis连接失败: %v", err)
		}
	}
	return client, cleanup, nil
}
