package main

import (
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/database"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/redis"
)

// App 组装完成的应用
type App struct {
	Config *config.Config
	Engine *gin.Engine
}

func newApp(cfg *config.Config, engine *gin.Engine) *App {
	return &App{Config: cfg, Engine: engine}
}

// provideBookRepository 数据库仓储,启用Redis时外加列表缓存
func provideBookRepository(db *gorm.DB, tx *database.TxManager, client *goredis.Client, cfg *config.Config) book.Repository {
	repo := database.NewBookRepository(db, tx)
	if client == nil {
		return repo
	}
	return redis.NewCachedRepository(repo, client, cfg.Redis.ListTTL)
}

// provideBookService 领域服务使用系统时钟
func provideBookService(repo book.Repository) book.Service {
	return book.NewService(repo)
}
