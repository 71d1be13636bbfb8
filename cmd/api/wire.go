//go:build wireinject
// +build wireinject

// Wire依赖注入配置
// 修改Provider后运行 `wire gen ./cmd/api` 重新生成wire_gen.go
package main

import (
	"github.com/google/wire"

	appbook "github.com/xiebiao/bookshelf/internal/application/book"
	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/database"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookshelf/internal/interface/http/handler"
	"github.com/xiebiao/bookshelf/internal/interface/http/router"
)

// infrastructureSet 基础设施层依赖
// 包含：配置加载、数据库连接、Redis连接（未启用时为nil）
var infrastructureSet = wire.NewSet(
	config.Load,
	database.NewDB,
	database.NewTxManager,
	redis.NewClient,
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	provideBookRepository,
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	provideBookService,
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appbook.NewCreateBookUseCase,
	appbook.NewGetBookUseCase,
	appbook.NewListBooksUseCase,
	appbook.NewUpdateBookUseCase,
	appbook.NewDeleteBookUseCase,
	appbook.NewRecommendBookUseCase,
	appbook.NewToggleFavoriteUseCase,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewBookHandler,
	handler.NewHealthHandler,
	router.NewEngine,
)

// InitializeApp 初始化整个应用
// cleanup按创建的逆序关闭Redis和数据库连接
func InitializeApp() (*App, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		handlerSet,
		newApp,
	)
	return nil, nil, nil
}
