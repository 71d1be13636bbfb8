package database

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
)

// sqliteParams 并发写入时等待锁而不是立即返回"database is locked"
// _txlock=immediate 让事务一开始就拿写锁，避免读后写升级死锁
const sqliteParams = "_busy_timeout=5000&_txlock=immediate"

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架，驱动由配置决定（sqlite/mysql/postgres）
// 2. 开启TranslateError，唯一索引冲突统一转换为gorm.ErrDuplicatedKey
// 3. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 4. 启动时自动建表（create-if-absent，幂等）
func NewDB(cfg *config.Config) (*gorm.DB, func(), error) {
	// 1. 选择驱动
	dialector, err := openDialector(cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	// 2. 配置GORM日志
	logLevel := logger.Warn
	if cfg.Log.SQL {
		logLevel = logger.Info // 打印SQL
	}

	// 3. 连接数据库
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logLevel,
			IgnoreRecordNotFoundError: true,
		}),
		TranslateError: true,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	// 4. 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// 5. 测试连接
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Printf("✓ 数据库连接成功 (%s)", cfg.Database.Driver)

	// 6. 自动迁移表结构
	if err := AutoMigrate(db); err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	cleanup := func() {
		if err := sqlDB.Close(); err != nil {
			log.Printf("关闭数据库连接失败: %v", err)
		}
	}

	return db, cleanup, nil
}

// openDialector 根据配置选择GORM驱动
func openDialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	dsn := cfg.DSN()
	switch cfg.Driver {
	case config.DriverSQLite:
		return sqlite.Open(withSQLiteParams(dsn)), nil
	case config.DriverMySQL:
		return mysql.Open(dsn), nil
	case config.DriverPostgres:
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("不支持的数据库驱动: %s", cfg.Driver)
	}
}

// withSQLiteParams 追加sqlite连接参数
func withSQLiteParams(dsn string) string {
	if strings.Contains(dsn, "?") {
		return dsn + "&" + sqliteParams
	}
	return dsn + "?" + sqliteParams
}

// AutoMigrate 自动迁移表结构
// AutoMigrate只会创建表、添加字段，不会删除或修改现有字段
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&BookModel{})
}

// BookModel GORM图书模型
// 设计说明:
// 1. ID自增且不复用(sqlite使用AUTOINCREMENT)
// 2. ISBN有唯一索引，插入和更新冲突都由数据库拒绝
// 3. 没有DeletedAt字段，删除即物理删除
type BookModel struct {
	ID            uint   `gorm:"primaryKey;autoIncrement"`
	Title         string `gorm:"type:text;not null"`
	Author        string `gorm:"type:text;not null"`
	ISBN          string `gorm:"column:isbn;uniqueIndex;size:13;not null"`
	PublishedYear int    `gorm:"column:published_year;not null"`
	IsFavorite    bool   `gorm:"column:is_favorite;not null;default:false"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}
