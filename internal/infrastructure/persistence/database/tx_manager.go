package database

import (
	"context"

	"gorm.io/gorm"
)

// txKey 事务DB在context中的key
type txKey struct{}

// TxManager 事务管理器
// 1. 封装GORM的Transaction方法
// 2. 通过context传递事务DB(避免全局变量)
// 3. 已在事务中时复用外层事务(GORM自动使用Savepoint)
type TxManager struct {
	db *gorm.DB
}

// NewTxManager 创建事务管理器
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction 执行事务
// fn返回error时自动ROLLBACK，返回nil时自动COMMIT
//
// 使用示例:
//
//	err := txManager.Transaction(ctx, func(ctx context.Context) error {
//	    if _, err := bookRepo.FindByID(ctx, id); err != nil {
//	        return err // 自动回滚
//	    }
//	    return nil
//	})
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return dbFromContext(ctx, m.db).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// dbFromContext 从context获取事务DB，没有则使用默认DB
func dbFromContext(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}
