package database

import (
	"errors"
	"strings"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

const (
	mysqlDuplicateEntry     = 1062    // Duplicate entry 'xxx' for key 'yyy'
	postgresUniqueViolation = "23505" // unique_violation
)

// dbError 包装存储层错误,错误码为ErrCodeDatabaseError(HTTP 500)
func dbError(err error, format string, args ...interface{}) *apperrors.AppError {
	appErr := apperrors.Wrapf(err, format, args...)
	appErr.Code = apperrors.ErrCodeDatabaseError
	return appErr
}

// isDuplicateError 判断是否为唯一索引冲突
// 优先使用GORM翻译后的错误，其次按驱动错误码判断，最后兜底匹配错误信息
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}

	var mysqlErr *mysqldriver.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlDuplicateEntry
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == postgresUniqueViolation
	}

	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}

// randomOrder 各方言的随机排序函数
func randomOrder(db *gorm.DB) string {
	if db.Dialector.Name() == "mysql" {
		return "RAND()"
	}
	// sqlite、postgres
	return "RANDOM()"
}
