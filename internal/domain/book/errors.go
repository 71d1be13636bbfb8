package book

import (
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "Book not found")

	// ErrNoBooksAvailable 书库为空,无法推荐
	ErrNoBooksAvailable = apperrors.New(apperrors.ErrCodeNoBooksAvailable, "No books available")

	// ErrISBNDuplicate ISBN已存在
	ErrISBNDuplicate = apperrors.New(apperrors.ErrCodeISBNDuplicate, "ISBN already exists")

	// ErrFieldsRequired 必填字段缺失
	ErrFieldsRequired = apperrors.New(apperrors.ErrCodeFieldsRequired, "All fields are required")

	// ErrInvalidPublishedYear 出版年份非法
	ErrInvalidPublishedYear = apperrors.New(apperrors.ErrCodeInvalidPublishedYear, "Invalid published year")

	// ErrInvalidISBN ISBN格式不正确
	ErrInvalidISBN = apperrors.New(apperrors.ErrCodeInvalidISBN, "Invalid ISBN format")
)
