package errors

import (
	"errors"
	"fmt"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code是业务错误码，HTTP状态码由response包根据Code区间推导
// 2. Message是返回给客户端的提示信息
// 3. Err是内部错误，记录到日志
type AppError struct {
	Code    int    `json:"code"`    // 业务错误码
	Message string `json:"message"` // 错误提示
	Err     error  `json:"-"`       // 内部错误（不序列化）
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is 按错误码比较，使Wrap出来的同码错误也能被errors.Is识别
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装系统错误（如数据库错误、网络错误）
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// Wrapf 格式化包装错误
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：
// - 4xxxx: 客户端错误（参数错误、业务规则校验失败）
// - 5xxxx: 服务端错误（数据库异常、外部服务调用失败）

const (
	// 系统级错误码（50000-50099）
	ErrCodeInternal      = 50000 // 内部错误
	ErrCodeDatabaseError = 50001 // 数据库错误

	// 资源错误（40400-40499）
	ErrCodeNotFound         = 40400 // 资源不存在(通用)
	ErrCodeBookNotFound     = 40402 // 图书不存在
	ErrCodeNoBooksAvailable = 40404 // 书库为空

	// 业务规则错误（40000-40099）
	ErrCodeISBNDuplicate = 40004 // ISBN已存在

	// 参数错误（40900-40999）
	ErrCodeBindError            = 40901 // 参数绑定失败
	ErrCodeFieldsRequired       = 40902 // 必填字段缺失
	ErrCodeInvalidPublishedYear = 40903 // 出版年份非法
	ErrCodeInvalidISBN          = 40904 // ISBN格式错误
)

// =========================================
// 预定义错误
// =========================================

var (
	// ErrNotFound 未注册的路由
	ErrNotFound = New(ErrCodeNotFound, "Resource not found")

	// ErrBindError 请求体无法绑定
	ErrBindError = New(ErrCodeBindError, "Invalid request body")
)

// =========================================
// 辅助函数
// =========================================

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, err.Error())
}

// IsClientError 4xxxx区间为客户端错误
func (e *AppError) IsClientError() bool {
	return e.Code >= 40000 && e.Code < 50000
}

// IsNotFound 404xx区间为资源不存在
func (e *AppError) IsNotFound() bool {
	return e.Code >= 40400 && e.Code < 40500
}
