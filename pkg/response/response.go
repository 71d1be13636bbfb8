package response

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// ErrorBody 统一错误响应结构
// 设计说明：
// 1. Error是用户友好的提示信息
// 2. Code是业务错误码，方便客户端区分"数据冲突"和"服务异常"
// 3. Detail仅在服务端错误时返回底层错误信息
type ErrorBody struct {
	Error  string `json:"error" example:"Book not found"`
	Code   int    `json:"code" example:"40402"`
	Detail string `json:"detail,omitempty" example:"database is locked"`
}

// MessageBody 无数据的确认响应
type MessageBody struct {
	Message string `json:"message" example:"Book deleted successfully"`
}

// Success 成功响应（200，直接返回业务数据）
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 创建成功响应（201）
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Message 返回确认信息
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageBody{Message: message})
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	book, err := uc.Execute(ctx, req)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	status := HTTPStatus(appErr)

	body := ErrorBody{
		Error: appErr.Message,
		Code:  appErr.Code,
	}

	if status >= http.StatusInternalServerError {
		// 服务端错误：记录日志并带上底层错误信息
		requestID, _ := c.Get("request_id")
		log.Printf("[ERROR] request_id=%v %s %s: %v", requestID, c.Request.Method, c.Request.URL.Path, appErr)
		if appErr.Err != nil {
			body.Detail = appErr.Err.Error()
		}
	}

	_ = c.Error(appErr)
	c.AbortWithStatusJSON(status, body)
}

// HTTPStatus 业务错误码 → HTTP状态码
// - 404xx → 404
// - 其余4xxxx → 400
// - 5xxxx及未知 → 500
func HTTPStatus(appErr *apperrors.AppError) int {
	switch {
	case appErr.IsNotFound():
		return http.StatusNotFound
	case appErr.IsClientError():
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
