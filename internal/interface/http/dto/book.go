package dto

import (
	"encoding/json"

	appbook "github.com/xiebiao/bookshelf/internal/application/book"
)

// BookRequest 创建/更新图书请求
// 设计说明:
// 1. 四个字段都必填,但必填校验放在领域层,保证错误信息和校验顺序一致
// 2. published_year保留原始token,字符串、布尔值、非整数都交给领域层报"Invalid published year"
// 3. 未知字段由gin的DisallowUnknownFields拒绝
type BookRequest struct {
	Title         string      `json:"title" example:"Dune"`
	Author        string      `json:"author" example:"Frank Herbert"`
	ISBN          string      `json:"isbn" example:"9780441013593"`
	PublishedYear json.RawMessage `json:"published_year" swaggertype:"integer" example:"1965"`
}

// ToInput 转换为用例输入
func (r BookRequest) ToInput() appbook.BookInput {
	return appbook.BookInput{
		Title:         r.Title,
		Author:        r.Author,
		ISBN:          r.ISBN,
		PublishedYear: r.PublishedYear,
	}
}

// BookResponse 图书响应
type BookResponse struct {
	ID            uint   `json:"id" example:"1"`
	Title         string `json:"title" example:"Dune"`
	Author        string `json:"author" example:"Frank Herbert"`
	ISBN          string `json:"isbn" example:"9780441013593"`
	PublishedYear int    `json:"published_year" example:"1965"`
	IsFavorite    bool   `json:"is_favorite" example:"false"`
}

// NewBookResponse 用例结果 → HTTP响应
func NewBookResponse(r *appbook.BookResult) *BookResponse {
	return &BookResponse{
		ID:            r.ID,
		Title:         r.Title,
		Author:        r.Author,
		ISBN:          r.ISBN,
		PublishedYear: r.PublishedYear,
		IsFavorite:    r.IsFavorite,
	}
}

// NewBookListResponse 列表响应,空列表序列化为[]
func NewBookListResponse(results []*appbook.BookResult) []*BookResponse {
	list := make([]*BookResponse, len(results))
	for i, r := range results {
		list[i] = NewBookResponse(r)
	}
	return list
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Message string `json:"message" example:"pong"`
	Status  string `json:"status" example:"healthy"`
	Books   int64  `json:"books" example:"3"`
}
