package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	appbook "github.com/xiebiao/bookshelf/internal/application/book"
	"github.com/xiebiao/bookshelf/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
	"github.com/xiebiao/bookshelf/pkg/response"
)

func init() {
	// 请求体出现未知字段时绑定失败
	binding.EnableDecoderDisallowUnknownFields = true
}

// BookHandler 图书HTTP处理器
type BookHandler struct {
	createBookUseCase     *appbook.CreateBookUseCase
	getBookUseCase        *appbook.GetBookUseCase
	listBooksUseCase      *appbook.ListBooksUseCase
	updateBookUseCase     *appbook.UpdateBookUseCase
	deleteBookUseCase     *appbook.DeleteBookUseCase
	recommendBookUseCase  *appbook.RecommendBookUseCase
	toggleFavoriteUseCase *appbook.ToggleFavoriteUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	createBookUseCase *appbook.CreateBookUseCase,
	getBookUseCase *appbook.GetBookUseCase,
	listBooksUseCase *appbook.ListBooksUseCase,
	updateBookUseCase *appbook.UpdateBookUseCase,
	deleteBookUseCase *appbook.DeleteBookUseCase,
	recommendBookUseCase *appbook.RecommendBookUseCase,
	toggleFavoriteUseCase *appbook.ToggleFavoriteUseCase,
) *BookHandler {
	return &BookHandler{
		createBookUseCase:     createBookUseCase,
		getBookUseCase:        getBookUseCase,
		listBooksUseCase:      listBooksUseCase,
		updateBookUseCase:     updateBookUseCase,
		deleteBookUseCase:     deleteBookUseCase,
		recommendBookUseCase:  recommendBookUseCase,
		toggleFavoriteUseCase: toggleFavoriteUseCase,
	}
}

// ListBooks 图书列表
// @Summary      图书列表
// @Description  返回全部图书,不分页
// @Tags         图书
// @Produce      json
// @Success      200 {array}  dto.BookResponse
// @Failure      500 {object} response.ErrorBody "存储异常"
// @Router       /books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	results, err := h.listBooksUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewBookListResponse(results))
}

// GetBook 图书详情
// @Summary      图书详情
// @Tags         图书
// @Produce      json
// @Param        id  path     int true "图书ID"
// @Success      200 {object} dto.BookResponse
// @Failure      404 {object} response.ErrorBody "图书不存在"
// @Failure      500 {object} response.ErrorBody "存储异常"
// @Router       /books/{id} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	id := pathID(c)
	result, err := h.getBookUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewBookResponse(result))
}

// CreateBook 创建图书
// @Summary      创建图书
// @Description  四个字段都必填;published_year在[1000, 当前年份];isbn为10或13位数字
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        request body     dto.BookRequest true "图书信息"
// @Success      201     {object} dto.BookResponse
// @Failure      400     {object} response.ErrorBody "参数错误或ISBN已存在"
// @Failure      500     {object} response.ErrorBody "存储异常"
// @Router       /books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	req, ok := bindBook(c)
	if !ok {
		return
	}

	result, err := h.createBookUseCase.Execute(c.Request.Context(), req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewBookResponse(result))
}

// UpdateBook 更新图书
// @Summary      更新图书
// @Description  覆盖四个可变字段,收藏状态不变
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        id      path     int             true "图书ID"
// @Param        request body     dto.BookRequest true "图书信息"
// @Success      200     {object} dto.BookResponse
// @Failure      400     {object} response.ErrorBody "参数错误或ISBN已存在"
// @Failure      404     {object} response.ErrorBody "图书不存在"
// @Failure      500     {object} response.ErrorBody "存储异常"
// @Router       /books/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	req, ok := bindBook(c)
	if !ok {
		return
	}

	// 非法ID同样先走字段校验,与不存在的ID行为一致
	result, err := h.updateBookUseCase.Execute(c.Request.Context(), pathID(c), req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewBookResponse(result))
}

// DeleteBook 删除图书
// @Summary      删除图书
// @Tags         图书
// @Produce      json
// @Param        id  path     int true "图书ID"
// @Success      200 {object} response.MessageBody
// @Failure      404 {object} response.ErrorBody "图书不存在"
// @Failure      500 {object} response.ErrorBody "存储异常"
// @Router       /books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id := pathID(c)
	if err := h.deleteBookUseCase.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "Book deleted successfully")
}

// RecommendBook 随机推荐
// @Summary      随机推荐一本图书
// @Tags         图书
// @Produce      json
// @Success      200 {object} dto.BookResponse
// @Failure      404 {object} response.ErrorBody "书库为空"
// @Failure      500 {object} response.ErrorBody "存储异常"
// @Router       /books/recommendations [get]
func (h *BookHandler) RecommendBook(c *gin.Context) {
	result, err := h.recommendBookUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewBookResponse(result))
}

// ToggleFavorite 切换收藏
// @Summary      切换收藏状态
// @Tags         图书
// @Produce      json
// @Param        id  path     int true "图书ID"
// @Success      200 {object} dto.BookResponse
// @Failure      404 {object} response.ErrorBody "图书不存在"
// @Failure      500 {object} response.ErrorBody "存储异常"
// @Router       /books/{id}/favorite [post]
func (h *BookHandler) ToggleFavorite(c *gin.Context) {
	id := pathID(c)
	result, err := h.toggleFavoriteUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewBookResponse(result))
}

// pathID 解析路径中的图书ID
// 非数字、负数都不可能匹配任何记录,统一返回0,由领域服务按"图书不存在"处理
func pathID(c *gin.Context) uint {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}

// bindBook 绑定请求体,JSON格式错误、字段类型错误、未知字段都返回400
func bindBook(c *gin.Context) (*dto.BookRequest, bool) {
	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.ErrBindError)
		return nil, false
	}
	return &req, true
}
