//go:build integration

// Package integration 针对运行中服务的端到端测试
//
// 运行方式：
//
//	go run ./cmd/api &
//	BOOKSHELF_BASE_URL=http://localhost:3000 go test -tags=integration ./test/integration/...
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Timeout HTTP请求超时时间
const Timeout = 10 * time.Second

// BaseURL 服务地址
func BaseURL() string {
	if u := os.Getenv("BOOKSHELF_BASE_URL"); u != "" {
		return u
	}
	return "http://localhost:3000"
}

// BookData 图书响应
type BookData struct {
	ID            uint   `json:"id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	ISBN          string `json:"isbn"`
	PublishedYear int    `json:"published_year"`
	IsFavorite    bool   `json:"is_favorite"`
}

// ErrorData 错误响应
type ErrorData struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// Result 原始响应
type Result struct {
	Status int
	Body   []byte
}

// Decode 解析响应体
func (r *Result) Decode(t *testing.T, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.Body, v), "解析JSON响应失败: %s", string(r.Body))
}

// Do 发送请求；data为nil时不带请求体
func Do(t *testing.T, method, path string, data interface{}) *Result {
	t.Helper()

	var body io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		require.NoError(t, err, "JSON序列化失败")
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, BaseURL()+path, body)
	require.NoError(t, err, "创建HTTP请求失败")
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败（服务是否已启动？）")
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	return &Result{Status: resp.StatusCode, Body: respBody}
}

var isbnSeq atomic.Uint64

// UniqueISBN 生成不与已有数据冲突的13位ISBN
func UniqueISBN() string {
	n := uint64(time.Now().UnixNano()) + isbnSeq.Add(1)
	return fmt.Sprintf("979%010d", n%10_000_000_000)
}

// CreateBook 创建图书并断言201
func CreateBook(t *testing.T, title string) *BookData {
	t.Helper()

	res := Do(t, http.MethodPost, "/books", map[string]interface{}{
		"title":          title,
		"author":         "Integration",
		"isbn":           UniqueISBN(),
		"published_year": 2001,
	})
	require.Equal(t, http.StatusCreated, res.Status, string(res.Body))

	var b BookData
	res.Decode(t, &b)
	return &b
}
