package book

import (
	"bytes"
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"time"
)

const (
	// MinPublishedYear 最早允许的出版年份
	MinPublishedYear = 1000
)

// isbnPattern 10位或13位纯数字(不允许连字符)
var isbnPattern = regexp.MustCompile(`^\d{10}(\d{3})?$`)

// Draft 创建/更新图书时提交的字段
// PublishedYear保留JSON原始token,以便区分"缺失"、"非数字"、"非整数"和"越界"
type Draft struct {
	Title         string
	Author        string
	ISBN          string
	PublishedYear json.RawMessage
}

// Validate 按顺序校验,返回第一个不满足的规则:
// 1. 任一字段缺失 → ErrFieldsRequired
// 2. 出版年份不是整数或不在[1000, 当前年份] → ErrInvalidPublishedYear
// 3. ISBN不是10位或13位数字 → ErrInvalidISBN
func (d Draft) Validate(now time.Time) error {
	if d.Title == "" || d.Author == "" || d.ISBN == "" || d.missingYear() {
		return ErrFieldsRequired
	}

	year, ok := d.Year()
	if !ok || year < MinPublishedYear || year > now.Year() {
		return ErrInvalidPublishedYear
	}

	if !isValidISBN(d.ISBN) {
		return ErrInvalidISBN
	}

	return nil
}

// Year 解析出版年份
// 只接受JSON数字且值为整数(1965、1965.0、1e3),字符串、布尔值等ok为false
func (d Draft) Year() (int, bool) {
	f, ok := d.yearNumber()
	if !ok || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

// missingYear 未提交、null、false、空字符串、0都视为缺失
func (d Draft) missingYear() bool {
	switch string(bytes.TrimSpace(d.PublishedYear)) {
	case "", "null", "false", `""`:
		return true
	}
	f, ok := d.yearNumber()
	return ok && f == 0
}

// yearNumber 年份token是JSON数字时返回其值
func (d Draft) yearNumber() (float64, bool) {
	tok := bytes.TrimSpace(d.PublishedYear)
	if len(tok) == 0 || (tok[0] != '-' && (tok[0] < '0' || tok[0] > '9')) {
		return 0, false
	}
	f, err := strconv.ParseFloat(string(tok), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// isValidISBN 校验ISBN格式
// 只检查位数和是否全为数字,不校验校验位
func isValidISBN(isbn string) bool {
	return isbnPattern.MatchString(isbn)
}
