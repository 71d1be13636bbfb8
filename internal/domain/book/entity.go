package book

// Book 图书实体(聚合根)
// 设计说明:
// 1. ID由数据库在创建时分配,之后不可变更、不会复用
// 2. ISBN作为业务唯一标识(数据库唯一索引保证)
// 3. IsFavorite只能通过收藏切换操作修改,创建时默认为false
type Book struct {
	ID            uint
	Title         string
	Author        string
	ISBN          string
	PublishedYear int
	IsFavorite    bool
}

// NewBook 根据已校验的草稿创建新图书(工厂方法)
// 调用方需先执行Draft.Validate
func NewBook(d Draft) *Book {
	year, _ := d.Year()
	return &Book{
		Title:         d.Title,
		Author:        d.Author,
		ISBN:          d.ISBN,
		PublishedYear: year,
		IsFavorite:    false,
	}
}

// ApplyDraft 用草稿覆盖可变字段,IsFavorite保持不变
func (b *Book) ApplyDraft(d Draft) {
	year, _ := d.Year()
	b.Title = d.Title
	b.Author = d.Author
	b.ISBN = d.ISBN
	b.PublishedYear = year
}
