package filter

import (
	"catalogue/data/db/sql"
	"catalogue/errors"
)

// Pagination 偏移/条数分页描述，nil 表示不分页
type Pagination struct {
	offset int
	limit  int
}

// NewPagination 创建分页；limit 为 0 表示不限制条数
func NewPagination(offset, limit int) (*Pagination, error) {
	if offset < 0 {
		return nil, errors.NewInvalidInput("offset must not be negative, got %d", offset)
	}
	if limit < 0 {
		return nil, errors.NewInvalidInput("limit must not be negative, got %d", limit)
	}
	return &Pagination{offset: offset, limit: limit}, nil
}

func (p *Pagination) Offset() int {
	if p == nil {
		return 0
	}
	return p.offset
}

func (p *Pagination) Limit() int {
	if p == nil {
		return 0
	}
	return p.limit
}

// AddPaginationToQuery 追加 LIMIT/OFFSET，必须在全部 WHERE 条件之后调用
func (p *Pagination) AddPaginationToQuery(b sql.ISelectBuilder) {
	if p == nil {
		return
	}
	if p.limit > 0 {
		b.Limit(p.limit)
	}
	if p.offset > 0 {
		b.Offset(p.offset)
	}
}
