package filter

import "catalogue/data/db/sql"

// IDFilter 主键/外键等值过滤
type IDFilter struct {
	equals *string
}

// NewIDFilter 创建 ID 等值过滤
func NewIDFilter(equals string) *IDFilter {
	return &IDFilter{equals: ptr(equals)}
}

// Equals 返回比较值
func (f *IDFilter) Equals() (string, bool) {
	if f == nil || f.equals == nil {
		return "", false
	}
	return *f.equals, true
}

func (f *IDFilter) IsZero() bool {
	_, ok := f.Equals()
	return !ok
}

func (f *IDFilter) AddToQuery(b sql.ISelectBuilder, field string) {
	if v, ok := f.Equals(); ok {
		b.AndWhere(column(field)+" = ?", v)
	}
}
