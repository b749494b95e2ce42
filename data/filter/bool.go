package filter

import "catalogue/data/db/sql"

// BoolFilter 三态布尔过滤：未设置 / true / false
type BoolFilter struct {
	equals *bool
}

// NewBoolFilter 创建等值布尔过滤
func NewBoolFilter(equals bool) *BoolFilter {
	return &BoolFilter{equals: ptr(equals)}
}

// Equals 返回比较值，第二个返回值表示是否设置
func (f *BoolFilter) Equals() (bool, bool) {
	if f == nil || f.equals == nil {
		return false, false
	}
	return *f.equals, true
}

// IsTrue 仅当显式设置为 true 时返回 true
func (f *BoolFilter) IsTrue() bool {
	v, ok := f.Equals()
	return ok && v
}

func (f *BoolFilter) IsZero() bool {
	_, ok := f.Equals()
	return !ok
}

// AddToQuery 渲染为 col = ?，参数为 1/0 以兼容整型布尔列
func (f *BoolFilter) AddToQuery(b sql.ISelectBuilder, field string) {
	v, ok := f.Equals()
	if !ok {
		return
	}
	arg := 0
	if v {
		arg = 1
	}
	b.AndWhere(column(field)+" = ?", arg)
}
