package filter

import (
	"strings"

	"catalogue/data/db/sql"
)

// StringFilter 字符串过滤，支持等值、包含与前缀匹配，多个约束之间为 AND
type StringFilter struct {
	equals     *string
	contains   *string
	beginsWith *string
}

// NewStringFilter 创建字符串过滤，nil 表示该约束未设置；传入的值会被复制
func NewStringFilter(equals, contains, beginsWith *string) *StringFilter {
	return &StringFilter{equals: clone(equals), contains: clone(contains), beginsWith: clone(beginsWith)}
}

// StringEquals 等值匹配
func StringEquals(v string) *StringFilter { return &StringFilter{equals: ptr(v)} }

// StringContains 包含匹配
func StringContains(v string) *StringFilter { return &StringFilter{contains: ptr(v)} }

// StringBeginsWith 前缀匹配
func StringBeginsWith(v string) *StringFilter { return &StringFilter{beginsWith: ptr(v)} }

func (f *StringFilter) Equals() (string, bool)     { return deref(f, func(s *StringFilter) *string { return s.equals }) }
func (f *StringFilter) Contains() (string, bool)   { return deref(f, func(s *StringFilter) *string { return s.contains }) }
func (f *StringFilter) BeginsWith() (string, bool) { return deref(f, func(s *StringFilter) *string { return s.beginsWith }) }

func deref(f *StringFilter, get func(*StringFilter) *string) (string, bool) {
	if f == nil {
		return "", false
	}
	if p := get(f); p != nil {
		return *p, true
	}
	return "", false
}

func (f *StringFilter) IsZero() bool {
	return f == nil || (f.equals == nil && f.contains == nil && f.beginsWith == nil)
}

func (f *StringFilter) AddToQuery(b sql.ISelectBuilder, field string) {
	if f.IsZero() {
		return
	}
	col := column(field)
	var (
		parts []string
		args  []any
	)
	if v, ok := f.Equals(); ok {
		parts = append(parts, col+" = ?")
		args = append(args, v)
	}
	if v, ok := f.Contains(); ok {
		parts = append(parts, col+` LIKE ? ESCAPE '\'`)
		args = append(args, "%"+escapeLike(v)+"%")
	}
	if v, ok := f.BeginsWith(); ok {
		parts = append(parts, col+` LIKE ? ESCAPE '\'`)
		args = append(args, escapeLike(v)+"%")
	}
	b.AndWhere(conjunction(parts), args...)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike 转义 LIKE 通配符，使用户输入按字面匹配
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
