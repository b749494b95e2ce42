package filter

import "catalogue/data/db/sql"

type entry struct {
	field  string
	filter IFilter
}

// List 字段 → 过滤原语的有序映射，外加一个保留的 active 过滤。
//
// List 是值类型且不可变：With/WithActive 总是返回新实例，原实例不受影响。
// active 过滤不参与字段过滤的渲染，由仓储按存储模型的可见性谓词处理。
type List struct {
	entries []entry
	active  *BoolFilter
}

// NewList 创建空过滤列表
func NewList() List {
	return List{}
}

// With 返回追加（或替换同名字段）过滤后的新列表；无约束的过滤器被忽略
func (l List) With(field string, f IFilter) List {
	if f == nil || f.IsZero() {
		return l.Without(field)
	}
	entries := make([]entry, 0, len(l.entries)+1)
	replaced := false
	for _, e := range l.entries {
		if e.field == field {
			entries = append(entries, entry{field: field, filter: f})
			replaced = true
			continue
		}
		entries = append(entries, e)
	}
	if !replaced {
		entries = append(entries, entry{field: field, filter: f})
	}
	return List{entries: entries, active: l.active}
}

// Without 返回移除指定字段过滤后的新列表
func (l List) Without(field string) List {
	entries := make([]entry, 0, len(l.entries))
	for _, e := range l.entries {
		if e.field != field {
			entries = append(entries, e)
		}
	}
	return List{entries: entries, active: l.active}
}

// WithActive 返回替换 active 过滤后的新列表
func (l List) WithActive(active *BoolFilter) List {
	entries := make([]entry, len(l.entries))
	copy(entries, l.entries)
	return List{entries: entries, active: active}
}

// Active 返回 active 过滤，可能为 nil
func (l List) Active() *BoolFilter {
	return l.active
}

// Get 返回指定字段的过滤
func (l List) Get(field string) (IFilter, bool) {
	for _, e := range l.entries {
		if e.field == field {
			return e.filter, true
		}
	}
	return nil, false
}

// Fields 按存储顺序返回字段名
func (l List) Fields() []string {
	fields := make([]string, len(l.entries))
	for i, e := range l.entries {
		fields[i] = e.field
	}
	return fields
}

// Len 返回字段过滤数量（不含 active）
func (l List) Len() int {
	return len(l.entries)
}

// Apply 按存储顺序把字段过滤追加到查询；字段名不做表结构校验
func (l List) Apply(b sql.ISelectBuilder) {
	for _, e := range l.entries {
		if e.filter == nil || e.filter.IsZero() {
			continue
		}
		e.filter.AddToQuery(b, e.field)
	}
}
