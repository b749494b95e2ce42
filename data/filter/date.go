package filter

import (
	"time"

	"catalogue/data/db/sql"
	"catalogue/errors"
)

// DateFilter 日期过滤：等值或闭区间
type DateFilter struct {
	equals  *time.Time
	between *[2]time.Time
}

// NewDateFilter 创建日期过滤；区间下界晚于上界时返回 INVALID_INPUT
func NewDateFilter(equals *time.Time, between *[2]time.Time) (*DateFilter, error) {
	if between != nil && between[0].After(between[1]) {
		return nil, errors.NewInvalidInput("between lower bound %s is after upper bound %s",
			formatDate(between[0]), formatDate(between[1]))
	}
	return &DateFilter{equals: clone(equals), between: clone(between)}, nil
}

func (f *DateFilter) IsZero() bool {
	return f == nil || (f.equals == nil && f.between == nil)
}

func (f *DateFilter) AddToQuery(b sql.ISelectBuilder, field string) {
	if f.IsZero() {
		return
	}
	col := column(field)
	var (
		parts []string
		args  []any
	)
	if f.equals != nil {
		parts = append(parts, col+" = ?")
		args = append(args, formatDate(*f.equals))
	}
	if f.between != nil {
		parts = append(parts, col+" BETWEEN ? AND ?")
		args = append(args, formatDate(f.between[0]), formatDate(f.between[1]))
	}
	b.AndWhere(conjunction(parts), args...)
}
