package filter

import (
	"catalogue/data/db/sql"
	"catalogue/errors"
)

// Number 数值过滤支持的类型
type Number interface {
	~int64 | ~float64
}

// NumberFilter 数值过滤：等值、小于、大于、闭区间，多个约束之间为 AND
type NumberFilter[N Number] struct {
	equals      *N
	lessThan    *N
	greaterThan *N
	between     *[2]N
}

// IntegerFilter 整数过滤
type IntegerFilter = NumberFilter[int64]

// FloatFilter 浮点过滤
type FloatFilter = NumberFilter[float64]

// NewNumberFilter 创建数值过滤；between 下界大于上界时返回 INVALID_INPUT
func NewNumberFilter[N Number](equals, lessThan, greaterThan *N, between *[2]N) (*NumberFilter[N], error) {
	if between != nil && between[0] > between[1] {
		return nil, errors.NewInvalidInput("between lower bound %v is greater than upper bound %v", between[0], between[1])
	}
	return &NumberFilter[N]{
		equals:      clone(equals),
		lessThan:    clone(lessThan),
		greaterThan: clone(greaterThan),
		between:     clone(between),
	}, nil
}

// NumberEquals 等值过滤
func NumberEquals[N Number](v N) *NumberFilter[N] {
	return &NumberFilter[N]{equals: ptr(v)}
}

// NumberBetween 闭区间过滤
func NumberBetween[N Number](lower, upper N) (*NumberFilter[N], error) {
	return NewNumberFilter[N](nil, nil, nil, &[2]N{lower, upper})
}

func (f *NumberFilter[N]) IsZero() bool {
	return f == nil || (f.equals == nil && f.lessThan == nil && f.greaterThan == nil && f.between == nil)
}

func (f *NumberFilter[N]) AddToQuery(b sql.ISelectBuilder, field string) {
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
		args = append(args, *f.equals)
	}
	if f.lessThan != nil {
		parts = append(parts, col+" < ?")
		args = append(args, *f.lessThan)
	}
	if f.greaterThan != nil {
		parts = append(parts, col+" > ?")
		args = append(args, *f.greaterThan)
	}
	if f.between != nil {
		parts = append(parts, col+" BETWEEN ? AND ?")
		args = append(args, f.between[0], f.between[1])
	}
	b.AndWhere(conjunction(parts), args...)
}
