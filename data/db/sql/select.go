package sql

import (
	"context"
	"strings"

	core "catalogue/data/db"
	"catalogue/data/db/dialect"
)

type selectBuilder struct {
	db      core.IDatabase
	dialect dialect.Dialect

	cols    []string
	table   string
	where   []string
	args    []any
	orderBy string
	limit   int
	offset  int
}

func (b *selectBuilder) From(table string) ISelectBuilder {
	b.table = MustIdentifier(table)
	return b
}

func (b *selectBuilder) Where(cond string, args ...any) ISelectBuilder {
	if cond != "" {
		b.where = append(b.where, cond)
		b.args = append(b.args, args...)
	}
	return b
}

func (b *selectBuilder) AndWhere(cond string, args ...any) ISelectBuilder {
	return b.Where(cond, args...)
}

func (b *selectBuilder) OrderBy(expr string) ISelectBuilder {
	if expr != "" {
		b.orderBy = expr
	}
	return b
}

// Limit 设置结果集最大行数。
//
// 约定：
//   - n > 0：生成 `LIMIT ?` 子句；
//   - n == 0：不生成 LIMIT 子句（等价于“不限制”）；
//   - n < 0：视为编程错误，直接 panic 以便尽早暴露问题。
func (b *selectBuilder) Limit(n int) ISelectBuilder {
	if n < 0 {
		panic("selectBuilder: limit cannot be negative")
	}
	b.limit = n
	return b
}

// Offset 设置结果集偏移量，n < 0 直接 panic。
func (b *selectBuilder) Offset(n int) ISelectBuilder {
	if n < 0 {
		panic("selectBuilder: offset cannot be negative")
	}
	b.offset = n
	return b
}

func (b *selectBuilder) Build() (string, []any) {
	if b.table == "" {
		panic("selectBuilder: From is required")
	}
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(b.cols, ", "))
	sb.WriteString(" FROM ")
	sb.WriteString(b.table)

	// 使用局部 args 副本，避免在多次 Build 调用之间污染 builder 状态。
	args := make([]any, 0, len(b.args)+2)
	args = append(args, b.args...)

	if len(b.where) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(b.where, " AND "))
	}
	if b.orderBy != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(b.orderBy)
	}
	switch {
	case b.limit > 0:
		sb.WriteString(" LIMIT ?")
		args = append(args, b.limit)
	case b.offset > 0:
		sb.WriteString(b.dialect.UnboundedLimit())
	}
	if b.offset > 0 {
		sb.WriteString(" OFFSET ?")
		args = append(args, b.offset)
	}
	return sb.String(), args
}

func (b *selectBuilder) Query(ctx context.Context) (core.IRows, error) {
	q, args := b.Build()
	return b.db.Query(ctx, q, args...)
}

func (b *selectBuilder) Fetch(ctx context.Context) ([]core.Row, error) {
	rows, err := b.Query(ctx)
	if err != nil {
		return nil, err
	}
	return core.FetchAll(rows)
}
