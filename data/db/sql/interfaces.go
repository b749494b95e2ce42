package sql

import (
	"context"

	core "catalogue/data/db"
	"catalogue/data/db/dialect"
)

// ISql 提供统一的 SQL 构建与执行接口（只读）。
type ISql interface {
	Select(columns ...string) ISelectBuilder
}

// ISelectBuilder 构建 SELECT 语句。
//
// Where/AndWhere 追加的条件之间以 AND 连接；条件中的字面量必须通过 args 绑定。
type ISelectBuilder interface {
	From(table string) ISelectBuilder
	Where(cond string, args ...any) ISelectBuilder
	AndWhere(cond string, args ...any) ISelectBuilder
	OrderBy(expr string) ISelectBuilder
	Limit(n int) ISelectBuilder
	Offset(n int) ISelectBuilder
	Build() (query string, args []any)
	Query(ctx context.Context) (core.IRows, error)
	// Fetch 以关联模式执行查询，返回全部结果行
	Fetch(ctx context.Context) ([]core.Row, error)
}

type sqlImpl struct {
	db      core.IDatabase
	dialect dialect.Dialect
}

// New 创建 ISql 实例。
func New(db core.IDatabase) ISql {
	return &sqlImpl{
		db:      db,
		dialect: dialect.FromDatabase(db),
	}
}

func (s *sqlImpl) Select(columns ...string) ISelectBuilder {
	if len(columns) == 0 {
		columns = []string{"*"}
	}
	for _, c := range columns {
		if c != "*" {
			MustIdentifier(c)
		}
	}
	return &selectBuilder{
		db:      s.db,
		dialect: s.dialect,
		cols:    columns,
	}
}
