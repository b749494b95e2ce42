// Package filter 提供可组合的查询过滤条件
//
// 每个过滤原语只负责把自己渲染为一个 WHERE 条件片段（必要时是带括号的复合条件），
// 字面量一律通过占位符绑定，绝不拼接进 SQL 文本。
// 未设置任何约束的过滤器不追加条件，而不是追加恒真条件。
package filter

import (
	"time"

	"catalogue/data/db/sql"
)

// IFilter 过滤原语
type IFilter interface {
	// AddToQuery 将条件以 AND 方式追加到查询构建器，field 为列名
	AddToQuery(b sql.ISelectBuilder, field string)
	// IsZero 过滤器是否没有任何约束（nil 接收者同样返回 true）
	IsZero() bool
}

// dateLayout 日期参数的统一格式，与存储层的 DATETIME 文本格式一致
const dateLayout = "2006-01-02 15:04:05"

func formatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// column 校验列名；列名来自代码常量，不安全视为编程错误
func column(field string) string {
	return sql.MustIdentifier(field)
}

// conjunction 将多个条件合并为一个逻辑条件
func conjunction(parts []string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	default:
		out := "(" + parts[0]
		for _, p := range parts[1:] {
			out += " AND " + p
		}
		return out + ")"
	}
}

func ptr[T any](v T) *T { return &v }

// clone 复制指针指向的值，过滤器不与调用方共享可变状态
func clone[T any](p *T) *T {
	if p == nil {
		return nil
	}
	return ptr(*p)
}
