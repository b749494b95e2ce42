// Package model 定义目录各视图的存储模型
//
// 存储模型只负责三件事：声明数据来自哪个视图与主键、给出“当前可见”谓词、
// 从结果行赋值。业务含义（是否对调用方可见、如何展示）留给 datatype 与 service。
package model

import (
	"fmt"
	"time"

	"catalogue/data/db"
)

// 视图中统一的主键列
const primaryKey = "oxid"

// 参数化日期使用的格式（UTC）
const dateLayout = "2006-01-02 15:04:05"

// Clock 返回当前时间，用于依赖时间窗口的可见性谓词
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now().UTC()
	}
	return c().UTC()
}

// assigner 逐列读取并记录第一个错误，避免每列一个 if err
type assigner struct {
	row db.Row
	err error
}

func (a *assigner) bool(column string) bool {
	v, err := a.row.Bool(column)
	a.fail(column, err)
	return v
}

func (a *assigner) int64(column string) int64 {
	v, err := a.row.Int64(column)
	a.fail(column, err)
	return v
}

func (a *assigner) float64(column string) float64 {
	v, err := a.row.Float64(column)
	a.fail(column, err)
	return v
}

func (a *assigner) time(column string) time.Time {
	v, err := a.row.Time(column)
	a.fail(column, err)
	return v
}

func (a *assigner) fail(column string, err error) {
	if err != nil && a.err == nil {
		a.err = fmt.Errorf("assign %s: %w", column, err)
	}
}
