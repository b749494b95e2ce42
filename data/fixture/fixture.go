// Package fixture 提供目录视图的建表脚本与演示数据
//
// 用于内存 sqlite 的测试与命令行的本地演示库。
package fixture

import (
	"context"
	_ "embed"
)

//go:embed schema.sql
var Schema string

//go:embed demo.sql
var Demo string

// IScriptExecutor 能执行多语句脚本的数据库
type IScriptExecutor interface {
	ExecScript(ctx context.Context, script string) error
}

// Load 建表并写入演示数据
func Load(ctx context.Context, db IScriptExecutor) error {
	if err := db.ExecScript(ctx, Schema); err != nil {
		return err
	}
	return db.ExecScript(ctx, Demo)
}
