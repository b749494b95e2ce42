// Package db 提供目录查询层使用的数据库抽象接口
//
// 设计目标：
// 1. 隔离具体的驱动（sqlite、postgres 等）
// 2. 仅暴露只读查询层需要的最小能力
// 3. 便于单元测试（内存 sqlite / Mock）
//
// 本层不开启事务，也不跨调用持有连接；连接池的并发语义完全交给 database/sql。
package db

import (
	"context"
	"database/sql"
)

// IDatabase 通用数据库接口
type IDatabase interface {
	// 查询操作
	Query(ctx context.Context, query string, args ...any) (IRows, error)

	// 执行操作（仅用于建表、测试数据初始化等运维场景）
	Exec(ctx context.Context, query string, args ...any) (sql.Result, error)

	// 连接管理
	Ping(ctx context.Context) error
	Close() error
}

// IDialectNameProvider 可选接口：提供底层数据库方言名称
//
// 实现方应返回诸如 "sqlite"、"postgres" 等 driver/dialect 名，
// 供 sql 层推断方言能力（如 OFFSET 无 LIMIT 的写法）。
type IDialectNameProvider interface {
	// GetDialectName 返回底层数据库方言名称
	GetDialectName() string
}

// IRows 查询结果集接口
type IRows interface {
	// 遍历结果
	Next() bool
	Scan(dest ...any) error
	Close() error
	Err() error

	// 获取列信息
	Columns() ([]string, error)
}

// DBConfig 数据库配置
type DBConfig struct {
	Driver string // sqlite, postgres
	DSN    string

	// 连接池配置
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int // 秒
	ConnMaxIdleTime int // 秒
}
