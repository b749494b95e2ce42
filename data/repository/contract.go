package repository

import (
	"catalogue/data/db"
)

// Condition 带绑定参数的条件片段，Expr 使用占位符 ?
type Condition struct {
	Expr string
	Args []any
}

// IsEmpty 条件是否为空（模型没有 active/inactive 的概念）
func (c Condition) IsEmpty() bool {
	return c.Expr == ""
}

// IModel 存储模型契约。
//
// 存储模型描述一行数据来自哪个视图、主键列以及“当前可见”谓词，
// 并能从关联数组形式的结果行中完成赋值。模型本身不持有数据库连接。
type IModel interface {
	// ViewName 数据来源的表或视图
	ViewName() string
	// PrimaryKey 主键列名（不带视图前缀）
	PrimaryKey() string
	// ActivePredicate 可见性谓词，可能为空
	ActivePredicate() Condition
	// Assign 用结果行填充模型
	Assign(row db.Row) error
}

// IViewable 可选能力：行级可见性检查。
//
// 实现该接口的模型在按主键加载后若 CanView 返回 false，按“不存在”处理，
// 避免通过 403/404 的差异泄露记录是否存在。
type IViewable interface {
	CanView() bool
}

// IDataType 物化后的类型化结果
type IDataType interface {
	ID() string
}

// IDescriptor 把结果类型与其存储模型、构造规则绑定在一起。
//
// NewModel 每次返回一个全新的空模型；返回 nil 表示描述符配置错误。
// FromModel 从已赋值的模型构造结果，模型类型不符时返回 TYPE_MISMATCH。
type IDescriptor[T IDataType] interface {
	NewModel() IModel
	FromModel(m IModel) (T, error)
}
