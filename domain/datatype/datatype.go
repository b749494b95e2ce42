// Package datatype 定义对外暴露的类型化结果及其描述符
//
// 每个结果类型在构造时复制存储模型的状态，只提供读取方法。
// 描述符（XxxType）把结果类型与存储模型绑定：NewModel 给出新模型，
// FromModel 从已赋值的模型构造结果。
package datatype

import (
	"time"

	"catalogue/data/repository"
	"catalogue/errors"
)

// mismatch 描述符收到了不属于自己的模型
func mismatch(want string, got repository.IModel) error {
	return errors.NewTypeMismatch("expected %s model, got %T", want, got)
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
