package service

import (
	"context"

	"catalogue/auth"
	"catalogue/data/filter"
	"catalogue/data/repository"
	"catalogue/domain/datatype"
)

// Category 分类服务
type Category struct {
	gate gate
}

// NewCategory 创建分类服务
func NewCategory(r *repository.Repository, a auth.IAuthorization) *Category {
	return &Category{gate: newGate(r, a, "Category", PermissionViewInactiveCategory)}
}

// Category 按主键查询分类
func (s *Category) Category(ctx context.Context, id string) (*datatype.Category, error) {
	return byID(ctx, s.gate, id, datatype.CategoryType{})
}

// Categories 按过滤条件查询分类
func (s *Category) Categories(ctx context.Context, list filter.List) ([]*datatype.Category, error) {
	return byFilter(ctx, s.gate, list, datatype.CategoryType{}, nil)
}
