package service

import (
	"context"

	"catalogue/auth"
	"catalogue/data/filter"
	"catalogue/data/repository"
	"catalogue/domain/datatype"
)

// Manufacturer 制造商服务
type Manufacturer struct {
	gate gate
}

// NewManufacturer 创建制造商服务
func NewManufacturer(r *repository.Repository, a auth.IAuthorization) *Manufacturer {
	return &Manufacturer{gate: newGate(r, a, "Manufacturer", PermissionViewInactiveManufacturer)}
}

// Manufacturer 按主键查询制造商
func (s *Manufacturer) Manufacturer(ctx context.Context, id string) (*datatype.Manufacturer, error) {
	return byID(ctx, s.gate, id, datatype.ManufacturerType{})
}

// Manufacturers 按过滤条件查询制造商
func (s *Manufacturer) Manufacturers(ctx context.Context, list filter.List) ([]*datatype.Manufacturer, error) {
	return byFilter(ctx, s.gate, list, datatype.ManufacturerType{}, nil)
}
