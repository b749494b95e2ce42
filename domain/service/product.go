package service

import (
	"context"

	"catalogue/auth"
	"catalogue/data/filter"
	"catalogue/data/repository"
	"catalogue/domain/datatype"
	"catalogue/domain/model"
	"catalogue/errors"
)

// Product 商品服务
type Product struct {
	gate  gate
	clock model.Clock
}

// ProductOption 商品服务配置项
type ProductOption func(*Product)

// WithClock 指定判断激活时间窗口使用的时钟
func WithClock(c model.Clock) ProductOption {
	return func(s *Product) { s.clock = c }
}

// NewProduct 创建商品服务，默认使用系统 UTC 时钟
func NewProduct(r *repository.Repository, a auth.IAuthorization, opts ...ProductOption) *Product {
	s := &Product{gate: newGate(r, a, "Product", PermissionViewInactiveProduct)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Product) descriptor() datatype.ProductType {
	return datatype.ProductType{Clock: s.clock}
}

// Product 按主键查询商品；隐藏商品视为不存在
func (s *Product) Product(ctx context.Context, id string) (*datatype.Product, error) {
	return byID(ctx, s.gate, id, s.descriptor())
}

// Products 按过滤条件分页查询商品
func (s *Product) Products(ctx context.Context, list filter.List, p *filter.Pagination) ([]*datatype.Product, error) {
	return byFilter(ctx, s.gate, list, s.descriptor(), p)
}

// ProductStock 查询商品库存，与商品共用同一行数据
func (s *Product) ProductStock(ctx context.Context, product *datatype.Product) (*datatype.ProductStock, error) {
	if product == nil {
		return nil, errors.NewInvalidInput("product is required")
	}
	stock, err := repository.GetByID(ctx, s.gate.repository, product.ID(), datatype.ProductStockType{Clock: s.clock})
	if errors.IsNotFound(err) {
		return nil, errors.NewNotFound(s.gate.entity, product.ID())
	}
	return stock, err
}
