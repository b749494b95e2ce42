package service

import (
	"context"

	"catalogue/data/filter"
	"catalogue/data/repository"
	"catalogue/domain/datatype"
	"catalogue/errors"
)

// nilOnNotFound 引用的记录不存在时返回 nil，其余错误原样返回
func nilOnNotFound[T any](item *T, err error) (*T, error) {
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return item, nil
}

// ReviewRelations 解析评论引用的作者与商品
type ReviewRelations struct {
	repository *repository.Repository
	products   *Product
}

// NewReviewRelations 创建评论关联解析
func NewReviewRelations(r *repository.Repository, products *Product) *ReviewRelations {
	return &ReviewRelations{repository: r, products: products}
}

// User 评论作者；作者不存在时为 nil
func (s *ReviewRelations) User(ctx context.Context, review *datatype.Review) (*datatype.User, error) {
	if review == nil || review.UserID() == "" {
		return nil, nil
	}
	return nilOnNotFound(repository.GetByID(ctx, s.repository, review.UserID(), datatype.UserType{}))
}

// Product 被评论的商品；对象不是商品或商品不存在时为 nil
func (s *ReviewRelations) Product(ctx context.Context, review *datatype.Review) (*datatype.Product, error) {
	if review == nil || !review.IsProductReview() || review.ObjectID() == "" {
		return nil, nil
	}
	return nilOnNotFound(s.products.Product(ctx, review.ObjectID()))
}

// CategoryRelations 解析分类树
type CategoryRelations struct {
	categories *Category
}

// NewCategoryRelations 创建分类关联解析
func NewCategoryRelations(categories *Category) *CategoryRelations {
	return &CategoryRelations{categories: categories}
}

// Parent 父分类；顶级分类或父分类不存在时为 nil
func (s *CategoryRelations) Parent(ctx context.Context, category *datatype.Category) (*datatype.Category, error) {
	if category == nil || category.IsRoot() {
		return nil, nil
	}
	return nilOnNotFound(s.categories.Category(ctx, category.ParentID()))
}

// Children 直接子分类，可见性规则与 Categories 相同
func (s *CategoryRelations) Children(ctx context.Context, category *datatype.Category) ([]*datatype.Category, error) {
	if category == nil {
		return []*datatype.Category{}, nil
	}
	return s.categories.Categories(ctx, datatype.NewCategoryFilterList(nil, filter.NewIDFilter(category.ID())))
}

// ProductRelations 解析商品引用的制造商与库存
type ProductRelations struct {
	products      *Product
	manufacturers *Manufacturer
}

// NewProductRelations 创建商品关联解析
func NewProductRelations(products *Product, manufacturers *Manufacturer) *ProductRelations {
	return &ProductRelations{products: products, manufacturers: manufacturers}
}

// Manufacturer 商品的制造商；未设置或不存在时为 nil
func (s *ProductRelations) Manufacturer(ctx context.Context, product *datatype.Product) (*datatype.Manufacturer, error) {
	if product == nil || product.ManufacturerID() == "" {
		return nil, nil
	}
	return nilOnNotFound(s.manufacturers.Manufacturer(ctx, product.ManufacturerID()))
}

// Stock 商品库存
func (s *ProductRelations) Stock(ctx context.Context, product *datatype.Product) (*datatype.ProductStock, error) {
	return s.products.ProductStock(ctx, product)
}
