// Package service 提供目录各实体的领域服务
//
// 每个服务用两种方式落实“未激活数据需要权限”：
//   - 列表查询：没有权限时把过滤列表的 active 改写为 true，由仓储按可见性谓词过滤；
//   - 按主键查询：先加载，再对未激活的结果做权限校验，失败返回 UNAUTHORIZED。
//
// “不存在”与“未授权”始终是两个不同的错误码。
package service

import (
	"context"

	"catalogue/auth"
	"catalogue/data/filter"
	"catalogue/data/repository"
	"catalogue/errors"
)

// 查看未激活数据所需的权限
const (
	PermissionViewInactiveCategory     = "VIEW_INACTIVE_CATEGORY"
	PermissionViewInactiveManufacturer = "VIEW_INACTIVE_MANUFACTURER"
	PermissionViewInactiveProduct      = "VIEW_INACTIVE_PRODUCT"
	PermissionViewInactiveReview       = "VIEW_INACTIVE_REVIEW"
)

// activeDataType 带激活状态的结果类型
type activeDataType interface {
	repository.IDataType
	IsActive() bool
}

// gate 服务共用的仓储、授权与权限名
type gate struct {
	repository    *repository.Repository
	authorization auth.IAuthorization
	entity        string
	permission    string
}

func newGate(r *repository.Repository, a auth.IAuthorization, entity, permission string) gate {
	if a == nil {
		a = auth.Deny{}
	}
	return gate{repository: r, authorization: a, entity: entity, permission: permission}
}

// byID 加载后校验：未激活且无权限时返回 UNAUTHORIZED
func byID[T activeDataType](ctx context.Context, g gate, id string, d repository.IDescriptor[T]) (T, error) {
	var zero T
	item, err := repository.GetByID(ctx, g.repository, id, d)
	if err != nil {
		if errors.IsNotFound(err) {
			return zero, errors.NewNotFound(g.entity, id)
		}
		return zero, err
	}
	if item.IsActive() {
		return item, nil
	}
	if !g.authorization.IsAllowed(ctx, g.permission) {
		return zero, errors.NewUnauthorized(g.permission)
	}
	return item, nil
}

// byFilter 无权限时强制 active=true
func byFilter[T repository.IDataType](ctx context.Context, g gate, list filter.List, d repository.IDescriptor[T], p *filter.Pagination) ([]T, error) {
	return repository.GetByFilter(ctx, g.repository, g.scope(ctx, list), d, p)
}

func (g gate) scope(ctx context.Context, list filter.List) filter.List {
	if g.authorization.IsAllowed(ctx, g.permission) {
		return list
	}
	return list.WithActive(filter.NewBoolFilter(true))
}
