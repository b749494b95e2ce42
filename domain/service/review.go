package service

import (
	"context"

	"catalogue/auth"
	"catalogue/data/filter"
	"catalogue/data/repository"
	"catalogue/domain/datatype"
)

// Review 评论服务
//
// 未开启审核时评论没有可见性谓词，所有评论都视为激活，权限也就不起作用。
type Review struct {
	gate       gate
	descriptor datatype.ReviewType
}

// NewReview 创建评论服务；moderated 表示是否开启评论审核
func NewReview(r *repository.Repository, a auth.IAuthorization, moderated bool) *Review {
	return &Review{
		gate:       newGate(r, a, "Review", PermissionViewInactiveReview),
		descriptor: datatype.NewReviewType(moderated),
	}
}

// Review 按主键查询评论
func (s *Review) Review(ctx context.Context, id string) (*datatype.Review, error) {
	return byID(ctx, s.gate, id, s.descriptor)
}

// Reviews 按过滤条件分页查询评论
func (s *Review) Reviews(ctx context.Context, list filter.List, p *filter.Pagination) ([]*datatype.Review, error) {
	return byFilter(ctx, s.gate, list, s.descriptor, p)
}
