package datatype

import (
	"time"

	"catalogue/data/filter"
	"catalogue/data/repository"
	"catalogue/domain/model"
)

// Review 商品评论
type Review struct {
	id         string
	active     bool
	objectID   string
	objectType string
	text       string
	userID     string
	rating     int64
	language   int64
	createdAt  time.Time
	timestamp  time.Time
}

func (r *Review) ID() string           { return r.id }
func (r *Review) IsActive() bool       { return r.active }
func (r *Review) Text() string         { return r.text }
func (r *Review) Rating() int64        { return r.rating }
func (r *Review) Language() int64      { return r.language }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
func (r *Review) Timestamp() time.Time { return r.timestamp }
func (r *Review) UserID() string       { return r.userID }
func (r *Review) ObjectID() string     { return r.objectID }
func (r *Review) ObjectType() string   { return r.objectType }

// IsProductReview 评论对象是否为商品
func (r *Review) IsProductReview() bool {
	return r.objectType == model.ReviewObjectTypeProduct
}

// ReviewType 评论描述符
type ReviewType struct {
	moderated bool
}

// NewReviewType 创建评论描述符，moderated 表示评论是否需要审核后才可见
func NewReviewType(moderated bool) ReviewType {
	return ReviewType{moderated: moderated}
}

func (t ReviewType) NewModel() repository.IModel { return &model.Review{Moderated: t.moderated} }

func (ReviewType) FromModel(m repository.IModel) (*Review, error) {
	rm, ok := m.(*model.Review)
	if !ok {
		return nil, mismatch("review", m)
	}
	return &Review{
		id:         rm.ID,
		active:     rm.IsActive(),
		objectID:   rm.ObjectID,
		objectType: rm.ObjectType,
		text:       rm.Text,
		userID:     rm.UserID,
		rating:     rm.Rating,
		language:   rm.Lang,
		createdAt:  rm.CreatedAt,
		timestamp:  rm.Timestamp,
	}, nil
}

// NewReviewFilterList 评论的过滤列表：评论对象、作者、评分
func NewReviewFilterList(objectID *filter.IDFilter, userID *filter.IDFilter, rating *filter.IntegerFilter) filter.List {
	return filter.NewList().
		With("oxobjectid", objectID).
		With("oxuserid", userID).
		With("oxrating", rating)
}
