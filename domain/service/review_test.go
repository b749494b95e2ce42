package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogue/auth"
	"catalogue/data/filter"
	"catalogue/domain/datatype"
	"catalogue/errors"
)

func TestReview_Moderated(t *testing.T) {
	ctx := context.Background()
	r := newRepository(t)
	anonymous := NewReview(r, auth.Deny{}, true)

	review, err := anonymous.Review(ctx, "r-active")
	require.NoError(t, err)
	assert.True(t, review.IsActive())
	assert.Equal(t, "Fantastic kite", review.Text())
	assert.Equal(t, int64(5), review.Rating())
	assert.Equal(t, "2011-02-16 15:21:37", review.CreatedAt().Format("2006-01-02 15:04:05"))

	_, err = anonymous.Review(ctx, "r-pending")
	assert.True(t, errors.IsUnauthorized(err))

	review, err = NewReview(r, allPermissions, true).Review(ctx, "r-pending")
	require.NoError(t, err)
	assert.False(t, review.IsActive())

	_, err = anonymous.Review(ctx, "missing")
	assert.True(t, errors.IsNotFound(err))

	list, err := anonymous.Reviews(ctx, filter.NewList(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"r-active", "r-list", "r-orphan"}, ids(list))
}

// 未开启审核：未激活的评论也按激活处理，不需要权限
func TestReview_Unmoderated(t *testing.T) {
	ctx := context.Background()
	anonymous := NewReview(newRepository(t), auth.Deny{}, false)

	review, err := anonymous.Review(ctx, "r-pending")
	require.NoError(t, err)
	assert.True(t, review.IsActive())

	list, err := anonymous.Reviews(ctx, filter.NewList(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"r-active", "r-list", "r-orphan", "r-pending"}, ids(list))
}

func TestReview_ReviewsFiltered(t *testing.T) {
	ctx := context.Background()
	s := NewReview(newRepository(t), allPermissions, true)

	forProduct, err := s.Reviews(ctx, datatype.NewReviewFilterList(filter.NewIDFilter("p-core"), nil, nil), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"r-active", "r-list", "r-pending"}, ids(forProduct))

	good, err := filter.NewNumberFilter[int64](nil, nil, ptr[int64](3), nil)
	require.NoError(t, err)
	page, err := filter.NewPagination(0, 1)
	require.NoError(t, err)
	top, err := s.Reviews(ctx, datatype.NewReviewFilterList(nil, filter.NewIDFilter("u-marc"), good), page)
	require.NoError(t, err)
	assert.Equal(t, []string{"r-active"}, ids(top))
}

func ptr[T any](v T) *T { return &v }
