package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNotFound(t *testing.T) {
	err := NewNotFound("category", "abc")

	assert.True(t, IsNotFound(err))
	assert.False(t, IsUnauthorized(err))
	assert.Equal(t, "abc", err.Details()["id"])
	assert.Equal(t, "category", err.Details()["entity"])
	assert.Contains(t, err.Error(), "category was not found by id: abc")
}

// NotFound 与 Unauthorized 必须始终可区分
func TestNotFoundAndUnauthorizedStayDistinct(t *testing.T) {
	notFound := fmt.Errorf("service: %w", NewNotFound("review", "r1"))
	unauthorized := fmt.Errorf("service: %w", NewUnauthorized("VIEW_INACTIVE_REVIEW"))

	assert.True(t, IsNotFound(notFound))
	assert.False(t, IsNotFound(unauthorized))
	assert.True(t, IsUnauthorized(unauthorized))
	assert.False(t, IsUnauthorized(notFound))

	assert.True(t, stdErrors.Is(notFound, ErrNotFound))
	assert.True(t, stdErrors.Is(unauthorized, ErrUnauthorized))
	assert.False(t, stdErrors.Is(unauthorized, ErrNotFound))
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{name: "nil", err: nil, want: ""},
		{name: "普通错误", err: stdErrors.New("boom"), want: ErrCodeInternal},
		{name: "类型不匹配", err: NewTypeMismatch("model %T", 1), want: ErrCodeTypeMismatch},
		{name: "参数非法", err: NewInvalidInput("limit %d", -1), want: ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetErrorCode(tt.err))
		})
	}
}

func TestWithContextDoesNotMutate(t *testing.T) {
	base := NewError(ErrCodeNotFound, "x")
	derived := base.WithContext("id", "1")

	assert.Empty(t, base.Details())
	assert.Equal(t, "1", derived.Details()["id"])
	assert.Equal(t, base.Stack(), derived.Stack())
}
