// Package auth 提供领域服务使用的权限判定
//
// 查询层不处理身份认证，只通过 IAuthorization.IsAllowed 询问
// “当前调用方是否拥有某个权限”。调用方身份（subject）随 context 传递。
package auth

import (
	"context"
	"sort"
	"strings"
)

// IAuthorization 权限判定接口
type IAuthorization interface {
	IsAllowed(ctx context.Context, permission string) bool
}

type subjectKey struct{}

// WithSubject 把调用方标识写入 context
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectKey{}, subject)
}

// Subject 从 context 读取调用方标识
func Subject(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	s, ok := ctx.Value(subjectKey{}).(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// Static 固定授权集合，与调用方无关
type Static struct {
	grants map[string]struct{}
}

// NewStatic 创建固定授权；空白权限名被忽略
func NewStatic(permissions ...string) *Static {
	s := &Static{grants: make(map[string]struct{}, len(permissions))}
	for _, p := range permissions {
		p = strings.TrimSpace(p)
		if p != "" {
			s.grants[p] = struct{}{}
		}
	}
	return s
}

func (s *Static) IsAllowed(_ context.Context, permission string) bool {
	if s == nil {
		return false
	}
	_, ok := s.grants[permission]
	return ok
}

// Permissions 返回已授予的权限（排序后）
func (s *Static) Permissions() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.grants))
	for p := range s.grants {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Deny 拒绝一切权限（匿名调用方）
type Deny struct{}

func (Deny) IsAllowed(context.Context, string) bool { return false }

// Func 函数适配器
type Func func(ctx context.Context, permission string) bool

func (f Func) IsAllowed(ctx context.Context, permission string) bool {
	if f == nil {
		return false
	}
	return f(ctx, permission)
}
