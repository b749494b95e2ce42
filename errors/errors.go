// Package errors 提供目录查询层统一的错误码体系
//
// 查询层只区分少数几类错误：
//   - NOT_FOUND：主键不存在或行不可见（加载失败 / CanView 为 false）
//   - UNAUTHORIZED：领域服务的可见性校验未通过
//   - TYPE_MISMATCH：描述符配置错误，属于编程错误
//   - INVALID_INPUT：过滤条件或分页参数非法
//
// NOT_FOUND 与 UNAUTHORIZED 必须一路保持可区分，直到表现层映射为 404/401。
package errors

import (
	stdErrors "errors"
	"fmt"
	"runtime"
	"strings"
)

// ErrorCode 错误代码类型
type ErrorCode string

// 预定义错误代码
const (
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeTypeMismatch ErrorCode = "TYPE_MISMATCH"
	ErrCodeConfig       ErrorCode = "CONFIG_ERROR"
	ErrCodeDatabase     ErrorCode = "DATABASE_ERROR"
)

// IError 错误接口
type IError interface {
	error

	// 获取错误代码
	Code() ErrorCode

	// 获取错误消息
	Message() string

	// 获取原始错误
	Cause() error

	// 获取错误详情
	Details() map[string]any

	// 获取堆栈信息
	Stack() string

	// 是否为指定类型的错误
	Is(target error) bool

	// 添加上下文
	WithContext(key string, value any) IError
}

// AppError 应用错误实现
type AppError struct {
	code    ErrorCode
	message string
	cause   error
	details map[string]any
	stack   string
}

// NewError 创建新错误
func NewError(code ErrorCode, message string) IError {
	return &AppError{
		code:    code,
		message: message,
		details: make(map[string]any),
		stack:   captureStack(),
	}
}

// WrapError 包装错误
func WrapError(err error, code ErrorCode, message string) IError {
	if err == nil {
		return nil
	}

	return &AppError{
		code:    code,
		message: message,
		cause:   err,
		details: make(map[string]any),
		stack:   captureStack(),
	}
}

// NewNotFound 创建“记录不存在”错误，entity 为实体名（例如 category）
func NewNotFound(entity, id string) IError {
	msg := fmt.Sprintf("%s was not found by id: %s", entity, id)
	if entity == "" {
		msg = "record was not found by id: " + id
	}
	return NewError(ErrCodeNotFound, msg).
		WithContext("entity", entity).
		WithContext("id", id)
}

// NewUnauthorized 创建未授权错误
func NewUnauthorized(permission string) IError {
	return NewError(ErrCodeUnauthorized, "Unauthorized").
		WithContext("permission", permission)
}

// NewTypeMismatch 创建描述符类型不匹配错误
func NewTypeMismatch(format string, args ...any) IError {
	return NewError(ErrCodeTypeMismatch, fmt.Sprintf(format, args...))
}

// NewInvalidInput 创建参数非法错误
func NewInvalidInput(format string, args ...any) IError {
	return NewError(ErrCodeInvalidInput, fmt.Sprintf(format, args...))
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

// Code 获取错误代码
func (e *AppError) Code() ErrorCode {
	return e.code
}

// Message 获取错误消息
func (e *AppError) Message() string {
	return e.message
}

// Cause 获取原始错误
func (e *AppError) Cause() error {
	return e.cause
}

// Details 获取错误详情
func (e *AppError) Details() map[string]any {
	if e.details == nil {
		e.details = make(map[string]any)
	}
	return e.details
}

// Stack 获取堆栈信息
func (e *AppError) Stack() string {
	return e.stack
}

// Is 检查是否为指定类型的错误（按错误码比较）
func (e *AppError) Is(target error) bool {
	if target == nil {
		return false
	}

	if appErr, ok := target.(*AppError); ok {
		return e.code == appErr.code
	}

	if e.cause != nil {
		return stdErrors.Is(e.cause, target)
	}

	return false
}

// Unwrap 解包错误（支持 errors.Unwrap）
func (e *AppError) Unwrap() error {
	return e.cause
}

// WithContext 添加上下文，返回新的错误实例
func (e *AppError) WithContext(key string, value any) IError {
	newDetails := copyMap(e.details)
	newDetails[key] = value

	return &AppError{
		code:    e.code,
		message: e.message,
		cause:   e.cause,
		details: newDetails,
		stack:   e.stack,
	}
}

// 预定义错误变量，仅用于 errors.Is 按错误码比较
var (
	ErrNotFound     = NewError(ErrCodeNotFound, "record not found")
	ErrUnauthorized = NewError(ErrCodeUnauthorized, "Unauthorized")
	ErrTypeMismatch = NewError(ErrCodeTypeMismatch, "type mismatch")
	ErrInvalidInput = NewError(ErrCodeInvalidInput, "invalid input")
)

// IsNotFound 检查是否为未找到错误
func IsNotFound(err error) bool {
	return IsErrorCode(err, ErrCodeNotFound)
}

// IsUnauthorized 检查是否为未授权错误
func IsUnauthorized(err error) bool {
	return IsErrorCode(err, ErrCodeUnauthorized)
}

// IsTypeMismatch 检查是否为描述符类型不匹配
func IsTypeMismatch(err error) bool {
	return IsErrorCode(err, ErrCodeTypeMismatch)
}

// IsInvalidInput 检查是否为参数非法
func IsInvalidInput(err error) bool {
	return IsErrorCode(err, ErrCodeInvalidInput)
}

// IsErrorCode 检查是否为指定错误代码
func IsErrorCode(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}

	var appErr *AppError
	if stdErrors.As(err, &appErr) {
		return appErr.code == code
	}

	return false
}

// GetErrorCode 获取错误代码；非 AppError 视为内部错误
func GetErrorCode(err error) ErrorCode {
	if err == nil {
		return ""
	}

	var appErr *AppError
	if stdErrors.As(err, &appErr) {
		return appErr.code
	}

	return ErrCodeInternal
}

// captureStack 捕获堆栈信息
func captureStack() string {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])

	var builder strings.Builder
	frames := runtime.CallersFrames(pcs[:n])

	for {
		frame, more := frames.Next()
		builder.WriteString(fmt.Sprintf("%s:%d %s\n", frame.File, frame.Line, frame.Function))

		if !more {
			break
		}
	}

	return builder.String()
}

// copyMap 复制映射
func copyMap(original map[string]any) map[string]any {
	if original == nil {
		return make(map[string]any)
	}

	copied := make(map[string]any, len(original))
	for k, v := range original {
		copied[k] = v
	}

	return copied
}
