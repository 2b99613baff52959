package util

import "errors"

var (
	ErrUserNotFound     = errors.New("用户不存在")
	ErrEmailRegistered  = errors.New("该邮箱已被注册")
	ErrChapterNotFound  = errors.New("chapter not found")
	ErrInvalidQuizTotal = errors.New("totalQuestions must be greater than zero")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrPermissionDenied = errors.New("permission denied")
)
