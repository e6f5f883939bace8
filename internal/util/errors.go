package util

import "errors"

var (
	ErrUserNotFound         = errors.New("用户不存在")
	ErrEmailRegistered      = errors.New("该邮箱已被注册")
	ErrInvalidCredentials   = errors.New("邮箱或密码错误")
	ErrInvalidDate          = errors.New("invalid date: expected YYYY-MM-DD")
	ErrTopicIndexOutOfRange = errors.New("topic index out of range")
	ErrPermissionDenied     = errors.New("permission denied")
)
