package service

import "errors"

// 服务层哨兵错误
var (
	ErrNotOwner        = errors.New("not the listing owner")
	ErrAuthFailed      = errors.New("invalid email or password")
	ErrInvalidCategory = errors.New("invalid post category")
)
