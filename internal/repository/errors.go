package repository

import "errors"

// 仓库层哨兵错误
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
	ErrEmptyPool = errors.New("ad pool is empty")
)
