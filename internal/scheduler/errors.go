package scheduler

import "errors"

// 轮播槽位错误
var (
	ErrDismissed = errors.New("carousel slot dismissed")
	ErrBadIndex  = errors.New("carousel index out of range")
)
