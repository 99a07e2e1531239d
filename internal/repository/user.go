package repository

import (
	"context"
	"sync"
	"time"

	"dronemarket/internal/model"
)

// UserRepository 用户仓库接口
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// memoryUserRepository 内存用户仓库，账号在启动时装载
type memoryUserRepository struct {
	mu     sync.RWMutex
	users  []model.User
	nextID int64
}

// NewUserRepository 创建用户仓库实例
func NewUserRepository(seed []model.User) UserRepository {
	var maxID int64
	for _, u := range seed {
		if u.ID > maxID {
			maxID = u.ID
		}
	}
	users := make([]model.User, len(seed))
	copy(users, seed)
	return &memoryUserRepository{users: users, nextID: maxID + 1}
}

// Create 创建用户并分配ID
func (r *memoryUserRepository) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return ErrDuplicate
		}
	}
	user.ID = r.nextID
	r.nextID++
	if user.JoinDate.IsZero() {
		user.JoinDate = time.Now()
	}
	r.users = append(r.users, *user)
	return nil
}

// GetByID 根据ID获取用户
func (r *memoryUserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			out := u
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

// GetByEmail 根据邮箱获取用户
func (r *memoryUserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, ErrNotFound
}
