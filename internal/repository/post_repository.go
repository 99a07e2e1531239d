package repository

import (
	"context"
	"sync"
	"time"

	"dronemarket/internal/model"
)

// PostRepository 社区帖子存储库（内存）
type PostRepository struct {
	mu     sync.RWMutex
	posts  []model.Post
	nextID int64
}

// NewPostRepository 创建帖子存储库实例
func NewPostRepository(seed []model.Post) *PostRepository {
	var maxID int64
	for _, p := range seed {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	posts := make([]model.Post, len(seed))
	copy(posts, seed)
	return &PostRepository{posts: posts, nextID: maxID + 1}
}

// List 获取全部帖子的副本
func (r *PostRepository) List(ctx context.Context) ([]model.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Post, len(r.posts))
	copy(out, r.posts)
	return out, nil
}

// GetByID 根据ID获取帖子
func (r *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.posts {
		if p.ID == id {
			out := p
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

// Create 创建帖子并分配ID
func (r *PostRepository) Create(ctx context.Context, post *model.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	post.ID = r.nextID
	r.nextID++
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}
	r.posts = append(r.posts, *post)
	return nil
}

// IncrementViews 帖子浏览量加一
func (r *PostRepository) IncrementViews(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.posts {
		if r.posts[i].ID == id {
			r.posts[i].Views++
			return nil
		}
	}
	return ErrNotFound
}

// IncrementLikes 帖子点赞数加一，返回更新后的点赞数
func (r *PostRepository) IncrementLikes(ctx context.Context, id int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.posts {
		if r.posts[i].ID == id {
			r.posts[i].Likes++
			return r.posts[i].Likes, nil
		}
	}
	return 0, ErrNotFound
}
