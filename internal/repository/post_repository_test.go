package repository

import (
	"context"
	"errors"
	"testing"

	"dronemarket/internal/model"
)

func TestPostRepositoryIncrementViews(t *testing.T) {
	repo := NewPostRepository([]model.Post{{ID: 1, Views: 10}})
	ctx := context.Background()

	if err := repo.IncrementViews(ctx, 1); err != nil {
		t.Fatalf("累计浏览量失败: %v", err)
	}
	got, _ := repo.GetByID(ctx, 1)
	if got.Views != 11 {
		t.Errorf("浏览量期望11，实际%d", got.Views)
	}

	if err := repo.IncrementViews(ctx, 99); !errors.Is(err, ErrNotFound) {
		t.Errorf("不存在的帖子应返回ErrNotFound，实际%v", err)
	}
}

func TestPostRepositoryIncrementLikes(t *testing.T) {
	repo := NewPostRepository([]model.Post{{ID: 1, Likes: 2}})
	ctx := context.Background()

	likes, err := repo.IncrementLikes(ctx, 1)
	if err != nil {
		t.Fatalf("点赞失败: %v", err)
	}
	if likes != 3 {
		t.Errorf("点赞数期望3，实际%d", likes)
	}
}

func TestPostRepositoryCreate(t *testing.T) {
	repo := NewPostRepository([]model.Post{{ID: 3}})
	ctx := context.Background()

	post := &model.Post{Title: "새 글", Category: "자유게시판"}
	if err := repo.Create(ctx, post); err != nil {
		t.Fatalf("发帖失败: %v", err)
	}
	if post.ID != 4 {
		t.Errorf("新帖ID期望4，实际%d", post.ID)
	}
	if post.CreatedAt.IsZero() {
		t.Error("发帖时应补全创建时间")
	}
}
