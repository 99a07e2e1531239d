package repository

import (
	"context"
	"errors"
	"testing"

	"dronemarket/internal/model"
)

func TestMemoryFavoriteAddAndDuplicate(t *testing.T) {
	repo := NewMemoryFavoriteRepository()
	ctx := context.Background()

	fav := &model.Favorite{ID: "f1", UserID: 1, DroneID: 10}
	if err := repo.Add(ctx, fav); err != nil {
		t.Fatalf("首次收藏失败: %v", err)
	}
	if err := repo.Add(ctx, &model.Favorite{ID: "f2", UserID: 1, DroneID: 10}); !errors.Is(err, ErrDuplicate) {
		t.Errorf("重复收藏应返回ErrDuplicate，实际%v", err)
	}
	// 不同用户收藏同一商品互不影响
	if err := repo.Add(ctx, &model.Favorite{ID: "f3", UserID: 2, DroneID: 10}); err != nil {
		t.Errorf("其他用户收藏不应冲突: %v", err)
	}
}

func TestMemoryFavoriteRemoveAndList(t *testing.T) {
	repo := NewMemoryFavoriteRepository()
	ctx := context.Background()

	repo.Add(ctx, &model.Favorite{ID: "f1", UserID: 1, DroneID: 10})
	repo.Add(ctx, &model.Favorite{ID: "f2", UserID: 1, DroneID: 20})

	list, err := repo.ListByUser(ctx, 1)
	if err != nil || len(list) != 2 {
		t.Fatalf("收藏列表期望2条，实际%d err=%v", len(list), err)
	}
	// 收藏时间倒序，后收藏的在前
	if list[0].DroneID != 20 {
		t.Errorf("列表应倒序，首位期望商品20，实际%d", list[0].DroneID)
	}

	if err := repo.Remove(ctx, 1, 10); err != nil {
		t.Fatalf("取消收藏失败: %v", err)
	}
	if err := repo.Remove(ctx, 1, 10); !errors.Is(err, ErrNotFound) {
		t.Errorf("重复取消应返回ErrNotFound，实际%v", err)
	}

	count, _ := repo.CountByUser(ctx, 1)
	if count != 1 {
		t.Errorf("收藏数量期望1，实际%d", count)
	}

	exists, _ := repo.Exists(ctx, 1, 20)
	if !exists {
		t.Error("商品20应仍在收藏夹中")
	}
}
