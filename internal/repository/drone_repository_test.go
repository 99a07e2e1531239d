package repository

import (
	"context"
	"errors"
	"testing"

	"dronemarket/internal/model"
)

func TestDroneRepositoryCreateAssignsID(t *testing.T) {
	repo := NewDroneRepository([]model.Drone{{ID: 5, Name: "Mavic 3"}})
	ctx := context.Background()

	drone := &model.Drone{Name: "Mini 4 Pro"}
	if err := repo.Create(ctx, drone); err != nil {
		t.Fatalf("创建商品失败: %v", err)
	}
	if drone.ID != 6 {
		t.Errorf("新商品ID应接在种子数据之后，期望6实际%d", drone.ID)
	}
	if drone.PostedAt.IsZero() {
		t.Error("创建时应补全发布时间")
	}

	got, err := repo.GetByID(ctx, 6)
	if err != nil || got.Name != "Mini 4 Pro" {
		t.Errorf("回查新商品失败: %v", err)
	}
}

func TestDroneRepositoryUpdateStatusAndDelete(t *testing.T) {
	repo := NewDroneRepository([]model.Drone{{ID: 1, Status: model.StatusActive}})
	ctx := context.Background()

	if err := repo.UpdateStatus(ctx, 1, model.StatusSold); err != nil {
		t.Fatalf("更新状态失败: %v", err)
	}
	got, _ := repo.GetByID(ctx, 1)
	if got.Status != model.StatusSold {
		t.Errorf("状态期望sold，实际%s", got.Status)
	}

	if err := repo.UpdateStatus(ctx, 99, model.StatusSold); !errors.Is(err, ErrNotFound) {
		t.Errorf("更新不存在的商品应返回ErrNotFound，实际%v", err)
	}

	if err := repo.Delete(ctx, 1); err != nil {
		t.Fatalf("删除商品失败: %v", err)
	}
	if _, err := repo.GetByID(ctx, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("删除后回查应返回ErrNotFound，实际%v", err)
	}
}

func TestDroneRepositoryListReturnsCopy(t *testing.T) {
	repo := NewDroneRepository([]model.Drone{{ID: 1, Name: "Anafi"}})
	ctx := context.Background()

	list, _ := repo.List(ctx)
	list[0].Name = "mutated"

	got, _ := repo.GetByID(ctx, 1)
	if got.Name != "Anafi" {
		t.Error("List返回的切片被修改不应影响存储库")
	}
}
