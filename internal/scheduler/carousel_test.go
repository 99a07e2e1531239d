package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"dronemarket/internal/model"
	"dronemarket/internal/repository"
	"dronemarket/pkg/logger"
)

func newTestScheduler(t *testing.T, poolSize int) *CarouselScheduler {
	t.Helper()
	pool := make([]model.Ad, poolSize)
	for i := range pool {
		pool[i] = model.Ad{ID: int64(i + 1), Type: model.PlacementBanner}
	}
	adRepo := repository.NewAdRepository(map[string][]model.Ad{
		model.PlacementBanner: pool,
	}, nil)
	return NewCarouselScheduler(adRepo, time.Hour, time.Hour, logger.NewLogger("error"))
}

func TestCarouselAdvanceWrapsAround(t *testing.T) {
	s := newTestScheduler(t, 3)
	state, err := s.CreateSlot(context.Background(), model.PlacementBanner)
	if err != nil {
		t.Fatalf("创建槽位失败: %v", err)
	}
	if state.Index != 0 || state.Total != 3 {
		t.Fatalf("初始状态错误: %+v", state)
	}

	// 推进3次应回到起点
	for i := 1; i <= 3; i++ {
		s.advanceAll()
		cur, err := s.Current(state.SlotID)
		if err != nil {
			t.Fatalf("获取槽位失败: %v", err)
		}
		want := i % 3
		if cur.Index != want {
			t.Errorf("第%d次推进后游标期望%d，实际%d", i, want, cur.Index)
		}
		if cur.Ad.ID != int64(want+1) {
			t.Errorf("第%d次推进后广告期望%d，实际%d", i, want+1, cur.Ad.ID)
		}
	}
}

func TestCarouselGoTo(t *testing.T) {
	s := newTestScheduler(t, 3)
	state, _ := s.CreateSlot(context.Background(), model.PlacementBanner)

	cur, err := s.GoTo(state.SlotID, 2)
	if err != nil {
		t.Fatalf("手动切换失败: %v", err)
	}
	if cur.Index != 2 {
		t.Errorf("手动切换后游标期望2，实际%d", cur.Index)
	}

	// 手动选择不重置定时器，下一次tick照常覆盖
	s.advanceAll()
	cur, _ = s.Current(state.SlotID)
	if cur.Index != 0 {
		t.Errorf("tick应覆盖手动选择回到0，实际%d", cur.Index)
	}

	if _, err := s.GoTo(state.SlotID, 3); !errors.Is(err, ErrBadIndex) {
		t.Errorf("越界位置应返回ErrBadIndex，实际%v", err)
	}
	if _, err := s.GoTo(state.SlotID, -1); !errors.Is(err, ErrBadIndex) {
		t.Errorf("负数位置应返回ErrBadIndex，实际%v", err)
	}
}

func TestCarouselDismissIsTerminal(t *testing.T) {
	s := newTestScheduler(t, 2)
	state, _ := s.CreateSlot(context.Background(), model.PlacementBanner)

	if err := s.Dismiss(state.SlotID); err != nil {
		t.Fatalf("关闭槽位失败: %v", err)
	}

	if _, err := s.Current(state.SlotID); !errors.Is(err, ErrDismissed) {
		t.Errorf("关闭后读取应返回ErrDismissed，实际%v", err)
	}
	if _, err := s.GoTo(state.SlotID, 0); !errors.Is(err, ErrDismissed) {
		t.Errorf("关闭后切换应返回ErrDismissed，实际%v", err)
	}

	// 关闭的槽位不再被定时器推进
	s.advanceAll()
	s.mu.Lock()
	idx := s.slots[state.SlotID].index
	s.mu.Unlock()
	if idx != 0 {
		t.Errorf("关闭的槽位不应被推进，游标实际%d", idx)
	}
}

func TestCarouselUnknownSlot(t *testing.T) {
	s := newTestScheduler(t, 2)
	if _, err := s.Current("missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("未知槽位应返回ErrNotFound，实际%v", err)
	}
}

func TestCarouselSweepDropsIdleSlots(t *testing.T) {
	s := newTestScheduler(t, 2)
	state, _ := s.CreateSlot(context.Background(), model.PlacementBanner)

	s.mu.Lock()
	s.slots[state.SlotID].lastAccess = time.Now().Add(-2 * time.Hour)
	s.mu.Unlock()

	s.sweep()
	if _, err := s.Current(state.SlotID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("空闲超时的槽位应被回收，实际%v", err)
	}
}
