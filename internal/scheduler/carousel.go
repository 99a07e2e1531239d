package scheduler

import (
	"context"
	"sync"
	"time"

	"k8s.io/apimachinery/pkg/util/rand"

	"dronemarket/internal/model"
	"dronemarket/internal/repository"
	"dronemarket/pkg/logger"
)

// slot 一个客户端的轮播槽位
type slot struct {
	ads        []model.Ad
	index      int
	dismissed  bool // 关闭后不再展示，状态终止
	lastAccess time.Time
}

// SlotState 槽位当前状态
type SlotState struct {
	SlotID string   `json:"slotId"`
	Index  int      `json:"index"`
	Total  int      `json:"total"`
	Ad     model.Ad `json:"ad"`
}

// CarouselScheduler 轮播调度器。每个客户端持有独立的槽位，
// 统一的定时器按固定间隔推进所有未关闭槽位的游标。
// 手动切换只改写游标，定时器照常运行，下一次tick会覆盖手动选择。
type CarouselScheduler struct {
	adRepo   *repository.AdRepository
	logger   *logger.Logger
	interval time.Duration
	slotTTL  time.Duration

	mu    sync.Mutex
	slots map[string]*slot

	quit chan struct{}
}

// NewCarouselScheduler 创建轮播调度器实例
func NewCarouselScheduler(adRepo *repository.AdRepository, interval, slotTTL time.Duration, logger *logger.Logger) *CarouselScheduler {
	return &CarouselScheduler{
		adRepo:   adRepo,
		logger:   logger,
		interval: interval,
		slotTTL:  slotTTL,
		slots:    make(map[string]*slot),
		quit:     make(chan struct{}),
	}
}

// Start 启动轮播调度器
func (s *CarouselScheduler) Start() {
	go s.rotateLoop()
	go s.sweepLoop()
	s.logger.Info("轮播调度器启动", "interval", s.interval)
}

// Stop 停止轮播调度器
func (s *CarouselScheduler) Stop() {
	close(s.quit)
	s.logger.Info("轮播调度器停止")
}

// rotateLoop 定时推进所有槽位的游标
func (s *CarouselScheduler) rotateLoop() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.advanceAll()
		case <-s.quit:
			return
		}
	}
}

// sweepLoop 定期回收空闲槽位
func (s *CarouselScheduler) sweepLoop() {
	// 立即清理一次
	s.sweep()

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.quit:
			return
		}
	}
}

// advanceAll 推进所有未关闭槽位：index = (index + 1) mod len(ads)
func (s *CarouselScheduler) advanceAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sl := range s.slots {
		if sl.dismissed || len(sl.ads) == 0 {
			continue
		}
		sl.index = (sl.index + 1) % len(sl.ads)
	}
}

// sweep 删除超过TTL未被访问的槽位
func (s *CarouselScheduler) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := time.Now().Add(-s.slotTTL)
	for id, sl := range s.slots {
		if sl.lastAccess.Before(cutoff) {
			delete(s.slots, id)
		}
	}
}

// CreateSlot 为指定广告位创建一个轮播槽位，返回初始状态
func (s *CarouselScheduler) CreateSlot(ctx context.Context, placement string) (*SlotState, error) {
	ads, err := s.adRepo.GetByPlacement(ctx, placement)
	if err != nil {
		return nil, err
	}

	id := rand.String(16)
	s.mu.Lock()
	s.slots[id] = &slot{ads: ads, lastAccess: time.Now()}
	s.mu.Unlock()

	return &SlotState{SlotID: id, Index: 0, Total: len(ads), Ad: ads[0]}, nil
}

// Current 获取槽位当前展示的广告
func (s *CarouselScheduler) Current(slotID string) (*SlotState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl, ok := s.slots[slotID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if sl.dismissed {
		return nil, ErrDismissed
	}
	sl.lastAccess = time.Now()
	return &SlotState{SlotID: slotID, Index: sl.index, Total: len(sl.ads), Ad: sl.ads[sl.index]}, nil
}

// GoTo 手动切换到指定位置。只改写游标，不重置定时器，
// 下一次自动tick仍会覆盖手动选择。
func (s *CarouselScheduler) GoTo(slotID string, index int) (*SlotState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl, ok := s.slots[slotID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if sl.dismissed {
		return nil, ErrDismissed
	}
	if index < 0 || index >= len(sl.ads) {
		return nil, ErrBadIndex
	}
	sl.index = index
	sl.lastAccess = time.Now()
	return &SlotState{SlotID: slotID, Index: sl.index, Total: len(sl.ads), Ad: sl.ads[sl.index]}, nil
}

// Dismiss 关闭槽位。关闭是终止状态，不能重新展示。
func (s *CarouselScheduler) Dismiss(slotID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl, ok := s.slots[slotID]
	if !ok {
		return repository.ErrNotFound
	}
	sl.dismissed = true
	sl.lastAccess = time.Now()
	return nil
}
