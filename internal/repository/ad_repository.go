package repository

import (
	"context"
	"fmt"
	"sync"

	"dronemarket/internal/model"
)

// AdRepository 广告存储库，广告池在启动时装载后只读
type AdRepository struct {
	mu          sync.RWMutex
	pools       map[string][]model.Ad // 按广告位类型分池
	categoryAds map[string][]model.Ad // 按适用级别定向投放
}

// NewAdRepository 创建广告存储库实例
func NewAdRepository(pools map[string][]model.Ad, categoryAds map[string][]model.Ad) *AdRepository {
	if pools == nil {
		pools = make(map[string][]model.Ad)
	}
	if categoryAds == nil {
		categoryAds = make(map[string][]model.Ad)
	}
	return &AdRepository{pools: pools, categoryAds: categoryAds}
}

// ValidatePools 校验每个广告位都有可投放的广告，空池属于配置错误
func (r *AdRepository) ValidatePools() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, placement := range model.Placements {
		if len(r.pools[placement]) == 0 {
			return fmt.Errorf("%w: placement %s", ErrEmptyPool, placement)
		}
	}
	return nil
}

// GetByPlacement 获取指定广告位的广告池
func (r *AdRepository) GetByPlacement(ctx context.Context, placement string) ([]model.Ad, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pool, ok := r.pools[placement]
	if !ok || len(pool) == 0 {
		return nil, fmt.Errorf("%w: placement %s", ErrEmptyPool, placement)
	}
	out := make([]model.Ad, len(pool))
	copy(out, pool)
	return out, nil
}

// GetAll 获取全部广告位的广告
func (r *AdRepository) GetAll(ctx context.Context) ([]model.Ad, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var all []model.Ad
	for _, placement := range model.Placements {
		all = append(all, r.pools[placement]...)
	}
	return all, nil
}

// GetByCategory 获取定向投放广告，未知类别返回空切片
func (r *AdRepository) GetByCategory(ctx context.Context, category string) ([]model.Ad, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ads := r.categoryAds[category]
	out := make([]model.Ad, len(ads))
	copy(out, ads)
	return out, nil
}
