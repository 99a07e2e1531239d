package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"

	"dronemarket/internal/model"
	"dronemarket/internal/repository"
	"dronemarket/pkg/logger"
)

// AdService 广告服务
type AdService struct {
	adRepo      *repository.AdRepository
	redisClient *redis.Client
	logger      *logger.Logger
	randIntn    func(n int) int // 可注入的随机源，便于测试
}

// NewAdService 创建广告服务实例
func NewAdService(adRepo *repository.AdRepository, redisClient *redis.Client, logger *logger.Logger) *AdService {
	return &AdService{
		adRepo:      adRepo,
		redisClient: redisClient,
		logger:      logger,
		randIntn:    rand.Intn,
	}
}

// GetByPlacement 获取指定广告位的广告池
func (s *AdService) GetByPlacement(ctx context.Context, placement string) ([]model.Ad, error) {
	ads, err := s.adRepo.GetByPlacement(ctx, placement)
	if err != nil {
		s.logger.Error("获取广告池失败", "placement", placement, "error", err)
		return nil, err
	}
	return ads, nil
}

// SelectRandom 从指定广告位的池中均匀随机选取一条广告
func (s *AdService) SelectRandom(ctx context.Context, placement string) (*model.Ad, error) {
	ads, err := s.adRepo.GetByPlacement(ctx, placement)
	if err != nil {
		return nil, err
	}
	ad := ads[s.randIntn(len(ads))]
	return &ad, nil
}

// GetByCategory 获取定向投放广告，未知类别返回空列表
func (s *AdService) GetByCategory(ctx context.Context, category string) ([]model.Ad, error) {
	return s.adRepo.GetByCategory(ctx, category)
}

// GetAll 获取全部广告
func (s *AdService) GetAll(ctx context.Context) ([]model.Ad, error) {
	return s.adRepo.GetAll(ctx)
}

// GetStats 获取广告汇总统计，结果缓存5分钟
func (s *AdService) GetStats(ctx context.Context) (*model.AdStats, error) {
	cacheKey := "ads:stats"
	cachedData, err := s.redisClient.Get(ctx, cacheKey).Bytes()
	if err == nil {
		var stats model.AdStats
		if err := json.Unmarshal(cachedData, &stats); err == nil {
			return &stats, nil
		}
	}

	ads, err := s.adRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("获取广告列表失败", "error", err)
		return nil, err
	}
	stats := ComputeStats(ads)

	if data, err := json.Marshal(stats); err == nil {
		s.redisClient.Set(ctx, cacheKey, data, 5*time.Minute)
	}

	return &stats, nil
}

// ComputeStats 计算广告汇总统计。
// 总浏览量为0时CTR返回"0"，避免除零产生NaN。
func ComputeStats(ads []model.Ad) model.AdStats {
	stats := model.AdStats{TotalAds: len(ads)}
	for _, ad := range ads {
		stats.TotalRevenue += ad.Price
		stats.TotalViews += ad.Views
		stats.TotalClicks += ad.Clicks
	}
	if stats.TotalViews > 0 {
		ctr := float64(stats.TotalClicks) / float64(stats.TotalViews) * 100
		stats.AverageCTR = fmt.Sprintf("%.2f", ctr)
	} else {
		stats.AverageCTR = "0"
	}
	return stats
}
