package service

import (
	"context"
	"errors"
	"testing"

	"dronemarket/internal/model"
	"dronemarket/internal/repository"
	"dronemarket/pkg/logger"
)

func TestComputeStats(t *testing.T) {
	ads := []model.Ad{
		{ID: 1, Price: 100, Views: 100, Clicks: 10},
		{ID: 2, Price: 200, Views: 0, Clicks: 0},
	}

	stats := ComputeStats(ads)
	if stats.TotalAds != 2 {
		t.Errorf("广告总数期望2，实际%d", stats.TotalAds)
	}
	if stats.TotalRevenue != 300 {
		t.Errorf("总收入期望300，实际%d", stats.TotalRevenue)
	}
	if stats.TotalViews != 100 || stats.TotalClicks != 10 {
		t.Errorf("浏览/点击汇总错误: views=%d clicks=%d", stats.TotalViews, stats.TotalClicks)
	}
	if stats.AverageCTR != "10.00" {
		t.Errorf("CTR期望10.00，实际%s", stats.AverageCTR)
	}
}

func TestComputeStatsZeroViews(t *testing.T) {
	stats := ComputeStats([]model.Ad{{ID: 1, Price: 100}})
	if stats.AverageCTR != "0" {
		t.Errorf("浏览量为0时CTR应为字面值0，实际%s", stats.AverageCTR)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil)
	if stats.TotalAds != 0 || stats.TotalRevenue != 0 || stats.AverageCTR != "0" {
		t.Errorf("空广告列表统计错误: %+v", stats)
	}
}

func TestSelectRandom(t *testing.T) {
	pool := []model.Ad{
		{ID: 1, Type: model.PlacementBanner},
		{ID: 2, Type: model.PlacementBanner},
		{ID: 3, Type: model.PlacementBanner},
	}
	adRepo := repository.NewAdRepository(map[string][]model.Ad{
		model.PlacementBanner: pool,
	}, nil)

	svc := &AdService{
		adRepo:   adRepo,
		logger:   logger.NewLogger("error"),
		randIntn: func(n int) int { return 1 },
	}

	ad, err := svc.SelectRandom(context.Background(), model.PlacementBanner)
	if err != nil {
		t.Fatalf("随机选取失败: %v", err)
	}
	if ad.ID != 2 {
		t.Errorf("注入随机源返回1，应选中广告2，实际%d", ad.ID)
	}
}

func TestSelectRandomEmptyPool(t *testing.T) {
	adRepo := repository.NewAdRepository(nil, nil)
	svc := &AdService{
		adRepo:   adRepo,
		logger:   logger.NewLogger("error"),
		randIntn: func(n int) int { return 0 },
	}

	if _, err := svc.SelectRandom(context.Background(), model.PlacementBanner); !errors.Is(err, repository.ErrEmptyPool) {
		t.Errorf("空池应返回ErrEmptyPool，实际%v", err)
	}
}
