package service

import (
	"context"
	"time"

	"k8s.io/apimachinery/pkg/util/rand"

	"dronemarket/internal/model"
	"dronemarket/internal/repository"
	"dronemarket/pkg/logger"
)

// FavoriteService 收藏夹服务
type FavoriteService struct {
	favoriteRepo repository.FavoriteRepository
	droneRepo    *repository.DroneRepository
	logger       *logger.Logger
}

// NewFavoriteService 创建收藏夹服务实例
func NewFavoriteService(favoriteRepo repository.FavoriteRepository, droneRepo *repository.DroneRepository, logger *logger.Logger) *FavoriteService {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		droneRepo:    droneRepo,
		logger:       logger,
	}
}

// Add 收藏商品，收藏时对商品做快照
func (s *FavoriteService) Add(ctx context.Context, userID, droneID int64) (*model.Favorite, error) {
	exists, err := s.favoriteRepo.Exists(ctx, userID, droneID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, repository.ErrDuplicate
	}

	drone, err := s.droneRepo.GetByID(ctx, droneID)
	if err != nil {
		return nil, err
	}

	fav := &model.Favorite{
		ID:        rand.String(16),
		UserID:    userID,
		DroneID:   droneID,
		CreatedAt: time.Now(),
		Drone:     *drone,
	}
	if err := s.favoriteRepo.Add(ctx, fav); err != nil {
		s.logger.Error("新增收藏失败", "user_id", userID, "drone_id", droneID, "error", err)
		return nil, err
	}
	return fav, nil
}

// Remove 取消收藏
func (s *FavoriteService) Remove(ctx context.Context, userID, droneID int64) error {
	return s.favoriteRepo.Remove(ctx, userID, droneID)
}

// List 获取用户的收藏列表
func (s *FavoriteService) List(ctx context.Context, userID int64) ([]model.Favorite, error) {
	return s.favoriteRepo.ListByUser(ctx, userID)
}

// IsFavorite 是否已收藏
func (s *FavoriteService) IsFavorite(ctx context.Context, userID, droneID int64) (bool, error) {
	return s.favoriteRepo.Exists(ctx, userID, droneID)
}

// Count 用户收藏数量
func (s *FavoriteService) Count(ctx context.Context, userID int64) (int, error) {
	return s.favoriteRepo.CountByUser(ctx, userID)
}
