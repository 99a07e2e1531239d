package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"dronemarket/internal/model"
	"dronemarket/internal/query"
	"dronemarket/internal/repository"
	"dronemarket/pkg/logger"
)

// DroneService 商品服务
type DroneService struct {
	droneRepo   *repository.DroneRepository
	redisClient *redis.Client
	logger      *logger.Logger
}

// NewDroneService 创建商品服务实例
func NewDroneService(droneRepo *repository.DroneRepository, redisClient *redis.Client, logger *logger.Logger) *DroneService {
	return &DroneService{
		droneRepo:   droneRepo,
		redisClient: redisClient,
		logger:      logger,
	}
}

// Browse 浏览在售商品，过滤排序后分页。推广商品在热度排序下置顶。
func (s *DroneService) Browse(ctx context.Context, filter query.DroneFilter, sortKey string, page, pageSize int) (*model.PaginatedDrones, error) {
	// 浏览场景只展示在售商品
	filter.Status = model.StatusActive

	// 无过滤条件的默认浏览页走缓存
	cacheable := filter == (query.DroneFilter{Status: model.StatusActive})
	cacheKey := fmt.Sprintf("drones:browse:%s:%d:%d", sortKey, page, pageSize)
	if cacheable {
		if cachedData, err := s.redisClient.Get(ctx, cacheKey).Bytes(); err == nil {
			var result model.PaginatedDrones
			if err := json.Unmarshal(cachedData, &result); err == nil {
				return &result, nil
			}
		}
	}

	corpus, err := s.droneRepo.List(ctx)
	if err != nil {
		s.logger.Error("获取商品语料失败", "error", err)
		return nil, err
	}

	matched := query.Drones(corpus, filter, query.DroneSort{Key: sortKey, PremiumFirst: true})
	result := &model.PaginatedDrones{
		Total: len(matched),
		Items: query.Paginate(matched, page, pageSize),
	}

	if cacheable {
		if data, err := json.Marshal(result); err == nil {
			s.redisClient.Set(ctx, cacheKey, data, time.Minute)
		}
	}
	return result, nil
}

// GetByID 获取商品详情
func (s *DroneService) GetByID(ctx context.Context, id int64) (*model.Drone, error) {
	return s.droneRepo.GetByID(ctx, id)
}

// Create 发布商品
func (s *DroneService) Create(ctx context.Context, drone *model.Drone) error {
	if drone.Status == "" {
		drone.Status = model.StatusActive
	}
	if drone.OwnerCount < 1 {
		drone.OwnerCount = 1
	}
	if err := s.droneRepo.Create(ctx, drone); err != nil {
		s.logger.Error("发布商品失败", "error", err)
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

// ListBySeller 卖家管理视图，不过滤在售状态
func (s *DroneService) ListBySeller(ctx context.Context, sellerID int64, status string) ([]model.Drone, error) {
	corpus, err := s.droneRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	filter := query.DroneFilter{SellerID: sellerID, Status: status}
	return query.Drones(corpus, filter, query.DroneSort{Key: query.SortLatest}), nil
}

// UpdateStatus 卖家更新在售状态
func (s *DroneService) UpdateStatus(ctx context.Context, sellerID, droneID int64, status string) error {
	drone, err := s.droneRepo.GetByID(ctx, droneID)
	if err != nil {
		return err
	}
	if drone.SellerID != sellerID {
		return ErrNotOwner
	}
	if err := s.droneRepo.UpdateStatus(ctx, droneID, status); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

// Delete 卖家删除商品
func (s *DroneService) Delete(ctx context.Context, sellerID, droneID int64) error {
	drone, err := s.droneRepo.GetByID(ctx, droneID)
	if err != nil {
		return err
	}
	if drone.SellerID != sellerID {
		return ErrNotOwner
	}
	if err := s.droneRepo.Delete(ctx, droneID); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

// invalidateCache 商品写操作后使浏览缓存失效
func (s *DroneService) invalidateCache(ctx context.Context) {
	iter := s.redisClient.Scan(ctx, 0, "drones:*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.redisClient.Del(ctx, iter.Val()).Err(); err != nil {
			s.logger.Error("删除缓存失败", "key", iter.Val(), "error", err)
		}
	}
}
