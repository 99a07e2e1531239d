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

// PostService 社区帖子服务
type PostService struct {
	postRepo    *repository.PostRepository
	redisClient *redis.Client
	logger      *logger.Logger
}

// NewPostService 创建帖子服务实例
func NewPostService(postRepo *repository.PostRepository, redisClient *redis.Client, logger *logger.Logger) *PostService {
	return &PostService{
		postRepo:    postRepo,
		redisClient: redisClient,
		logger:      logger,
	}
}

// List 按板块和排序获取帖子列表。
// "views"排序默认以浏览量为依据，viewsByComments为true时改用评论数。
func (s *PostService) List(ctx context.Context, filter query.PostFilter, sortKey string, viewsByComments bool, page, pageSize int) (*model.PaginatedPosts, error) {
	// 无关键词的板块列表页走缓存
	cacheable := filter.Keyword == "" && filter.AuthorID == 0
	cacheKey := fmt.Sprintf("posts:list:%s:%s:%t:%d:%d", filter.Category, sortKey, viewsByComments, page, pageSize)
	if cacheable {
		if cachedData, err := s.redisClient.Get(ctx, cacheKey).Bytes(); err == nil {
			var result model.PaginatedPosts
			if err := json.Unmarshal(cachedData, &result); err == nil {
				return &result, nil
			}
		}
	}

	corpus, err := s.postRepo.List(ctx)
	if err != nil {
		s.logger.Error("获取帖子语料失败", "error", err)
		return nil, err
	}

	matched := query.Posts(corpus, filter, query.PostSort{Key: sortKey, ViewsByComments: viewsByComments})
	result := &model.PaginatedPosts{
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

// GetByID 获取帖子详情并累计浏览量
func (s *PostService) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	if err := s.postRepo.IncrementViews(ctx, id); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, id)
}

// Create 发布帖子
func (s *PostService) Create(ctx context.Context, post *model.Post) error {
	if !model.ValidCategory(post.Category) {
		return ErrInvalidCategory
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		s.logger.Error("发布帖子失败", "error", err)
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

// Like 点赞，返回更新后的点赞数
func (s *PostService) Like(ctx context.Context, id int64) (int64, error) {
	likes, err := s.postRepo.IncrementLikes(ctx, id)
	if err != nil {
		return 0, err
	}
	s.invalidateCache(ctx)
	return likes, nil
}

// invalidateCache 帖子写操作后使列表缓存失效
func (s *PostService) invalidateCache(ctx context.Context) {
	iter := s.redisClient.Scan(ctx, 0, "posts:*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.redisClient.Del(ctx, iter.Val()).Err(); err != nil {
			s.logger.Error("删除缓存失败", "key", iter.Val(), "error", err)
		}
	}
}
