package service

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"k8s.io/apimachinery/pkg/util/rand"

	"dronemarket/internal/model"
	"dronemarket/internal/repository"
	"dronemarket/pkg/async"
	"dronemarket/pkg/email"
	"dronemarket/pkg/logger"
)

// 会话有效期
const sessionTTL = 7 * 24 * time.Hour

// UserService 用户服务接口
type UserService interface {
	Register(ctx context.Context, user *model.User, password string) error
	Login(ctx context.Context, email, password string) (string, *model.User, error)
	Logout(ctx context.Context, token string) error
	GetByToken(ctx context.Context, token string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// userService 用户服务实现
type userService struct {
	userRepo    repository.UserRepository
	redisClient *redis.Client
	emailSvc    *email.Service
	worker      *async.Worker
	logger      *logger.Logger
}

// NewUserService 创建用户服务实例
func NewUserService(
	userRepo repository.UserRepository,
	redisClient *redis.Client,
	worker *async.Worker,
	emailSvc *email.Service,
	logger *logger.Logger,
) UserService {
	return &userService{
		userRepo:    userRepo,
		redisClient: redisClient,
		worker:      worker,
		emailSvc:    emailSvc,
		logger:      logger,
	}
}

// Register 注册用户并异步发送欢迎邮件
func (s *userService) Register(ctx context.Context, user *model.User, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)

	if err := s.userRepo.Create(ctx, user); err != nil {
		return err
	}

	// 欢迎邮件走异步队列，不阻塞注册响应
	to, name := user.Email, user.Name
	s.worker.AddTask(func() {
		if err := s.emailSvc.SendWelcomeEmail(to, name); err != nil {
			s.logger.Error("发送欢迎邮件失败", "email", to, "error", err)
		}
	})

	return nil
}

// Login 校验凭证并签发会话Token
func (s *userService) Login(ctx context.Context, emailAddr, password string) (string, *model.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrAuthFailed
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrAuthFailed
	}

	// 生成32位随机会话Token，Redis中只存用户ID，用户信息实时回查
	token := rand.String(32)
	if err := s.redisClient.Set(ctx, sessionKey(token), user.ID, sessionTTL).Err(); err != nil {
		s.logger.Error("保存会话失败", "error", err)
		return "", nil, err
	}

	return token, user, nil
}

// Logout 注销会话
func (s *userService) Logout(ctx context.Context, token string) error {
	return s.redisClient.Del(ctx, sessionKey(token)).Err()
}

// GetByToken 根据会话Token获取用户
func (s *userService) GetByToken(ctx context.Context, token string) (*model.User, error) {
	userID, err := s.redisClient.Get(ctx, sessionKey(token)).Int64()
	if err == redis.Nil {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, userID)
}

// GetByID 根据ID获取用户
func (s *userService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// sessionKey 会话在Redis中的键
func sessionKey(token string) string {
	return "session:" + token
}
