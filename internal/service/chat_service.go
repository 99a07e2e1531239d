package service

import (
	"context"
	mathrand "math/rand"
	"time"

	"k8s.io/apimachinery/pkg/util/rand"

	"dronemarket/internal/model"
	"dronemarket/internal/repository"
	"dronemarket/pkg/async"
	"dronemarket/pkg/logger"
)

// 模拟卖家回复的延迟
const replyDelay = time.Second

// ChatService 聊天服务。会话是模拟的：买家发消息后，
// 延迟一段时间从固定语料中随机选一条作为卖家回复。
type ChatService struct {
	chatRepo  *repository.ChatRepository
	droneRepo *repository.DroneRepository
	worker    *async.Worker
	logger    *logger.Logger
	replies   []string
	randIntn  func(n int) int
}

// NewChatService 创建聊天服务实例
func NewChatService(
	chatRepo *repository.ChatRepository,
	droneRepo *repository.DroneRepository,
	worker *async.Worker,
	replies []string,
	logger *logger.Logger,
) *ChatService {
	return &ChatService{
		chatRepo:  chatRepo,
		droneRepo: droneRepo,
		worker:    worker,
		logger:    logger,
		replies:   replies,
		randIntn:  mathrand.Intn,
	}
}

// OpenRoom 围绕商品打开会话，已存在时复用
func (s *ChatService) OpenRoom(ctx context.Context, userID, droneID int64) (*model.ChatRoom, error) {
	if room, err := s.chatRepo.FindRoom(ctx, userID, droneID); err == nil {
		return room, nil
	}

	drone, err := s.droneRepo.GetByID(ctx, droneID)
	if err != nil {
		return nil, err
	}

	room := model.ChatRoom{
		ID:         rand.String(16),
		UserID:     userID,
		DroneID:    droneID,
		DroneName:  drone.Name,
		SellerName: drone.Seller.Name,
		CreatedAt:  time.Now(),
	}
	if err := s.chatRepo.CreateRoom(ctx, room); err != nil {
		return nil, err
	}
	return &room, nil
}

// ListRooms 获取用户的全部会话
func (s *ChatService) ListRooms(ctx context.Context, userID int64) ([]model.ChatRoom, error) {
	return s.chatRepo.ListRoomsByUser(ctx, userID)
}

// GetRoom 获取会话及消息，只能查看自己的会话
func (s *ChatService) GetRoom(ctx context.Context, userID int64, roomID string) (*model.ChatRoom, []model.ChatMessage, error) {
	room, err := s.chatRepo.GetRoom(ctx, roomID)
	if err != nil {
		return nil, nil, err
	}
	if room.UserID != userID {
		return nil, nil, repository.ErrNotFound
	}
	msgs, err := s.chatRepo.ListMessages(ctx, roomID)
	if err != nil {
		return nil, nil, err
	}
	return room, msgs, nil
}

// SendMessage 买家发送消息，随后异步生成模拟的卖家回复
func (s *ChatService) SendMessage(ctx context.Context, userID int64, roomID, content string) (*model.ChatMessage, error) {
	room, err := s.chatRepo.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room.UserID != userID {
		return nil, repository.ErrNotFound
	}

	msg := model.ChatMessage{
		ID:        rand.String(16),
		RoomID:    roomID,
		Sender:    model.SenderBuyer,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := s.chatRepo.AppendMessage(ctx, msg); err != nil {
		return nil, err
	}

	// 延迟追加一条随机的卖家回复
	s.worker.AddDelayedTask(replyDelay, func() {
		reply := model.ChatMessage{
			ID:        rand.String(16),
			RoomID:    roomID,
			Sender:    model.SenderSeller,
			Content:   s.replies[s.randIntn(len(s.replies))],
			CreatedAt: time.Now(),
		}
		if err := s.chatRepo.AppendMessage(context.Background(), reply); err != nil {
			s.logger.Error("追加模拟回复失败", "room_id", roomID, "error", err)
		}
	})

	return &msg, nil
}
