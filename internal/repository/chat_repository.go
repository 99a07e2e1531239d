package repository

import (
	"context"
	"sync"

	"dronemarket/internal/model"
)

// ChatRepository 聊天会话存储库（内存）
type ChatRepository struct {
	mu       sync.RWMutex
	rooms    map[string]model.ChatRoom
	messages map[string][]model.ChatMessage // roomID -> 按时间排列的消息
}

// NewChatRepository 创建聊天存储库实例
func NewChatRepository() *ChatRepository {
	return &ChatRepository{
		rooms:    make(map[string]model.ChatRoom),
		messages: make(map[string][]model.ChatMessage),
	}
}

// CreateRoom 创建会话
func (r *ChatRepository) CreateRoom(ctx context.Context, room model.ChatRoom) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rooms[room.ID] = room
	return nil
}

// GetRoom 获取会话
func (r *ChatRepository) GetRoom(ctx context.Context, roomID string) (*model.ChatRoom, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	room, ok := r.rooms[roomID]
	if !ok {
		return nil, ErrNotFound
	}
	out := room
	return &out, nil
}

// FindRoom 按用户和商品查找已有会话
func (r *ChatRepository) FindRoom(ctx context.Context, userID, droneID int64) (*model.ChatRoom, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, room := range r.rooms {
		if room.UserID == userID && room.DroneID == droneID {
			out := room
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

// ListRoomsByUser 获取用户的全部会话
func (r *ChatRepository) ListRoomsByUser(ctx context.Context, userID int64) ([]model.ChatRoom, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var rooms []model.ChatRoom
	for _, room := range r.rooms {
		if room.UserID == userID {
			rooms = append(rooms, room)
		}
	}
	return rooms, nil
}

// AppendMessage 追加消息
func (r *ChatRepository) AppendMessage(ctx context.Context, msg model.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rooms[msg.RoomID]; !ok {
		return ErrNotFound
	}
	r.messages[msg.RoomID] = append(r.messages[msg.RoomID], msg)
	return nil
}

// ListMessages 获取会话的全部消息
func (r *ChatRepository) ListMessages(ctx context.Context, roomID string) ([]model.ChatMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, ok := r.rooms[roomID]; !ok {
		return nil, ErrNotFound
	}
	msgs := r.messages[roomID]
	out := make([]model.ChatMessage, len(msgs))
	copy(out, msgs)
	return out, nil
}
