package model

import "time"

// 消息发送方
const (
	SenderBuyer  = "buyer"
	SenderSeller = "seller"
)

// ChatRoom 聊天会话，围绕某个商品与卖家建立
type ChatRoom struct {
	ID         string    `json:"id"`
	UserID     int64     `json:"userId"`
	DroneID    int64     `json:"droneId"`
	DroneName  string    `json:"droneName"`
	SellerName string    `json:"sellerName"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ChatMessage 聊天消息
type ChatMessage struct {
	ID        string    `json:"id"`
	RoomID    string    `json:"roomId"`
	Sender    string    `json:"sender"` // buyer / seller
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
