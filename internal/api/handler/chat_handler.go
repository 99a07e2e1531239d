package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"dronemarket/internal/constants"
	"dronemarket/internal/repository"
	"dronemarket/internal/service"
	"dronemarket/pkg/logger"
)

// ChatHandler 聊天处理器
type ChatHandler struct {
	chatService *service.ChatService
	logger      *logger.Logger
}

// NewChatHandler 创建聊天处理器实例
func NewChatHandler(chatService *service.ChatService, logger *logger.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		logger:      logger,
	}
}

// OpenRoomRequest 打开会话请求
type OpenRoomRequest struct {
	DroneID int64 `json:"droneId" binding:"required"`
}

// OpenRoom 围绕商品打开会话，已存在时复用
func (h *ChatHandler) OpenRoom(c *gin.Context) {
	var req OpenRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidRequest})
		return
	}

	user := currentUser(c)
	room, err := h.chatService.OpenRoom(c.Request.Context(), user.ID, req.DroneID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"code": 404, "msg": constants.ErrDroneNotFound})
			return
		}
		h.logger.Error("打开会话失败", "user_id", user.ID, "drone_id", req.DroneID, "error", err)
		c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": constants.SuccessCreate, "data": room})
}

// ListRooms 获取当前用户的会话列表
func (h *ChatHandler) ListRooms(c *gin.Context) {
	user := currentUser(c)
	rooms, err := h.chatService.ListRooms(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": "success", "data": rooms})
}

// GetRoom 获取会话详情及消息记录
func (h *ChatHandler) GetRoom(c *gin.Context) {
	user := currentUser(c)
	room, messages, err := h.chatService.GetRoom(c.Request.Context(), user.ID, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"code": 404, "msg": constants.ErrRoomNotFound})
			return
		}
		c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": "success", "data": gin.H{
		"room":     room,
		"messages": messages,
	}})
}

// SendMessageRequest 发送消息请求
type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// SendMessage 发送消息，卖家回复会在短暂延迟后出现
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidRequest})
		return
	}

	user := currentUser(c)
	msg, err := h.chatService.SendMessage(c.Request.Context(), user.ID, c.Param("id"), req.Content)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"code": 404, "msg": constants.ErrRoomNotFound})
			return
		}
		h.logger.Error("发送消息失败", "user_id", user.ID, "room_id", c.Param("id"), "error", err)
		c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": constants.SuccessCreate, "data": msg})
}
