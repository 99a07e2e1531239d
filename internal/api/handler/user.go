package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"dronemarket/internal/constants"
	"dronemarket/internal/model"
	"dronemarket/internal/repository"
	"dronemarket/internal/service"
	"dronemarket/pkg/logger"
)

// UserHandler 用户处理器
type UserHandler struct {
	userService service.UserService
	logger      *logger.Logger
}

// NewUserHandler 创建用户处理器实例
func NewUserHandler(userService service.UserService, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// currentUser 从上下文取出认证中间件写入的用户
func currentUser(c *gin.Context) *model.User {
	user, _ := c.Get("user")
	return user.(*model.User)
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Name            string `json:"name" binding:"required"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
	Phone           string `json:"phone"`
	AgreeTerms      bool   `json:"agreeTerms"`
}

// Register 用户注册
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidParams})
		return
	}
	if req.Password != req.ConfirmPassword {
		c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrPasswordMismatch})
		return
	}
	if !req.AgreeTerms {
		c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrTermsNotAgreed})
		return
	}

	user := &model.User{
		Email:    req.Email,
		Name:     req.Name,
		Phone:    req.Phone,
		JoinDate: time.Now(),
	}
	if err := h.userService.Register(c.Request.Context(), user, req.Password); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			c.JSON(http.StatusOK, gin.H{"code": 409, "msg": constants.ErrEmailExists})
			return
		}
		h.logger.Error("用户注册失败", "email", req.Email, "error", err)
		c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": constants.SuccessRegister, "data": user})
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login 用户登录
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidParams})
		return
	}

	token, user, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAuthFailed) {
			c.JSON(http.StatusOK, gin.H{"code": 401, "msg": constants.ErrAuthFailed})
			return
		}
		h.logger.Error("用户登录失败", "email", req.Email, "error", err)
		c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": constants.SuccessLogin, "data": gin.H{
		"token": token,
		"user":  user,
	}})
}

// Logout 注销当前会话
func (h *UserHandler) Logout(c *gin.Context) {
	token := c.GetHeader("Authorization")
	if err := h.userService.Logout(c.Request.Context(), token); err != nil {
		h.logger.Error("注销会话失败", "error", err)
		c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": constants.SuccessLogout})
}

// GetUserInfo 获取当前登录用户信息
func (h *UserHandler) GetUserInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": constants.SuccessGet, "data": currentUser(c)})
}
