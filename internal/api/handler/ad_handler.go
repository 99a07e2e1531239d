package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"dronemarket/internal/constants"
	"dronemarket/internal/model"
	"dronemarket/internal/repository"
	"dronemarket/internal/scheduler"
	"dronemarket/internal/service"
	"dronemarket/pkg/logger"
)

// AdHandler 广告处理器
type AdHandler struct {
	adService *service.AdService
	carousel  *scheduler.CarouselScheduler
	logger    *logger.Logger
}

// NewAdHandler 创建广告处理器实例
func NewAdHandler(adService *service.AdService, carousel *scheduler.CarouselScheduler, logger *logger.Logger) *AdHandler {
	return &AdHandler{
		adService: adService,
		carousel:  carousel,
		logger:    logger,
	}
}

// GetAds 获取指定广告位的广告池
func (h *AdHandler) GetAds(c *gin.Context) {
	placement := c.Query("type")
	if !model.ValidPlacement(placement) {
		c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidPlacement})
		return
	}

	ads, err := h.adService.GetByPlacement(c.Request.Context(), placement)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": "success", "data": ads})
}

// GetRandomAd 从指定广告位随机选取一条广告
func (h *AdHandler) GetRandomAd(c *gin.Context) {
	placement := c.Query("type")
	if !model.ValidPlacement(placement) {
		c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidPlacement})
		return
	}

	ad, err := h.adService.SelectRandom(c.Request.Context(), placement)
	if err != nil {
		h.logger.Error("随机选取广告失败", "placement", placement, "error", err)
		c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": "success", "data": ad})
}

// GetAdsByCategory 获取按级别定向投放的广告，未知类别返回空列表
func (h *AdHandler) GetAdsByCategory(c *gin.Context) {
	ads, err := h.adService.GetByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": "success", "data": ads})
}

// CreateSlotRequest 创建轮播槽位请求
type CreateSlotRequest struct {
	Type string `json:"type" binding:"required"`
}

// CreateCarouselSlot 创建轮播槽位
func (h *AdHandler) CreateCarouselSlot(c *gin.Context) {
	var req CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidRequest})
		return
	}
	if !model.ValidPlacement(req.Type) {
		c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidPlacement})
		return
	}

	state, err := h.carousel.CreateSlot(c.Request.Context(), req.Type)
	if err != nil {
		h.logger.Error("创建轮播槽位失败", "placement", req.Type, "error", err)
		c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": constants.SuccessCreate, "data": state})
}

// GetCarouselSlot 获取槽位当前展示的广告
func (h *AdHandler) GetCarouselSlot(c *gin.Context) {
	state, err := h.carousel.Current(c.Param("id"))
	if err != nil {
		h.respondSlotError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": "success", "data": state})
}

// GoToSlideRequest 手动切换请求
type GoToSlideRequest struct {
	Index int `json:"index"`
}

// GoToSlide 手动切换到指定位置
func (h *AdHandler) GoToSlide(c *gin.Context) {
	var req GoToSlideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidRequest})
		return
	}

	state, err := h.carousel.GoTo(c.Param("id"), req.Index)
	if err != nil {
		if errors.Is(err, scheduler.ErrBadIndex) {
			c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidParams})
			return
		}
		h.respondSlotError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": constants.SuccessUpdate, "data": state})
}

// DismissCarouselSlot 关闭槽位，关闭后不可恢复
func (h *AdHandler) DismissCarouselSlot(c *gin.Context) {
	if err := h.carousel.Dismiss(c.Param("id")); err != nil {
		h.respondSlotError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": constants.SuccessUpdate})
}

// respondSlotError 槽位错误转换为响应
func (h *AdHandler) respondSlotError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusOK, gin.H{"code": 404, "msg": constants.ErrSlotNotFound})
	case errors.Is(err, scheduler.ErrDismissed):
		c.JSON(http.StatusOK, gin.H{"code": 410, "msg": constants.ErrSlotDismissed})
	default:
		c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
	}
}
