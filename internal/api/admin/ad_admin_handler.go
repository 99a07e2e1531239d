package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dronemarket/internal/constants"
	"dronemarket/internal/service"
	"dronemarket/pkg/logger"
)

// AdAdminHandler 广告管理处理器
type AdAdminHandler struct {
	adService *service.AdService
	logger    *logger.Logger
}

// NewAdAdminHandler 创建广告管理处理器实例
func NewAdAdminHandler(adService *service.AdService, logger *logger.Logger) *AdAdminHandler {
	return &AdAdminHandler{
		adService: adService,
		logger:    logger,
	}
}

// ListAds 获取全部广告，按广告位顺序排列
func (h *AdAdminHandler) ListAds(c *gin.Context) {
	ads, err := h.adService.GetAll(c.Request.Context())
	if err != nil {
		h.logger.Error("获取广告列表失败", "error", err)
		c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": constants.SuccessGet, "data": ads})
}

// GetAdStats 获取广告汇总统计
func (h *AdAdminHandler) GetAdStats(c *gin.Context) {
	stats, err := h.adService.GetStats(c.Request.Context())
	if err != nil {
		h.logger.Error("获取广告统计失败", "error", err)
		c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": constants.SuccessGet, "data": stats})
}
