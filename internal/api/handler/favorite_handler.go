package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dronemarket/internal/constants"
	"dronemarket/internal/repository"
	"dronemarket/internal/service"
	"dronemarket/pkg/logger"
)

// FavoriteHandler 收藏夹处理器
type FavoriteHandler struct {
	favoriteService *service.FavoriteService
	logger          *logger.Logger
}

// NewFavoriteHandler 创建收藏夹处理器实例
func NewFavoriteHandler(favoriteService *service.FavoriteService, logger *logger.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteService: favoriteService,
		logger:          logger,
	}
}

// ListFavorites 获取当前用户的收藏列表及数量
func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	user := currentUser(c)
	favorites, err := h.favoriteService.List(c.Request.Context(), user.ID)
	if err != nil {
		h.logger.Error("获取收藏列表失败", "user_id", user.ID, "error", err)
		c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
		return
	}
	total, err := h.favoriteService.Count(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": "success", "data": gin.H{
		"total": total,
		"items": favorites,
	}})
}

// AddFavorite 收藏商品
func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	droneID, err := strconv.ParseInt(c.Param("droneId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidParams})
		return
	}

	user := currentUser(c)
	fav, err := h.favoriteService.Add(c.Request.Context(), user.ID, droneID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			c.JSON(http.StatusOK, gin.H{"code": 409, "msg": constants.ErrAlreadyFavorited})
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusOK, gin.H{"code": 404, "msg": constants.ErrDroneNotFound})
		default:
			h.logger.Error("新增收藏失败", "user_id", user.ID, "drone_id", droneID, "error", err)
			c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": constants.SuccessCreate, "data": fav})
}

// RemoveFavorite 取消收藏
func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	droneID, err := strconv.ParseInt(c.Param("droneId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidParams})
		return
	}

	user := currentUser(c)
	if err := h.favoriteService.Remove(c.Request.Context(), user.ID, droneID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"code": 404, "msg": constants.ErrFavoriteNotFound})
			return
		}
		c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": constants.SuccessDelete})
}

// CheckFavorite 查询某商品是否已收藏
func (h *FavoriteHandler) CheckFavorite(c *gin.Context) {
	droneID, err := strconv.ParseInt(c.Param("droneId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidParams})
		return
	}

	user := currentUser(c)
	isFavorite, err := h.favoriteService.IsFavorite(c.Request.Context(), user.ID, droneID)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": "success", "data": gin.H{"isFavorite": isFavorite}})
}
