package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dronemarket/internal/constants"
	"dronemarket/internal/model"
	"dronemarket/internal/query"
	"dronemarket/internal/repository"
	"dronemarket/internal/service"
	"dronemarket/pkg/logger"
)

// DroneHandler 商品处理器
type DroneHandler struct {
	droneService *service.DroneService
	logger       *logger.Logger
}

// NewDroneHandler 创建商品处理器实例
func NewDroneHandler(droneService *service.DroneService, logger *logger.Logger) *DroneHandler {
	return &DroneHandler{
		droneService: droneService,
		logger:       logger,
	}
}

// Browse 浏览在售商品，支持过滤、排序、分页
func (h *DroneHandler) Browse(c *gin.Context) {
	filter := query.DroneFilter{
		Brand:   c.Query("brand"),
		Level:   c.Query("level"),
		Keyword: c.Query("q"),
	}
	filter.MinPrice, _ = strconv.ParseInt(c.Query("minPrice"), 10, 64)
	filter.MaxPrice, _ = strconv.ParseInt(c.Query("maxPrice"), 10, 64)
	filter.MinDistance, _ = strconv.ParseFloat(c.Query("minDistance"), 64)
	filter.MaxDistance, _ = strconv.ParseFloat(c.Query("maxDistance"), 64)

	if filter.Level != "" && !model.ValidLevel(filter.Level) {
		c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidParams})
		return
	}

	sortKey := c.DefaultQuery("sort", query.SortLatest)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "12"))

	result, err := h.droneService.Browse(c.Request.Context(), filter, sortKey, page, pageSize)
	if err != nil {
		h.logger.Error("浏览商品失败", "error", err)
		c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": "success", "data": result})
}

// GetDrone 获取商品详情
func (h *DroneHandler) GetDrone(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidParams})
		return
	}

	drone, err := h.droneService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"code": 404, "msg": constants.ErrDroneNotFound})
			return
		}
		c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": "success", "data": drone})
}

// CreateDroneRequest 发布商品请求
type CreateDroneRequest struct {
	Name                string  `json:"name" binding:"required"`
	Brand               string  `json:"brand" binding:"required"`
	Price               int64   `json:"price"`
	OriginalPrice       int64   `json:"originalPrice"`
	Negotiable          bool    `json:"negotiable"`
	MinPrice            int64   `json:"minPrice"`
	ReleaseYear         int     `json:"releaseYear" binding:"required"`
	PurchaseYear        int     `json:"purchaseYear"`
	OwnerCount          int     `json:"ownerCount"`
	FlightDistance      float64 `json:"flightDistance"`
	TotalFlightTime     float64 `json:"totalFlightTime"`
	TotalFlightDistance float64 `json:"totalFlightDistance"`
	Condition           string  `json:"condition" binding:"required"`
	Level               string  `json:"level" binding:"required"`
	Description         string  `json:"description"`
	Location            string  `json:"location"`
	ImageURL            string  `json:"imageUrl"`
}

// CreateDrone 发布商品
func (h *DroneHandler) CreateDrone(c *gin.Context) {
	var req CreateDroneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidRequest})
		return
	}

	if req.Price < 0 || req.MinPrice < 0 {
		c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidPrice})
		return
	}
	if !model.ValidLevel(req.Level) {
		c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidParams})
		return
	}

	user := currentUser(c)
	drone := &model.Drone{
		Name:                req.Name,
		Brand:               req.Brand,
		Price:               req.Price,
		OriginalPrice:       req.OriginalPrice,
		Negotiable:          req.Negotiable,
		MinPrice:            req.MinPrice,
		ReleaseYear:         req.ReleaseYear,
		PurchaseYear:        req.PurchaseYear,
		OwnerCount:          req.OwnerCount,
		FlightDistance:      req.FlightDistance,
		TotalFlightTime:     req.TotalFlightTime,
		TotalFlightDistance: req.TotalFlightDistance,
		Condition:           req.Condition,
		Level:               req.Level,
		Description:         req.Description,
		Location:            req.Location,
		ImageURL:            req.ImageURL,
		Seller:              model.Seller{Name: user.Name, Rating: 5.0},
		SellerID:            user.ID,
	}

	if err := h.droneService.Create(c.Request.Context(), drone); err != nil {
		h.logger.Error("发布商品失败", "error", err)
		c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": constants.SuccessCreate, "data": drone})
}

// ListMyDrones 卖家管理视图，可按状态筛选，不限制在售状态
func (h *DroneHandler) ListMyDrones(c *gin.Context) {
	status := c.Query("status")
	if status != "" && status != "all" && !model.ValidStatus(status) {
		c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidStatus})
		return
	}
	if status == "all" {
		status = ""
	}

	user := currentUser(c)
	drones, err := h.droneService.ListBySeller(c.Request.Context(), user.ID, status)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": "success", "data": drones})
}

// UpdateStatusRequest 更新在售状态请求
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateDroneStatus 卖家更新在售状态
func (h *DroneHandler) UpdateDroneStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidParams})
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || !model.ValidStatus(req.Status) {
		c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidStatus})
		return
	}

	user := currentUser(c)
	if err := h.droneService.UpdateStatus(c.Request.Context(), user.ID, id, req.Status); err != nil {
		h.respondDroneError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": constants.SuccessUpdate})
}

// DeleteDrone 卖家删除商品
func (h *DroneHandler) DeleteDrone(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidParams})
		return
	}

	user := currentUser(c)
	if err := h.droneService.Delete(c.Request.Context(), user.ID, id); err != nil {
		h.respondDroneError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": constants.SuccessDelete})
}

// respondDroneError 商品写操作错误转换为响应
func (h *DroneHandler) respondDroneError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusOK, gin.H{"code": 404, "msg": constants.ErrDroneNotFound})
	case errors.Is(err, service.ErrNotOwner):
		c.JSON(http.StatusOK, gin.H{"code": 403, "msg": constants.ErrNotListingOwner})
	default:
		c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
	}
}
