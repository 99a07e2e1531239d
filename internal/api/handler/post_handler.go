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

// PostHandler 社区帖子处理器
type PostHandler struct {
	postService *service.PostService
	logger      *logger.Logger
}

// NewPostHandler 创建帖子处理器实例
func NewPostHandler(postService *service.PostService, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		postService: postService,
		logger:      logger,
	}
}

// ListPosts 获取帖子列表，支持板块筛选、关键词搜索和排序
func (h *PostHandler) ListPosts(c *gin.Context) {
	filter := query.PostFilter{
		Category: c.DefaultQuery("category", model.CategoryAll),
		Keyword:  c.Query("q"),
	}

	sortKey := c.DefaultQuery("sort", query.SortLatest)
	viewsByComments := c.Query("viewsBy") == "comments"
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	result, err := h.postService.List(c.Request.Context(), filter, sortKey, viewsByComments, page, pageSize)
	if err != nil {
		h.logger.Error("获取帖子列表失败", "error", err)
		c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": "success", "data": result})
}

// GetPost 获取帖子详情，同时累计浏览量
func (h *PostHandler) GetPost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidParams})
		return
	}

	post, err := h.postService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"code": 404, "msg": constants.ErrPostNotFound})
			return
		}
		c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": "success", "data": post})
}

// CreatePostRequest 发帖请求
type CreatePostRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category" binding:"required"`
	Image    string `json:"image"`
}

// CreatePost 发布帖子
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidRequest})
		return
	}

	user := currentUser(c)
	post := &model.Post{
		AuthorID: user.ID,
		Author:   user.Name,
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Image:    req.Image,
	}

	if err := h.postService.Create(c.Request.Context(), post); err != nil {
		if errors.Is(err, service.ErrInvalidCategory) {
			c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidCategory})
			return
		}
		h.logger.Error("发布帖子失败", "error", err)
		c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": constants.SuccessCreate, "data": post})
}

// LikePost 点赞帖子，返回最新点赞数
func (h *PostHandler) LikePost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidParams})
		return
	}

	likes, err := h.postService.Like(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"code": 404, "msg": constants.ErrPostNotFound})
			return
		}
		c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": constants.SuccessUpdate, "data": gin.H{"likes": likes}})
}
