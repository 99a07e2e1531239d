package admin

import (
	"github.com/gin-gonic/gin"
)

// RegisterAdminRoutes 注册管理员API路由
func RegisterAdminRoutes(router *gin.RouterGroup, adAdminHandler *AdAdminHandler) {
	// 广告管理路由
	ads := router.Group("/ads")
	{
		ads.GET("", adAdminHandler.ListAds)
		ads.GET("/stats", adAdminHandler.GetAdStats)
	}
}
