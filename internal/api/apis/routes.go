package apis

import (
	"github.com/gin-gonic/gin"

	"dronemarket/internal/api/handler"
)

// RegisterPublicRoutes 注册不需要认证的路由
func RegisterPublicRoutes(
	router *gin.RouterGroup,
	userHandler *handler.UserHandler,
	adHandler *handler.AdHandler,
	droneHandler *handler.DroneHandler,
	postHandler *handler.PostHandler,
	certHandler *handler.CertificationHandler,
) {
	// 用户相关路由
	users := router.Group("/users")
	{
		users.POST("/register", userHandler.Register)
		users.POST("/login", userHandler.Login)
	}

	// 广告相关路由
	ads := router.Group("/ads")
	{
		ads.GET("", adHandler.GetAds)
		ads.GET("/random", adHandler.GetRandomAd)
		ads.GET("/category/:category", adHandler.GetAdsByCategory)
		ads.POST("/carousel", adHandler.CreateCarouselSlot)
		ads.GET("/carousel/:id", adHandler.GetCarouselSlot)
		ads.POST("/carousel/:id/goto", adHandler.GoToSlide)
		ads.DELETE("/carousel/:id", adHandler.DismissCarouselSlot)
	}

	// 商品浏览路由
	drones := router.Group("/drones")
	{
		drones.GET("", droneHandler.Browse)
		drones.GET("/:id", droneHandler.GetDrone)
	}

	// 社区浏览路由
	posts := router.Group("/posts")
	{
		posts.GET("", postHandler.ListPosts)
		posts.GET("/:id", postHandler.GetPost)
	}

	// 资质参考路由
	router.GET("/certifications", certHandler.ListCertifications)
}

// RegisterAuthRoutes 注册需要认证的路由
func RegisterAuthRoutes(
	router *gin.RouterGroup,
	userHandler *handler.UserHandler,
	droneHandler *handler.DroneHandler,
	postHandler *handler.PostHandler,
	favoriteHandler *handler.FavoriteHandler,
	chatHandler *handler.ChatHandler,
) {
	// 用户相关路由
	users := router.Group("/users")
	{
		users.GET("/info", userHandler.GetUserInfo)
		users.POST("/logout", userHandler.Logout)
	}

	// 商品管理路由
	drones := router.Group("/drones")
	{
		drones.POST("", droneHandler.CreateDrone)
		drones.PUT("/:id/status", droneHandler.UpdateDroneStatus)
		drones.DELETE("/:id", droneHandler.DeleteDrone)
	}

	// 卖家视角的商品列表，与公开浏览分开，可见全部在售状态
	router.GET("/seller/drones", droneHandler.ListMyDrones)

	// 社区写操作路由
	posts := router.Group("/posts")
	{
		posts.POST("", postHandler.CreatePost)
		posts.POST("/:id/like", postHandler.LikePost)
	}

	// 收藏夹路由
	favorites := router.Group("/favorites")
	{
		favorites.GET("", favoriteHandler.ListFavorites)
		favorites.POST("/:droneId", favoriteHandler.AddFavorite)
		favorites.DELETE("/:droneId", favoriteHandler.RemoveFavorite)
		favorites.GET("/:droneId/check", favoriteHandler.CheckFavorite)
	}

	// 聊天路由
	chats := router.Group("/chats")
	{
		chats.POST("", chatHandler.OpenRoom)
		chats.GET("", chatHandler.ListRooms)
		chats.GET("/:id", chatHandler.GetRoom)
		chats.POST("/:id/messages", chatHandler.SendMessage)
	}
}
