package api

import (
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"dronemarket/config"
	"dronemarket/internal/api/admin"
	"dronemarket/internal/api/apis"
	"dronemarket/internal/api/handler"
	"dronemarket/internal/middleware"
	"dronemarket/internal/model"
	"dronemarket/internal/repository"
	"dronemarket/internal/scheduler"
	"dronemarket/internal/seed"
	"dronemarket/internal/service"
	"dronemarket/pkg/async"
	"dronemarket/pkg/email"
	"dronemarket/pkg/logger"
)

// SetupRouter 设置API路由
func SetupRouter(cfg *config.Config, logger *logger.Logger, db *sqlx.DB, redisClient *redis.Client) *gin.Engine {
	// 创建Gin引擎
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// 使用中间件
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS())

	// 创建异步工作器
	worker := async.NewWorker(100, logger)
	worker.Start(5) // 启动5个工作协程

	// 初始化存储库，演示数据在启动时装载
	adRepo := repository.NewAdRepository(map[string][]model.Ad{
		model.PlacementBanner:  seed.BannerAds(),
		model.PlacementSidebar: seed.SidebarAds(),
		model.PlacementInline:  seed.InlineAds(),
	}, seed.CategoryAds())
	if err := adRepo.ValidatePools(); err != nil {
		logger.Fatal("广告池配置错误", "error", err)
	}

	demoUsers, err := seed.Users()
	if err != nil {
		logger.Fatal("生成演示账号失败", "error", err)
	}
	userRepo := repository.NewUserRepository(demoUsers)
	droneRepo := repository.NewDroneRepository(seed.Drones())
	postRepo := repository.NewPostRepository(seed.Posts())
	chatRepo := repository.NewChatRepository()

	// 收藏夹优先走MySQL持久化，未配置数据库时降级为内存实现
	var favoriteRepo repository.FavoriteRepository
	if db != nil {
		favoriteRepo, err = repository.NewMySQLFavoriteRepository(db)
		if err != nil {
			logger.Fatal("初始化收藏表失败", "error", err)
		}
	} else {
		favoriteRepo = repository.NewMemoryFavoriteRepository()
	}

	// 初始化邮件服务
	emailService := email.NewService(cfg.Email, logger)

	// 初始化服务
	userService := service.NewUserService(userRepo, redisClient, worker, emailService, logger)
	adService := service.NewAdService(adRepo, redisClient, logger)
	droneService := service.NewDroneService(droneRepo, redisClient, logger)
	postService := service.NewPostService(postRepo, redisClient, logger)
	favoriteService := service.NewFavoriteService(favoriteRepo, droneRepo, logger)
	chatService := service.NewChatService(chatRepo, droneRepo, worker, seed.CannedReplies(), logger)
	certService := service.NewCertificationService(seed.Certifications())

	// 初始化轮播调度器
	carousel := scheduler.NewCarouselScheduler(adRepo, cfg.Carousel.Interval, cfg.Carousel.SlotTTL, logger)
	carousel.Start() // 启动轮播调度

	// 初始化处理器
	userHandler := handler.NewUserHandler(userService, logger)
	adHandler := handler.NewAdHandler(adService, carousel, logger)
	droneHandler := handler.NewDroneHandler(droneService, logger)
	postHandler := handler.NewPostHandler(postService, logger)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService, logger)
	chatHandler := handler.NewChatHandler(chatService, logger)
	certHandler := handler.NewCertificationHandler(certService, logger)

	// 初始化管理员处理器
	adAdminHandler := admin.NewAdAdminHandler(adService, logger)

	// 健康检查
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API版本v1
	v1 := router.Group("/api/v1")

	// 创建需要认证的API路由组
	authRouter := v1.Group("")
	// 为需要认证的API路由添加UserAuth中间件
	authRouter.Use(middleware.UserAuth(userService))

	// 注册不需要认证的路由（浏览、广告、登录注册等）
	apis.RegisterPublicRoutes(v1, userHandler, adHandler, droneHandler, postHandler, certHandler)

	// 注册需要认证的API路由
	apis.RegisterAuthRoutes(authRouter, userHandler, droneHandler, postHandler, favoriteHandler, chatHandler)

	// 注册管理员API路由
	adminRouter := v1.Group("/admin")
	// 添加管理员认证中间件
	adminRouter.Use(middleware.AdminAuth(userService))
	admin.RegisterAdminRoutes(adminRouter, adAdminHandler)

	return router
}
