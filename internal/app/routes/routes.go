package routes

import (
	"time"

	_ "dhiya-infra-service/docs"
	"dhiya-infra-service/internal/app/controllers"
	"dhiya-infra-service/internal/app/middleware"
	"dhiya-infra-service/internal/domain/services/container"
	"dhiya-infra-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *gin.Engine {
	// 初始化 Gin
	r := gin.Default()

	// 添加 CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", cfg.CORSOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})
	// 设置正确的Content-Type，确保UTF-8编码
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.Next()
	})
	// 创建服务容器
	serviceContainer := container.NewServiceContainer(db, cfg, redisClient)
	// 初始化中间件
	middleware.InitAuthMiddleware(cfg)
	// 添加 Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册路由
	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes 配置所有API路由
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// API 路由根路径
	api := r.Group("/api")
	// 注册公共路由
	registerPublicRoutes(api, container)
	// 注册需要认证的路由
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes 注册公共路由
func registerPublicRoutes(
	parent *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 公共路由挂在独立的子分组上，限流不会叠加到后注册的管理分组
	api := parent.Group("")

	// 添加IP限流中间件 - 每秒允许10个请求，最多突发20个请求
	api.Use(middleware.IPRateLimiter(10, 20))

	// 健康检查路由
	api.GET("/ping", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health", controllers.HandleHealthFunc(container, "health"))

	// 健康状态路由组
	healthGroup := api.Group("/health")
	healthGroup.GET("/status", controllers.HandleHealthFunc(container, "status"))

	// 认证路由
	api.POST("/auth/login", controllers.HandleJWTFunc(container, "login"))
	api.GET("/auth/me", middleware.Authentication(), controllers.HandleJWTFunc(container, "me"))

	// 招标请求提交入口
	api.POST("/tender-requests", controllers.HandleTenderRequestFunc(container, "createTenderRequest"))

	// 联系消息提交入口
	api.POST("/contact", controllers.HandleContactFunc(container, "createContactMessage"))

	// 公共展示内容路由，响应短时间缓存。
	// 列表接口不读查询参数，只按路径建键，避免任意查询串撑大缓存
	api.GET("/tenders", middleware.CacheByParams(5*time.Minute), controllers.HandleContentFunc(container, "getTenders"))
	api.GET("/tenders/:id", middleware.Cache(middleware.CacheConfig{Expiration: 5 * time.Minute}), controllers.HandleContentFunc(container, "getTender"))
	api.GET("/testimonials", middleware.CacheByParams(5*time.Minute), controllers.HandleContentFunc(container, "getTestimonials"))
}

// registerAuthenticatedRoutes 注册需要认证的路由
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 添加认证中间件
	auth := api.Group("/admin")
	auth.Use(middleware.AuthenticateSystemAdmin())

	// 添加限流中间件 - 每秒30个请求，最多突发50个请求。
	// 按IP+路径组合计数，与公共入口的纯IP桶互不抢占
	auth.Use(middleware.CombinedRateLimiter(30, 50))

	// 招标请求管理路由，状态变更需要立刻可见，不加响应缓存
	tenderRequestGroup := auth.Group("/tender-requests")
	tenderRequestGroup.GET("", controllers.HandleTenderRequestFunc(container, "getTenderRequests"))
	tenderRequestGroup.GET("/:id", controllers.HandleTenderRequestFunc(container, "getTenderRequest"))
	tenderRequestGroup.PATCH("/:id/status", controllers.HandleTenderRequestFunc(container, "updateTenderRequestStatus"))
	tenderRequestGroup.POST("/:id/notes", controllers.HandleTenderRequestFunc(container, "addTenderRequestNote"))

	// 用户管理路由
	usersGroup := auth.Group("/users")
	usersGroup.GET("", controllers.HandleUserFunc(container, "getUsers"))
	usersGroup.PUT("/:id", controllers.HandleUserFunc(container, "updateUser"))
	usersGroup.DELETE("/:id", controllers.HandleUserFunc(container, "deleteUser"))

	// 联系消息管理路由
	auth.GET("/contact-messages", controllers.HandleContactFunc(container, "getContactMessages"))

	// 仪表盘路由
	auth.GET("/dashboard/stats", controllers.HandleDashboardFunc(container, "getDashboardStats"))
}
