package route

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"collabhub/config"
	"collabhub/internal/chat"
	"collabhub/internal/database"
	"collabhub/internal/file"
	"collabhub/internal/invitation"
	"collabhub/internal/login"
	"collabhub/internal/message"
	"collabhub/internal/middleware"
	"collabhub/internal/password"
	"collabhub/internal/profile"
	"collabhub/internal/project"
	"collabhub/internal/request"
	"collabhub/internal/signup"
	"collabhub/internal/student"
	"collabhub/internal/task"
	"collabhub/internal/workspace"
)

func initRoute(r *gin.Engine) {
	db := database.PostgresDB

	api := r.Group("/api")
	{
		// 健康检查，无需认证
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":    "healthy",
				"message":   "Collaboration Hub API is running",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
		})

		// 公开路由
		signup.RegisterRoutes(api)
		login.RegisterRoutes(api)
		password.RegisterRoutes(api)

		// 需认证路由
		authed := api.Group("")
		authed.Use(middleware.JWTAuth())
		{
			profile.RegisterRoutes(authed)
			workspace.RegisterRoutes(authed, db)
			invitation.RegisterRoutes(authed, db)
			message.RegisterRoutes(authed, db)
			file.RegisterRoutes(authed, db)
			task.RegisterRoutes(authed, db)
			student.RegisterRoutes(authed, db)
			request.RegisterRoutes(authed, db)
			project.RegisterRoutes(authed, db)
			chat.RegisterRoutes(authed, db)
		}
	}
}

func SetupRouter() *gin.Engine {
	if config.Conf.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	// 允许多个前端端口
	allowedOrigins := []string{
		"http://localhost:3000",
		"http://localhost:3001",
	}

	// 配置了前端地址则加入允许列表
	if origin := config.Conf.Frontend.URL; origin != "" {
		allowedOrigins = append(allowedOrigins, origin)
	}

	// 设置跨域请求
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	initRoute(r)

	return r
}
