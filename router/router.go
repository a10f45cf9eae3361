package router

import (
	"time"

	"articlehub/config"
	"articlehub/controllers"
	"articlehub/middlewares"
	"articlehub/repository"
	"articlehub/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires the store into the services and mounts one route
// per workflow transition. Everything except sign-up/sign-in sits
// behind the auth middleware.
func SetupRouter(store repository.Store) *gin.Engine {
	secret := config.AppConfig.JWT.Secret
	ttl := time.Duration(config.AppConfig.JWT.TTLSeconds) * time.Second

	authService := services.NewAuthService(store, secret, ttl)
	articleService := services.NewArticleService(store)

	auth := controllers.NewAuthController(authService)
	articles := controllers.NewArticleController(articleService)

	r := gin.Default()
	r.Use(cors.Default())

	r.POST("/auth/sign-up", auth.Register)
	r.POST("/auth/sign-in", auth.Login)

	authed := r.Group("/", middlewares.AuthMiddleware(secret))
	{
		authed.GET("/auth/user", auth.CurrentUser)
		authed.GET("/auth/user/:id", auth.ShowUser)
		authed.PUT("/auth/role", auth.ChangeRole)

		authed.POST("/articles", articles.Create)
		authed.GET("/articles", articles.List)
		authed.GET("/articles/top", articles.TopRated)
		authed.GET("/articles/:id", articles.Get)
		authed.PUT("/articles/:id", articles.Update)
		authed.PUT("/articles/:id/status", articles.ChangeStatus)
		authed.DELETE("/articles/:id", articles.Delete)

		authed.PUT("/articles/:id/comment", articles.LeaveComment)
		authed.GET("/articles/:id/comment", articles.GetComments)
		authed.POST("/articles/:id/mark", articles.LeaveMark)
		authed.POST("/articles/:id/tag", articles.AttachTag)

		authed.POST("/tags", articles.CreateTag)
	}

	return r
}
