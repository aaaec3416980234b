package api

import (
	"Lumigram/internal/api/middleware"
	"Lumigram/internal/pkg/logger"
	"Lumigram/internal/pkg/response"
	"Lumigram/internal/service"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, userSvc service.UserService) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Timeout & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.TimeoutMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	auth := middleware.AuthMiddleware(userSvc)
	authOpt := middleware.AuthOptionalMiddleware(userSvc)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			response.Success(c, "pong")
		})

		userGroup := apiGroup.Group("/users")
		{
			userGroup.POST("/sync", group.UserHandler.SyncUser)

			viewGroup := userGroup.Group("")
			viewGroup.Use(authOpt)
			{
				viewGroup.GET("/:user_id", group.UserHandler.GetProfile)
				viewGroup.GET("/:user_id/posts", group.PostHandler.ListUserPosts)
			}
		}

		postGroup := apiGroup.Group("/posts")
		{
			// 匿名可读，带凭证则返回观察者视角
			viewGroup := postGroup.Group("")
			viewGroup.Use(authOpt)
			{
				viewGroup.GET("", group.PostHandler.ListPosts)
				viewGroup.GET("/:post_id", group.PostHandler.GetPost)
			}
			authGroup := postGroup.Group("")
			authGroup.Use(auth)
			{
				authGroup.POST("", group.PostHandler.CreatePost)
				authGroup.DELETE("/:post_id", group.PostHandler.DeletePost)
			}
		}

		commentGroup := apiGroup.Group("/comments")
		{
			commentGroup.GET("", group.CommentHandler.ListComments)

			authGroup := commentGroup.Group("")
			authGroup.Use(auth)
			{
				authGroup.POST("", group.CommentHandler.CreateComment)
				authGroup.DELETE("/:comment_id", group.CommentHandler.DeleteComment)
			}
		}

		likeGroup := apiGroup.Group("/likes")
		likeGroup.Use(auth)
		{
			likeGroup.POST("", group.LikeHandler.LikePost)
			likeGroup.DELETE("", group.LikeHandler.UnlikePost)
		}

		followGroup := apiGroup.Group("/follows")
		followGroup.Use(auth)
		{
			followGroup.POST("", group.FollowHandler.Follow)
			followGroup.DELETE("", group.FollowHandler.Unfollow)
			followGroup.GET("", group.FollowHandler.FollowStatus)
		}

		mediaGroup := apiGroup.Group("/media")
		mediaGroup.Use(auth)
		{
			mediaGroup.POST("/upload", group.MediaHandler.Upload)
		}
	}

	return r
}
