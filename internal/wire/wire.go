package wire

import (
	"Lumigram/internal/api"
	"Lumigram/internal/api/config"
	"Lumigram/internal/api/handler"
	"Lumigram/internal/job"
	"Lumigram/internal/pkg/cron"
	"Lumigram/internal/repository"
	"Lumigram/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	postRepo := repository.NewPostRepo(db)
	likeRepo := repository.NewLikeRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	followRepo := repository.NewFollowRepo(db)
	statsRepo := repository.NewStatsRepo(db)

	statsService := service.NewStatsService(statsRepo)
	mediaService := service.NewMediaService()
	userService := service.NewUserService(userRepo, followRepo, statsService)
	postService := service.NewPostService(postRepo, userRepo, likeRepo, statsService, mediaService)
	likeService := service.NewLikeService(likeRepo, postRepo, statsService)
	commentService := service.NewCommentService(commentRepo, postRepo, statsService)
	followService := service.NewFollowService(followRepo, userRepo, statsService)

	handlers := &api.HandlersGroup{
		UserHandler:    handler.NewUserHandler(userService),
		PostHandler:    handler.NewPostHandler(postService),
		CommentHandler: handler.NewCommentHandler(commentService),
		LikeHandler:    handler.NewLikeHandler(likeService),
		FollowHandler:  handler.NewFollowHandler(followService),
		MediaHandler:   handler.NewMediaHandler(mediaService),
	}

	router := api.SetupRouter(handlers, userService)

	cronMgr := cron.NewCronManager(job.NewMediaCleanupJob(mediaService))

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
