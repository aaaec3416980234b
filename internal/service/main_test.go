package service

import (
	"Lumigram/internal/api/config"
	"Lumigram/internal/api/dto"
	"Lumigram/internal/model"
	"Lumigram/internal/pkg/database"
	"Lumigram/internal/pkg/util"
	"Lumigram/internal/repository"
	"context"
	"testing"
)

type testEnv struct {
	userSvc    UserService
	postSvc    PostService
	likeSvc    LikeService
	followSvc  FollowService
	commentSvc CommentService
	statsSvc   StatsService
}

// newTestEnv 在内存 sqlite 上搭起完整的服务栈，redis 和 minio 均未初始化，
// 缓存按未命中降级、对象校验跳过
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	config.Cfg = &config.Config{
		Auth: config.AuthConfig{
			Secret: "test-secret",
			Issuer: "test-idp",
		},
	}

	db, err := database.NewGormDB(&config.DBConfig{DSN: "sqlite://:memory:"})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	userRepo := repository.NewUserRepo(db)
	postRepo := repository.NewPostRepo(db)
	likeRepo := repository.NewLikeRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	followRepo := repository.NewFollowRepo(db)
	statsRepo := repository.NewStatsRepo(db)

	statsSvc := NewStatsService(statsRepo)
	mediaSvc := NewMediaService()

	return &testEnv{
		userSvc:    NewUserService(userRepo, followRepo, statsSvc),
		postSvc:    NewPostService(postRepo, userRepo, likeRepo, statsSvc, mediaSvc),
		likeSvc:    NewLikeService(likeRepo, postRepo, statsSvc),
		followSvc:  NewFollowService(followRepo, userRepo, statsSvc),
		commentSvc: NewCommentService(commentRepo, postRepo, statsSvc),
		statsSvc:   statsSvc,
	}
}

func (e *testEnv) mustUser(t *testing.T, subject, nickname string) *model.User {
	t.Helper()
	user, err := e.userSvc.SyncUser(context.Background(), subject, nickname, "")
	if err != nil {
		t.Fatalf("sync user %s: %v", subject, err)
	}
	return user
}

func (e *testEnv) mustPost(t *testing.T, userId uint64, caption string) *dto.PostDTO {
	t.Helper()
	req := &dto.CreatePostDTO{ImageKey: "2026/01/01/test.jpg"}
	if caption != "" {
		req.Caption = util.PtrString(caption)
	}
	post, err := e.postSvc.CreatePost(context.Background(), userId, req)
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	return post
}
