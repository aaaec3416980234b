package service

import (
	"Lumigram/internal/model"
	"Lumigram/internal/repository"
	"context"
	"time"
)

type LikeService interface {
	LikePost(ctx context.Context, userId, postId uint64) error
	UnlikePost(ctx context.Context, userId, postId uint64) error
	IsLiked(ctx context.Context, userId, postId uint64) (bool, error)
}

type LikeServiceImpl struct {
	likeRepo repository.LikeRepo
	postRepo repository.PostRepo
	statsSvc StatsService
}

func NewLikeService(likeRepo repository.LikeRepo, postRepo repository.PostRepo, statsSvc StatsService) LikeService {
	return &LikeServiceImpl{
		likeRepo: likeRepo,
		postRepo: postRepo,
		statsSvc: statsSvc,
	}
}

func (s *LikeServiceImpl) LikePost(ctx context.Context, userId, postId uint64) error {
	exists, err := s.postRepo.ExistsPost(ctx, postId)
	if err != nil {
		return err
	}
	if !exists {
		return ErrPostNotFound
	}

	like := &model.Like{
		UserID:    userId,
		PostID:    postId,
		CreatedAt: time.Now(),
	}
	if err := s.likeRepo.CreateLike(ctx, like); err != nil {
		// 联合主键冲突即重复点赞
		if repository.IsDuplicateError(err) {
			return ErrAlreadyLiked
		}
		return err
	}

	s.statsSvc.InvalidatePost(ctx, postId)
	return nil
}

// UnlikePost 幂等，取消未点赞的帖子同样成功
func (s *LikeServiceImpl) UnlikePost(ctx context.Context, userId, postId uint64) error {
	affected, err := s.likeRepo.DeleteLike(ctx, userId, postId)
	if err != nil {
		return err
	}
	if affected > 0 {
		s.statsSvc.InvalidatePost(ctx, postId)
	}
	return nil
}

func (s *LikeServiceImpl) IsLiked(ctx context.Context, userId, postId uint64) (bool, error) {
	return s.likeRepo.CheckLikeExists(ctx, userId, postId)
}
