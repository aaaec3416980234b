package service

import (
	"Lumigram/internal/model"
	"Lumigram/internal/repository"
	"context"
	"time"
)

type FollowService interface {
	Follow(ctx context.Context, followerId, followingId uint64) error
	Unfollow(ctx context.Context, followerId, followingId uint64) error
	IsFollowing(ctx context.Context, followerId, followingId uint64) (bool, error)
}

type FollowServiceImpl struct {
	followRepo repository.FollowRepo
	userRepo   repository.UserRepo
	statsSvc   StatsService
}

func NewFollowService(followRepo repository.FollowRepo, userRepo repository.UserRepo, statsSvc StatsService) FollowService {
	return &FollowServiceImpl{
		followRepo: followRepo,
		userRepo:   userRepo,
		statsSvc:   statsSvc,
	}
}

func (s *FollowServiceImpl) Follow(ctx context.Context, followerId, followingId uint64) error {
	// 数据库 CHECK 约束兜底，这里是快路径
	if followerId == followingId {
		return ErrFollowSelf
	}

	target, err := s.userRepo.GetUserById(ctx, followingId)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrUserNotFound
	}

	follow := &model.Follow{
		FollowerID:  followerId,
		FollowingID: followingId,
		CreatedAt:   time.Now(),
	}
	if err := s.followRepo.CreateFollow(ctx, follow); err != nil {
		if repository.IsDuplicateError(err) {
			return ErrAlreadyFollowing
		}
		return err
	}

	s.statsSvc.InvalidateUser(ctx, followerId)
	s.statsSvc.InvalidateUser(ctx, followingId)
	return nil
}

// Unfollow 目标用户必须存在，存在前提下幂等，取消未关注的用户同样成功
func (s *FollowServiceImpl) Unfollow(ctx context.Context, followerId, followingId uint64) error {
	target, err := s.userRepo.GetUserById(ctx, followingId)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrUserNotFound
	}

	affected, err := s.followRepo.DeleteFollow(ctx, followerId, followingId)
	if err != nil {
		return err
	}
	if affected > 0 {
		s.statsSvc.InvalidateUser(ctx, followerId)
		s.statsSvc.InvalidateUser(ctx, followingId)
	}
	return nil
}

func (s *FollowServiceImpl) IsFollowing(ctx context.Context, followerId, followingId uint64) (bool, error) {
	target, err := s.userRepo.GetUserById(ctx, followingId)
	if err != nil {
		return false, err
	}
	if target == nil {
		return false, ErrUserNotFound
	}

	follow, err := s.followRepo.GetFollow(ctx, followerId, followingId)
	if err != nil {
		return false, err
	}
	return follow != nil, nil
}
