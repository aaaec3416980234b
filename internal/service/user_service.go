package service

import (
	"Lumigram/internal/api/dto"
	"Lumigram/internal/model"
	"Lumigram/internal/repository"
	"context"
	"time"
)

type UserService interface {
	ResolveSubject(ctx context.Context, subject string) (*model.User, error)
	SyncUser(ctx context.Context, subject, nickname, avatarURL string) (*model.User, error)
	GetProfile(ctx context.Context, viewerId, userId uint64) (*dto.UserProfileDTO, error)
}

type UserServiceImpl struct {
	userRepo   repository.UserRepo
	followRepo repository.FollowRepo
	statsSvc   StatsService
}

func NewUserService(userRepo repository.UserRepo, followRepo repository.FollowRepo, statsSvc StatsService) UserService {
	return &UserServiceImpl{
		userRepo:   userRepo,
		followRepo: followRepo,
		statsSvc:   statsSvc,
	}
}

// ResolveSubject 把外部身份标识映射到内部用户，未同步的身份返回 ErrUserNotFound
func (s *UserServiceImpl) ResolveSubject(ctx context.Context, subject string) (*model.User, error) {
	user, err := s.userRepo.GetUserBySubject(ctx, subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// SyncUser 身份同步入口，已存在则直接返回，资料字段以首次同步为准
func (s *UserServiceImpl) SyncUser(ctx context.Context, subject, nickname, avatarURL string) (*model.User, error) {
	user, err := s.userRepo.GetUserBySubject(ctx, subject)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	user = &model.User{
		Subject:   subject,
		Nickname:  nickname,
		AvatarURL: avatarURL,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if repository.IsDuplicateError(err) {
			// 并发同步同一身份，读回已有行
			return s.ResolveSubject(ctx, subject)
		}
		return nil, err
	}
	return user, nil
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, viewerId, userId uint64) (*dto.UserProfileDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	stats, err := s.statsSvc.GetUserStats(ctx, userId)
	if err != nil {
		return nil, err
	}

	following := false
	if viewerId > 0 && viewerId != userId {
		follow, err := s.followRepo.GetFollow(ctx, viewerId, userId)
		if err != nil {
			return nil, err
		}
		following = follow != nil
	}

	return &dto.UserProfileDTO{
		ID:             user.ID,
		Nickname:       user.Nickname,
		AvatarURL:      user.AvatarURL,
		CreatedAt:      user.CreatedAt.Format(time.RFC3339),
		PostCount:      stats.PostCount,
		FollowerCount:  stats.FollowerCount,
		FollowingCount: stats.FollowingCount,
		Following:      following,
	}, nil
}
