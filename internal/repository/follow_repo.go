package repository

import (
	"Lumigram/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type FollowRepo interface {
	CreateFollow(ctx context.Context, follow *model.Follow) error
	DeleteFollow(ctx context.Context, followerId, followingId uint64) (int64, error)
	GetFollow(ctx context.Context, followerId, followingId uint64) (*model.Follow, error)
}

type FollowRepoImpl struct {
	db *gorm.DB
}

func NewFollowRepo(db *gorm.DB) FollowRepo {
	return &FollowRepoImpl{db: db}
}

func (s *FollowRepoImpl) CreateFollow(ctx context.Context, follow *model.Follow) error {
	return s.db.WithContext(ctx).Create(follow).Error
}

func (s *FollowRepoImpl) DeleteFollow(ctx context.Context, followerId, followingId uint64) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerId, followingId).
		Delete(&model.Follow{})
	return result.RowsAffected, result.Error
}

func (s *FollowRepoImpl) GetFollow(ctx context.Context, followerId, followingId uint64) (*model.Follow, error) {
	follow := &model.Follow{}
	result := s.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerId, followingId).
		First(follow)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return follow, nil
}
