package repository

import (
	"Lumigram/internal/model"
	"context"

	"gorm.io/gorm"
)

type LikeRepo interface {
	CreateLike(ctx context.Context, like *model.Like) error
	DeleteLike(ctx context.Context, userId, postId uint64) (int64, error)
	CheckLikeExists(ctx context.Context, userId, postId uint64) (bool, error)
	GetLikedPostIds(ctx context.Context, userId uint64, postIds []uint64) ([]uint64, error)
}

type LikeRepoImpl struct {
	db *gorm.DB
}

func NewLikeRepo(db *gorm.DB) LikeRepo {
	return &LikeRepoImpl{db: db}
}

func (s *LikeRepoImpl) CreateLike(ctx context.Context, like *model.Like) error {
	return s.db.WithContext(ctx).Create(like).Error
}

func (s *LikeRepoImpl) DeleteLike(ctx context.Context, userId, postId uint64) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userId, postId).
		Delete(&model.Like{})
	return result.RowsAffected, result.Error
}

func (s *LikeRepoImpl) CheckLikeExists(ctx context.Context, userId, postId uint64) (bool, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.Like{}).
		Where("user_id = ? AND post_id = ?", userId, postId).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// GetLikedPostIds 一次查出当前用户在给定帖子集合中点过赞的那部分，避免 N+1
func (s *LikeRepoImpl) GetLikedPostIds(ctx context.Context, userId uint64, postIds []uint64) ([]uint64, error) {
	liked := make([]uint64, 0)
	if len(postIds) == 0 {
		return liked, nil
	}
	result := s.db.WithContext(ctx).
		Model(&model.Like{}).
		Where("user_id = ? AND post_id IN ?", userId, postIds).
		Pluck("post_id", &liked)
	if result.Error != nil {
		return nil, result.Error
	}
	return liked, nil
}
