package repository

import (
	"Lumigram/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

// StatsRepo 只读，数据来自数据库视图，计数永远由关系表推导
type StatsRepo interface {
	GetPostStats(ctx context.Context, postId uint64) (*model.PostStats, error)
	GetPostStatsBatch(ctx context.Context, postIds []uint64) ([]*model.PostStats, error)
	GetUserStats(ctx context.Context, userId uint64) (*model.UserStats, error)
}

type StatsRepoImpl struct {
	db *gorm.DB
}

func NewStatsRepo(db *gorm.DB) StatsRepo {
	return &StatsRepoImpl{db: db}
}

func (s *StatsRepoImpl) GetPostStats(ctx context.Context, postId uint64) (*model.PostStats, error) {
	stats := &model.PostStats{}
	result := s.db.WithContext(ctx).
		Where("post_id = ?", postId).
		First(stats)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return stats, nil
}

func (s *StatsRepoImpl) GetPostStatsBatch(ctx context.Context, postIds []uint64) ([]*model.PostStats, error) {
	list := make([]*model.PostStats, 0)
	if len(postIds) == 0 {
		return list, nil
	}
	result := s.db.WithContext(ctx).
		Where("post_id IN ?", postIds).
		Find(&list)
	if result.Error != nil {
		return nil, result.Error
	}
	return list, nil
}

func (s *StatsRepoImpl) GetUserStats(ctx context.Context, userId uint64) (*model.UserStats, error) {
	stats := &model.UserStats{}
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userId).
		First(stats)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return stats, nil
}
