package repository

import (
	"Lumigram/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post) error
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	ListPosts(ctx context.Context, limit, offset int) ([]*model.Post, error)
	ListPostsByUser(ctx context.Context, userId uint64, limit, offset int) ([]*model.Post, error)
	CountPosts(ctx context.Context) (int64, error)
	CountPostsByUser(ctx context.Context, userId uint64) (int64, error)
	ExistsPost(ctx context.Context, id uint64) (bool, error)
	DeletePostOwned(ctx context.Context, id, userId uint64) (int64, error)
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) PostRepo {
	return &PostRepoImpl{db: db}
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Create(post).Error
}

func (s *PostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	post := &model.Post{}
	result := s.db.WithContext(ctx).
		Preload("User").
		First(post, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return post, nil
}

// ListPosts 全站时间线，按创建时间倒序，id 兜底保证稳定排序
func (s *PostRepoImpl) ListPosts(ctx context.Context, limit, offset int) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	result := s.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

func (s *PostRepoImpl) ListPostsByUser(ctx context.Context, userId uint64, limit, offset int) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	result := s.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userId).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

func (s *PostRepoImpl) CountPosts(ctx context.Context) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.Post{}).
		Count(&count)
	return count, result.Error
}

func (s *PostRepoImpl) CountPostsByUser(ctx context.Context, userId uint64) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("user_id = ?", userId).
		Count(&count)
	return count, result.Error
}

func (s *PostRepoImpl) ExistsPost(ctx context.Context, id uint64) (bool, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ?", id).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// DeletePostOwned 同一事务内清理点赞和评论后删帖，owner 条件保证只删自己的
func (s *PostRepoImpl) DeletePostOwned(ctx context.Context, id, userId uint64) (int64, error) {
	var affected int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", id, userId).Delete(&model.Post{})
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		if affected == 0 {
			return nil
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		return tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}
