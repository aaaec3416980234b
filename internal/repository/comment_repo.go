package repository

import (
	"Lumigram/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type CommentRepo interface {
	CreateComment(ctx context.Context, comment *model.Comment) error
	GetCommentById(ctx context.Context, id uint64) (*model.Comment, error)
	ListByPostId(ctx context.Context, postId uint64, limit, offset int) ([]*model.Comment, error)
	CountByPostId(ctx context.Context, postId uint64) (int64, error)
	DeleteCommentOwned(ctx context.Context, id, userId uint64) (int64, error)
}

type CommentRepoImpl struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) CommentRepo {
	return &CommentRepoImpl{db: db}
}

func (s *CommentRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}

func (s *CommentRepoImpl) GetCommentById(ctx context.Context, id uint64) (*model.Comment, error) {
	comment := &model.Comment{}
	result := s.db.WithContext(ctx).
		Preload("User").
		First(comment, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return comment, nil
}

// ListByPostId 评论按时间倒序，新的在前，小 limit 取的是同一排序的前缀
func (s *CommentRepoImpl) ListByPostId(ctx context.Context, postId uint64, limit, offset int) ([]*model.Comment, error) {
	comments := make([]*model.Comment, 0)
	result := s.db.WithContext(ctx).
		Preload("User").
		Where("post_id = ?", postId).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&comments)
	if result.Error != nil {
		return nil, result.Error
	}
	return comments, nil
}

func (s *CommentRepoImpl) CountByPostId(ctx context.Context, postId uint64) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.Comment{}).
		Where("post_id = ?", postId).
		Count(&count)
	return count, result.Error
}

// DeleteCommentOwned 单条删除，作者条件直接写进 WHERE，存在性判定交给上层
func (s *CommentRepoImpl) DeleteCommentOwned(ctx context.Context, id, userId uint64) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userId).
		Delete(&model.Comment{})
	return result.RowsAffected, result.Error
}
