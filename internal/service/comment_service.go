package service

import (
	"Lumigram/internal/api/dto"
	"Lumigram/internal/model"
	"Lumigram/internal/pkg/consts"
	"Lumigram/internal/pkg/util"
	"Lumigram/internal/repository"
	"context"
	"strings"
	"time"

	"github.com/jinzhu/copier"
)

type CommentService interface {
	CreateComment(ctx context.Context, userId, postId uint64, req *dto.CreateCommentDTO) (*dto.CommentDTO, error)
	ListComments(ctx context.Context, postId uint64, limit, offset int) (*dto.CommentListDTO, error)
	DeleteComment(ctx context.Context, userId, commentId uint64) error
}

type CommentServiceImpl struct {
	commentRepo repository.CommentRepo
	postRepo    repository.PostRepo
	statsSvc    StatsService
}

func NewCommentService(commentRepo repository.CommentRepo, postRepo repository.PostRepo, statsSvc StatsService) CommentService {
	return &CommentServiceImpl{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		statsSvc:    statsSvc,
	}
}

func (s *CommentServiceImpl) CreateComment(ctx context.Context, userId, postId uint64, req *dto.CreateCommentDTO) (*dto.CommentDTO, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrCommentEmpty
	}
	if len([]rune(content)) > consts.MaxCaptionLength {
		return nil, ErrParamInvalid
	}

	// 先确认帖子仍然存在，不给已删帖子留孤儿评论
	exists, err := s.postRepo.ExistsPost(ctx, postId)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrPostNotFound
	}

	comment := &model.Comment{
		PostID:    postId,
		UserID:    userId,
		Content:   content,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	s.statsSvc.InvalidatePost(ctx, postId)

	created, err := s.commentRepo.GetCommentById(ctx, comment.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, ErrCommentNotFound
	}
	return s.toCommentDTO(created), nil
}

func (s *CommentServiceImpl) ListComments(ctx context.Context, postId uint64, limit, offset int) (*dto.CommentListDTO, error) {
	exists, err := s.postRepo.ExistsPost(ctx, postId)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrPostNotFound
	}

	limit = util.ClampLimit(limit, consts.DefaultCommentLimit, consts.MaxPageSize)
	offset = util.ClampOffset(offset)

	total, err := s.commentRepo.CountByPostId(ctx, postId)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.ListByPostId(ctx, postId, limit, offset)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.CommentDTO, 0, len(comments))
	for _, comment := range comments {
		items = append(items, s.toCommentDTO(comment))
	}

	return &dto.CommentListDTO{
		Comments: items,
		Total:    total,
		HasMore:  int64(offset+len(comments)) < total,
	}, nil
}

// DeleteComment 作者条件直接写进删除语句，零行结果再区分是没权限还是不存在
func (s *CommentServiceImpl) DeleteComment(ctx context.Context, userId, commentId uint64) error {
	comment, err := s.commentRepo.GetCommentById(ctx, commentId)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}

	affected, err := s.commentRepo.DeleteCommentOwned(ctx, commentId, userId)
	if err != nil {
		return err
	}
	if affected == 0 {
		if comment.UserID != userId {
			return ErrNotCommentAuthor
		}
		// 并发下已被删掉
		return ErrCommentNotFound
	}

	s.statsSvc.InvalidatePost(ctx, comment.PostID)
	return nil
}

func (s *CommentServiceImpl) toCommentDTO(comment *model.Comment) *dto.CommentDTO {
	result := &dto.CommentDTO{}
	_ = copier.Copy(result, comment)
	result.PostID = comment.PostID
	result.CreatedAt = comment.CreatedAt.Format(time.RFC3339)
	result.UserID = comment.UserID
	result.Nickname = comment.User.Nickname
	result.AvatarURL = comment.User.AvatarURL
	return result
}
