package service

import (
	"Lumigram/internal/api/dto"
	"Lumigram/internal/model"
	"Lumigram/internal/pkg/consts"
	"Lumigram/internal/pkg/minio"
	"Lumigram/internal/pkg/util"
	"Lumigram/internal/repository"
	"context"
	"strings"
	"time"

	"github.com/jinzhu/copier"
)

type PostService interface {
	CreatePost(ctx context.Context, userId uint64, req *dto.CreatePostDTO) (*dto.PostDTO, error)
	GetPost(ctx context.Context, viewerId, postId uint64) (*dto.PostDTO, error)
	ListPosts(ctx context.Context, viewerId uint64, limit, offset int) (*dto.PostFeedDTO, error)
	ListUserPosts(ctx context.Context, viewerId, userId uint64, limit, offset int) (*dto.PostFeedDTO, error)
	DeletePost(ctx context.Context, userId, postId uint64) error
}

type PostServiceImpl struct {
	postRepo repository.PostRepo
	userRepo repository.UserRepo
	likeRepo repository.LikeRepo
	statsSvc StatsService
	mediaSvc MediaService
}

func NewPostService(postRepo repository.PostRepo, userRepo repository.UserRepo, likeRepo repository.LikeRepo, statsSvc StatsService, mediaSvc MediaService) PostService {
	return &PostServiceImpl{
		postRepo: postRepo,
		userRepo: userRepo,
		likeRepo: likeRepo,
		statsSvc: statsSvc,
		mediaSvc: mediaSvc,
	}
}

func (s *PostServiceImpl) CreatePost(ctx context.Context, userId uint64, req *dto.CreatePostDTO) (*dto.PostDTO, error) {
	imageKey := strings.TrimSpace(req.ImageKey)
	if imageKey == "" {
		return nil, ErrImageRequired
	}

	// 配文长度按 rune 计，服务端裁决不依赖客户端
	var caption *string
	if req.Caption != nil {
		trimmed := strings.TrimSpace(*req.Caption)
		if len([]rune(trimmed)) > consts.MaxCaptionLength {
			return nil, ErrCaptionTooLong
		}
		if trimmed != "" {
			caption = &trimmed
		}
	}

	if err := s.mediaSvc.ConsumeImageKey(ctx, imageKey); err != nil {
		return nil, err
	}

	post := &model.Post{
		UserID:    userId,
		ImageKey:  imageKey,
		Caption:   caption,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.postRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	s.statsSvc.InvalidateUser(ctx, userId)

	created, err := s.postRepo.GetPost(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	return s.toPostDTO(created, &model.PostStats{PostID: post.ID}, false), nil
}

func (s *PostServiceImpl) GetPost(ctx context.Context, viewerId, postId uint64) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postId)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	stats, err := s.statsSvc.GetPostStats(ctx, postId)
	if err != nil {
		return nil, err
	}

	liked := false
	if viewerId > 0 {
		liked, err = s.likeRepo.CheckLikeExists(ctx, viewerId, postId)
		if err != nil {
			return nil, err
		}
	}

	return s.toPostDTO(post, stats, liked), nil
}

func (s *PostServiceImpl) ListPosts(ctx context.Context, viewerId uint64, limit, offset int) (*dto.PostFeedDTO, error) {
	limit = util.ClampLimit(limit, consts.DefaultPageSize, consts.MaxPageSize)
	offset = util.ClampOffset(offset)

	total, err := s.postRepo.CountPosts(ctx)
	if err != nil {
		return nil, err
	}
	posts, err := s.postRepo.ListPosts(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	return s.buildFeed(ctx, viewerId, posts, total, offset)
}

func (s *PostServiceImpl) ListUserPosts(ctx context.Context, viewerId, userId uint64, limit, offset int) (*dto.PostFeedDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	limit = util.ClampLimit(limit, consts.DefaultPageSize, consts.MaxPageSize)
	offset = util.ClampOffset(offset)

	total, err := s.postRepo.CountPostsByUser(ctx, userId)
	if err != nil {
		return nil, err
	}
	posts, err := s.postRepo.ListPostsByUser(ctx, userId, limit, offset)
	if err != nil {
		return nil, err
	}

	return s.buildFeed(ctx, viewerId, posts, total, offset)
}

// DeletePost 先取行做归属判定，真正的删除仍以带 owner 条件的事务为准
func (s *PostServiceImpl) DeletePost(ctx context.Context, userId, postId uint64) error {
	post, err := s.postRepo.GetPost(ctx, postId)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.UserID != userId {
		return ErrNotPostOwner
	}

	affected, err := s.postRepo.DeletePostOwned(ctx, postId, userId)
	if err != nil {
		return err
	}
	if affected == 0 {
		// 并发下已被删掉
		return ErrPostNotFound
	}

	s.mediaSvc.ReleaseImageKey(ctx, post.ImageKey)
	s.statsSvc.InvalidatePost(ctx, postId)
	s.statsSvc.InvalidateUser(ctx, userId)
	return nil
}

func (s *PostServiceImpl) buildFeed(ctx context.Context, viewerId uint64, posts []*model.Post, total int64, offset int) (*dto.PostFeedDTO, error) {
	postIds := make([]uint64, 0, len(posts))
	for _, post := range posts {
		postIds = append(postIds, post.ID)
	}

	statsMap, err := s.statsSvc.GetPostStatsBatch(ctx, postIds)
	if err != nil {
		return nil, err
	}

	likedSet := make(map[uint64]struct{})
	if viewerId > 0 && len(postIds) > 0 {
		likedIds, err := s.likeRepo.GetLikedPostIds(ctx, viewerId, postIds)
		if err != nil {
			return nil, err
		}
		for _, id := range likedIds {
			likedSet[id] = struct{}{}
		}
	}

	items := make([]*dto.PostDTO, 0, len(posts))
	for _, post := range posts {
		_, liked := likedSet[post.ID]
		items = append(items, s.toPostDTO(post, statsMap[post.ID], liked))
	}

	return &dto.PostFeedDTO{
		Posts:   items,
		Total:   total,
		HasMore: int64(offset+len(posts)) < total,
	}, nil
}

func (s *PostServiceImpl) toPostDTO(post *model.Post, stats *model.PostStats, liked bool) *dto.PostDTO {
	result := &dto.PostDTO{}
	_ = copier.Copy(result, post)
	result.ImageURL = minio.GetPublicURL(post.ImageKey)
	result.CreatedAt = post.CreatedAt.Format(time.RFC3339)
	result.UserID = post.UserID
	result.Nickname = post.User.Nickname
	result.AvatarURL = post.User.AvatarURL
	if stats != nil {
		result.LikeCount = stats.LikeCount
		result.CommentCount = stats.CommentCount
	}
	result.Liked = liked
	return result
}
