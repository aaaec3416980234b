package service

import (
	"Lumigram/internal/model"
	"Lumigram/internal/pkg/consts"
	"Lumigram/internal/pkg/redis"
	"Lumigram/internal/repository"
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

// StatsCacheTTL 计数缓存有效期，真值始终在数据库视图里
const StatsCacheTTL = 5 * time.Minute

type StatsService interface {
	GetPostStats(ctx context.Context, postId uint64) (*model.PostStats, error)
	GetPostStatsBatch(ctx context.Context, postIds []uint64) (map[uint64]*model.PostStats, error)
	GetUserStats(ctx context.Context, userId uint64) (*model.UserStats, error)
	InvalidatePost(ctx context.Context, postId uint64)
	InvalidateUser(ctx context.Context, userId uint64)
}

type StatsServiceImpl struct {
	statsRepo repository.StatsRepo
}

func NewStatsService(statsRepo repository.StatsRepo) StatsService {
	return &StatsServiceImpl{statsRepo: statsRepo}
}

func (s *StatsServiceImpl) GetPostStats(ctx context.Context, postId uint64) (*model.PostStats, error) {
	key := consts.PostStatsKey + strconv.FormatUint(postId, 10)
	if cached, err := redis.GetValue(ctx, key); err == nil && cached != "" {
		stats := &model.PostStats{}
		if err := json.Unmarshal([]byte(cached), stats); err == nil {
			return stats, nil
		}
	}

	stats, err := s.statsRepo.GetPostStats(ctx, postId)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		// 视图按帖子聚合，无行等价于零计数
		stats = &model.PostStats{PostID: postId}
	}

	if data, err := json.Marshal(stats); err == nil {
		if err := redis.SetWithExpiration(ctx, key, string(data), StatsCacheTTL); err != nil {
			log.WarnContext(ctx, "cache post stats failed", "post_id", postId, "err", err)
		}
	}
	return stats, nil
}

func (s *StatsServiceImpl) GetPostStatsBatch(ctx context.Context, postIds []uint64) (map[uint64]*model.PostStats, error) {
	result := make(map[uint64]*model.PostStats, len(postIds))
	if len(postIds) == 0 {
		return result, nil
	}

	list, err := s.statsRepo.GetPostStatsBatch(ctx, postIds)
	if err != nil {
		return nil, err
	}
	for _, stats := range list {
		result[stats.PostID] = stats
	}
	for _, id := range postIds {
		if _, ok := result[id]; !ok {
			result[id] = &model.PostStats{PostID: id}
		}
	}
	return result, nil
}

func (s *StatsServiceImpl) GetUserStats(ctx context.Context, userId uint64) (*model.UserStats, error) {
	key := consts.UserStatsKey + strconv.FormatUint(userId, 10)
	if cached, err := redis.GetValue(ctx, key); err == nil && cached != "" {
		stats := &model.UserStats{}
		if err := json.Unmarshal([]byte(cached), stats); err == nil {
			return stats, nil
		}
	}

	stats, err := s.statsRepo.GetUserStats(ctx, userId)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		stats = &model.UserStats{UserID: userId}
	}

	if data, err := json.Marshal(stats); err == nil {
		if err := redis.SetWithExpiration(ctx, key, string(data), StatsCacheTTL); err != nil {
			log.WarnContext(ctx, "cache user stats failed", "user_id", userId, "err", err)
		}
	}
	return stats, nil
}

// InvalidatePost 写路径同步失效，保证读己之写
func (s *StatsServiceImpl) InvalidatePost(ctx context.Context, postId uint64) {
	key := consts.PostStatsKey + strconv.FormatUint(postId, 10)
	if err := redis.DeleteKey(ctx, key); err != nil {
		log.WarnContext(ctx, "invalidate post stats failed", "post_id", postId, "err", err)
	}
}

func (s *StatsServiceImpl) InvalidateUser(ctx context.Context, userId uint64) {
	key := consts.UserStatsKey + strconv.FormatUint(userId, 10)
	if err := redis.DeleteKey(ctx, key); err != nil {
		log.WarnContext(ctx, "invalidate user stats failed", "user_id", userId, "err", err)
	}
}
