package service

import (
	"Lumigram/internal/api/config"
	"Lumigram/internal/api/dto"
	"Lumigram/internal/pkg/consts"
	"Lumigram/internal/pkg/minio"
	"Lumigram/internal/pkg/redis"
	"Lumigram/internal/pkg/util"
	"context"
	log "log/slog"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type MediaService interface {
	Upload(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*dto.MediaUploadDTO, error)
	ConsumeImageKey(ctx context.Context, imageKey string) error
	ReleaseImageKey(ctx context.Context, imageKey string)
	CleanOrphans(ctx context.Context) error
}

type MediaServiceImpl struct{}

func NewMediaService() MediaService {
	return &MediaServiceImpl{}
}

func (s *MediaServiceImpl) Upload(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*dto.MediaUploadDTO, error) {
	if config.Cfg != nil && config.Cfg.Media.MaxUploadSize > 0 && header.Size > config.Cfg.Media.MaxUploadSize {
		return nil, ErrFileTooLarge
	}

	// 嗅探真实类型，不信任客户端 Content-Type
	mimeType, err := util.GetSafeContentType(file)
	if err != nil {
		return nil, errors.Wrap(err, "嗅探文件类型失败")
	}
	if !strings.HasPrefix(mimeType, consts.MimePrefixImage) {
		return nil, ErrFileNotSupported
	}

	img, err := imaging.Decode(file)
	if err != nil {
		return nil, ErrFileNotSupported
	}
	bounds := img.Bounds()
	if _, err := file.Seek(0, 0); err != nil {
		return nil, errors.Wrap(err, "重置文件游标失败")
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	imageKey := time.Now().Format("2006/01/02/") + uuid.NewString() + ext
	if _, err := minio.UploadFile(ctx, imageKey, file, header.Size, mimeType); err != nil {
		return nil, errors.Wrap(err, "上传对象失败")
	}

	// 暂存表记录未被帖子引用的对象，发帖时消费，过期由定时任务回收
	if err := redis.HSet(ctx, consts.MediaTempKey, imageKey, strconv.FormatInt(time.Now().Unix(), 10)); err != nil {
		log.WarnContext(ctx, "record temp media failed", "image_key", imageKey, "err", err)
	}

	return &dto.MediaUploadDTO{
		ImageKey: imageKey,
		URL:      minio.GetPublicURL(imageKey),
		MimeType: mimeType,
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		Size:     header.Size,
	}, nil
}

// ConsumeImageKey 发帖时校验对象存在并移出暂存表
func (s *MediaServiceImpl) ConsumeImageKey(ctx context.Context, imageKey string) error {
	if imageKey == "" {
		return ErrImageRequired
	}
	if minio.Ready() {
		exists, err := minio.StatFile(ctx, imageKey)
		if err != nil {
			return errors.Wrap(err, "查询对象失败")
		}
		if !exists {
			return ErrFileNotExist
		}
	}
	if err := redis.HDel(ctx, consts.MediaTempKey, imageKey); err != nil {
		log.WarnContext(ctx, "consume temp media failed", "image_key", imageKey, "err", err)
	}
	return nil
}

// ReleaseImageKey 删帖后回收对象，失败只记日志不阻断删除
func (s *MediaServiceImpl) ReleaseImageKey(ctx context.Context, imageKey string) {
	if !minio.Ready() {
		return
	}
	if err := minio.DeleteFile(ctx, imageKey); err != nil {
		log.WarnContext(ctx, "delete media object failed", "image_key", imageKey, "err", err)
	}
}

// CleanOrphans 回收超过 TTL 仍未被消费的上传对象
func (s *MediaServiceImpl) CleanOrphans(ctx context.Context) error {
	entries, err := redis.HGetAll(ctx, consts.MediaTempKey)
	if err != nil {
		return errors.Wrap(err, "读取暂存表失败")
	}

	ttl := 24 * time.Hour
	if config.Cfg != nil && config.Cfg.Media.TempTTLHours > 0 {
		ttl = time.Duration(config.Cfg.Media.TempTTLHours) * time.Hour
	}
	deadline := time.Now().Add(-ttl).Unix()

	for imageKey, raw := range entries {
		uploadedAt, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || uploadedAt > deadline {
			continue
		}
		if minio.Ready() {
			if err := minio.DeleteFile(ctx, imageKey); err != nil {
				log.WarnContext(ctx, "clean orphan media failed", "image_key", imageKey, "err", err)
				continue
			}
		}
		if err := redis.HDel(ctx, consts.MediaTempKey, imageKey); err != nil {
			log.WarnContext(ctx, "remove temp record failed", "image_key", imageKey, "err", err)
		}
	}
	return nil
}
