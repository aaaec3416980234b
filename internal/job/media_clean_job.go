package job

import (
	"Lumigram/internal/service"
	"context"
	log "log/slog"
)

// MediaCleanupJob 回收上传后始终未被帖子引用的图片对象
type MediaCleanupJob struct {
	mediaSvc service.MediaService
}

func NewMediaCleanupJob(mediaSvc service.MediaService) *MediaCleanupJob {
	return &MediaCleanupJob{mediaSvc: mediaSvc}
}

func (s *MediaCleanupJob) Run() {
	ctx := context.Background()
	log.Info("start media cleanup job")

	if err := s.mediaSvc.CleanOrphans(ctx); err != nil {
		log.Error("media cleanup job failed", "err", err)
		return
	}
	log.Info("media cleanup job finished")
}
