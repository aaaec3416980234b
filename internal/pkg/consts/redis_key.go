package consts

const (
	// PostStatsKey 帖子聚合计数缓存前缀
	PostStatsKey = "stats:post:"
	// UserStatsKey 用户聚合计数缓存前缀
	UserStatsKey = "stats:user:"
	// MediaTempKey 已上传未挂接帖子的媒体对象哈希
	MediaTempKey = "media:temp"
)
