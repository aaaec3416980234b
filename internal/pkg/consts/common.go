package consts

const (
	// DefaultPageSize 帖子流默认分页大小
	DefaultPageSize = 10
	// MaxPageSize 分页上限，防止无界查询
	MaxPageSize = 100
	// DefaultCommentLimit 评论列表默认条数
	DefaultCommentLimit = 20

	// MaxCaptionLength 帖子配文长度上限
	MaxCaptionLength = 2200

	MimePrefixImage = "image/"
)
