package model

// PostStats 帖子聚合视图 post_stats，只读
type PostStats struct {
	PostID       uint64 `gorm:"column:post_id" json:"post_id"`
	LikeCount    int64  `gorm:"column:like_count" json:"like_count"`
	CommentCount int64  `gorm:"column:comment_count" json:"comment_count"`
}

func (PostStats) TableName() string {
	return "post_stats"
}

// UserStats 用户聚合视图 user_stats，只读
type UserStats struct {
	UserID         uint64 `gorm:"column:user_id" json:"user_id"`
	PostCount      int64  `gorm:"column:post_count" json:"post_count"`
	FollowerCount  int64  `gorm:"column:follower_count" json:"follower_count"`
	FollowingCount int64  `gorm:"column:following_count" json:"following_count"`
}

func (UserStats) TableName() string {
	return "user_stats"
}
