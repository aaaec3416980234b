package model

import "time"

// Follow 关注边，自关注由数据库 CHECK 约束兜底
type Follow struct {
	FollowerID  uint64    `gorm:"primaryKey;autoIncrement:false;check:chk_no_self_follow,follower_id <> following_id" json:"followerId"`
	FollowingID uint64    `gorm:"primaryKey;autoIncrement:false;index:idx_following_id" json:"followingId"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (Follow) TableName() string {
	return "follows"
}
