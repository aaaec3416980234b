package dto

type UserSyncDTO struct {
	Nickname  string `json:"nickname" validate:"omitempty,max=64"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,max=512"`
}

type UserProfileDTO struct {
	ID        uint64 `json:"id"`
	Nickname  string `json:"nickname"`
	AvatarURL string `json:"avatar_url"`
	CreatedAt string `json:"created_at"`

	// 聚合计数来自 user_stats 视图
	PostCount      int64 `json:"post_count"`
	FollowerCount  int64 `json:"follower_count"`
	FollowingCount int64 `json:"following_count"`

	// 观察者是否关注了该用户，匿名视角恒为 false
	Following bool `json:"following"`
}
