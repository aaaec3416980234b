package dto

type FollowActionDTO struct {
	FollowingID uint64 `json:"following_id" binding:"required"`
}

type FollowStatusDTO struct {
	IsFollowing bool `json:"is_following"`
}
