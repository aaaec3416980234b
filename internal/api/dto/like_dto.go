package dto

type LikeActionDTO struct {
	PostID uint64 `json:"post_id" binding:"required"`
}
