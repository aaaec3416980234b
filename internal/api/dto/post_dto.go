package dto

type CreatePostDTO struct {
	ImageKey string  `json:"image_key" binding:"required" validate:"min=1,max=512"`
	Caption  *string `json:"caption,omitempty"`
}

type PostDTO struct {
	// Post
	ID        uint64  `json:"id"`
	ImageURL  string  `json:"image_url"`
	Caption   *string `json:"caption,omitempty"`
	CreatedAt string  `json:"created_at"`

	// User
	UserID    uint64 `json:"user_id"`
	Nickname  string `json:"nickname"`
	AvatarURL string `json:"avatar_url"`

	// 聚合计数与观察者视角
	LikeCount    int64 `json:"like_count"`
	CommentCount int64 `json:"comment_count"`
	Liked        bool  `json:"liked"`
}

type PostFeedDTO struct {
	Posts   []*PostDTO `json:"posts"`
	Total   int64      `json:"total"`
	HasMore bool       `json:"has_more"`
}
