package dto

type CreateCommentDTO struct {
	PostID  uint64 `json:"post_id" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type CommentDTO struct {
	ID        uint64 `json:"id"`
	PostID    uint64 `json:"post_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`

	// User
	UserID    uint64 `json:"user_id"`
	Nickname  string `json:"nickname"`
	AvatarURL string `json:"avatar_url"`
}

type CommentListDTO struct {
	Comments []*CommentDTO `json:"comments"`
	Total    int64         `json:"total"`
	HasMore  bool          `json:"has_more"`
}
