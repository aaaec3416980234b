package handler

import (
	"Lumigram/internal/api/dto"
	"Lumigram/internal/pkg/response"
	"Lumigram/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	likeSvc service.LikeService
}

func NewLikeHandler(likeSvc service.LikeService) *LikeHandler {
	return &LikeHandler{
		likeSvc: likeSvc,
	}
}

func (s *LikeHandler) LikePost(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var req dto.LikeActionDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.likeSvc.LikePost(c.Request.Context(), userID, req.PostID); err != nil {
		response.Error(c, err)
		return
	}

	response.CreatedSuccess(c, nil)
}

func (s *LikeHandler) UnlikePost(c *gin.Context) {
	userID := c.GetUint64("user_id")

	postID, err := strconv.ParseUint(c.Query("post_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.likeSvc.UnlikePost(c.Request.Context(), userID, postID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
