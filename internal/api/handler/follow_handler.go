package handler

import (
	"Lumigram/internal/api/dto"
	"Lumigram/internal/pkg/response"
	"Lumigram/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct {
	followSvc service.FollowService
}

func NewFollowHandler(followSvc service.FollowService) *FollowHandler {
	return &FollowHandler{
		followSvc: followSvc,
	}
}

func (s *FollowHandler) Follow(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var req dto.FollowActionDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.followSvc.Follow(c.Request.Context(), userID, req.FollowingID); err != nil {
		response.Error(c, err)
		return
	}

	response.CreatedSuccess(c, nil)
}

func (s *FollowHandler) Unfollow(c *gin.Context) {
	userID := c.GetUint64("user_id")

	followingID, err := strconv.ParseUint(c.Query("following_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.followSvc.Unfollow(c.Request.Context(), userID, followingID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

func (s *FollowHandler) FollowStatus(c *gin.Context) {
	userID := c.GetUint64("user_id")

	followingID, err := strconv.ParseUint(c.Query("following_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	following, err := s.followSvc.IsFollowing(c.Request.Context(), userID, followingID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.FollowStatusDTO{IsFollowing: following})
}
