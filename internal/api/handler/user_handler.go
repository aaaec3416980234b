package handler

import (
	"Lumigram/internal/api/dto"
	"Lumigram/internal/pkg/response"
	"Lumigram/internal/pkg/security"
	"Lumigram/internal/service"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{
		userSvc: userSvc,
	}
}

// SyncUser 身份同步：凭证有效即可调用，这是唯一不要求身份已同步的写接口
func (s *UserHandler) SyncUser(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		response.Fail(c, response.Unauthorized, "Token 缺失或格式错误")
		return
	}

	claims, err := security.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		response.Fail(c, response.Unauthorized, "Token 无效或已过期")
		return
	}

	var req dto.UserSyncDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	nickname := strings.TrimSpace(req.Nickname)
	if nickname == "" {
		nickname = claims.Nickname
	}

	user, err := s.userSvc.SyncUser(c.Request.Context(), claims.Subject, nickname, req.AvatarURL)
	if err != nil {
		response.Error(c, err)
		return
	}

	profile, err := s.userSvc.GetProfile(c.Request.Context(), user.ID, user.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, profile)
}

func (s *UserHandler) GetProfile(c *gin.Context) {
	viewerID := c.GetUint64("user_id")

	targetID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	profile, err := s.userSvc.GetProfile(c.Request.Context(), viewerID, targetID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, profile)
}
