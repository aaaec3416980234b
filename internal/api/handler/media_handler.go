package handler

import (
	"Lumigram/internal/pkg/response"
	"Lumigram/internal/service"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	mediaSvc service.MediaService
}

func NewMediaHandler(mediaSvc service.MediaService) *MediaHandler {
	return &MediaHandler{
		mediaSvc: mediaSvc,
	}
}

func (s *MediaHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrImageRequired)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close()

	result, err := s.mediaSvc.Upload(c.Request.Context(), file, fileHeader)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.CreatedSuccess(c, result)
}
