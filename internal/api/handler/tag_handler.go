package handler

import (
	"errors"

	"foto-go/internal/api/dto"
	"foto-go/internal/api/response"
	"foto-go/internal/service"
	"foto-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TagHandler struct {
	tagService *service.TagService
}

func NewTagHandler(tagService *service.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

// List GET /api/v1/tags
func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.tagService.ListAll()
	if err != nil {
		logger.Error("List tags failed", zap.Error(err))
		response.InternalError(c, "获取标签列表失败")
		return
	}

	response.OK(c, "获取标签列表成功", tags)
}

// UpdatePhotoTags PUT /api/v1/photos/:id/tags
func (h *TagHandler) UpdatePhotoTags(c *gin.Context) {
	photoID := c.Param("id")

	var req dto.TagsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}
	if req.Tags == nil {
		response.BadRequest(c, "缺少 tags 字段")
		return
	}

	if err := h.tagService.UpdatePhotoTags(photoID, req.Tags); err != nil {
		if errors.Is(err, service.ErrPhotoNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		logger.Error("Update photo tags failed", zap.Error(err))
		response.InternalError(c, "更新照片标签失败")
		return
	}

	response.OK(c, "更新照片标签成功", nil)
}
