package handler

import (
	"errors"

	"foto-go/internal/api/response"
	"foto-go/internal/service"
	"foto-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	catalogService *service.CatalogService
}

func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListAlbums GET /api/v1/albums
func (h *CatalogHandler) ListAlbums(c *gin.Context) {
	infos, err := h.catalogService.ListAlbums()
	if err != nil {
		handleCatalogError(c, err)
		return
	}

	response.OK(c, "获取相册列表成功", infos)
}

// GetAlbum GET /api/v1/albums/:id
func (h *CatalogHandler) GetAlbum(c *gin.Context) {
	info, err := h.catalogService.GetAlbum(c.Param("id"))
	if err != nil {
		handleCatalogError(c, err)
		return
	}

	response.OK(c, "获取相册成功", info)
}

// ListPhotos GET /api/v1/albums/:id/photos
func (h *CatalogHandler) ListPhotos(c *gin.Context) {
	infos, err := h.catalogService.ListPhotos(c.Param("id"))
	if err != nil {
		handleCatalogError(c, err)
		return
	}

	response.OK(c, "获取照片列表成功", infos)
}

// GetPhoto GET /api/v1/photos/:id
func (h *CatalogHandler) GetPhoto(c *gin.Context) {
	info, err := h.catalogService.GetPhoto(c.Param("id"))
	if err != nil {
		handleCatalogError(c, err)
		return
	}

	response.OK(c, "获取照片成功", info)
}

// Index POST /api/v1/albums/index
// 扫描对象存储，把新相册和新照片同步进数据库
func (h *CatalogHandler) Index(c *gin.Context) {
	result, err := h.catalogService.Index(c.Request.Context())
	if err != nil {
		handleCatalogError(c, err)
		return
	}

	response.OK(c, "索引完成", result)
}

func handleCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAlbumNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrPhotoNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error("Catalog operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
