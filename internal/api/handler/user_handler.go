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

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List GET /api/v1/users
func (h *UserHandler) List(c *gin.Context) {
	infos, err := h.userService.List()
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.OK(c, "获取用户列表成功", infos)
}

// UpdateStatus PUT /api/v1/users/:id/status
func (h *UserHandler) UpdateStatus(c *gin.Context) {
	userID := c.Param("id")

	var req dto.UserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	if err := h.userService.SetBlocked(userID, *req.IsBlocked); err != nil {
		handleUserError(c, err)
		return
	}

	response.OK(c, "更新用户状态成功", nil)
}

// UpdateCategory PUT /api/v1/users/:id/category
func (h *UserHandler) UpdateCategory(c *gin.Context) {
	userID := c.Param("id")

	var req dto.UserCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	if err := h.userService.SetCategory(userID, req.Category); err != nil {
		handleUserError(c, err)
		return
	}

	response.OK(c, "更新用户分类成功", nil)
}

func handleUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error("User operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
