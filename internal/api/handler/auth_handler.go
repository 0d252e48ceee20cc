package handler

import (
	"errors"

	"foto-go/internal/api/dto"
	"foto-go/internal/api/middleware"
	"foto-go/internal/api/response"
	"foto-go/internal/service"
	"foto-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	data, err := h.authService.Login(&req)
	if err != nil {
		handleAuthError(c, err)
		return
	}

	response.OK(c, "登录成功", data)
}

// Me GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "缺少认证信息")
		return
	}

	info, err := h.authService.GetCurrentUser(userID)
	if err != nil {
		handleAuthError(c, err)
		return
	}

	response.OK(c, "获取当前用户成功", info)
}

func handleAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredential):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, service.ErrUserBlocked):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error("Auth operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
