package middleware

import (
	"strings"

	"foto-go/internal/api/response"
	"foto-go/pkg/utils"

	"github.com/gin-gonic/gin"
)

const (
	ContextKeyUserID   = "currentUserID"
	ContextKeyUserName = "currentUserName"
	ContextKeyUserRole = "currentUserRole"
)

// AuthRequired JWT 认证中间件，要求请求必须携带有效 Token
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Unauthorized(c, "缺少认证令牌")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(token)
		if err != nil {
			response.Unauthorized(c, "无效或过期的认证令牌")
			c.Abort()
			return
		}

		// 用户身份存入上下文，后续 Handler 直接读取
		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyUserName, claims.UserName)
		c.Set(ContextKeyUserRole, claims.Role)
		c.Next()
	}
}

// GetCurrentUserID 从 Gin Context 中获取当前登录用户 ID
func GetCurrentUserID(c *gin.Context) (string, bool) {
	val, exists := c.Get(ContextKeyUserID)
	if !exists {
		return "", false
	}
	userID, ok := val.(string)
	return userID, ok
}

// GetCurrentUserName 从 Gin Context 中获取当前登录用户显示名
func GetCurrentUserName(c *gin.Context) (string, bool) {
	val, exists := c.Get(ContextKeyUserName)
	if !exists {
		return "", false
	}
	name, ok := val.(string)
	return name, ok
}

// GetCurrentUserRole 从 Gin Context 中获取当前登录用户角色
func GetCurrentUserRole(c *gin.Context) (string, bool) {
	val, exists := c.Get(ContextKeyUserRole)
	if !exists {
		return "", false
	}
	role, ok := val.(string)
	return role, ok
}

// AdminRequired 管理员权限中间件（必须在 AuthRequired 之后使用）
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetCurrentUserRole(c)
		if !ok {
			response.Unauthorized(c, "缺少认证信息")
			c.Abort()
			return
		}

		if role != "admin" {
			response.Forbidden(c, "需要管理员权限")
			c.Abort()
			return
		}

		c.Next()
	}
}

// extractToken 从 Authorization 头中提取 Bearer Token
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
