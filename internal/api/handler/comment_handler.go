package handler

import (
	"errors"
	"strconv"

	"foto-go/internal/api/dto"
	"foto-go/internal/api/middleware"
	"foto-go/internal/api/response"
	"foto-go/internal/service"
	"foto-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CommentHandler struct {
	commentService  *service.CommentService
	reactionService *service.ReactionService
	feedService     *service.FeedService
}

func NewCommentHandler(commentService *service.CommentService, reactionService *service.ReactionService, feedService *service.FeedService) *CommentHandler {
	return &CommentHandler{
		commentService:  commentService,
		reactionService: reactionService,
		feedService:     feedService,
	}
}

// Create POST /api/v1/comments/photo/:photo_id
func (h *CommentHandler) Create(c *gin.Context) {
	photoID := c.Param("photo_id")

	var req dto.CommentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	author, _ := middleware.GetCurrentUserName(c)

	info, err := h.commentService.Create(author, photoID, &req)
	if err != nil {
		handleCommentError(c, err)
		return
	}

	response.Created(c, "发表评论成功", info)
}

// ListByPhoto GET /api/v1/comments/photo/:photo_id
func (h *CommentHandler) ListByPhoto(c *gin.Context) {
	photoID := c.Param("photo_id")

	infos, err := h.commentService.ListByPhoto(photoID)
	if err != nil {
		handleCommentError(c, err)
		return
	}

	response.OK(c, "获取评论列表成功", infos)
}

// Tree GET /api/v1/comments/photo/:photo_id/tree
func (h *CommentHandler) Tree(c *gin.Context) {
	photoID := c.Param("photo_id")

	forest, err := h.commentService.Forest(photoID)
	if err != nil {
		handleCommentError(c, err)
		return
	}

	response.OK(c, "获取评论树成功", forest)
}

// Latest GET /api/v1/comments/latest
func (h *CommentHandler) Latest(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(c, "无效的 limit 参数")
			return
		}
		limit = parsed
	}

	infos, err := h.feedService.Latest(c.Request.Context(), limit)
	if err != nil {
		logger.Error("Get latest comments failed", zap.Error(err))
		response.InternalError(c, "获取最新评论失败")
		return
	}

	response.OK(c, "获取最新评论成功", infos)
}

// ToggleReaction POST /api/v1/comments/:id/reactions
// 只返回确认，不回显新状态，客户端按本地翻转结果推导
func (h *CommentHandler) ToggleReaction(c *gin.Context) {
	commentID := c.Param("id")

	var req dto.ReactionToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	if err := h.reactionService.Toggle(commentID, req.Emoji, userID); err != nil {
		handleCommentError(c, err)
		return
	}

	response.OK(c, "切换回应成功", nil)
}

// Delete DELETE /api/v1/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	commentID := c.Param("id")

	userName, _ := middleware.GetCurrentUserName(c)
	role, _ := middleware.GetCurrentUserRole(c)

	if err := h.commentService.Delete(commentID, userName, role); err != nil {
		handleCommentError(c, err)
		return
	}

	response.OK(c, "删除评论成功", nil)
}

func handleCommentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCommentNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrPhotoNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrParentNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrParentPhotoMismatch):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrDeleteNoPermission):
		response.Forbidden(c, err.Error())
	default:
		logger.Error("Comment operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
