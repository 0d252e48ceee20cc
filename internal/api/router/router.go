package router

import (
	"foto-go/internal/api/handler"
	"foto-go/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// Setup 注册所有业务路由
func Setup(
	r *gin.Engine,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	catalogHandler *handler.CatalogHandler,
	tagHandler *handler.TagHandler,
	commentHandler *handler.CommentHandler,
) {
	v1 := r.Group("/api/v1")

	// --- 认证模块 ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)

		authRequired := auth.Group("", middleware.AuthRequired())
		{
			authRequired.GET("/me", authHandler.Me)
		}
	}

	// --- 用户模块（管理员） ---
	users := v1.Group("/users", middleware.AuthRequired(), middleware.AdminRequired())
	{
		users.GET("", userHandler.List)
		users.PUT("/:id/status", userHandler.UpdateStatus)
		users.PUT("/:id/category", userHandler.UpdateCategory)
	}

	// --- 相册与照片模块 ---
	albums := v1.Group("/albums", middleware.AuthRequired())
	{
		albums.GET("", catalogHandler.ListAlbums)
		albums.GET("/:id", catalogHandler.GetAlbum)
		albums.GET("/:id/photos", catalogHandler.ListPhotos)

		// 管理员接口
		admin := albums.Group("", middleware.AdminRequired())
		{
			admin.POST("/index", catalogHandler.Index)
		}
	}

	photos := v1.Group("/photos", middleware.AuthRequired())
	{
		photos.GET("/:id", catalogHandler.GetPhoto)
		photos.PUT("/:id/tags", tagHandler.UpdatePhotoTags)
	}

	// --- 标签模块 ---
	tags := v1.Group("/tags", middleware.AuthRequired())
	{
		tags.GET("", tagHandler.List)
	}

	// --- 评论模块 ---
	comments := v1.Group("/comments", middleware.AuthRequired())
	{
		comments.GET("/latest", commentHandler.Latest)
		comments.GET("/photo/:photo_id", commentHandler.ListByPhoto)
		comments.GET("/photo/:photo_id/tree", commentHandler.Tree)
		comments.POST("/photo/:photo_id", commentHandler.Create)
		comments.POST("/:id/reactions", commentHandler.ToggleReaction)
		comments.DELETE("/:id", commentHandler.Delete)
	}
}
