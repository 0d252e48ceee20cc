package dto

import "time"

// AlbumInfo 相册信息
type AlbumInfo struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Cover *string `json:"cover"`
}

// PhotoInfo 照片信息
type PhotoInfo struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	AlbumID   string    `json:"album_id"`
	CreatedAt time.Time `json:"created_at"`
	Tags      []string  `json:"tags"`
}

// IndexResult 对象存储索引结果
type IndexResult struct {
	Processed int      `json:"processed"`
	Albums    []string `json:"albums"`
}

// TagsUpdateRequest 照片标签整体替换请求
// Tags 为 nil 表示请求体缺字段，空切片表示清空标签
type TagsUpdateRequest struct {
	Tags []string `json:"tags"`
}
