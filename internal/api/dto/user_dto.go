package dto

// UserStatusRequest 封禁/解封请求
type UserStatusRequest struct {
	IsBlocked *bool `json:"is_blocked" binding:"required"`
}

// UserCategoryRequest 用户分类修改请求
type UserCategoryRequest struct {
	Category string `json:"category" binding:"required,oneof=family friend other"`
}
