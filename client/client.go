// Package client 提供访问 foto-go API 的 Go 客户端，
// 并带有最新评论轮询器和乐观更新协调器。
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"foto-go/internal/api/dto"
)

// APIError 服务端返回的业务错误
type APIError struct {
	StatusCode int
	Type       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Type, e.Message)
}

// IsNotFound 判断是否为 404 业务错误
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

// Client foto-go API 客户端
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// New 创建客户端，baseURL 形如 http://127.0.0.1:8000
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken 设置后续请求携带的 Bearer Token
func (c *Client) SetToken(token string) {
	c.token = token
}

// Login 登录并保存返回的 Token
func (c *Client) Login(ctx context.Context, name, password string) (*dto.TokenData, error) {
	req := dto.LoginRequest{Name: name, Password: password}

	var data dto.TokenData
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", req, &data); err != nil {
		return nil, err
	}

	c.token = data.Token
	return &data, nil
}

// Me 获取当前登录用户信息
func (c *Client) Me(ctx context.Context) (*dto.UserInfo, error) {
	var info dto.UserInfo
	if err := c.do(ctx, http.MethodGet, "/api/v1/auth/me", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// ListComments 获取照片的平铺评论列表
func (c *Client) ListComments(ctx context.Context, photoID string) ([]dto.CommentInfo, error) {
	var infos []dto.CommentInfo
	if err := c.do(ctx, http.MethodGet, "/api/v1/comments/photo/"+photoID, nil, &infos); err != nil {
		return nil, err
	}
	return infos, nil
}

// CommentTree 获取照片的评论树
func (c *Client) CommentTree(ctx context.Context, photoID string) ([]*dto.CommentNode, error) {
	var forest []*dto.CommentNode
	if err := c.do(ctx, http.MethodGet, "/api/v1/comments/photo/"+photoID+"/tree", nil, &forest); err != nil {
		return nil, err
	}
	return forest, nil
}

// LatestComments 获取全站最新评论，limit 传 0 使用服务端默认值
func (c *Client) LatestComments(ctx context.Context, limit int) ([]dto.CommentInfo, error) {
	path := "/api/v1/comments/latest"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var infos []dto.CommentInfo
	if err := c.do(ctx, http.MethodGet, path, nil, &infos); err != nil {
		return nil, err
	}
	return infos, nil
}

// PostComment 发表评论，parentID 传 nil 表示顶层评论
func (c *Client) PostComment(ctx context.Context, photoID, text string, parentID *string) (*dto.CommentInfo, error) {
	req := dto.CommentCreateRequest{Text: text, ParentID: parentID}

	var info dto.CommentInfo
	if err := c.do(ctx, http.MethodPost, "/api/v1/comments/photo/"+photoID, req, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// ToggleReaction 切换表情回应
func (c *Client) ToggleReaction(ctx context.Context, commentID, emoji string) error {
	req := dto.ReactionToggleRequest{Emoji: emoji}
	return c.do(ctx, http.MethodPost, "/api/v1/comments/"+commentID+"/reactions", req, nil)
}

// DeleteComment 删除评论及其整棵回复子树
func (c *Client) DeleteComment(ctx context.Context, commentID string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/comments/"+commentID, nil, nil)
}

// UpdatePhotoTags 整体替换照片标签
func (c *Client) UpdatePhotoTags(ctx context.Context, photoID string, tags []string) error {
	if tags == nil {
		tags = []string{}
	}
	req := dto.TagsUpdateRequest{Tags: tags}
	return c.do(ctx, http.MethodPut, "/api/v1/photos/"+photoID+"/tags", req, nil)
}

// envelope 服务端统一响应信封
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// do 发送请求并把信封里的 data 解码到 out，out 传 nil 表示丢弃
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("failed to decode response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if env.Error != nil {
			apiErr.Type = env.Error.Type
			apiErr.Message = env.Error.Message
		}
		return apiErr
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode data: %w", err)
		}
	}

	return nil
}
