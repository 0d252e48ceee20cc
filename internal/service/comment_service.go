package service

import (
	"errors"
	"time"

	"foto-go/internal/api/dto"
	"foto-go/internal/infra/kafka"
	"foto-go/internal/model"

	"gorm.io/gorm"
)

var (
	ErrPhotoNotFound       = errors.New("照片不存在")
	ErrCommentNotFound     = errors.New("评论不存在")
	ErrParentNotFound      = errors.New("父评论不存在")
	ErrParentPhotoMismatch = errors.New("父评论不属于该照片")
	ErrDeleteNoPermission  = errors.New("没有权限删除该评论")
)

type CommentService struct {
	commentStore  CommentStore
	reactionStore ReactionStore
	photoStore    PhotoStore
	publish       ActivityPublisher
}

func NewCommentService(commentStore CommentStore, reactionStore ReactionStore, photoStore PhotoStore, publish ActivityPublisher) *CommentService {
	return &CommentService{
		commentStore:  commentStore,
		reactionStore: reactionStore,
		photoStore:    photoStore,
		publish:       publish,
	}
}

// Create 发表评论
// author 是发表时的显示名快照，createdAt 由服务端指定
func (s *CommentService) Create(author, photoID string, req *dto.CommentCreateRequest) (*dto.CommentInfo, error) {
	exists, err := s.photoStore.Exists(photoID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrPhotoNotFound
	}

	if req.ParentID != nil {
		parent, err := s.commentStore.GetByID(*req.ParentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrParentNotFound
			}
			return nil, err
		}
		if parent.PhotoID != photoID {
			return nil, ErrParentPhotoMismatch
		}
	}

	comment := &model.Comment{
		PhotoID:   photoID,
		Author:    author,
		Text:      req.Text,
		ParentID:  req.ParentID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.commentStore.Create(comment); err != nil {
		return nil, err
	}

	publishBestEffort(s.publish, &kafka.CommentActivity{
		Type:      kafka.ActivityPosted,
		CommentID: comment.ID,
		PhotoID:   photoID,
	})

	info := toCommentInfo(comment, nil)
	return &info, nil
}

// ListByPhoto 返回照片下的全部评论，时间正序，带完整回应集合
func (s *CommentService) ListByPhoto(photoID string) ([]dto.CommentInfo, error) {
	comments, err := s.commentStore.ListByPhoto(photoID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(comments))
	for i := range comments {
		ids = append(ids, comments[i].ID)
	}

	reactions, err := s.reactionStore.ListByComments(ids)
	if err != nil {
		return nil, err
	}

	return assembleCommentInfos(comments, reactions), nil
}

// Forest 返回照片的评论树
func (s *CommentService) Forest(photoID string) ([]*dto.CommentNode, error) {
	comments, err := s.ListByPhoto(photoID)
	if err != nil {
		return nil, err
	}
	return BuildForest(comments), nil
}

// Delete 级联删除评论：目标评论与其全部层级回复作为一个原子单元删除
// 权限：管理员或评论作者本人
func (s *CommentService) Delete(commentID, userName, role string) error {
	comment, err := s.commentStore.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}

	if role != "admin" && comment.Author != userName {
		return ErrDeleteNoPermission
	}

	closure, err := s.deleteClosure(commentID)
	if err != nil {
		return err
	}

	if err := s.commentStore.DeleteCascade(closure); err != nil {
		return err
	}

	publishBestEffort(s.publish, &kafka.CommentActivity{
		Type:      kafka.ActivityDeleted,
		CommentID: commentID,
		PhotoID:   comment.PhotoID,
		Deleted:   len(closure),
	})

	return nil
}

// deleteClosure 广度优先展开回复闭包
// 数据写入端不保证无环，这里靠 visited 集合兜底终止
func (s *CommentService) deleteClosure(commentID string) ([]string, error) {
	visited := map[string]bool{commentID: true}
	closure := []string{commentID}
	frontier := []string{commentID}

	for len(frontier) > 0 {
		children, err := s.commentStore.ListChildIDs(frontier)
		if err != nil {
			return nil, err
		}

		frontier = frontier[:0]
		for _, id := range children {
			if visited[id] {
				continue
			}
			visited[id] = true
			closure = append(closure, id)
			frontier = append(frontier, id)
		}
	}

	return closure, nil
}

// BuildForest 把按时间正序的平铺评论列表组装成评论树
// 两趟扫描：先按 ID 建索引，再挂接父子关系，兄弟节点保持输入顺序；
// 父评论不在输入集合里的评论按根评论处理（父被并发删除时的可见策略）
func BuildForest(comments []dto.CommentInfo) []*dto.CommentNode {
	index := make(map[string]*dto.CommentNode, len(comments))
	nodes := make([]*dto.CommentNode, 0, len(comments))

	for i := range comments {
		node := &dto.CommentNode{CommentInfo: comments[i], Replies: []*dto.CommentNode{}}
		index[comments[i].ID] = node
		nodes = append(nodes, node)
	}

	roots := make([]*dto.CommentNode, 0, len(nodes))
	for _, node := range nodes {
		if node.ParentID != nil {
			if parent, ok := index[*node.ParentID]; ok {
				parent.Replies = append(parent.Replies, node)
				continue
			}
		}
		roots = append(roots, node)
	}

	return roots
}

// assembleCommentInfos 把评论与回应行聚合成带 reactions 映射的信息列表
func assembleCommentInfos(comments []model.Comment, reactions []model.CommentReaction) []dto.CommentInfo {
	byComment := make(map[string][]model.CommentReaction, len(comments))
	for _, reaction := range reactions {
		byComment[reaction.CommentID] = append(byComment[reaction.CommentID], reaction)
	}

	infos := make([]dto.CommentInfo, 0, len(comments))
	for i := range comments {
		infos = append(infos, toCommentInfo(&comments[i], byComment[comments[i].ID]))
	}
	return infos
}

func toCommentInfo(c *model.Comment, reactions []model.CommentReaction) dto.CommentInfo {
	reactionMap := make(map[string][]string)
	for _, reaction := range reactions {
		reactionMap[reaction.Emoji] = append(reactionMap[reaction.Emoji], reaction.UserID)
	}

	return dto.CommentInfo{
		ID:        c.ID,
		PhotoID:   c.PhotoID,
		Author:    c.Author,
		Text:      c.Text,
		ParentID:  c.ParentID,
		CreatedAt: c.CreatedAt,
		Reactions: reactionMap,
	}
}
