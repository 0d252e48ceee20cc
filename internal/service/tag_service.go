package service

import "strings"

type TagService struct {
	tagStore   TagStore
	photoStore PhotoStore
}

func NewTagService(tagStore TagStore, photoStore PhotoStore) *TagService {
	return &TagService{tagStore: tagStore, photoStore: photoStore}
}

// ListAll 返回去重排序后的全部标签，前端自动补全的数据源
func (s *TagService) ListAll() ([]string, error) {
	tags, err := s.tagStore.ListDistinct()
	if err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}

// UpdatePhotoTags 整体替换照片标签，空列表表示清空
func (s *TagService) UpdatePhotoTags(photoID string, tags []string) error {
	exists, err := s.photoStore.Exists(photoID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrPhotoNotFound
	}

	return s.tagStore.ReplaceForPhoto(photoID, normalizeTags(tags))
}

// normalizeTags 去掉首尾空白和空项，保序去重
func normalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	result := make([]string, 0, len(tags))

	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		result = append(result, tag)
	}
	return result
}
