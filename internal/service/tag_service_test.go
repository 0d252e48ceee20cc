package service

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTagStore 内存版标签存储
type fakeTagStore struct {
	byPhoto map[string][]string
}

func newFakeTagStore() *fakeTagStore {
	return &fakeTagStore{byPhoto: map[string][]string{}}
}

func (s *fakeTagStore) ListByPhoto(photoID string) ([]string, error) {
	return s.byPhoto[photoID], nil
}

func (s *fakeTagStore) ListByPhotos(photoIDs []string) (map[string][]string, error) {
	out := map[string][]string{}
	for _, id := range photoIDs {
		if tags, ok := s.byPhoto[id]; ok {
			out[id] = tags
		}
	}
	return out, nil
}

func (s *fakeTagStore) ListDistinct() ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, tags := range s.byPhoto {
		for _, tag := range tags {
			if !seen[tag] {
				seen[tag] = true
				out = append(out, tag)
			}
		}
	}
	sort.Strings(out)
	return out, nil
}

func (s *fakeTagStore) ReplaceForPhoto(photoID string, tags []string) error {
	s.byPhoto[photoID] = tags
	return nil
}

func TestUpdatePhotoTags(t *testing.T) {
	store := newMemStore()
	store.addPhoto("p1")
	tagStore := newFakeTagStore()
	svc := NewTagService(tagStore, photoAdapter{store})

	err := svc.UpdatePhotoTags("p1", []string{" beach ", "sunset", "beach", "", "sunset"})
	require.NoError(t, err)

	// 去空白、去空项、保序去重
	assert.Equal(t, []string{"beach", "sunset"}, tagStore.byPhoto["p1"])
}

func TestUpdatePhotoTagsClears(t *testing.T) {
	store := newMemStore()
	store.addPhoto("p1")
	tagStore := newFakeTagStore()
	tagStore.byPhoto["p1"] = []string{"old"}
	svc := NewTagService(tagStore, photoAdapter{store})

	require.NoError(t, svc.UpdatePhotoTags("p1", []string{}))
	assert.Empty(t, tagStore.byPhoto["p1"])
}

func TestUpdatePhotoTagsPhotoNotFound(t *testing.T) {
	store := newMemStore()
	svc := NewTagService(newFakeTagStore(), photoAdapter{store})

	err := svc.UpdatePhotoTags("missing", []string{"beach"})
	assert.ErrorIs(t, err, ErrPhotoNotFound)
}

func TestListAllTags(t *testing.T) {
	tagStore := newFakeTagStore()
	tagStore.byPhoto["p1"] = []string{"sunset", "beach"}
	tagStore.byPhoto["p2"] = []string{"beach", "family"}
	svc := NewTagService(tagStore, photoAdapter{newMemStore()})

	tags, err := svc.ListAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"beach", "family", "sunset"}, tags)
}

func TestListAllTagsEmpty(t *testing.T) {
	svc := NewTagService(newFakeTagStore(), photoAdapter{newMemStore()})

	tags, err := svc.ListAll()
	require.NoError(t, err)
	assert.NotNil(t, tags)
	assert.Empty(t, tags)
}
