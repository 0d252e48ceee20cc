package service

import (
	"context"
	"errors"
	"path"
	"regexp"
	"strings"

	"foto-go/internal/api/dto"
	infraMinio "foto-go/internal/infra/minio"
	"foto-go/internal/model"

	"gorm.io/gorm"
)

var ErrAlbumNotFound = errors.New("相册不存在")

// 相册目录名白名单，不匹配的目录在索引时跳过
var albumDirPattern = regexp.MustCompile(`^[a-zA-Z0-9_\- ]+$`)

// 识别为照片的扩展名
var photoExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".jxl":  true,
}

// ObjectScanner 对象存储列举能力，索引时注入
type ObjectScanner interface {
	ListAlbumDirs(ctx context.Context, bucket string) ([]string, error)
	ListAlbumObjects(ctx context.Context, bucket, albumDir string) ([]infraMinio.PhotoObject, error)
}

type CatalogService struct {
	albumStore AlbumStore
	photoStore PhotoStore
	tagStore   TagStore
	scanner    ObjectScanner
	bucket     string
}

func NewCatalogService(albumStore AlbumStore, photoStore PhotoStore, tagStore TagStore, scanner ObjectScanner, bucket string) *CatalogService {
	return &CatalogService{
		albumStore: albumStore,
		photoStore: photoStore,
		tagStore:   tagStore,
		scanner:    scanner,
		bucket:     bucket,
	}
}

// ListAlbums 返回全部相册
func (s *CatalogService) ListAlbums() ([]dto.AlbumInfo, error) {
	albums, err := s.albumStore.List()
	if err != nil {
		return nil, err
	}

	infos := make([]dto.AlbumInfo, 0, len(albums))
	for i := range albums {
		infos = append(infos, s.toAlbumInfo(&albums[i]))
	}
	return infos, nil
}

// GetAlbum 返回单个相册
func (s *CatalogService) GetAlbum(id string) (*dto.AlbumInfo, error) {
	album, err := s.albumStore.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAlbumNotFound
		}
		return nil, err
	}

	info := s.toAlbumInfo(album)
	return &info, nil
}

// ListPhotos 返回相册下的照片列表，每张带标签
func (s *CatalogService) ListPhotos(albumID string) ([]dto.PhotoInfo, error) {
	if _, err := s.albumStore.GetByID(albumID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAlbumNotFound
		}
		return nil, err
	}

	photos, err := s.photoStore.ListByAlbum(albumID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(photos))
	for i := range photos {
		ids = append(ids, photos[i].ID)
	}

	tagsByPhoto, err := s.tagStore.ListByPhotos(ids)
	if err != nil {
		return nil, err
	}

	infos := make([]dto.PhotoInfo, 0, len(photos))
	for i := range photos {
		infos = append(infos, s.toPhotoInfo(&photos[i], tagsByPhoto[photos[i].ID]))
	}
	return infos, nil
}

// GetPhoto 返回照片详情
func (s *CatalogService) GetPhoto(id string) (*dto.PhotoInfo, error) {
	photo, err := s.photoStore.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPhotoNotFound
		}
		return nil, err
	}

	tags, err := s.tagStore.ListByPhoto(id)
	if err != nil {
		return nil, err
	}

	info := s.toPhotoInfo(photo, tags)
	return &info, nil
}

// Index 扫描对象存储并同步到数据库
// 一级目录是相册，目录下的图片对象是照片；已入库的对象跳过，
// 新相册没有封面时用目录下第一个对象补上
func (s *CatalogService) Index(ctx context.Context) (*dto.IndexResult, error) {
	dirs, err := s.scanner.ListAlbumDirs(ctx, s.bucket)
	if err != nil {
		return nil, err
	}

	result := &dto.IndexResult{Albums: []string{}}

	for _, dir := range dirs {
		if !albumDirPattern.MatchString(dir) {
			continue
		}

		album, err := s.findOrCreateAlbum(dir)
		if err != nil {
			return nil, err
		}

		objects, err := s.scanner.ListAlbumObjects(ctx, s.bucket, dir)
		if err != nil {
			return nil, err
		}

		known, err := s.photoStore.ListPathsByAlbum(album.ID)
		if err != nil {
			return nil, err
		}
		knownSet := make(map[string]bool, len(known))
		for _, p := range known {
			knownSet[p] = true
		}

		var firstPhoto string
		for _, obj := range objects {
			if !photoExtensions[strings.ToLower(path.Ext(obj.Key))] {
				continue
			}
			if firstPhoto == "" {
				firstPhoto = obj.Key
			}
			if knownSet[obj.Key] {
				continue
			}

			photo := &model.Photo{
				Path:      obj.Key,
				AlbumID:   album.ID,
				CreatedAt: obj.LastModified,
			}
			if err := s.photoStore.Create(photo); err != nil {
				return nil, err
			}
		}

		if firstPhoto != "" {
			if err := s.albumStore.SetCoverIfEmpty(album.ID, firstPhoto); err != nil {
				return nil, err
			}
		}

		result.Processed++
		result.Albums = append(result.Albums, dir)
	}

	return result, nil
}

func (s *CatalogService) findOrCreateAlbum(name string) (*model.Album, error) {
	album, err := s.albumStore.GetByName(name)
	if err == nil {
		return album, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	album = &model.Album{Name: name}
	if err := s.albumStore.Create(album); err != nil {
		return nil, err
	}
	return album, nil
}

// objectURL 拼出对象的公开访问路径，照片桶是公开读的
func (s *CatalogService) objectURL(objectKey string) string {
	return "/" + s.bucket + "/" + objectKey
}

func (s *CatalogService) toAlbumInfo(a *model.Album) dto.AlbumInfo {
	info := dto.AlbumInfo{ID: a.ID, Name: a.Name}
	if a.CoverPath != nil {
		cover := s.objectURL(*a.CoverPath)
		info.Cover = &cover
	}
	return info
}

func (s *CatalogService) toPhotoInfo(p *model.Photo, tags []string) dto.PhotoInfo {
	if tags == nil {
		tags = []string{}
	}
	return dto.PhotoInfo{
		ID:        p.ID,
		URL:       s.objectURL(p.Path),
		AlbumID:   p.AlbumID,
		CreatedAt: p.CreatedAt,
		Tags:      tags,
	}
}
