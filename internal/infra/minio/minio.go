package minio

import (
	"context"
	"fmt"
	"strings"
	"time"

	"foto-go/internal/config"
	"foto-go/pkg/logger"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

var client *minio.Client

// PhotoObject 照片桶中的一个对象
type PhotoObject struct {
	Key          string
	LastModified time.Time
}

// Init 初始化 MinIO 客户端并确保照片 Bucket 存在
func Init(cfg *config.MinIOConfig) error {
	var err error
	client, err = minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return fmt.Errorf("failed to create minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.PhotoBucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", cfg.PhotoBucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.PhotoBucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", cfg.PhotoBucket, err)
		}
		logger.Info("MinIO bucket created", zap.String("bucket", cfg.PhotoBucket))
	}

	// 照片桶公开读，前端直接加载图片
	policy := fmt.Sprintf(`{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"AWS":["*"]},"Action":["s3:GetObject"],"Resource":["arn:aws:s3:::%s/*"]}]}`, cfg.PhotoBucket)
	if err := client.SetBucketPolicy(ctx, cfg.PhotoBucket, policy); err != nil {
		return fmt.Errorf("failed to set public policy for %s: %w", cfg.PhotoBucket, err)
	}

	logger.Info("MinIO connected",
		zap.String("endpoint", cfg.Endpoint),
		zap.String("bucket", cfg.PhotoBucket),
	)

	return nil
}

// Get 获取 MinIO 客户端实例
func Get() *minio.Client {
	return client
}

// Scanner 把包级列举函数包成可注入的对象
type Scanner struct{}

func (Scanner) ListAlbumDirs(ctx context.Context, bucket string) ([]string, error) {
	return ListAlbumDirs(ctx, bucket)
}

func (Scanner) ListAlbumObjects(ctx context.Context, bucket, albumDir string) ([]PhotoObject, error) {
	return ListAlbumObjects(ctx, bucket, albumDir)
}

// ListAlbumDirs 列出照片桶的一级目录前缀（即相册目录名，不含斜杠）
func ListAlbumDirs(ctx context.Context, bucket string) ([]string, error) {
	var dirs []string

	for obj := range client.ListObjects(ctx, bucket, minio.ListObjectsOptions{}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list bucket %s: %w", bucket, obj.Err)
		}
		// 非递归列举时目录以斜杠结尾返回
		if strings.HasSuffix(obj.Key, "/") {
			dirs = append(dirs, strings.TrimSuffix(obj.Key, "/"))
		}
	}

	return dirs, nil
}

// ListAlbumObjects 列出某个相册目录下的全部对象
func ListAlbumObjects(ctx context.Context, bucket, albumDir string) ([]PhotoObject, error) {
	var objects []PhotoObject

	opts := minio.ListObjectsOptions{
		Prefix:    albumDir + "/",
		Recursive: true,
	}
	for obj := range client.ListObjects(ctx, bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list album %s: %w", albumDir, obj.Err)
		}
		objects = append(objects, PhotoObject{
			Key:          obj.Key,
			LastModified: obj.LastModified,
		})
	}

	return objects, nil
}
