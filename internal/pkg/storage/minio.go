package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/fieldops/towtrack/internal/pkg/models"
)

// ObjectStorage uploads completion photos and returns their public URLs
type ObjectStorage interface {
	UploadPhoto(ctx context.Context, objectName string, photo models.Photo) (string, error)
}

// MinioStorage is an ObjectStorage backed by a MinIO/S3 bucket
type MinioStorage struct {
	client *minio.Client
	bucket string
}

// NewMinioStorage creates the storage client and ensures the bucket exists
func NewMinioStorage(cfg models.StorageConfig) (*MinioStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.Bucket, err)
		}
	}

	return &MinioStorage{client: client, bucket: cfg.Bucket}, nil
}

// UploadPhoto stores the photo and returns its object URL
func (s *MinioStorage) UploadPhoto(ctx context.Context, objectName string, photo models.Photo) (string, error) {
	reader := bytes.NewReader(photo.Data)

	_, err := s.client.PutObject(ctx, s.bucket, objectName, reader, int64(len(photo.Data)), minio.PutObjectOptions{
		ContentType: photo.ContentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload photo: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", s.client.EndpointURL().String(), s.bucket, objectName), nil
}
