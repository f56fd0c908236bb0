package contracts

import (
	"context"
	"time"
)

type StorageService interface {
	PutObject(ctx context.Context, bucketName, objectKey string, content []byte, contentType string) error
	GetObject(ctx context.Context, bucketName, objectKey string) ([]byte, error)
	GetObjectPresignedURL(ctx context.Context, bucketName, objectKey, fileName string, expiry time.Duration) (string, error)
}
