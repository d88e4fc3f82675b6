package contracts

import "context"

type Storage interface {
	UploadImage(ctx context.Context, data []byte, bucketName, objectName, contentType string) (string, error)
	DeleteObject(ctx context.Context, bucketName, objectName string) error
}
