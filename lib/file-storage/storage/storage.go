package objectstorage

import (
	"bytes"
	"context"
	"io"

	"github.com/minio/minio-go/v7"

	"workorbit-backend/config"
)

type Provider interface {
	UploadFile(ctx context.Context, objectKey, contentType string, file []byte) error
	GetFile(ctx context.Context, objectKey string) ([]byte, error)
}

func NewInstance(s3client *minio.Client) Provider {
	return &impl{
		s3client: s3client,
	}
}

type impl struct {
	s3client *minio.Client
}

func (i impl) UploadFile(ctx context.Context, objectKey, contentType string, file []byte) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := i.s3client.PutObject(ctx, config.Conf.S3.BucketName, objectKey,
		bytes.NewReader(file), int64(len(file)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return err
	}
	return nil
}

func (i impl) GetFile(ctx context.Context, objectKey string) ([]byte, error) {
	object, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer object.Close()
	return io.ReadAll(object)
}
