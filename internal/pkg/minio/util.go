package minio

import (
	"Lumigram/internal/api/config"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
)

// UploadFile 上传文件到MinIO
func UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	if Client == nil {
		return "", fmt.Errorf("minio client is not initialized")
	}

	uploadInfo, err := Client.PutObject(ctx, Bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return uploadInfo.Key, nil
}

// DeleteFile 删除MinIO中的文件
func DeleteFile(ctx context.Context, objectName string) error {
	if Client == nil {
		return fmt.Errorf("minio client is not initialized")
	}

	err := Client.RemoveObject(ctx, Bucket, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

// StatFile 检查对象是否存在
func StatFile(ctx context.Context, objectName string) (bool, error) {
	if Client == nil {
		return false, fmt.Errorf("minio client is not initialized")
	}

	_, err := Client.StatObject(ctx, Bucket, objectName, minio.StatObjectOptions{})
	if err != nil {
		var respErr minio.ErrorResponse
		if respErr = minio.ToErrorResponse(err); respErr.Code == "NoSuchKey" {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// GetPublicURL 获取文件的公共访问URL
func GetPublicURL(objectName string) string {
	if objectName == "" || config.Cfg == nil {
		return objectName
	}
	cfg := config.Cfg.MinIO

	if cfg.PublicBaseURL != "" {
		return cfg.PublicBaseURL + "/" + objectName
	}
	if cfg.Endpoint == "" {
		return objectName
	}

	protocol := "http"
	if cfg.UseSSL {
		protocol = "https"
	}

	return fmt.Sprintf("%s://%s/%s/%s", protocol, cfg.Endpoint, cfg.Bucket, objectName)
}
