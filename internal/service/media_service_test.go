package service

import (
	"context"
	"errors"
	"testing"
)

func TestConsumeImageKeyRequired(t *testing.T) {
	newTestEnv(t)
	mediaSvc := NewMediaService()

	err := mediaSvc.ConsumeImageKey(context.Background(), "")
	if !errors.Is(err, ErrImageRequired) {
		t.Fatalf("expected ErrImageRequired, got %v", err)
	}
}

func TestConsumeImageKeyWithoutObjectStore(t *testing.T) {
	newTestEnv(t)
	mediaSvc := NewMediaService()

	// 对象存储未配置时跳过存在性校验
	if err := mediaSvc.ConsumeImageKey(context.Background(), "2026/01/01/a.jpg"); err != nil {
		t.Fatalf("consume without minio: %v", err)
	}
}
