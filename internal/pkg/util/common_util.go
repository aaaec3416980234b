package util

import (
	"io"
	"net/http"
)

// GetSafeContentType 基于文件头嗅探真实类型，不信任客户端声明
func GetSafeContentType(reader io.ReadSeeker) (string, error) {
	buf := make([]byte, 512)
	n, err := reader.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}
	if _, err = reader.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return http.DetectContentType(buf[:n]), nil
}

// ClampLimit 分页大小收敛到 [1, max]，非法值回退 def
func ClampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

// ClampOffset 偏移量收敛到非负
func ClampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}

// PtrString 用于将 string 转换为 *string
func PtrString(s string) *string {
	return &s
}
