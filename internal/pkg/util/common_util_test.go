package util

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

func TestGetSafeContentType(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("encode png: %v", err)
	}

	reader := bytes.NewReader(buf.Bytes())
	mimeType, err := GetSafeContentType(reader)
	if err != nil {
		t.Fatalf("sniff: %v", err)
	}
	if mimeType != "image/png" {
		t.Errorf("mime = %q, want image/png", mimeType)
	}

	// 游标要回到开头
	if pos, _ := reader.Seek(0, 1); pos != 0 {
		t.Errorf("reader not reset, pos = %d", pos)
	}
}

func TestClampLimit(t *testing.T) {
	cases := []struct {
		in, def, max, want int
	}{
		{0, 10, 100, 10},
		{-5, 10, 100, 10},
		{50, 10, 100, 50},
		{500, 10, 100, 100},
		{100, 10, 100, 100},
	}
	for _, c := range cases {
		if got := ClampLimit(c.in, c.def, c.max); got != c.want {
			t.Errorf("ClampLimit(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestClampOffset(t *testing.T) {
	if got := ClampOffset(-1); got != 0 {
		t.Errorf("ClampOffset(-1) = %d, want 0", got)
	}
	if got := ClampOffset(30); got != 30 {
		t.Errorf("ClampOffset(30) = %d, want 30", got)
	}
}
