package dto

type MediaUploadDTO struct {
	ImageKey string `json:"image_key"`
	URL      string `json:"url"`
	MimeType string `json:"mime_type"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Size     int64  `json:"size"`
}
