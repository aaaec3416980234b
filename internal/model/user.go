package model

import (
	"time"
)

// User 内部用户，行由外部身份同步创建
type User struct {
	ID        uint64 `gorm:"primaryKey"`
	Subject   string `gorm:"type:varchar(64);not null;uniqueIndex:idx_subject" json:"subject"` // 身份提供方的外部唯一标识
	Nickname  string `gorm:"type:varchar(50);not null" json:"nickname"`
	AvatarURL string `gorm:"type:varchar(512)" json:"avatar_url"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}
