package database

import (
	"Lumigram/internal/api/config"
	"Lumigram/internal/model"
	"Lumigram/internal/pkg/logger"
	"fmt"
	log "log/slog"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewGormDB 初始化并返回 *gorm.DB 实例，处理连接池配置
// DSN 前缀决定驱动：sqlite:// 走内嵌 sqlite，其余按 mysql 处理
func NewGormDB(cfg *config.DBConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector

	isSqlite := strings.HasPrefix(cfg.DSN, "sqlite://")
	if isSqlite {
		dialector = sqlite.Open(strings.TrimPrefix(cfg.DSN, "sqlite://"))
	} else {
		dialector = mysql.Open(strings.TrimPrefix(cfg.DSN, "mysql://"))
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.NewGormLogger(),
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}

	if isSqlite {
		// sqlite 单写者，多连接会破坏 :memory: 库
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(cfg.MaxIdle)
		sqlDB.SetMaxOpenConns(cfg.MaxOpen)
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Minute)
	}

	if err = sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database connection check failed: %w", err)
	}

	log.Info("Database connection established successfully.")
	return db, nil
}

// Migrate 建表并重建聚合视图 post_stats / user_stats
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.Post{},
		&model.Like{},
		&model.Comment{},
		&model.Follow{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}

	views := []string{
		`DROP VIEW IF EXISTS post_stats`,
		`CREATE VIEW post_stats AS
			SELECT p.id AS post_id,
				(SELECT COUNT(*) FROM likes l WHERE l.post_id = p.id) AS like_count,
				(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id) AS comment_count
			FROM posts p`,
		`DROP VIEW IF EXISTS user_stats`,
		`CREATE VIEW user_stats AS
			SELECT u.id AS user_id,
				(SELECT COUNT(*) FROM posts p WHERE p.user_id = u.id) AS post_count,
				(SELECT COUNT(*) FROM follows f WHERE f.following_id = u.id) AS follower_count,
				(SELECT COUNT(*) FROM follows f WHERE f.follower_id = u.id) AS following_count
			FROM users u`,
	}
	for _, stmt := range views {
		if err = db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create aggregation view failed: %w", err)
		}
	}
	return nil
}
