package config

// Config 配置主体
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	DB     DBConfig     `mapstructure:"database"`
	Redis  RedisConfig  `mapstructure:"redis"`
	MinIO  MinIOConfig  `mapstructure:"minio"`
	Auth   AuthConfig   `mapstructure:"auth"`
	Media  MediaConfig  `mapstructure:"media"`
}

// ServerConfig Server配置
// RequestTimeout 是请求边界超时（秒），约束单次请求内所有对数据库、
// 对象存储和缓存的出站调用
type ServerConfig struct {
	Port           int `mapstructure:"port"`
	RequestTimeout int `mapstructure:"request_timeout"`
}

// DBConfig 数据库配置
// DSN 以 mysql:// 或 sqlite:// 前缀区分驱动
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// MinIOConfig MinIO配置
type MinIOConfig struct {
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	Bucket        string `mapstructure:"bucket"`
	UseSSL        bool   `mapstructure:"use_ssl"`
	PublicBaseURL string `mapstructure:"public_base_url"`
}

// AuthConfig 身份提供方签发的会话令牌校验配置
type AuthConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

// MediaConfig 媒体上传配置
type MediaConfig struct {
	MaxUploadSize int64 `mapstructure:"max_upload_size"`
	TempTTLHours  int   `mapstructure:"temp_ttl_hours"`
}
