// Package config 加载命令行与服务装配使用的配置
//
// 加载顺序：默认值 → YAML 文件 → 环境变量（前缀 CATALOGUE_）→ 校验。
// .env 文件由 LoadDotEnv 在读取环境变量前显式加载。
package config

import (
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"catalogue/data/db"
	"catalogue/errors"
)

// EnvPrefix 环境变量前缀
const EnvPrefix = "CATALOGUE_"

// 授权后端
const (
	AuthStatic = "static"
	AuthRedis  = "redis"
	AuthDeny   = "deny"
)

// Config 根配置
type Config struct {
	Database DatabaseConfig `yaml:"database" envPrefix:"DATABASE_"`
	Review   ReviewConfig   `yaml:"review" envPrefix:"REVIEW_"`
	Auth     AuthConfig     `yaml:"auth" envPrefix:"AUTH_"`
	Redis    RedisConfig    `yaml:"redis" envPrefix:"REDIS_"`
	Log      LogConfig      `yaml:"log" envPrefix:"LOG_"`
	Metrics  MetricsConfig  `yaml:"metrics" envPrefix:"METRICS_"`
}

// DatabaseConfig 数据库连接
type DatabaseConfig struct {
	Driver          string `yaml:"driver" env:"DRIVER" validate:"required,oneof=sqlite postgres"`
	DSN             string `yaml:"dsn" env:"DSN" validate:"required"`
	MaxOpenConns    int    `yaml:"max_open_conns" env:"MAX_OPEN_CONNS" validate:"gte=0"`
	MaxIdleConns    int    `yaml:"max_idle_conns" env:"MAX_IDLE_CONNS" validate:"gte=0"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" env:"CONN_MAX_LIFETIME" validate:"gte=0"`
	ConnMaxIdleTime int    `yaml:"conn_max_idle_time" env:"CONN_MAX_IDLE_TIME" validate:"gte=0"`
	// Seed 启动时写入演示数据（仅用于本地 sqlite）
	Seed bool `yaml:"seed" env:"SEED"`
}

// DBConfig 转换为 data/db 的连接配置
func (c DatabaseConfig) DBConfig() db.DBConfig {
	return db.DBConfig{
		Driver:          c.Driver,
		DSN:             c.DSN,
		MaxOpenConns:    c.MaxOpenConns,
		MaxIdleConns:    c.MaxIdleConns,
		ConnMaxLifetime: c.ConnMaxLifetime,
		ConnMaxIdleTime: c.ConnMaxIdleTime,
	}
}

// ReviewConfig 评论
type ReviewConfig struct {
	// Moderate 评论需要审核后才可见
	Moderate bool `yaml:"moderate" env:"MODERATE"`
}

// AuthConfig 授权
type AuthConfig struct {
	Backend string   `yaml:"backend" env:"BACKEND" validate:"required,oneof=static redis deny"`
	Grants  []string `yaml:"grants" env:"GRANTS" envSeparator:","`
	Subject string   `yaml:"subject" env:"SUBJECT"`
}

// RedisConfig Redis 授权存储
type RedisConfig struct {
	Addr      string `yaml:"addr" env:"ADDR" validate:"omitempty,hostname_port"`
	Username  string `yaml:"username" env:"USERNAME"`
	Password  string `yaml:"password" env:"PASSWORD"`
	DB        int    `yaml:"db" env:"DB" validate:"gte=0"`
	KeyPrefix string `yaml:"key_prefix" env:"KEY_PREFIX"`
}

// LogConfig 日志
type LogConfig struct {
	Level  string `yaml:"level" env:"LEVEL" validate:"oneof=debug info warn warning error"`
	Prefix string `yaml:"prefix" env:"PREFIX"`
}

// MetricsConfig 查询指标
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled" env:"ENABLED"`
	Namespace string `yaml:"namespace" env:"NAMESPACE" validate:"omitempty,alphanum"`
}

// Default 默认配置：内存 sqlite、开启评论审核、静态授权
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{Driver: "sqlite", DSN: ":memory:"},
		Review:   ReviewConfig{Moderate: true},
		Auth:     AuthConfig{Backend: AuthStatic},
		Redis:    RedisConfig{KeyPrefix: "catalogue:grants:"},
		Log:      LogConfig{Level: "info"},
		Metrics:  MetricsConfig{Namespace: "catalogue"},
	}
}

// Load 读取配置文件（可为空）并应用环境变量覆盖
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.WrapError(err, errors.ErrCodeConfig, "read config file").
				WithContext("path", path)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.WrapError(err, errors.ErrCodeConfig, "parse config file").
				WithContext("path", path)
		}
	}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, errors.WrapError(err, errors.ErrCodeConfig, "parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotEnv 加载 .env 文件到进程环境；文件不存在时忽略，已有环境变量不被覆盖
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return errors.WrapError(err, errors.ErrCodeConfig, "load dotenv").WithContext("file", f)
		}
	}
	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate 校验字段约束以及字段之间的依赖
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.WrapError(err, errors.ErrCodeConfig, "invalid config")
	}
	if c.Auth.Backend == AuthRedis && c.Redis.Addr == "" {
		return errors.NewError(errors.ErrCodeConfig, "invalid config: redis.addr is required for the redis auth backend")
	}
	if c.Database.Seed && c.Database.Driver != "sqlite" {
		return errors.NewError(errors.ErrCodeConfig, "invalid config: database.seed is only supported for sqlite")
	}
	return nil
}

// GrantList 去除空白后的静态授权列表
func (c AuthConfig) GrantList() []string {
	out := make([]string, 0, len(c.Grants))
	for _, g := range c.Grants {
		if g = strings.TrimSpace(g); g != "" {
			out = append(out, g)
		}
	}
	return out
}
