package auth

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"catalogue/logging"
)

// client 只包含授权用到的 go-redis 命令，便于测试替换
type client interface {
	SIsMember(ctx context.Context, key string, member any) *redis.BoolCmd
	Close() error
}

// RedisConfig Redis 授权配置
type RedisConfig struct {
	Client    redis.UniversalClient
	Addr      string
	Username  string
	Password  string
	DB        int
	KeyPrefix string
	Logger    logging.Logger
}

// RedisAuthorization 以 Redis 集合保存授权：键为 <prefix><subject>，成员为权限名。
//
// context 中没有调用方标识时一律拒绝；Redis 出错时记录日志并拒绝。
type RedisAuthorization struct {
	client    client
	ownClient bool
	prefix    string
	logger    logging.Logger
}

// NewRedisAuthorization 创建基于 Redis 的授权
func NewRedisAuthorization(cfg RedisConfig) (*RedisAuthorization, error) {
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "catalogue:grants:"
	}
	var cl client
	var own bool
	if cfg.Client != nil {
		cl = cfg.Client
	} else {
		if cfg.Addr == "" {
			return nil, errors.New("redis address not configured")
		}
		cl = redis.NewClient(&redis.Options{Addr: cfg.Addr, Username: cfg.Username, Password: cfg.Password, DB: cfg.DB})
		own = true
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.GetLogger()
	}
	return &RedisAuthorization{
		client:    cl,
		ownClient: own,
		prefix:    cfg.KeyPrefix,
		logger:    cfg.Logger.WithFields(logging.String("component", "auth.redis")),
	}, nil
}

func newRedisAuthorizationWithClient(cl client, prefix string, logger logging.Logger) *RedisAuthorization {
	if logger == nil {
		logger = logging.NewNoopLogger()
	}
	return &RedisAuthorization{client: cl, prefix: prefix, logger: logger}
}

func (a *RedisAuthorization) IsAllowed(ctx context.Context, permission string) bool {
	subject, ok := Subject(ctx)
	if !ok {
		return false
	}
	allowed, err := a.client.SIsMember(ctx, a.prefix+subject, permission).Result()
	if err != nil {
		a.logger.Error(ctx, "authorization lookup failed",
			logging.String("subject", subject),
			logging.String("permission", permission),
			logging.Error(err))
		return false
	}
	return allowed
}

// Close 只关闭自行创建的客户端
func (a *RedisAuthorization) Close() error {
	if a.ownClient && a.client != nil {
		return a.client.Close()
	}
	return nil
}
