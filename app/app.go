// Package app 按配置装配目录查询层：数据库、仓储、授权与各领域服务
package app

import (
	"context"
	stdErrors "errors"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"catalogue/auth"
	"catalogue/config"
	"catalogue/data/db/basic"
	"catalogue/data/fixture"
	"catalogue/data/repository"
	"catalogue/domain/model"
	"catalogue/domain/service"
	"catalogue/errors"
	"catalogue/logging"
	"catalogue/metrics"
)

// App 装配完成的查询层
type App struct {
	Config        *config.Config
	Logger        logging.Logger
	Database      *basic.DB
	Repository    *repository.Repository
	Authorization auth.IAuthorization
	Metrics       *metrics.QueryMetrics
	Registry      *prometheus.Registry

	Categories        *service.Category
	Manufacturers     *service.Manufacturer
	Products          *service.Product
	Reviews           *service.Review
	CategoryRelations *service.CategoryRelations
	ProductRelations  *service.ProductRelations
	ReviewRelations   *service.ReviewRelations

	closers []io.Closer
}

type options struct {
	logOutput     io.Writer
	clock         model.Clock
	authorization auth.IAuthorization
}

// Option 装配选项
type Option func(*options)

// WithLogOutput 日志输出目标，默认 stderr
func WithLogOutput(w io.Writer) Option {
	return func(o *options) { o.logOutput = w }
}

// WithClock 商品激活时间窗口使用的时钟
func WithClock(c model.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithAuthorization 替换按配置创建的授权后端
func WithAuthorization(a auth.IAuthorization) Option {
	return func(o *options) { o.authorization = a }
}

// New 按配置装配；失败时已打开的资源会被释放
func New(ctx context.Context, cfg *config.Config, opts ...Option) (_ *App, err error) {
	if cfg == nil {
		cfg = config.Default()
	}
	o := options{logOutput: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}

	level, ok := logging.ParseLevel(cfg.Log.Level)
	logger := logging.Logger(logging.NewStdLoggerWithWriter(cfg.Log.Prefix, level, o.logOutput))
	if !ok {
		logger.Warn(ctx, "unknown log level, using info", logging.String("level", cfg.Log.Level))
	}

	a := &App{Config: cfg, Logger: logger}
	defer func() {
		if err != nil {
			_ = a.Close()
		}
	}()

	a.Database, err = basic.New(ctx, cfg.Database.DBConfig())
	if err != nil {
		return nil, errors.WrapWithLog(ctx, err, errors.ErrCodeDatabase, "open database",
			logging.String("driver", cfg.Database.Driver))
	}
	a.closers = append(a.closers, a.Database)

	if cfg.Database.Seed {
		if err = fixture.Load(ctx, a.Database); err != nil {
			return nil, errors.Wrap(ctx, err, errors.ErrCodeDatabase, "seed database")
		}
		logger.Info(ctx, "database seeded with demo catalogue")
	}

	repoOpts := []repository.Option{repository.WithLogger(logger)}
	if cfg.Metrics.Enabled {
		a.Registry = prometheus.NewRegistry()
		a.Metrics, err = metrics.NewQueryMetrics(cfg.Metrics.Namespace, a.Registry)
		if err != nil {
			return nil, errors.WrapError(err, errors.ErrCodeConfig, "register metrics")
		}
		repoOpts = append(repoOpts, repository.WithMetrics(a.Metrics))
	}
	a.Repository = repository.New(a.Database, repoOpts...)

	if o.authorization != nil {
		a.Authorization = o.authorization
	} else if a.Authorization, err = a.newAuthorization(cfg, logger); err != nil {
		return nil, err
	}

	a.Categories = service.NewCategory(a.Repository, a.Authorization)
	a.Manufacturers = service.NewManufacturer(a.Repository, a.Authorization)
	a.Products = service.NewProduct(a.Repository, a.Authorization, service.WithClock(o.clock))
	a.Reviews = service.NewReview(a.Repository, a.Authorization, cfg.Review.Moderate)
	a.CategoryRelations = service.NewCategoryRelations(a.Categories)
	a.ProductRelations = service.NewProductRelations(a.Products, a.Manufacturers)
	a.ReviewRelations = service.NewReviewRelations(a.Repository, a.Products)

	logger.Debug(ctx, "catalogue wired",
		logging.String("driver", cfg.Database.Driver),
		logging.String("auth", cfg.Auth.Backend),
		logging.Bool("moderate_reviews", cfg.Review.Moderate))
	return a, nil
}

func (a *App) newAuthorization(cfg *config.Config, logger logging.Logger) (auth.IAuthorization, error) {
	switch cfg.Auth.Backend {
	case config.AuthRedis:
		ra, err := auth.NewRedisAuthorization(auth.RedisConfig{
			Addr:      cfg.Redis.Addr,
			Username:  cfg.Redis.Username,
			Password:  cfg.Redis.Password,
			DB:        cfg.Redis.DB,
			KeyPrefix: cfg.Redis.KeyPrefix,
			Logger:    logger,
		})
		if err != nil {
			return nil, errors.WrapError(err, errors.ErrCodeConfig, "create redis authorization")
		}
		a.closers = append(a.closers, ra)
		return ra, nil
	case config.AuthDeny:
		return auth.Deny{}, nil
	default:
		return auth.NewStatic(cfg.Auth.GrantList()...), nil
	}
}

// Context 附加配置中的调用方标识
func (a *App) Context(ctx context.Context) context.Context {
	if a.Config.Auth.Subject == "" {
		return ctx
	}
	return auth.WithSubject(ctx, a.Config.Auth.Subject)
}

// Close 逆序释放资源
func (a *App) Close() error {
	if a == nil {
		return nil
	}
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return stdErrors.Join(errs...)
}
