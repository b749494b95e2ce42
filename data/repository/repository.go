// Package repository 提供与实体无关的通用只读仓储
//
// 仓储只认识描述符与存储模型契约：解析模型、构建查询、执行并逐行物化，
// 不包含任何具体实体的业务语义。每次调用都是同步、无状态的，
// 不缓存、不重试；查询失败原样返回给调用方。
package repository

import (
	"context"
	"time"

	"catalogue/data/db"
	sqlb "catalogue/data/db/sql"
	"catalogue/data/filter"
	"catalogue/errors"
	"catalogue/logging"
	"catalogue/metrics"
)

// Repository 通用只读仓储
type Repository struct {
	sql     sqlb.ISql
	logger  logging.Logger
	metrics *metrics.QueryMetrics
}

// Option 仓储配置项
type Option func(*Repository)

// WithLogger 设置日志
func WithLogger(l logging.Logger) Option {
	return func(r *Repository) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMetrics 设置查询指标
func WithMetrics(m *metrics.QueryMetrics) Option {
	return func(r *Repository) {
		r.metrics = m
	}
}

// New 创建仓储
func New(database db.IDatabase, opts ...Option) *Repository {
	r := &Repository{
		sql:    sqlb.New(database),
		logger: logging.GetLogger(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	r.logger = r.logger.WithFields(logging.String("component", "repository"))
	return r
}

// GetByID 按主键加载单个实例。
//
//   - 描述符给不出模型、或构造结果失败：TYPE_MISMATCH；
//   - 无此行、或模型实现 IViewable 且 CanView 为 false：NOT_FOUND；
//   - 查询失败原样返回。
func GetByID[T IDataType](ctx context.Context, r *Repository, id string, d IDescriptor[T]) (T, error) {
	var zero T
	start := time.Now()

	model, err := r.resolveModel(ctx, d)
	if err != nil {
		r.metrics.Observe("", metrics.OpGetByID, metrics.OutcomeTypeMismatch, 0, time.Since(start))
		return zero, err
	}
	view := model.ViewName()

	q := r.sql.Select().
		From(view).
		Where(sqlb.MustIdentifier(view+"."+model.PrimaryKey())+" = ?", id).
		Limit(1)
	query, args := q.Build()

	rows, err := q.Fetch(ctx)
	if err != nil {
		r.logger.Error(ctx, "query failed", logging.String("view", view), logging.String("sql", query), logging.Error(err))
		r.metrics.Observe(view, metrics.OpGetByID, metrics.OutcomeError, 0, time.Since(start))
		return zero, err
	}
	r.logger.Debug(ctx, "query executed",
		logging.String("view", view),
		logging.String("sql", query),
		logging.Any("args", args),
		logging.Int("rows", len(rows)),
		logging.Duration("duration", time.Since(start)))

	if len(rows) == 0 {
		r.metrics.Observe(view, metrics.OpGetByID, metrics.OutcomeNotFound, 0, time.Since(start))
		return zero, errors.NewNotFound(view, id)
	}
	if err := model.Assign(rows[0]); err != nil {
		r.metrics.Observe(view, metrics.OpGetByID, metrics.OutcomeError, 0, time.Since(start))
		return zero, errors.WrapError(err, errors.ErrCodeDatabase, "failed to hydrate "+view+" row")
	}
	if v, ok := model.(IViewable); ok && !v.CanView() {
		r.metrics.Observe(view, metrics.OpGetByID, metrics.OutcomeNotFound, 0, time.Since(start))
		return zero, errors.NewNotFound(view, id)
	}

	item, err := construct(ctx, r, d, model)
	if err != nil {
		r.metrics.Observe(view, metrics.OpGetByID, metrics.OutcomeTypeMismatch, 0, time.Since(start))
		return zero, err
	}
	r.metrics.Observe(view, metrics.OpGetByID, metrics.OutcomeOK, 1, time.Since(start))
	return item, nil
}

// GetByFilter 按过滤列表查询，结果按主键升序。
//
// 仅当 active 过滤显式为 true 且模型的可见性谓词非空时追加该谓词；
// 字段过滤按列表中的存储顺序渲染；分页最后追加。空结果返回空切片。
func GetByFilter[T IDataType](ctx context.Context, r *Repository, list filter.List, d IDescriptor[T], pagination *filter.Pagination) ([]T, error) {
	start := time.Now()

	model, err := r.resolveModel(ctx, d)
	if err != nil {
		r.metrics.Observe("", metrics.OpGetByFilter, metrics.OutcomeTypeMismatch, 0, time.Since(start))
		return nil, err
	}
	view := model.ViewName()

	q := r.filterQuery(model, list, pagination)
	query, args := q.Build()

	rows, err := q.Fetch(ctx)
	if err != nil {
		r.logger.Error(ctx, "query failed", logging.String("view", view), logging.String("sql", query), logging.Error(err))
		r.metrics.Observe(view, metrics.OpGetByFilter, metrics.OutcomeError, 0, time.Since(start))
		return nil, err
	}
	r.logger.Debug(ctx, "query executed",
		logging.String("view", view),
		logging.String("sql", query),
		logging.Any("args", args),
		logging.Int("rows", len(rows)),
		logging.Duration("duration", time.Since(start)))

	items := make([]T, 0, len(rows))
	for _, row := range rows {
		m := d.NewModel()
		if m == nil {
			r.metrics.Observe(view, metrics.OpGetByFilter, metrics.OutcomeTypeMismatch, 0, time.Since(start))
			return nil, r.typeMismatch(ctx, "descriptor %T returned no storage model", d)
		}
		if err := m.Assign(row); err != nil {
			r.metrics.Observe(view, metrics.OpGetByFilter, metrics.OutcomeError, 0, time.Since(start))
			return nil, errors.WrapError(err, errors.ErrCodeDatabase, "failed to hydrate "+view+" row")
		}
		item, err := construct(ctx, r, d, m)
		if err != nil {
			r.metrics.Observe(view, metrics.OpGetByFilter, metrics.OutcomeTypeMismatch, 0, time.Since(start))
			return nil, err
		}
		items = append(items, item)
	}
	r.metrics.Observe(view, metrics.OpGetByFilter, metrics.OutcomeOK, len(items), time.Since(start))
	return items, nil
}

// filterQuery 构建 SELECT * FROM view [WHERE ...] ORDER BY view.pk [LIMIT/OFFSET]
func (r *Repository) filterQuery(model IModel, list filter.List, pagination *filter.Pagination) sqlb.ISelectBuilder {
	view := model.ViewName()
	q := r.sql.Select().
		From(view).
		OrderBy(sqlb.MustIdentifier(view + "." + model.PrimaryKey()))

	if list.Active().IsTrue() {
		if active := model.ActivePredicate(); !active.IsEmpty() {
			q.AndWhere(active.Expr, active.Args...)
		}
	}
	list.Apply(q)
	pagination.AddPaginationToQuery(q)
	return q
}

func (r *Repository) resolveModel(ctx context.Context, d any) (IModel, error) {
	p, ok := d.(interface{ NewModel() IModel })
	if !ok {
		return nil, r.typeMismatch(ctx, "descriptor %T is not usable", d)
	}
	m := p.NewModel()
	if m == nil {
		return nil, r.typeMismatch(ctx, "descriptor %T returned no storage model", d)
	}
	return m, nil
}

// construct 调用描述符构造结果，非 TYPE_MISMATCH 的构造错误同样按类型不匹配处理
func construct[T IDataType](ctx context.Context, r *Repository, d IDescriptor[T], m IModel) (T, error) {
	item, err := d.FromModel(m)
	if err != nil {
		var zero T
		if errors.IsTypeMismatch(err) {
			r.logger.Error(ctx, "descriptor misconfigured", logging.Error(err))
			return zero, err
		}
		return zero, r.typeMismatch(ctx, "descriptor %T cannot construct from %T: %v", d, m, err)
	}
	return item, nil
}

// typeMismatch 描述符配置错误属于编程错误，以 Error 级别记录
func (r *Repository) typeMismatch(ctx context.Context, format string, args ...any) error {
	err := errors.NewTypeMismatch(format, args...)
	r.logger.Error(ctx, "descriptor misconfigured", logging.Error(err))
	return err
}
