// Package metrics 提供查询层的 Prometheus 指标
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// 查询操作名
const (
	OpGetByID     = "get_by_id"
	OpGetByFilter = "get_by_filter"
)

// 查询结果分类
const (
	OutcomeOK           = "ok"
	OutcomeNotFound     = "not_found"
	OutcomeTypeMismatch = "type_mismatch"
	OutcomeError        = "error"
)

// QueryMetrics 仓储查询指标：次数、耗时与返回行数
type QueryMetrics struct {
	queries  *prometheus.CounterVec
	duration *prometheus.HistogramVec
	rows     *prometheus.HistogramVec
}

// NewQueryMetrics 创建并注册指标；reg 为 nil 时只创建不注册
func NewQueryMetrics(namespace string, reg prometheus.Registerer) (*QueryMetrics, error) {
	m := &QueryMetrics{
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "repository",
			Name:      "queries_total",
			Help:      "Number of repository queries by view, operation and outcome.",
		}, []string{"view", "op", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "repository",
			Name:      "query_duration_seconds",
			Help:      "Repository query latency including materialization.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"view", "op"}),
		rows: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "repository",
			Name:      "rows_returned",
			Help:      "Number of rows materialized per query.",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 1000},
		}, []string{"view", "op"}),
	}
	if reg != nil {
		for _, c := range []prometheus.Collector{m.queries, m.duration, m.rows} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

// Observe 记录一次查询；nil 接收者为空操作
func (m *QueryMetrics) Observe(view, op, outcome string, rows int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.queries.WithLabelValues(view, op, outcome).Inc()
	m.duration.WithLabelValues(view, op).Observe(elapsed.Seconds())
	if outcome == OutcomeOK {
		m.rows.WithLabelValues(view, op).Observe(float64(rows))
	}
}

// Queries 暴露计数器，便于测试读取
func (m *QueryMetrics) Queries() *prometheus.CounterVec {
	return m.queries
}
