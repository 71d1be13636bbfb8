// Package metrics 提供基于Prometheus的指标收集
//
// 指标分两类：
//   - HTTP指标：请求总数、耗时、并发数，由middleware.Metrics()采集
//   - 图书业务指标：创建、删除、收藏切换、推荐次数，由应用层用例采集
//
// 所有指标注册到默认Registry，通过GET /metrics（promhttp.Handler）暴露。
//
// 使用示例：
//
//	metrics.InitMetrics()
//	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
//
// PromQL示例：
//
//	# 每秒请求数（按路径）
//	sum(rate(http_requests_total[1m])) by (path)
//
//	# P99延迟
//	histogram_quantile(0.99, rate(http_request_duration_seconds_bucket[5m]))
//
//	# 推荐接口命中空书库的比例
//	rate(book_recommendations_total{result="empty"}[5m]) / rate(book_recommendations_total[5m])
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 推荐结果标签值
const (
	RecommendHit   = "hit"
	RecommendEmpty = "empty"
	RecommendError = "error"
)

var (
	initOnce sync.Once

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数
	// 标签：method、path（路由模板，如/books/:id）、status
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数
	HTTPRequestsInProgress prometheus.Gauge

	// 图书业务指标

	BooksCreatedTotal        prometheus.Counter
	BooksUpdatedTotal        prometheus.Counter
	BooksDeletedTotal        prometheus.Counter
	BookFavoriteTogglesTotal prometheus.Counter

	// BookRecommendationsTotal 推荐次数
	// 标签：result（hit/empty/error）
	BookRecommendationsTotal *prometheus.CounterVec

	// BookValidationFailuresTotal 请求体校验失败次数
	// 标签：reason（错误信息）
	BookValidationFailuresTotal *prometheus.CounterVec

	// CircuitBreakerState 熔断器状态
	// 0=CLOSED, 1=OPEN, 2=HALF_OPEN
	CircuitBreakerState *prometheus.GaugeVec
)

// InitMetrics 初始化所有Prometheus指标
// 可重复调用，只有第一次生效（promauto重复注册会panic）
func InitMetrics() {
	initOnce.Do(func() {
		HTTPRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "HTTP请求总数",
			},
			[]string{"method", "path", "status"},
		)

		HTTPRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "http_request_duration_seconds",
				Help: "HTTP请求耗时（秒）",
				// 单表CRUD，大部分请求在10ms以内
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"method", "path"},
		)

		HTTPRequestsInProgress = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_progress",
				Help: "正在处理的HTTP请求数",
			},
		)

		BooksCreatedTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "books_created_total",
				Help: "图书创建总数",
			},
		)

		BooksUpdatedTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "books_updated_total",
				Help: "图书更新总数",
			},
		)

		BooksDeletedTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "books_deleted_total",
				Help: "图书删除总数",
			},
		)

		BookFavoriteTogglesTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "book_favorite_toggles_total",
				Help: "收藏状态切换总数",
			},
		)

		BookRecommendationsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "book_recommendations_total",
				Help: "随机推荐次数",
			},
			[]string{"result"},
		)

		BookValidationFailuresTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "book_validation_failures_total",
				Help: "图书请求体校验失败次数",
			},
			[]string{"reason"},
		)

		CircuitBreakerState = promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）",
			},
			[]string{"name"},
		)
	})
}

// IncCounter 递增Counter（未初始化时忽略）
func IncCounter(counter prometheus.Counter) {
	if counter == nil {
		return
	}
	counter.Inc()
}

// IncCounterVec 递增CounterVec（带标签）
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	if counter == nil {
		return
	}
	counter.With(labels).Inc()
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	if gauge == nil {
		return
	}
	gauge.Inc()
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	if gauge == nil {
		return
	}
	gauge.Dec()
}

// SetGaugeVec 设置GaugeVec值（带标签）
func SetGaugeVec(gauge *prometheus.GaugeVec, labels map[string]string, value float64) {
	if gauge == nil {
		return
	}
	gauge.With(labels).Set(value)
}

// ObserveHistogramVec 记录HistogramVec观测值（带标签）
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	if histogram == nil {
		return
	}
	histogram.With(labels).Observe(value)
}
