package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitMetrics(t *testing.T) {
	InitMetrics()
	// 重复调用不应panic（重复注册）
	assert.NotPanics(t, InitMetrics)

	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsInProgress)
	assert.NotNil(t, BooksCreatedTotal)
	assert.NotNil(t, BooksUpdatedTotal)
	assert.NotNil(t, BooksDeletedTotal)
	assert.NotNil(t, BookFavoriteTogglesTotal)
	assert.NotNil(t, BookRecommendationsTotal)
	assert.NotNil(t, BookValidationFailuresTotal)
	assert.NotNil(t, CircuitBreakerState)
}

func TestCounter(t *testing.T) {
	InitMetrics()

	before := getCounterValue(t, BooksCreatedTotal)
	IncCounter(BooksCreatedTotal)
	IncCounter(BooksCreatedTotal)

	assert.Equal(t, before+2, getCounterValue(t, BooksCreatedTotal))
}

func TestCounterVec(t *testing.T) {
	InitMetrics()

	hit := map[string]string{"result": RecommendHit}
	empty := map[string]string{"result": RecommendEmpty}
	beforeHit := getCounterVecValue(t, BookRecommendationsTotal, hit)
	beforeEmpty := getCounterVecValue(t, BookRecommendationsTotal, empty)

	IncCounterVec(BookRecommendationsTotal, hit)
	IncCounterVec(BookRecommendationsTotal, hit)
	IncCounterVec(BookRecommendationsTotal, empty)

	assert.Equal(t, beforeHit+2, getCounterVecValue(t, BookRecommendationsTotal, hit))
	assert.Equal(t, beforeEmpty+1, getCounterVecValue(t, BookRecommendationsTotal, empty))
}

func TestGauge(t *testing.T) {
	InitMetrics()

	before := getGaugeValue(t, HTTPRequestsInProgress)
	IncGauge(HTTPRequestsInProgress)
	IncGauge(HTTPRequestsInProgress)
	assert.Equal(t, before+2, getGaugeValue(t, HTTPRequestsInProgress))

	DecGauge(HTTPRequestsInProgress)
	DecGauge(HTTPRequestsInProgress)
	assert.Equal(t, before, getGaugeValue(t, HTTPRequestsInProgress))
}

func TestGaugeVec(t *testing.T) {
	InitMetrics()

	labels := map[string]string{"name": "redis-cache"}
	SetGaugeVec(CircuitBreakerState, labels, 1)
	assert.Equal(t, float64(1), getGaugeVecValue(t, CircuitBreakerState, labels))

	SetGaugeVec(CircuitBreakerState, labels, 0)
	assert.Equal(t, float64(0), getGaugeVecValue(t, CircuitBreakerState, labels))
}

func TestHistogramVec(t *testing.T) {
	InitMetrics()

	labels := map[string]string{"method": "GET", "path": "/books"}
	before := getHistogramVecCount(t, HTTPRequestDuration, labels)

	ObserveHistogramVec(HTTPRequestDuration, labels, 0.002)
	ObserveHistogramVec(HTTPRequestDuration, labels, 0.2)

	assert.Equal(t, before+2, getHistogramVecCount(t, HTTPRequestDuration, labels))
}

func TestHelpers_NilSafe(t *testing.T) {
	var counter prometheus.Counter
	var counterVec *prometheus.CounterVec
	var gauge prometheus.Gauge
	var histogramVec *prometheus.HistogramVec

	assert.NotPanics(t, func() {
		IncCounter(counter)
		IncCounterVec(counterVec, map[string]string{"result": RecommendHit})
		IncGauge(gauge)
		DecGauge(gauge)
		SetGaugeVec(nil, map[string]string{"name": "x"}, 1)
		ObserveHistogramVec(histogramVec, map[string]string{"method": "GET", "path": "/"}, 1)
	})
}

func getCounterValue(t *testing.T, counter prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, counter.Write(&m))
	return m.GetCounter().GetValue()
}

func getCounterVecValue(t *testing.T, counterVec *prometheus.CounterVec, labels map[string]string) float64 {
	t.Helper()
	counter, err := counterVec.GetMetricWith(labels)
	require.NoError(t, err)
	return getCounterValue(t, counter)
}

func getGaugeValue(t *testing.T, gauge prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, gauge.Write(&m))
	return m.GetGauge().GetValue()
}

func getGaugeVecValue(t *testing.T, gaugeVec *prometheus.GaugeVec, labels map[string]string) float64 {
	t.Helper()
	gauge, err := gaugeVec.GetMetricWith(labels)
	require.NoError(t, err)
	return getGaugeValue(t, gauge)
}

func getHistogramVecCount(t *testing.T, histogramVec *prometheus.HistogramVec, labels map[string]string) uint64 {
	t.Helper()
	observer, err := histogramVec.GetMetricWith(labels)
	require.NoError(t, err)
	var m dto.Metric
	require.NoError(t, observer.(prometheus.Metric).Write(&m))
	return m.GetHistogram().GetSampleCount()
}
