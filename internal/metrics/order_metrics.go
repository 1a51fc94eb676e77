package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// OrderMetrics は注文作成のメトリクス
type OrderMetrics struct {
	created  prometheus.Counter
	rejected *prometheus.CounterVec
	failed   prometheus.Counter
	duration *prometheus.HistogramVec
}

func NewOrderMetrics() *OrderMetrics {
	return NewOrderMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func NewOrderMetricsWithRegisterer(registerer prometheus.Registerer) *OrderMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &OrderMetrics{
		created: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "restbucks_orders_created_total",
			Help: "Total number of orders created",
		}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "restbucks_orders_rejected_total",
			Help: "Total number of order requests rejected by validation",
		}, []string{"reason"}),
		failed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "restbucks_orders_failed_total",
			Help: "Total number of order requests failed with a server error",
		}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "restbucks_order_creation_duration_seconds",
			Help:    "Duration of order creation by outcome",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		}, []string{"outcome"}),
	}
	m.created = register(registerer, m.created)
	m.rejected = register(registerer, m.rejected)
	m.failed = register(registerer, m.failed)
	m.duration = register(registerer, m.duration)
	return m
}

// 登録済みなら既存のコレクタを使う
func register[C prometheus.Collector](registerer prometheus.Registerer, collector C) C {
	if err := registerer.Register(collector); err != nil {
		if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := already.ExistingCollector.(C)
			if !ok {
				panic(fmt.Sprintf("collector already registered with unexpected type: %T", already.ExistingCollector))
			}
			return existing
		}
		panic(fmt.Sprintf("register collector: %v", err))
	}
	return collector
}

func (m *OrderMetrics) RecordCreated(d time.Duration) {
	m.created.Inc()
	m.duration.WithLabelValues("created").Observe(d.Seconds())
}

// reason は product_not_offered / invalid_quantity など
func (m *OrderMetrics) RecordRejected(reason string, d time.Duration) {
	m.rejected.WithLabelValues(reason).Inc()
	m.duration.WithLabelValues("rejected").Observe(d.Seconds())
}

func (m *OrderMetrics) RecordFailed(d time.Duration) {
	m.failed.Inc()
	m.duration.WithLabelValues("failed").Observe(d.Seconds())
}
