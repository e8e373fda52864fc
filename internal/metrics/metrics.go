package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rushrr/courier/internal/domain/model"
)

const namespace = "courier"

// Recorder owns the service registry and the order pipeline collectors.
type Recorder struct {
	registry *prometheus.Registry

	ordersProcessed *prometheus.CounterVec
	orderFetch      *prometheus.CounterVec
	nameSource      *prometheus.CounterVec
	batchDuration   prometheus.Histogram
	downstream      *prometheus.CounterVec
}

// New creates a recorder on a private registry with runtime collectors attached.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		ordersProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_processed_total",
			Help:      "Orders handled by batch processing, by result.",
		}, []string{"result"}),
		orderFetch: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_fetch_total",
			Help:      "Shopify order fetches, by the API that served them.",
		}, []string{"source"}),
		nameSource: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "customer_name_source_total",
			Help:      "Resolved customer names, by the field they came from.",
		}, []string{"source"}),
		batchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_duration_seconds",
			Help:      "Wall time of process-orders batches.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
		downstream: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "downstream_requests_total",
			Help:      "Logistics backend calls, by operation and outcome.",
		}, []string{"operation", "outcome"}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.ordersProcessed,
		r.orderFetch,
		r.nameSource,
		r.batchDuration,
		r.downstream,
	)
	return r
}

// OrderProcessed counts one batch item.
func (r *Recorder) OrderProcessed(success bool) {
	result := "failed"
	if success {
		result = "success"
	}
	r.ordersProcessed.WithLabelValues(result).Inc()
}

// OrderFetched counts a fetch; an empty source means both APIs failed.
func (r *Recorder) OrderFetched(source model.FetchSource) {
	label := string(source)
	if label == "" {
		label = "failed"
	}
	r.orderFetch.WithLabelValues(label).Inc()
}

func (r *Recorder) CustomerNameResolved(source model.NameSource) {
	r.nameSource.WithLabelValues(string(source)).Inc()
}

func (r *Recorder) ObserveBatch(d time.Duration) {
	r.batchDuration.Observe(d.Seconds())
}

// Downstream counts a logistics call by its error outcome.
func (r *Recorder) Downstream(operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	r.downstream.WithLabelValues(operation, outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
