package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "glamora",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method and route.",
		},
		[]string{"method", "route"},
	)

	checkoutCommits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "glamora",
			Name:      "checkout_commits_total",
			Help:      "Checkout commit attempts by outcome.",
		},
		[]string{"outcome"},
	)

	receiptPDFs = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "glamora",
			Name:      "receipt_pdf_renders_total",
			Help:      "Rendered receipt PDF documents.",
		},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, checkoutCommits, receiptPDFs)
	})
}

// IncHTTP increments the request counter for a route label.
func IncHTTP(method, route string) {
	httpRequests.WithLabelValues(method, route).Inc()
}

// IncCheckout records a checkout commit outcome ("ok" or "error").
func IncCheckout(outcome string) {
	checkoutCommits.WithLabelValues(outcome).Inc()
}

// IncReceiptPDF records a rendered receipt document.
func IncReceiptPDF() {
	receiptPDFs.Inc()
}
