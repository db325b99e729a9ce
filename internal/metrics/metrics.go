package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PaymentsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "buymyshop_payments_submitted_total",
		Help: "Payment proofs accepted by the submission endpoint.",
	}, []string{"method"})

	PaymentsDecided = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "buymyshop_payments_decided_total",
		Help: "Admin approve/reject decisions.",
	}, []string{"status"})

	SiteVisits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "buymyshop_site_visits_total",
		Help: "Landing page visits reported by the tracker endpoint.",
	})

	RequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "buymyshop_request_duration_seconds",
		Help:    "HTTP request duration in seconds.",
		Buckets: prometheus.DefBuckets,
	})
)
