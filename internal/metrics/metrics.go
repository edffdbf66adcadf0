package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Reservations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rafflehub_reservations_total",
		Help: "Ticket reservation attempts by result.",
	}, []string{"result"})

	Purchases = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rafflehub_purchases_total",
		Help: "Purchase settlement attempts by raffle mode and result.",
	}, []string{"mode", "result"})

	Draws = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rafflehub_draws_total",
		Help: "Draw attempts by result.",
	}, []string{"result"})

	PurchaseDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "rafflehub_purchase_duration_seconds",
		Help:    "Purchase settlement transaction duration.",
		Buckets: prometheus.DefBuckets,
	})
)

const (
	ResultOK       = "ok"
	ResultConflict = "conflict"
	ResultError    = "error"
)
