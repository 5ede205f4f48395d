package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ReservationsCommitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reservations_committed_total",
			Help: "Total number of reservations committed to the occupancy ledger.",
		},
	)
	ReservationsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reservations_rejected_total",
			Help: "Total number of reservation attempts rejected, by reason.",
		},
		[]string{"reason"},
	)
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
)

func Handler() http.Handler {
	return promhttp.Handler()
}
