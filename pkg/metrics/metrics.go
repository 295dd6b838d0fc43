package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	SubmissionsStored = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "noirfolio", Name: "submissions_stored_total", Help: "Number of contact/booking submissions durably stored, by kind."},
		[]string{"kind"},
	)
	DispatchFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "noirfolio", Name: "notification_dispatch_failures_total", Help: "Number of notification emails that failed to send, by kind."},
		[]string{"kind"},
	)
	StoreWriteFailures = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "noirfolio", Name: "store_write_failures_total", Help: "Number of failed writes to the backing store."},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "noirfolio", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "noirfolio", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(SubmissionsStored)
	reg.MustRegister(DispatchFailures)
	reg.MustRegister(StoreWriteFailures)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
