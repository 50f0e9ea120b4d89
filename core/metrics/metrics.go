package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is what the HTTP layer and the availability engine report to.
type Metrics interface {
	ObserveRequest(method, route string, status int, seconds float64)
	ObserveAvailabilityQuery(outcome string, slots int)
	IncPaymentEvent(event string)
}

type Service struct {
	RequestDuration     *prometheus.HistogramVec
	AvailabilityQueries *prometheus.CounterVec
	AvailableSlots      prometheus.Histogram
	PaymentEvents       *prometheus.CounterVec
}

var _ Metrics = (*Service)(nil)

func NewHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "court_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by method, route and status.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		AvailabilityQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "court_availability_queries_total",
			Help: "Availability queries by outcome.",
		}, []string{"outcome"}),
		AvailableSlots: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "court_available_slots",
			Help:    "Number of free blocks returned per availability query.",
			Buckets: prometheus.LinearBuckets(0, 1, 9),
		}),
		PaymentEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "court_payment_events_total",
			Help: "Payment gateway events by type.",
		}, []string{"event"}),
	}

	reg.MustRegister(s.RequestDuration, s.AvailabilityQueries, s.AvailableSlots, s.PaymentEvents)
	return s
}

func (s *Service) ObserveRequest(method, route string, status int, seconds float64) {
	s.RequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(seconds)
}

func (s *Service) ObserveAvailabilityQuery(outcome string, slots int) {
	s.AvailabilityQueries.WithLabelValues(outcome).Inc()
	if outcome == "ok" {
		s.AvailableSlots.Observe(float64(slots))
	}
}

func (s *Service) IncPaymentEvent(event string) {
	s.PaymentEvents.WithLabelValues(event).Inc()
}

// Nop discards everything. Useful where no registry is wired.
type Nop struct{}

func (Nop) ObserveRequest(string, string, int, float64) {}
func (Nop) ObserveAvailabilityQuery(string, int)        {}
func (Nop) IncPaymentEvent(string)                      {}
