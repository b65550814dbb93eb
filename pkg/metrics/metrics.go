package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics коллектор метрик сервиса
// Все методы nil-safe: при выключенных метриках передаем nil
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	scheduleBuildsTotal *prometheus.CounterVec
	appointmentsIndexed prometheus.Histogram
	appointmentSaves    *prometheus.CounterVec
}

// New создает и регистрирует метрики в DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики в указанном реестре (для тестов)
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),
		scheduleBuildsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "schedule_builds_total",
			Help:        "Day schedules built, by resulting data state",
			ConstLabels: labels,
		}, []string{"state"}),
		appointmentsIndexed: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "schedule_appointments_indexed",
			Help:        "Number of appointments placed into the slot index per build",
			ConstLabels: labels,
			Buckets:     []float64{0, 5, 10, 25, 50, 100, 250, 500},
		}),
		appointmentSaves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "appointment_saves_total",
			Help:        "Appointment create/update attempts",
			ConstLabels: labels,
		}, []string{"operation", "result"}),
	}

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.scheduleBuildsTotal,
		m.appointmentsIndexed,
		m.appointmentSaves,
	)

	return m
}

// ObserveHTTPRequest фиксирует один HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveScheduleBuild фиксирует построение сетки дня
func (m *Metrics) ObserveScheduleBuild(state string, indexed int) {
	if m == nil {
		return
	}
	m.scheduleBuildsTotal.WithLabelValues(state).Inc()
	m.appointmentsIndexed.Observe(float64(indexed))
}

// ObserveAppointmentSave фиксирует попытку сохранения записи
func (m *Metrics) ObserveAppointmentSave(operation string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.appointmentSaves.WithLabelValues(operation, result).Inc()
}
