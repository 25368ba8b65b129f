package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	DirectionTransmit = "transmit"
	DirectionReceive  = "receive"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "eftp",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "eftp",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	linecodeFrames = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "eftp",
			Subsystem: "linecode",
			Name:      "frames_total",
			Help:      "8B/6T frames encoded or decoded, by result.",
		},
		[]string{"op", "result"},
	)
	transferSegments = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "eftp",
			Subsystem: "transfer",
			Name:      "segments_total",
			Help:      "Data frames moved by file transfer sessions.",
		},
		[]string{"direction"},
	)
	transferBytes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "eftp",
			Subsystem: "transfer",
			Name:      "bytes_total",
			Help:      "File content bytes moved by file transfer sessions.",
		},
		[]string{"direction"},
	)
	transferResults = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "eftp",
			Subsystem: "transfer",
			Name:      "files_total",
			Help:      "File transfers by direction and outcome.",
		},
		[]string{"direction", "success"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			httpRequests,
			httpDuration,
			linecodeFrames,
			transferSegments,
			transferBytes,
			transferResults,
		)
	})
}

func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(method, path, statusLabel).Observe(duration.Seconds())
}

// RecordFrame counts one encode or decode; result is "ok" or a failure kind.
func RecordFrame(op, result string) {
	RegisterMetrics()
	linecodeFrames.WithLabelValues(op, result).Inc()
}

func RecordTransfer(direction string, segments, bytes int, success bool) {
	RegisterMetrics()
	transferSegments.WithLabelValues(direction).Add(float64(segments))
	transferBytes.WithLabelValues(direction).Add(float64(bytes))
	transferResults.WithLabelValues(direction, strconv.FormatBool(success)).Inc()
}
