package api_router

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	noteGenerateTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "notin_note_generate_total",
		Help: "Note generation requests by source type and result code.",
	}, []string{"source_type", "code"})

	noteGenerateDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "notin_note_generate_duration_seconds",
		Help:    "Full note generation pipeline duration.",
		Buckets: prometheus.DefBuckets,
	}, []string{"source_type"})

	noteListTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "notin_note_list_total",
		Help: "Note list requests.",
	})
)

func observeGenerate(sourceType string, resultCode int, seconds float64) {
	noteGenerateTotal.WithLabelValues(sourceType, strconv.Itoa(resultCode)).Inc()
	noteGenerateDuration.WithLabelValues(sourceType).Observe(seconds)
}
