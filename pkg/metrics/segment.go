package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Predictions served, labelled by the returned cluster id
	SegmentPredictions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "segment_predictions_total",
		Help: "Total number of segment predictions served",
	}, []string{"segment"})

	// Time spent scaling and classifying a single feature vector
	SegmentPredictLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "segment_predict_latency_seconds",
		Help:    "Latency of scaler transform plus nearest-centroid assignment",
		Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
	})

	// Requests rejected before reaching the model
	SegmentValidationFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "segment_validation_failures_total",
		Help: "Total number of prediction requests rejected by input validation",
	})

	// Loaded model size, set once at startup
	SegmentClusters = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "segment_model_clusters",
		Help: "Number of clusters in the loaded model",
	})
)

func Init() {
	prometheus.MustRegister(
		SegmentPredictions,
		SegmentPredictLatency,
		SegmentValidationFailures,
		SegmentClusters,
	)
}
