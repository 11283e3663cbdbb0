package domain

const (
	ScalerKindStandard = "standard"
	ScalerKindMinMax   = "minmax"
)

// ScalerArtifact is the serialized state of a fitted feature scaler.
//
// For "standard" scaling Mean and Scale are used: (x - mean) / scale.
// For "minmax" scaling Min and Scale are used: x*scale + min.
type ScalerArtifact struct {
	Kind         string    `json:"kind" yaml:"kind"`
	FeatureNames []string  `json:"feature_names" yaml:"feature_names"`
	Mean         []float64 `json:"mean" yaml:"mean"`
	Min          []float64 `json:"min" yaml:"min"`
	Scale        []float64 `json:"scale" yaml:"scale"`
}

// KMeansArtifact is the serialized state of a fitted k-means model.
// Centers live in the scaled feature space.
type KMeansArtifact struct {
	NClusters      int         `json:"n_clusters" yaml:"n_clusters"`
	FeatureNames   []string    `json:"feature_names" yaml:"feature_names"`
	ClusterCenters [][]float64 `json:"cluster_centers" yaml:"cluster_centers"`
}

// ModelSummary describes the loaded model for operators.
type ModelSummary struct {
	Clusters     int         `json:"clusters"`
	FeatureNames []string    `json:"feature_names"`
	ScalerKind   string      `json:"scaler_kind"`
	Centroids    [][]float64 `json:"centroids"`
}
