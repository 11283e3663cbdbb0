package domain

// FeatureNames is the column order every artifact must be fit on.
var FeatureNames = []string{"recency", "frequency", "monetary"}

// CustomerFeatures is one RFM profile, built per request and never stored.
type CustomerFeatures struct {
	Recency   float64 `json:"recency"`
	Frequency float64 `json:"frequency"`
	Monetary  float64 `json:"monetary"`
}

// Vector returns the features in FeatureNames order.
func (f CustomerFeatures) Vector() []float64 {
	return []float64{f.Recency, f.Frequency, f.Monetary}
}

// Prediction is the body returned by the scoring endpoint.
type Prediction struct {
	Segment int `json:"segment"`
}
