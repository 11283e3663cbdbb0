package segment

import (
	"errors"
	"fmt"

	"customerSegment/domain"

	"gonum.org/v1/gonum/mat"
)

// KMeans assigns vectors to the nearest fitted centroid by squared Euclidean
// distance. Ties go to the lowest cluster index.
type KMeans struct {
	featureNames []string
	centers      *mat.Dense
}

func NewKMeans(a domain.KMeansArtifact) (*KMeans, error) {
	k := len(a.ClusterCenters)
	if k == 0 {
		return nil, errors.New("kmeans model has no cluster centers")
	}
	if a.NClusters != 0 && a.NClusters != k {
		return nil, fmt.Errorf("kmeans model declares %d clusters but has %d centers", a.NClusters, k)
	}

	dims := len(a.ClusterCenters[0])
	if dims == 0 {
		return nil, errors.New("kmeans centers are empty")
	}
	if len(a.FeatureNames) != 0 && len(a.FeatureNames) != dims {
		return nil, fmt.Errorf("kmeans: %d feature names for %d dimensions", len(a.FeatureNames), dims)
	}

	data := make([]float64, 0, k*dims)
	for i, c := range a.ClusterCenters {
		if len(c) != dims {
			return nil, fmt.Errorf("kmeans center %d has %d dimensions, want %d", i, len(c), dims)
		}
		for _, v := range c {
			if !finite(v) {
				return nil, fmt.Errorf("kmeans center %d has a non-finite value", i)
			}
		}
		data = append(data, c...)
	}

	return &KMeans{
		featureNames: append([]string(nil), a.FeatureNames...),
		centers:      mat.NewDense(k, dims, data),
	}, nil
}

func (m *KMeans) Clusters() int {
	r, _ := m.centers.Dims()
	return r
}

func (m *KMeans) Dims() int {
	_, c := m.centers.Dims()
	return c
}

func (m *KMeans) FeatureNames() []string { return append([]string(nil), m.featureNames...) }

// Centers returns a copy of the centroids in the scaled space.
func (m *KMeans) Centers() [][]float64 {
	k, _ := m.centers.Dims()
	out := make([][]float64, k)
	for i := range k {
		out[i] = mat.Row(nil, i, m.centers)
	}
	return out
}

// Predict returns the index of the closest centroid.
func (m *KMeans) Predict(x []float64) (int, error) {
	if len(x) != m.Dims() {
		return 0, fmt.Errorf("kmeans expects %d features, got %d", m.Dims(), len(x))
	}

	xv := mat.NewVecDense(len(x), x)
	diff := mat.NewVecDense(len(x), nil)

	best, bestDist := 0, 0.0
	for i := range m.Clusters() {
		diff.SubVec(m.centers.RowView(i), xv)
		d := mat.Dot(diff, diff)
		if i == 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, nil
}
