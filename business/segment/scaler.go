package segment

import (
	"errors"
	"fmt"
	"math"

	"customerSegment/domain"

	"gonum.org/v1/gonum/mat"
)

// Scaler applies a fitted per-feature affine transform. It is immutable once
// built and safe for concurrent use.
type Scaler struct {
	kind         string
	featureNames []string
	// shift is subtracted before dividing by scale for standard scaling and
	// added after multiplying by scale for min-max scaling.
	shift *mat.VecDense
	scale *mat.VecDense
}

func NewScaler(a domain.ScalerArtifact) (*Scaler, error) {
	kind := a.Kind
	if kind == "" {
		kind = domain.ScalerKindStandard
	}

	var shift []float64
	switch kind {
	case domain.ScalerKindStandard:
		shift = a.Mean
	case domain.ScalerKindMinMax:
		shift = a.Min
	default:
		return nil, fmt.Errorf("unsupported scaler kind %q", a.Kind)
	}

	n := len(a.Scale)
	if n == 0 {
		return nil, errors.New("scaler has no features")
	}
	if len(shift) != n {
		return nil, fmt.Errorf("%s scaler: %d offsets for %d scales", kind, len(shift), n)
	}
	if len(a.FeatureNames) != 0 && len(a.FeatureNames) != n {
		return nil, fmt.Errorf("scaler: %d feature names for %d features", len(a.FeatureNames), n)
	}

	scale := make([]float64, n)
	for i, s := range a.Scale {
		if !finite(s) || !finite(shift[i]) {
			return nil, fmt.Errorf("scaler: non-finite parameter for feature %d", i)
		}
		if s == 0 {
			if kind == domain.ScalerKindMinMax {
				return nil, fmt.Errorf("minmax scaler: zero scale for feature %d", i)
			}
			// constant feature
			s = 1
		}
		scale[i] = s
	}

	return &Scaler{
		kind:         kind,
		featureNames: append([]string(nil), a.FeatureNames...),
		shift:        mat.NewVecDense(n, append([]float64(nil), shift...)),
		scale:        mat.NewVecDense(n, scale),
	}, nil
}

func (s *Scaler) Kind() string { return s.kind }

func (s *Scaler) Dims() int { return s.scale.Len() }

func (s *Scaler) FeatureNames() []string { return append([]string(nil), s.featureNames...) }

// Transform maps a raw feature vector into the space the model was fit in.
func (s *Scaler) Transform(x []float64) ([]float64, error) {
	if len(x) != s.Dims() {
		return nil, fmt.Errorf("scaler expects %d features, got %d", s.Dims(), len(x))
	}

	v := mat.NewVecDense(len(x), append([]float64(nil), x...))
	switch s.kind {
	case domain.ScalerKindMinMax:
		v.MulElemVec(v, s.scale)
		v.AddVec(v, s.shift)
	default:
		v.SubVec(v, s.shift)
		v.DivElemVec(v, s.scale)
	}
	return v.RawVector().Data, nil
}

// InverseTransform maps a scaled vector back to raw feature units.
func (s *Scaler) InverseTransform(x []float64) ([]float64, error) {
	if len(x) != s.Dims() {
		return nil, fmt.Errorf("scaler expects %d features, got %d", s.Dims(), len(x))
	}

	v := mat.NewVecDense(len(x), append([]float64(nil), x...))
	switch s.kind {
	case domain.ScalerKindMinMax:
		v.SubVec(v, s.shift)
		v.DivElemVec(v, s.scale)
	default:
		v.MulElemVec(v, s.scale)
		v.AddVec(v, s.shift)
	}
	return v.RawVector().Data, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
