package artifact

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"customerSegment/domain"

	"gopkg.in/yaml.v2"
)

// ArtifactRepository reads pre-fit artifacts from the local filesystem.
// Files ending in .yaml or .yml are decoded as YAML, anything else as JSON.
type ArtifactRepository struct{}

func NewArtifactRepository() *ArtifactRepository {
	return &ArtifactRepository{}
}

func (r *ArtifactRepository) LoadScaler(path string) (domain.ScalerArtifact, error) {
	var a domain.ScalerArtifact
	if err := decodeFile(path, &a); err != nil {
		return domain.ScalerArtifact{}, fmt.Errorf("load scaler: %w", err)
	}
	return a, nil
}

func (r *ArtifactRepository) LoadKMeans(path string) (domain.KMeansArtifact, error) {
	var a domain.KMeansArtifact
	if err := decodeFile(path, &a); err != nil {
		return domain.KMeansArtifact{}, fmt.Errorf("load model: %w", err)
	}
	return a, nil
}

func decodeFile(path string, out interface{}) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.UnmarshalStrict(raw, out); err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		if err := dec.Decode(out); err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
	}
	return nil
}
