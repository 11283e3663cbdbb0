package distribution

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"

	"customerSegment/domain"
)

// ErrNotFound is returned when the distribution file does not exist.
var ErrNotFound = errors.New("distribution file not found")

// CSVRepository reads an externally produced clustering export. The file is
// re-read on every call so a replaced export shows up without a restart.
type CSVRepository struct {
	path string
}

func NewCSVRepository(path string) *CSVRepository {
	return &CSVRepository{path: path}
}

func (r *CSVRepository) Path() string {
	return r.path
}

// ClusterCounts returns the number of rows per cluster, sorted by cluster id.
func (r *CSVRepository) ClusterCounts() ([]domain.ClusterCount, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, r.path)
		}
		return nil, fmt.Errorf("open %s: %w", r.path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s is empty", r.path)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	col := -1
	for i, name := range header {
		if strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")) == domain.ClusterColumn {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("%s has no %q column", r.path, domain.ClusterColumn)
	}

	counts := make(map[int]int)
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", r.path, err)
		}
		if col >= len(record) {
			return nil, fmt.Errorf("%s line %d: missing %q value", r.path, line, domain.ClusterColumn)
		}

		cluster, err := parseCluster(record[col])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", r.path, line, err)
		}
		counts[cluster]++
	}

	out := make([]domain.ClusterCount, 0, len(counts))
	for cluster, n := range counts {
		out = append(out, domain.ClusterCount{Cluster: cluster, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Cluster < out[j].Cluster })

	return out, nil
}

// parseCluster accepts integer ids, including the "2.0" form some exporters write.
func parseCluster(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if id, err := strconv.Atoi(raw); err == nil {
		return id, nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != float64(int(f)) {
		return 0, fmt.Errorf("invalid cluster id %q", raw)
	}
	return int(f), nil
}
