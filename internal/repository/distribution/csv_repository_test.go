package distribution

import (
	"os"
	"path/filepath"
	"testing"

	"customerSegment/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clustered_rfm.csv")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestClusterCountsSortedByCluster(t *testing.T) {
	path := writeCSV(t, "customer_unique_id,recency,frequency,monetary,cluster\n"+
		"a,10,1,100,3\n"+
		"b,20,2,200,0\n"+
		"c,30,1,50,3\n"+
		"d,400,1,20,1\n"+
		"e,5,4,900,3.0\n")

	got, err := NewCSVRepository(path).ClusterCounts()
	require.NoError(t, err)
	assert.Equal(t, []domain.ClusterCount{
		{Cluster: 0, Count: 1},
		{Cluster: 1, Count: 1},
		{Cluster: 3, Count: 3},
	}, got)
}

func TestClusterCountsHeaderOnly(t *testing.T) {
	got, err := NewCSVRepository(writeCSV(t, "cluster\n")).ClusterCounts()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestClusterCountsMissingFile(t *testing.T) {
	repo := NewCSVRepository(filepath.Join(t.TempDir(), "clustered_rfm.csv"))

	_, err := repo.ClusterCounts()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClusterCountsMalformed(t *testing.T) {
	cases := map[string]string{
		"empty":         "",
		"no column":     "id,segment\n1,2\n",
		"bad id":        "cluster\nhigh\n",
		"fractional id": "cluster\n1.5\n",
		"short record":  "id,cluster\n1,2\n3\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewCSVRepository(writeCSV(t, body)).ClusterCounts()
			require.Error(t, err)
			assert.NotErrorIs(t, err, ErrNotFound)
		})
	}
}
