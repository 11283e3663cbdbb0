package chart

import (
	"bytes"
	"image/png"
	"testing"

	"customerSegment/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDistributionPNG(t *testing.T) {
	var buf bytes.Buffer
	err := WriteDistributionPNG(&buf, []domain.ClusterCount{
		{Cluster: 0, Count: 120},
		{Cluster: 1, Count: 14},
		{Cluster: 2, Count: 57},
	})
	require.NoError(t, err)

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Positive(t, img.Bounds().Dx())
	assert.Positive(t, img.Bounds().Dy())
}

func TestWriteDistributionPNGEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteDistributionPNG(&buf, nil))
	assert.Zero(t, buf.Len())
}
