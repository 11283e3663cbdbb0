// Package chart renders the cluster distribution bar chart.
package chart

import (
	"errors"
	"image/color"
	"io"
	"strconv"

	"customerSegment/domain"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	_ "gonum.org/v1/plot/vg/vgimg"
)

var skyBlue = color.RGBA{R: 135, G: 206, B: 235, A: 255}

// WriteDistributionPNG draws one bar per cluster, in the order given.
func WriteDistributionPNG(w io.Writer, counts []domain.ClusterCount) error {
	if len(counts) == 0 {
		return errors.New("no clusters to plot")
	}

	values := make(plotter.Values, len(counts))
	names := make([]string, len(counts))
	for i, c := range counts {
		values[i] = float64(c.Count)
		names[i] = strconv.Itoa(c.Cluster)
	}

	p := plot.New()
	p.Title.Text = "Distribution of Customers by Cluster"
	p.X.Label.Text = "Cluster"
	p.Y.Label.Text = "Number of Customers"
	p.Y.Min = 0

	bars, err := plotter.NewBarChart(values, vg.Points(28))
	if err != nil {
		return err
	}
	bars.Color = skyBlue
	bars.LineStyle.Width = vg.Length(0)

	p.Add(bars)
	p.NominalX(names...)

	wt, err := p.WriterTo(6*vg.Inch, 4*vg.Inch, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
