package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	figureColor = drawing.ColorFromHex("464646")
	canvasColor = drawing.ColorFromHex("5f5f5f")
	borderColor = drawing.ColorFromHex("dddddd")
)

func axisStyle() chart.Style {
	return chart.Style{
		StrokeColor: borderColor,
		FontColor:   chart.ColorWhite,
	}
}

// paddedRange returns a y range that covers values with some headroom. A
// flat series gets a unit range around its value; go-chart refuses to draw
// a zero-height range.
func paddedRange(values []float64) *chart.ContinuousRange {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if math.IsInf(lo, 1) {
		return &chart.ContinuousRange{Min: -1, Max: 1}
	}
	if hi == lo {
		return &chart.ContinuousRange{Min: lo - 1, Max: hi + 1}
	}
	pad := (hi - lo) * 0.05
	return &chart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}

func xValues(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	return xs
}

// RenderPlot draws both channels on twin y axes and returns the image.
func RenderPlot(signal1, signal2 []float64, width, height int) (image.Image, error) {
	if len(signal1) < 2 || len(signal2) < 2 {
		return nil, fmt.Errorf("need at least 2 samples per signal, got %d and %d", len(signal1), len(signal2))
	}

	ch := chart.Chart{
		Title:      "Sensors",
		TitleStyle: chart.Style{FontColor: chart.ColorWhite, FontSize: 14},
		Width:      width,
		Height:     height,
		Background: chart.Style{
			FillColor: figureColor,
			Padding:   chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		Canvas: chart.Style{FillColor: canvasColor},
		XAxis: chart.XAxis{
			Style: axisStyle(),
			Range: &chart.ContinuousRange{Min: 0, Max: float64(len(signal1) - 1)},
		},
		YAxis: chart.YAxis{
			Name:      "Signal 1",
			NameStyle: chart.Style{FontColor: chart.ColorBlue},
			Style:     axisStyle(),
			Range:     paddedRange(signal1),
		},
		YAxisSecondary: chart.YAxis{
			Name:      "Signal 2",
			NameStyle: chart.Style{FontColor: chart.ColorRed},
			Style:     axisStyle(),
			Range:     paddedRange(signal2),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Signal 1",
				Style:   chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 2},
				XValues: xValues(len(signal1)),
				YValues: signal1,
			},
			chart.ContinuousSeries{
				Name:    "Signal 2",
				Style:   chart.Style{StrokeColor: chart.ColorRed, StrokeWidth: 2},
				YAxis:   chart.YAxisSecondary,
				XValues: xValues(len(signal2)),
				YValues: signal2,
			},
		},
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render plot: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("failed to decode plot: %w", err)
	}
	return img, nil
}
