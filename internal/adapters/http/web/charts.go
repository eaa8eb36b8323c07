package web

import (
	"math"
	"strconv"
	"strings"

	"github.com/okian/scoutboard/internal/domain/model"
)

const (
	radarSize   = 260
	radarRadius = 90
	labelRadius = 112

	formWidth  = 300
	formHeight = 160
	formFloor  = 5.0
	formCeil   = 10.0
)

var radarLevels = []int{25, 50, 75, 100}

type radarAxis struct {
	Label  string
	Value  int
	X, Y   float64 // spoke end
	LX, LY float64 // label anchor
}

type radarChart struct {
	Size   int
	Center float64
	Color  string
	Grid   []string
	Axes   []radarAxis
	Shape  string
}

// newRadar plots the six skill ratings on a 0-100 polar grid, Pace at 12 o'clock
// and the rest clockwise.
func newRadar(stats model.Stats, color string) radarChart {
	attrs := stats.Skills()
	c := float64(radarSize) / 2
	chart := radarChart{Size: radarSize, Center: c, Color: color}

	point := func(i int, r float64) (float64, float64) {
		angle := -math.Pi/2 + 2*math.Pi*float64(i)/float64(len(attrs))
		return round1(c + r*math.Cos(angle)), round1(c + r*math.Sin(angle))
	}

	for _, level := range radarLevels {
		pts := make([][2]float64, len(attrs))
		for i := range attrs {
			x, y := point(i, radarRadius*float64(level)/100)
			pts[i] = [2]float64{x, y}
		}
		chart.Grid = append(chart.Grid, polygon(pts))
	}

	shape := make([][2]float64, len(attrs))
	for i, a := range attrs {
		v := min(max(a.Value, 0), 100)
		x, y := point(i, radarRadius*float64(v)/100)
		shape[i] = [2]float64{x, y}

		ax := radarAxis{Label: a.Name, Value: a.Value}
		ax.X, ax.Y = point(i, radarRadius)
		ax.LX, ax.LY = point(i, labelRadius)
		chart.Axes = append(chart.Axes, ax)
	}
	chart.Shape = polygon(shape)
	return chart
}

type formBar struct {
	Label  string
	Rating float64
	X, Y   float64
	Width  float64
	Height float64
}

type formChart struct {
	Width  int
	Height int
	Bars   []formBar
}

// newFormChart draws the form ratings most recent first ("Game 1") on a 5-10 scale.
// Ratings outside the scale are clamped.
func newFormChart(form []float64) formChart {
	chart := formChart{Width: formWidth, Height: formHeight}
	if len(form) == 0 {
		return chart
	}

	slot := float64(formWidth) / float64(len(form))
	width := round1(slot * 0.6)
	for i := range form {
		rating := form[len(form)-1-i]
		scaled := (min(max(rating, formFloor), formCeil) - formFloor) / (formCeil - formFloor)
		h := round1(scaled * formHeight)
		chart.Bars = append(chart.Bars, formBar{
			Label:  "Game " + strconv.Itoa(i+1),
			Rating: rating,
			X:      round1(float64(i)*slot + (slot-width)/2),
			Y:      round1(formHeight - h),
			Width:  width,
			Height: h,
		})
	}
	return chart
}

func polygon(pts [][2]float64) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = strconv.FormatFloat(p[0], 'f', -1, 64) + "," + strconv.FormatFloat(p[1], 'f', -1, 64)
	}
	return strings.Join(parts, " ")
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
