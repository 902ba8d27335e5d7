package radar

import (
	"github.com/midbel/svg"
)

// Serie is one polygon of the chart. Points pair each label of the chart
// with the value measured for it.
type Serie struct {
	Title string
	Color string

	Angle  Scaler[string]
	Radius Scaler[float64]
	Points []Point

	Renderer Renderer
}

func NewSerie(title string, points ...Point) Serie {
	return Serie{
		Title:  title,
		Points: points,
	}
}

func (s Serie) Render() svg.Element {
	return s.Renderer.Render(s)
}

type Point struct {
	X string
	Y float64
}

func CategoryPoint(x string, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

func makeSerie(title string, labels []string, values []float64) Serie {
	s := NewSerie(title)
	for i := range values {
		var label string
		if i < len(labels) {
			label = labels[i]
		}
		s.Points = append(s.Points, CategoryPoint(label, values[i]))
	}
	return s
}
