package radar

import (
	"math"
)

const (
	Fullturn    = 2 * math.Pi
	quarterturn = math.Pi / 2
)

type Domain interface {
	Diff(float64) float64
	Extend() float64
	Values(int) []float64
}

type numberDomain struct {
	fst float64
	lst float64
}

func NumberDomain(f, t float64) Domain {
	return numberDomain{
		fst: f,
		lst: t,
	}
}

func (n numberDomain) Diff(v float64) float64 {
	return v - n.fst
}

func (n numberDomain) Extend() float64 {
	return n.lst - n.fst
}

func (n numberDomain) Values(c int) []float64 {
	var (
		all  = make([]float64, c)
		step = n.Extend() / float64(c)
	)
	for i := 0; i < c; i++ {
		all[i] = n.fst + float64(i)*step
	}
	all = append(all, n.lst)
	return all
}

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

func (r Range) Max() float64 {
	return r.T
}

func (r Range) Min() float64 {
	return r.F
}

type ScalerConstraint interface {
	~float64 | ~string
}

type Scaler[T ScalerConstraint] interface {
	Scale(T) float64
	Space() float64
	Values(int) []T
	Max() float64
	Min() float64
}

type numberScaler struct {
	Range
	Domain
}

// NumberScaler maps values from the given domain onto the radial axis of
// the chart.
func NumberScaler(dom Domain, rg Range) Scaler[float64] {
	return numberScaler{
		Range:  rg,
		Domain: dom,
	}
}

func (n numberScaler) Scale(v float64) float64 {
	return n.Diff(v) * n.Space()
}

func (n numberScaler) Space() float64 {
	return n.Len() / n.Extend()
}

type angleScaler struct {
	Range
	Labels []string
}

// AngleScaler maps each label to its angle around the circle. Angles are
// evenly spaced so that the full range is covered by len(labels) spokes.
func AngleScaler(labels []string, rg Range) Scaler[string] {
	return angleScaler{
		Range:  rg,
		Labels: labels,
	}
}

func (a angleScaler) Scale(v string) float64 {
	var x int
	for i := range a.Labels {
		if a.Labels[i] == v {
			x = i
			break
		}
	}
	return a.Min() + float64(x)*a.Space()
}

func (a angleScaler) Space() float64 {
	return a.Len() / float64(len(a.Labels))
}

// spokeAngle gives the angle of the i-th spoke, rotated so that the first
// spoke points to the top of the chart. Spokes are placed by position, not
// by label, so repeated labels keep their own spoke.
func spokeAngle(angle Scaler[string], i int) float64 {
	return angle.Min() + float64(i)*angle.Space() - quarterturn
}

func (a angleScaler) Values(c int) []string {
	if c > 0 && c < len(a.Labels) {
		return a.Labels[:c]
	}
	return a.Labels
}
