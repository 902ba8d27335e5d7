package radar

import (
	"math"
	"testing"

	"github.com/midbel/svg"
)

func TestPolygonRing(t *testing.T) {
	var (
		labels = []string{"A", "B", "C", "D", "E", "F"}
		values = []float64{0, 2, 1, 6, 4, 5}
		serie  = makeSerie("hexagon", labels, values)
		rdr    PolygonRenderer
	)
	serie.Angle = AngleScaler(labels, NewRange(0, Fullturn))
	serie.Radius = NumberScaler(NumberDomain(0, 6), NewRange(0, 120))

	ring := rdr.polygon(serie)
	if len(ring) != len(labels)+1 {
		t.Fatalf("expected %d vertices, got %d", len(labels)+1, len(ring))
	}
	fst, lst := ring[0], ring[len(ring)-1]
	if fst.X != lst.X || fst.Y != lst.Y {
		t.Errorf("ring not closed: first %+v, last %+v", fst, lst)
	}
	for i, pos := range ring[:len(ring)-1] {
		var (
			ang  = float64(i)*(Fullturn/6) - math.Pi/2
			rad  = values[i] / 6 * 120
			want = getPosFromAngle(ang, rad)
		)
		if math.Abs(pos.X-want.X) > 1e-9 || math.Abs(pos.Y-want.Y) > 1e-9 {
			t.Errorf("vertex %d: want %+v, got %+v", i, want, pos)
		}
	}
}

func TestPolygonRingStartsAtTop(t *testing.T) {
	var (
		labels = []string{"up", "right", "left"}
		serie  = makeSerie("triangle", labels, []float64{1, 1, 1})
		rdr    PolygonRenderer
	)
	serie.Angle = AngleScaler(labels, NewRange(0, Fullturn))
	serie.Radius = NumberScaler(NumberDomain(0, 1), NewRange(0, 100))

	ring := rdr.polygon(serie)
	if math.Abs(ring[0].X) > 1e-9 || math.Abs(ring[0].Y+100) > 1e-9 {
		t.Errorf("first vertex should sit at the top of the circle, got %+v", ring[0])
	}
}

func TestPolygonRingDuplicateLabels(t *testing.T) {
	var (
		labels = []string{"speed", "speed", "power", "skill"}
		serie  = makeSerie("twins", labels, []float64{1, 1, 1, 1})
		rdr    PolygonRenderer
	)
	serie.Angle = AngleScaler(labels, NewRange(0, Fullturn))
	serie.Radius = NumberScaler(NumberDomain(0, 1), NewRange(0, 100))

	ring := rdr.polygon(serie)
	seen := make(map[svg.Pos]struct{})
	for _, pos := range ring[:len(ring)-1] {
		seen[pos] = struct{}{}
	}
	if len(seen) != len(labels) {
		t.Errorf("%d labels should give %d distinct vertices, got %d", len(labels), len(labels), len(seen))
	}
	for i, pos := range ring[:len(ring)-1] {
		want := getPosFromAngle(spokeAngle(serie.Angle, i), 100)
		if math.Abs(pos.X-want.X) > 1e-9 || math.Abs(pos.Y-want.Y) > 1e-9 {
			t.Errorf("vertex %d: want %+v, got %+v", i, want, pos)
		}
	}
}

func TestPolygonRingEmpty(t *testing.T) {
	var (
		serie Serie
		rdr   PolygonRenderer
	)
	serie.Angle = AngleScaler(nil, NewRange(0, Fullturn))
	serie.Radius = NumberScaler(NumberDomain(0, 1), NewRange(0, 100))
	if ring := rdr.polygon(serie); len(ring) != 0 {
		t.Errorf("expected empty ring, got %d vertices", len(ring))
	}
}
