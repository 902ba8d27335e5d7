package radar

import (
	"fmt"
	"math"
	"testing"
)

func TestAngleScaler(t *testing.T) {
	for n := 3; n <= 12; n++ {
		var labels []string
		for i := 0; i < n; i++ {
			labels = append(labels, fmt.Sprintf("label-%02d", i))
		}
		var (
			scale = AngleScaler(labels, NewRange(0, Fullturn))
			step  = Fullturn / float64(n)
		)
		if got := scale.Space(); math.Abs(got-step) > 1e-9 {
			t.Errorf("%d labels: space mismatch! want %f, got %f", n, step, got)
		}
		seen := make(map[float64]struct{})
		for i, label := range labels {
			got := scale.Scale(label)
			if want := float64(i) * step; math.Abs(got-want) > 1e-9 {
				t.Errorf("%s: angle mismatch! want %f, got %f", label, want, got)
			}
			if got < 0 || got >= Fullturn {
				t.Errorf("%s: angle %f outside of circle", label, got)
			}
			seen[got] = struct{}{}
		}
		if len(seen) != n {
			t.Errorf("%d labels: expected %d distinct angles, got %d", n, n, len(seen))
		}
	}
}

func TestAngleScalerUnknownLabel(t *testing.T) {
	scale := AngleScaler([]string{"a", "b", "c"}, NewRange(0, Fullturn))
	if got := scale.Scale("z"); got != 0 {
		t.Errorf("unknown label should scale to first angle, got %f", got)
	}
}

func TestNumberScaler(t *testing.T) {
	scale := NumberScaler(NumberDomain(0, 10), NewRange(0, 250))
	data := []struct {
		Value float64
		Want  float64
	}{
		{Value: 0, Want: 0},
		{Value: 5, Want: 125},
		{Value: 10, Want: 250},
	}
	for _, d := range data {
		if got := scale.Scale(d.Value); math.Abs(got-d.Want) > 1e-9 {
			t.Errorf("scaling %f: want %f, got %f", d.Value, d.Want, got)
		}
	}
	if got := scale.Max(); got != 250 {
		t.Errorf("max mismatch! want 250, got %f", got)
	}
}

func TestNumberDomainValues(t *testing.T) {
	var (
		dom    = NumberDomain(0, 10)
		values = dom.Values(5)
	)
	if len(values) != 6 {
		t.Fatalf("expected 6 values, got %d", len(values))
	}
	for i, v := range values {
		if want := float64(i) * 2; math.Abs(v-want) > 1e-9 {
			t.Errorf("value %d: want %f, got %f", i, want, v)
		}
	}
}
