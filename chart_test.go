package radar

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var skills = []string{"skills", "defence", "mental", "physical", "passing", "shooting", "goalkeeper"}

var scores = [][]float64{
	{95, 20, 48, 96, 81, 64, 20},
	{77, 93, 93, 53, 67, 87, 11},
	{30, 27, 34, 13, 43, 15, 90},
}

var players = []string{"Lionel Messi", "Virgil van Dijk", "Jan Oblak"}

func TestChartRender(t *testing.T) {
	var (
		labels = []string{"A", "B", "C", "D", "E", "F"}
		serie  = makeSerie("hexagon", labels, []float64{0, 2, 1, 6, 4, 5})
		ch     = DefaultChart(labels...)
		buf    bytes.Buffer
	)
	if err := ch.Render(&buf, serie); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Fatal("nothing rendered")
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Errorf("expected svg document, got %.40q", buf.String())
	}
}

func TestChartRenderMismatch(t *testing.T) {
	var (
		labels = []string{"A", "B", "C", "D", "E", "F"}
		serie  = makeSerie("short", labels, []float64{0, 2, 1, 6, 4})
		ch     = DefaultChart(labels...)
		buf    bytes.Buffer
	)
	err := ch.Render(&buf, serie)
	if err == nil {
		t.Fatal("expected error when serie and labels disagree")
	}
	if !errors.Is(err, ErrDimension) {
		t.Errorf("unexpected error: %s", err)
	}
	if buf.Len() != 0 {
		t.Errorf("nothing should be written on error, got %d bytes", buf.Len())
	}
}

func TestChartRenderTooFewLabels(t *testing.T) {
	var (
		labels = []string{"A", "B"}
		serie  = makeSerie("line", labels, []float64{1, 2})
		ch     = DefaultChart(labels...)
		buf    bytes.Buffer
	)
	err := ch.Render(&buf, serie)
	if !errors.Is(err, ErrDimension) {
		t.Errorf("expected dimension error for 2 labels, got %v", err)
	}
}

func TestDrawGroups(t *testing.T) {
	var buf bytes.Buffer
	if err := Draw(&buf, skills, scores, players); err != nil {
		t.Fatal(err)
	}
	str := buf.String()
	for _, p := range players {
		if !strings.Contains(str, p) {
			t.Errorf("legend entry %s missing from output", p)
		}
	}
}

func TestDrawGroupsMismatch(t *testing.T) {
	var buf bytes.Buffer
	err := Draw(&buf, skills, scores, players[:2])
	if err == nil {
		t.Fatal("expected error when groups and series disagree")
	}
	if !errors.Is(err, ErrDimension) {
		t.Errorf("unexpected error: %s", err)
	}
	if buf.Len() != 0 {
		t.Errorf("nothing should be written on error, got %d bytes", buf.Len())
	}
}

func TestChartSave(t *testing.T) {
	var (
		labels = []string{"A", "B", "C"}
		serie  = makeSerie("triangle", labels, []float64{1, 2, 3})
		ch     = DefaultChart(labels...)
		file   = filepath.Join(t.TempDir(), "out.svg")
	)
	if err := ch.Save(file, serie); err != nil {
		t.Fatal(err)
	}
	stat, err := os.Stat(file)
	if err != nil {
		t.Fatal(err)
	}
	if stat.Size() == 0 {
		t.Error("empty file written")
	}
}
