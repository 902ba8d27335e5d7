package radar

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/midbel/slices"
	"github.com/midbel/svg"
)

const FontSize = 12.0

// ErrDimension is returned when the points of a serie can not be paired
// with the labels of the chart, or when series and group names disagree.
var ErrDimension = errors.New("dimension mismatch")

type Orientation int

const (
	OrientTop Orientation = 1 << iota
	OrientRight
	OrientBottom
	OrientLeft
)

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

type Grid struct {
	Show    bool
	Angular bool
	Ticks   int
	Color   string
	Width   float64
	Style   LineStyle
}

func DefaultGrid() Grid {
	return Grid{
		Show:  true,
		Ticks: 5,
		Color: "#888888",
		Width: 0.3,
	}
}

// Chart draws radar (spider) charts. Each serie given to Render becomes a
// closed polygon overlaid on the same circular axes, one spoke per label.
type Chart struct {
	Title     string
	TitleSize float64
	Width     float64
	Height    float64

	Padding
	Style

	Labels []string

	Grid       Grid
	TickLabels bool
	Point      PointFunc

	Legend struct {
		Title  string
		Orient Orientation
	}

	Angle  Scaler[string]
	Radius Scaler[float64]
}

func DefaultChart(labels ...string) Chart {
	ch := Chart{
		Width:     600,
		Height:    400,
		TitleSize: 16,
		Labels:    labels,
		Style:     DefaultStyle(),
		Grid:      DefaultGrid(),
		Point:     GetCircle,
	}
	ch.Padding = Padding{
		Top:    40,
		Right:  60,
		Bottom: 40,
		Left:   60,
	}
	ch.Legend.Orient = OrientRight | OrientTop
	return ch
}

func (c Chart) DrawingWidth() float64 {
	return c.Width - c.Padding.Horizontal()
}

func (c Chart) DrawingHeight() float64 {
	return c.Height - c.Padding.Vertical()
}

// Render validates the given series against the labels of the chart and
// writes the rendered document to w. Nothing is written when validation
// fails.
func (c Chart) Render(w io.Writer, series ...Serie) error {
	series, err := c.prepare(series)
	if err != nil {
		return err
	}
	var (
		angle  = slices.Fst(series).Angle
		radius = slices.Fst(series).Radius
	)
	el := svg.NewSVG(svg.WithDimension(c.Width, c.Height))
	el.OmitProlog = true

	area := svg.NewGroup(svg.WithID("radar"), svg.WithTranslate(c.centerX(), c.centerY()))
	if c.Grid.Show {
		area.Append(c.drawGrid(angle, radius))
	}
	area.Append(c.drawLabels(angle, radius))
	for _, s := range series {
		area.Append(s.Render())
	}
	el.Append(area.AsElement())
	if len(series) > 1 || c.Legend.Title != "" {
		if lg := c.drawLegend(series); lg != nil {
			el.Append(lg)
		}
	}
	if c.Title != "" {
		el.Append(c.drawTitle())
	}

	bw := bufio.NewWriter(w)
	el.Render(bw)
	return bw.Flush()
}

// Save renders the chart into the file given by path. The format is plain
// SVG whatever the extension of the path.
func (c Chart) Save(path string, series ...Serie) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return c.Render(f, series...)
}

// Draw renders one polygon per value serie with default styling and a
// legend entry per group. It is a shortcut over Chart for the common case.
func Draw(w io.Writer, labels []string, values [][]float64, groups []string) error {
	if len(groups) > 0 && len(groups) != len(values) {
		return fmt.Errorf("%w: %d series given for %d groups", ErrDimension, len(values), len(groups))
	}
	var series []Serie
	for i, vs := range values {
		title := fmt.Sprintf("serie %d", i+1)
		if len(groups) > 0 {
			title = groups[i]
		}
		series = append(series, makeSerie(title, labels, vs))
	}
	ch := DefaultChart(labels...)
	return ch.Render(w, series...)
}

func (c Chart) prepare(series []Serie) ([]Serie, error) {
	if len(c.Labels) < 3 {
		return nil, fmt.Errorf("%w: a polygon needs at least 3 labels, got %d", ErrDimension, len(c.Labels))
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("no serie given")
	}
	for _, s := range series {
		if len(s.Points) != len(c.Labels) {
			return nil, fmt.Errorf("%w: serie %s has %d points for %d labels", ErrDimension, s.Title, len(s.Points), len(c.Labels))
		}
	}
	var (
		angle  = c.Angle
		radius = c.Radius
	)
	if angle == nil {
		angle = AngleScaler(c.Labels, NewRange(0, Fullturn))
	}
	if radius == nil {
		radius = NumberScaler(NumberDomain(0, maxValue(series)), NewRange(0, c.radius()))
	}
	for i := range series {
		if series[i].Angle == nil {
			series[i].Angle = angle
		}
		if series[i].Radius == nil {
			series[i].Radius = radius
		}
		if series[i].Color == "" {
			series[i].Color = c.Fill.List.Color(i)
		}
		if series[i].Renderer == nil {
			series[i].Renderer = PolygonRenderer{
				Fill:    true,
				Opacity: c.Fill.Opacity,
				Width:   c.Line.Width,
				Style:   c.Line.Style,
				Point:   c.Point,
			}
		}
	}
	return series, nil
}

func (c Chart) drawGrid(angle Scaler[string], radius Scaler[float64]) svg.Element {
	var (
		grp    = getBaseGroup("", "grid")
		stroke = svg.NewStroke(c.Grid.Color, c.Grid.Width)
		ticks  = c.Grid.Ticks
	)
	if ticks <= 0 {
		ticks = 5
	}
	c.Grid.Style.setStroke(&stroke)
	for i := range angle.Values(0) {
		var (
			ang = spokeAngle(angle, i)
			li  = svg.NewLine(svg.NewPos(0, 0), getPosFromAngle(ang, radius.Max()))
		)
		li.Stroke = stroke
		grp.Append(li.AsElement())
	}
	for _, v := range slices.Rest(radius.Values(ticks)) {
		if c.Grid.Angular {
			var ci svg.Circle
			ci.Radius = radius.Scale(v)
			ci.Fill = svg.NewFill("none")
			ci.Stroke = stroke
			grp.Append(ci.AsElement())
		} else {
			grp.Append(c.drawRing(angle, radius.Scale(v), stroke))
		}
		if c.TickLabels {
			grp.Append(tickText(v, radius.Scale(v)))
		}
	}
	return grp.AsElement()
}

func (c Chart) drawRing(angle Scaler[string], radius float64, stroke svg.Stroke) svg.Element {
	var pat svg.Path
	pat.Rendering = "geometricPrecision"
	pat.Fill = svg.NewFill("none")
	pat.Stroke = stroke
	for i := range angle.Values(0) {
		pos := getPosFromAngle(spokeAngle(angle, i), radius)
		if i == 0 {
			pat.AbsMoveTo(pos)
		} else {
			pat.AbsLineTo(pos)
		}
	}
	pat.ClosePath()
	return pat.AsElement()
}

func (c Chart) drawLabels(angle Scaler[string], radius Scaler[float64]) svg.Element {
	grp := svg.NewGroup(svg.WithID("labels"))
	grp.Fill = svg.NewFill(c.Text.Color)
	font := svg.NewFont(c.Text.Size)
	for i, label := range angle.Values(0) {
		var (
			ang = spokeAngle(angle, i)
			pos = getPosFromAngle(ang, radius.Max()+c.Text.Pad)
		)
		txt := svg.NewText(label)
		txt.Pos = pos
		txt.Font = font
		txt.Anchor = textAnchor(ang)
		txt.Baseline = textBaseline(ang)
		grp.Append(txt.AsElement())
	}
	return grp.AsElement()
}

func (c Chart) drawLegend(series []Serie) svg.Element {
	var (
		offset = FontSize * 1.4
		height = float64(len(series)) * offset
		width  float64
		grp    svg.Group
	)
	if c.Legend.Title != "" {
		height += offset
	}
	for i, s := range series {
		if n := float64(len(s.Title)); i == 0 || n > width {
			width = n
		}
		var g svg.Group
		g.Transform = svg.Translate(0, float64(i)*offset)
		li := svg.NewLine(svg.NewPos(0, 0), svg.NewPos(20, 0))
		li.Stroke = svg.NewStroke(s.Color, 1)

		tx := svg.NewText(s.Title)
		tx.Pos = svg.NewPos(30, 0)
		tx.Font = svg.NewFont(FontSize)
		tx.Baseline = "middle"

		g.Append(li.AsElement())
		g.Append(tx.AsElement())
		grp.Append(g.AsElement())
	}
	width *= FontSize * 0.4

	var left, top float64
	switch c.Legend.Orient {
	case OrientRight:
		left = c.Width - c.Padding.Right - width
		top = (c.Height - height) / 2
	case OrientRight | OrientBottom:
		left = c.Width - c.Padding.Right - width
		top = c.Height - c.Padding.Bottom - height
	case OrientBottom:
		left = (c.Width - width) / 2
		top = c.Height - c.Padding.Bottom - height
	case OrientLeft | OrientBottom:
		left = c.Padding.Left
		top = c.Height - c.Padding.Bottom - height
	case OrientLeft:
		left = c.Padding.Left
		top = (c.Height - height) / 2
	case OrientLeft | OrientTop:
		left = c.Padding.Left
		top = c.Padding.Top
	case OrientTop:
		left = (c.Width - width) / 2
		top = c.Padding.Top
	case OrientRight | OrientTop:
		left = c.Width - c.Padding.Right - width
		top = c.Padding.Top
	default:
		return nil
	}
	grp.Transform = svg.Translate(left, top)
	return grp.AsElement()
}

func (c Chart) drawTitle() svg.Element {
	size := c.TitleSize
	if size <= 0 {
		size = 16
	}
	options := []svg.Option{
		svg.WithPosition(c.Width/2, size*1.4),
		svg.WithFont(svg.NewFont(size)),
		svg.WithAnchor("middle"),
	}
	txt := svg.NewText(c.Title, options...)
	return txt.AsElement()
}

func (c Chart) centerX() float64 {
	return c.Padding.Left + c.DrawingWidth()/2
}

func (c Chart) centerY() float64 {
	return c.Padding.Top + c.DrawingHeight()/2
}

func (c Chart) radius() float64 {
	r := c.DrawingWidth()
	if h := c.DrawingHeight(); h < r {
		r = h
	}
	return r / 2
}

func tickText(v, radius float64) svg.Element {
	txt := svg.NewText(strconv.FormatFloat(v, 'f', -1, 64))
	txt.Pos = svg.NewPos(FontSize*0.4, -radius)
	txt.Font = svg.NewFont(FontSize * 0.8)
	txt.Anchor = "start"
	txt.Baseline = "middle"
	return txt.AsElement()
}

func textAnchor(angle float64) string {
	x := math.Cos(angle)
	switch {
	case x > 0.1:
		return "start"
	case x < -0.1:
		return "end"
	default:
		return "middle"
	}
}

func textBaseline(angle float64) string {
	y := math.Sin(angle)
	switch {
	case y > 0.1:
		return "hanging"
	case y < -0.1:
		return "auto"
	default:
		return "middle"
	}
}

func maxValue(series []Serie) float64 {
	var max float64
	for _, s := range series {
		for _, pt := range s.Points {
			if pt.Y > max {
				max = pt.Y
			}
		}
	}
	if max == 0 {
		max = 1
	}
	return max
}
