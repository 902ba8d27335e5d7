package decode

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/midbel/radar"
)

// Input is one serie to be loaded from a csv file: rows of label,value
// pairs with the label in column X and the value in column Y.
type Input struct {
	Path string
	Name string
	X    int
	Y    int
}

type Config struct {
	Chart  radar.Chart
	Marker string
	Files  []Input
	Path   string
}

func Default() Config {
	return Config{
		Chart: radar.DefaultChart(),
	}
}

// Render loads every input file and draws the chart to the configured
// path, or to stdout when no path is set.
func (c Config) Render() error {
	var (
		series []radar.Serie
		labels []string
	)
	for _, in := range c.Files {
		ser, list, err := loadSerie(in)
		if err != nil {
			return err
		}
		if len(labels) == 0 {
			labels = list
		}
		series = append(series, ser)
	}
	ch := c.Chart
	if len(ch.Labels) == 0 {
		ch.Labels = labels
	}
	if c.Marker != "" {
		ch.Point = radar.GetPointFunc(c.Marker)
	}
	if c.Path == "" {
		return ch.Render(os.Stdout, series...)
	}
	return ch.Save(c.Path, series...)
}

func loadSerie(in Input) (radar.Serie, []string, error) {
	var (
		ser    = radar.NewSerie(in.Name)
		labels []string
	)
	r, err := os.Open(in.Path)
	if err != nil {
		return ser, nil, err
	}
	defer r.Close()

	rs := csv.NewReader(r)
	for {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return ser, nil, err
		}
		if in.X >= len(row) || in.Y >= len(row) {
			return ser, nil, fmt.Errorf("%s: invalid label/value columns given", in.Path)
		}
		v, err := strconv.ParseFloat(row[in.Y], 64)
		if err != nil {
			return ser, nil, err
		}
		ser.Points = append(ser.Points, radar.CategoryPoint(row[in.X], v))
		labels = append(labels, row[in.X])
	}
	return ser, labels, nil
}

type Decoder struct {
	file string
	scan *Scanner
	curr Token
	peek Token
}

func NewDecoder(r io.Reader) *Decoder {
	d := Decoder{
		scan: Scan(r),
	}
	if n, ok := r.(interface{ Name() string }); ok {
		d.file = n.Name()
	}
	d.next()
	d.next()
	return &d
}

func (d *Decoder) Decode() (*Config, error) {
	cfg := Default()
	for !d.done() {
		var err error
		switch {
		case d.is(EOL) || d.is(Comment):
			d.next()
		case d.isKw(kwSet):
			err = d.decodeSet(&cfg)
		case d.isKw(kwLoad):
			err = d.decodeLoad(&cfg)
		case d.isKw(kwRender):
			err = d.decodeRender(&cfg)
		default:
			err = d.decodeError("expected set, load or render")
		}
		if err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

func (d *Decoder) decodeSet(cfg *Config) error {
	d.next()
	if !d.is(Literal) {
		return d.decodeError("option name expected after set")
	}
	option := d.curr.Literal
	pos := d.curr.Position
	d.next()

	var err error
	switch option {
	case "title":
		cfg.Chart.Title, err = d.getString()
	case "title-size":
		cfg.Chart.TitleSize, err = d.getFloat()
	case "size":
		cfg.Chart.Width, cfg.Chart.Height, err = d.getPair()
	case "padding":
		err = d.setPadding(cfg)
	case "labels":
		cfg.Chart.Labels, err = d.getStrings()
	case "grid":
		err = d.setGrid(cfg)
	case "grid-color":
		cfg.Chart.Grid.Color, err = d.getString()
	case "grid-width":
		cfg.Chart.Grid.Width, err = d.getFloat()
	case "grid-ticks":
		cfg.Chart.Grid.Ticks, err = d.getInt()
	case "fill-opacity":
		cfg.Chart.Fill.Opacity, err = d.getFloat()
	case "line-width":
		cfg.Chart.Line.Width, err = d.getFloat()
	case "label-size":
		cfg.Chart.Text.Size, err = d.getFloat()
	case "label-color":
		cfg.Chart.Text.Color, err = d.getString()
	case "label-padding":
		cfg.Chart.Text.Pad, err = d.getFloat()
	case "ticks":
		cfg.Chart.TickLabels, err = d.getBool()
	case "marker":
		cfg.Marker, err = d.getString()
	case "legend":
		err = d.setLegend(cfg)
	case "legend-title":
		cfg.Chart.Legend.Title, err = d.getString()
	default:
		return OptionError{
			Option:   option,
			Position: pos,
		}
	}
	if err != nil {
		return err
	}
	return d.eol()
}

func (d *Decoder) decodeLoad(cfg *Config) error {
	d.next()
	path, err := d.getString()
	if err != nil {
		return err
	}
	in := Input{
		Path: path,
		Name: ident(path),
		Y:    1,
	}
	if d.isKw(kwAs) {
		d.next()
		in.Name, err = d.getString()
		if err != nil {
			return err
		}
	}
	if d.isKw(kwUsing) {
		d.next()
		in.X, in.Y, err = d.getColumns()
		if err != nil {
			return err
		}
	}
	cfg.Files = append(cfg.Files, in)
	return d.eol()
}

func (d *Decoder) decodeRender(cfg *Config) error {
	d.next()
	if d.isKw(kwTo) {
		d.next()
		path, err := d.getString()
		if err != nil {
			return err
		}
		cfg.Path = path
	}
	return d.eol()
}

func (d *Decoder) setPadding(cfg *Config) error {
	values, err := d.getFloats()
	if err != nil {
		return err
	}
	pad := &cfg.Chart.Padding
	switch len(values) {
	case 1:
		pad.Top, pad.Right, pad.Bottom, pad.Left = values[0], values[0], values[0], values[0]
	case 2:
		pad.Top, pad.Bottom = values[0], values[0]
		pad.Right, pad.Left = values[1], values[1]
	case 4:
		pad.Top, pad.Right, pad.Bottom, pad.Left = values[0], values[1], values[2], values[3]
	default:
		return d.decodeError("padding wants 1, 2 or 4 values")
	}
	return nil
}

func (d *Decoder) setGrid(cfg *Config) error {
	str, err := d.getString()
	if err != nil {
		return err
	}
	switch str {
	case "off", "none":
		cfg.Chart.Grid.Show = false
	case "on":
		cfg.Chart.Grid.Show = true
	case "straight":
		cfg.Chart.Grid.Style = radar.StyleStraight
	case "dotted":
		cfg.Chart.Grid.Style = radar.StyleDotted
	case "dashed":
		cfg.Chart.Grid.Style = radar.StyleDashed
	case "angular":
		cfg.Chart.Grid.Angular = true
	default:
		return d.decodeError(fmt.Sprintf("%s: unknown grid setting", str))
	}
	return nil
}

func (d *Decoder) setLegend(cfg *Config) error {
	str, err := d.getString()
	if err != nil {
		return err
	}
	switch str {
	case "none":
		cfg.Chart.Legend.Orient = 0
	case "top":
		cfg.Chart.Legend.Orient = radar.OrientTop
	case "bottom":
		cfg.Chart.Legend.Orient = radar.OrientBottom
	case "left":
		cfg.Chart.Legend.Orient = radar.OrientLeft
	case "right":
		cfg.Chart.Legend.Orient = radar.OrientRight
	case "top-left":
		cfg.Chart.Legend.Orient = radar.OrientTop | radar.OrientLeft
	case "top-right":
		cfg.Chart.Legend.Orient = radar.OrientTop | radar.OrientRight
	case "bottom-left":
		cfg.Chart.Legend.Orient = radar.OrientBottom | radar.OrientLeft
	case "bottom-right":
		cfg.Chart.Legend.Orient = radar.OrientBottom | radar.OrientRight
	default:
		return d.decodeError(fmt.Sprintf("%s: unknown legend placement", str))
	}
	return nil
}

func (d *Decoder) getString() (string, error) {
	if !d.is(Literal) {
		return "", d.decodeError("literal expected")
	}
	str := d.curr.Literal
	d.next()
	return str, nil
}

func (d *Decoder) getFloat() (float64, error) {
	pos := d.curr.Position
	str, err := d.getString()
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, DecodeError{
			Message:  fmt.Sprintf("%s: not a number", str),
			Position: pos,
		}
	}
	return f, nil
}

func (d *Decoder) getInt() (int, error) {
	pos := d.curr.Position
	str, err := d.getString()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(str)
	if err != nil {
		return 0, DecodeError{
			Message:  fmt.Sprintf("%s: not a number", str),
			Position: pos,
		}
	}
	return n, nil
}

func (d *Decoder) getBool() (bool, error) {
	str, err := d.getString()
	if err != nil {
		return false, err
	}
	switch str {
	case "on", "true", "yes":
		return true, nil
	case "off", "false", "no":
		return false, nil
	default:
		return false, d.decodeError(fmt.Sprintf("%s: not a boolean value", str))
	}
}

func (d *Decoder) getPair() (float64, float64, error) {
	fst, err := d.getFloat()
	if err != nil {
		return 0, 0, err
	}
	if d.is(Comma) {
		d.next()
	}
	lst, err := d.getFloat()
	if err != nil {
		return 0, 0, err
	}
	return fst, lst, nil
}

func (d *Decoder) getColumns() (int, int, error) {
	x, err := d.getInt()
	if err != nil {
		return 0, 0, err
	}
	if d.is(Comma) {
		d.next()
	}
	y, err := d.getInt()
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func (d *Decoder) getStrings() ([]string, error) {
	var list []string
	for !d.is(EOL) && !d.done() {
		str, err := d.getString()
		if err != nil {
			return nil, err
		}
		list = append(list, str)
		if d.is(Comma) {
			d.next()
		}
	}
	return list, nil
}

func (d *Decoder) getFloats() ([]float64, error) {
	var list []float64
	for !d.is(EOL) && !d.done() {
		f, err := d.getFloat()
		if err != nil {
			return nil, err
		}
		list = append(list, f)
		if d.is(Comma) {
			d.next()
		}
	}
	return list, nil
}

func (d *Decoder) eol() error {
	if d.is(Comment) {
		d.next()
	}
	if !d.is(EOL) && !d.done() {
		return d.decodeError("expected end of line")
	}
	d.next()
	return nil
}

func (d *Decoder) decodeError(message string) error {
	return DecodeError{
		Message:  message,
		Position: d.curr.Position,
	}
}

func (d *Decoder) is(kind rune) bool {
	return d.curr.Type == kind
}

func (d *Decoder) isKw(kw string) bool {
	return d.curr.Type == Keyword && d.curr.Literal == kw
}

func (d *Decoder) done() bool {
	return d.is(EOF)
}

func (d *Decoder) next() {
	d.curr = d.peek
	d.peek = d.scan.Scan()
}

func ident(file string) string {
	file = filepath.Base(file)
	for {
		e := filepath.Ext(file)
		if e == "" {
			break
		}
		file = strings.TrimSuffix(file, e)
	}
	return file
}
