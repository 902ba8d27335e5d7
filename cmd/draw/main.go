package main

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/midbel/radar"
	"golang.org/x/sync/errgroup"
)

const (
	defaultWidth  = 600
	defaultHeight = 400
	defaultTicks  = 5
)

func main() {
	var (
		title   = flag.String("title", "", "chart title")
		width   = flag.Float64("width", defaultWidth, "chart width")
		height  = flag.Float64("height", defaultHeight, "chart height")
		labels  = flag.String("labels", "", "comma separated list of labels")
		opacity = flag.Float64("fill-opacity", 0.25, "opacity of the polygon fill")
		line    = flag.Float64("line-width", 1, "width of the polygon outline")
		marker  = flag.String("marker", "circle", "marker drawn at each vertex")
		size    = flag.Float64("marker-size", radar.MarkerSize, "size of the markers")
		pad     = flag.Float64("label-padding", 25, "distance between labels and chart")
		nogrid  = flag.Bool("no-grid", false, "remove the grid")
		dashed  = flag.Bool("dashed", false, "draw the grid with dashed lines")
		gcolor  = flag.String("grid-color", "#888888", "color of the grid")
		gwidth  = flag.Float64("grid-width", 0.3, "line width of the grid")
		gticks  = flag.Int("grid-ticks", defaultTicks, "number of rings drawn by the grid")
		ticks   = flag.Bool("ticks", false, "show values along the radial axis")
		legend  = flag.String("legend", "top-right", "placement of the legend")
		xcol    = flag.Int("xcol", 0, "index of label column")
		ycol    = flag.Int("ycol", 1, "index of value column")
		result  = flag.String("file", "", "output file")
	)
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "no input file given")
		os.Exit(1)
	}
	series, err := loadSeries(flag.Args(), *xcol, *ycol)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ch := radar.DefaultChart()
	ch.Title = *title
	ch.Width = *width
	ch.Height = *height
	ch.Labels = getLabels(*labels, series)
	ch.Fill.Opacity = *opacity
	ch.Line.Width = *line
	ch.Text.Pad = *pad
	ch.Grid.Show = !*nogrid
	ch.Grid.Color = *gcolor
	ch.Grid.Width = *gwidth
	ch.Grid.Ticks = *gticks
	ch.TickLabels = *ticks
	ch.Point = radar.GetPointFunc(*marker)
	ch.Legend.Orient = getOrient(*legend)
	if *dashed {
		ch.Grid.Style = radar.StyleDashed
	}
	radar.MarkerSize = *size

	if err := renderChart(*result, ch, series); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func renderChart(file string, ch radar.Chart, series []radar.Serie) error {
	var w io.Writer = os.Stdout
	if file != "" {
		f, err := os.Create(file)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return ch.Render(w, series...)
}

func loadSeries(files []string, xcol, ycol int) ([]radar.Serie, error) {
	var (
		grp    errgroup.Group
		series = make([]radar.Serie, len(files))
	)
	for i := range files {
		i := i
		grp.Go(func() error {
			ser, err := readSerie(files[i], xcol, ycol)
			if err != nil {
				return fmt.Errorf("%s: %w", files[i], err)
			}
			series[i] = ser
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return series, nil
}

func readSerie(file string, xcol, ycol int) (radar.Serie, error) {
	ser := radar.NewSerie(getIdent(file))

	r, err := os.Open(file)
	if err != nil {
		return ser, err
	}
	defer r.Close()

	rs := csv.NewReader(r)
	for {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return ser, err
		}
		if xcol < 0 || xcol >= len(row) || ycol < 0 || ycol >= len(row) {
			return ser, fmt.Errorf("invalid x/y index columns given")
		}
		v, err := strconv.ParseFloat(row[ycol], 64)
		if err != nil {
			return ser, err
		}
		ser.Points = append(ser.Points, radar.CategoryPoint(row[xcol], v))
	}
	return ser, nil
}

func getLabels(str string, series []radar.Serie) []string {
	if str != "" {
		return strings.Split(str, ",")
	}
	var labels []string
	if len(series) > 0 {
		for _, pt := range series[0].Points {
			labels = append(labels, pt.X)
		}
	}
	return labels
}

func getOrient(str string) radar.Orientation {
	switch str {
	case "top":
		return radar.OrientTop
	case "bottom":
		return radar.OrientBottom
	case "left":
		return radar.OrientLeft
	case "right":
		return radar.OrientRight
	case "top-left":
		return radar.OrientTop | radar.OrientLeft
	case "bottom-left":
		return radar.OrientBottom | radar.OrientLeft
	case "bottom-right":
		return radar.OrientBottom | radar.OrientRight
	default:
		return radar.OrientTop | radar.OrientRight
	}
}

func getIdent(file string) string {
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
