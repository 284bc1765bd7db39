package render

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"

	"github.com/salesplot-dev/salesplot/internal/chartdata"
)

// Canvas defaults for the combined chart artifact.
const (
	DefaultWidth  = 1024
	DefaultHeight = 768
)

const (
	marginLeft   = 90.0
	marginRight  = 40.0
	marginTop    = 64.0
	marginBottom = 56.0

	titleOffsetY = 30.0
	gridLines    = 4
	barGapRatio  = 0.35 // share of each slot left as spacing
	pointRadius  = 4.0
	plotLineW    = 2.0
	labelOffsetY = 20.0
	valueOffsetY = 10.0

	titleFontSize = 22.0
	labelFontSize = 13.0
)

var (
	axisColor = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	gridColor = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	lineColor = color.RGBA{R: 196, G: 30, B: 58, A: 255}
	barColor  = color.RGBA{R: 54, G: 94, B: 173, A: 255}
)

// Options controls the rendered artifact. Zero Width/Height fall back to
// the defaults.
type Options struct {
	OutputPath string
	Width      int
	Height     int
}

// area is a pixel-space rectangle one chart is drawn into.
type area struct {
	x, y, w, h float64
}

// plot returns the inner plotting rectangle after margins.
func (a area) plot() area {
	return area{
		x: a.x + marginLeft,
		y: a.y + marginTop,
		w: a.w - marginLeft - marginRight,
		h: a.h - marginTop - marginBottom,
	}
}

// Chart renders the monthly line chart above the product bar chart and
// saves the combined image as one PNG. An empty series renders a "no data"
// placeholder in its half instead of failing.
func Chart(monthly, products chartdata.Series, opts Options) error {
	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()

	fontPath := findFont()

	half := float64(height) / 2
	drawLineChart(dc, fontPath, monthly, area{x: 0, y: 0, w: float64(width), h: half}, "Monthly Sales Trend")
	drawBarChart(dc, fontPath, products, area{x: 0, y: half, w: float64(width), h: half}, "Sales by Product")

	if dir := filepath.Dir(opts.OutputPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}
	if err := dc.SavePNG(opts.OutputPath); err != nil {
		return fmt.Errorf("saving chart: %w", err)
	}
	return nil
}

func drawLineChart(dc *gg.Context, fontPath string, s chartdata.Series, ar area, title string) {
	drawTitle(dc, fontPath, ar, title)
	if s.Empty {
		drawNoData(dc, fontPath, ar)
		return
	}

	pl := ar.plot()
	top := axisTop(s)
	drawFrame(dc, fontPath, pl, top)

	setFont(dc, fontPath, labelFontSize)
	slot := pl.w / float64(len(s.Points))
	var prevX, prevY float64
	for i, p := range s.Points {
		x := pl.x + slot*(float64(i)+0.5)
		y := pl.y + pl.h - (p.Value.InexactFloat64()/top)*pl.h

		if i > 0 {
			dc.SetColor(lineColor)
			dc.SetLineWidth(plotLineW)
			dc.DrawLine(prevX, prevY, x, y)
			dc.Stroke()
		}
		dc.SetColor(lineColor)
		dc.DrawCircle(x, y, pointRadius)
		dc.Fill()

		dc.SetColor(color.Black)
		dc.DrawStringAnchored(p.Value.StringFixed(2), x, y-valueOffsetY, 0.5, 0)
		dc.DrawStringAnchored(p.Label, x, pl.y+pl.h+labelOffsetY, 0.5, 0.5)

		prevX, prevY = x, y
	}
}

func drawBarChart(dc *gg.Context, fontPath string, s chartdata.Series, ar area, title string) {
	drawTitle(dc, fontPath, ar, title)
	if s.Empty {
		drawNoData(dc, fontPath, ar)
		return
	}

	pl := ar.plot()
	top := axisTop(s)
	drawFrame(dc, fontPath, pl, top)

	setFont(dc, fontPath, labelFontSize)
	slot := pl.w / float64(len(s.Points))
	barW := slot * (1 - barGapRatio)
	for i, p := range s.Points {
		center := pl.x + slot*(float64(i)+0.5)
		barH := (p.Value.InexactFloat64() / top) * pl.h

		dc.SetColor(barColor)
		dc.DrawRectangle(center-barW/2, pl.y+pl.h-barH, barW, barH)
		dc.Fill()

		dc.SetColor(color.Black)
		dc.DrawStringAnchored(p.Value.StringFixed(2), center, pl.y+pl.h-barH-valueOffsetY, 0.5, 0)
		dc.DrawStringAnchored(p.Label, center, pl.y+pl.h+labelOffsetY, 0.5, 0.5)
	}
}

// axisTop picks the top of the y-axis: the series maximum, floored at a
// positive value so an all-zero series still has a drawable range. Charts
// always start at zero.
func axisTop(s chartdata.Series) float64 {
	top := s.Max.InexactFloat64()
	if top <= 0 {
		return 1
	}
	return top
}

func drawTitle(dc *gg.Context, fontPath string, ar area, title string) {
	setFont(dc, fontPath, titleFontSize)
	dc.SetColor(color.Black)
	dc.DrawStringAnchored(title, ar.x+ar.w/2, ar.y+titleOffsetY, 0.5, 0.5)
}

// drawFrame draws the axes, horizontal grid lines, and y-axis tick labels.
func drawFrame(dc *gg.Context, fontPath string, pl area, top float64) {
	setFont(dc, fontPath, labelFontSize)
	dc.SetLineWidth(1)
	for i := 0; i <= gridLines; i++ {
		frac := float64(i) / gridLines
		y := pl.y + pl.h - frac*pl.h

		dc.SetColor(gridColor)
		dc.DrawLine(pl.x, y, pl.x+pl.w, y)
		dc.Stroke()

		dc.SetColor(axisColor)
		dc.DrawStringAnchored(fmt.Sprintf("%.2f", frac*top), pl.x-8, y, 1, 0.5)
	}

	dc.SetColor(axisColor)
	dc.DrawLine(pl.x, pl.y, pl.x, pl.y+pl.h)
	dc.DrawLine(pl.x, pl.y+pl.h, pl.x+pl.w, pl.y+pl.h)
	dc.Stroke()
}

func drawNoData(dc *gg.Context, fontPath string, ar area) {
	setFont(dc, fontPath, titleFontSize)
	dc.SetColor(axisColor)
	dc.DrawStringAnchored("no data", ar.x+ar.w/2, ar.y+ar.h/2, 0.5, 0.5)
}

// fontPaths are tried in order; gg's built-in face is the final fallback.
var fontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"/Library/Fonts/Arial.ttf",
}

func findFont() string {
	for _, path := range fontPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// setFont is best-effort; on failure the context keeps its current face.
func setFont(dc *gg.Context, path string, size float64) {
	if path == "" {
		return
	}
	_ = dc.LoadFontFace(path, size)
}
