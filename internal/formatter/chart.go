package formatter

import (
	"fmt"
	"html"
	"strings"

	"bookstats/internal/analytics"
)

// ChartOptions sizes the SVG chart.
type ChartOptions struct {
	Title  string
	Width  int
	Height int
}

// DefaultChartOptions matches a 12x6 figure.
func DefaultChartOptions() ChartOptions {
	return ChartOptions{Title: "Daily Revenue Over Time", Width: 960, Height: 480}
}

// DailyChartOptions sizes the chart of the full daily series.
func DailyChartOptions() ChartOptions {
	opts := DefaultChartOptions()
	opts.Title = "Revenue per Day"

	return opts
}

const chartMargin = 60

// RenderChart draws points as an SVG line chart with date on x and revenue on y.
func RenderChart(points []analytics.DayTotal, opts ChartOptions) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		opts.Width, opts.Height, opts.Width, opts.Height)
	sb.WriteString(`<rect width="100%" height="100%" fill="white"/>` + "\n")
	fmt.Fprintf(&sb, `<text x="%d" y="%d" text-anchor="middle" font-size="18">%s</text>`+"\n",
		opts.Width/2, chartMargin/2, html.EscapeString(opts.Title))

	left, right := chartMargin, opts.Width-chartMargin
	top, bottom := chartMargin, opts.Height-chartMargin

	fmt.Fprintf(&sb, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="black"/>`+"\n", left, bottom, right, bottom)
	fmt.Fprintf(&sb, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="black"/>`+"\n", left, top, left, bottom)
	fmt.Fprintf(&sb, `<text x="%d" y="%d" text-anchor="middle" font-size="14">Date</text>`+"\n",
		opts.Width/2, opts.Height-10)
	fmt.Fprintf(&sb, `<text x="15" y="%d" font-size="14" transform="rotate(-90 15 %d)" text-anchor="middle">Revenue</text>`+"\n",
		opts.Height/2, opts.Height/2)

	if len(points) > 0 {
		writeSeries(&sb, points, left, right, top, bottom)
	}

	sb.WriteString("</svg>\n")

	return sb.String()
}

func writeSeries(sb *strings.Builder, points []analytics.DayTotal, left, right, top, bottom int) {
	lo, hi := points[0].Total.InexactFloat64(), points[0].Total.InexactFloat64()
	for _, p := range points[1:] {
		v := p.Total.InexactFloat64()
		lo = min(lo, v)
		hi = max(hi, v)
	}

	if hi == lo {
		hi = lo + 1
	}

	x := func(i int) float64 {
		if len(points) == 1 {
			return float64(left+right) / 2
		}

		return float64(left) + float64(i)*float64(right-left)/float64(len(points)-1)
	}
	y := func(v float64) float64 {
		return float64(bottom) - (v-lo)/(hi-lo)*float64(bottom-top)
	}

	coords := make([]string, 0, len(points))
	for i, p := range points {
		coords = append(coords, fmt.Sprintf("%.1f,%.1f", x(i), y(p.Total.InexactFloat64())))
	}

	fmt.Fprintf(sb, `<polyline fill="none" stroke="steelblue" stroke-width="2" points="%s"/>`+"\n",
		strings.Join(coords, " "))

	for i, p := range points {
		px, py := x(i), y(p.Total.InexactFloat64())
		fmt.Fprintf(sb, `<circle cx="%.1f" cy="%.1f" r="4" fill="steelblue"><title>%s: %s</title></circle>`+"\n",
			px, py, p.Date, p.Total.StringFixed(2))
		fmt.Fprintf(sb, `<text x="%.1f" y="%d" text-anchor="middle" font-size="11">%s</text>`+"\n",
			px, bottom+18, p.Date)
	}

	fmt.Fprintf(sb, `<text x="%d" y="%d" text-anchor="end" font-size="11">%.2f</text>`+"\n", left-5, bottom, lo)
	fmt.Fprintf(sb, `<text x="%d" y="%d" text-anchor="end" font-size="11">%.2f</text>`+"\n", left-5, top, hi)
}
