package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/tslab/internal/analysis"
	"github.com/san-kum/tslab/internal/stochastic"
)

type SVGOptions struct {
	Width, Height int
	Stroke        string
	Title         string
}

func DefaultSVGOptions() SVGOptions {
	return SVGOptions{Width: 800, Height: 300, Stroke: "#00ff00"}
}

// WriteSVG draws s as a polyline with a dashed horizontal line at its mean.
// Series shorter than two points produce an empty chart.
func WriteSVG(w io.Writer, s stochastic.Series, opts SVGOptions) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		d := DefaultSVGOptions()
		opts.Width, opts.Height = d.Width, d.Height
	}
	if opts.Stroke == "" {
		opts.Stroke = DefaultSVGOptions().Stroke
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, opts.Width, opts.Height, opts.Width, opts.Height)

	if opts.Title != "" {
		fmt.Fprintf(&sb, "<title>%s</title>\n", escape(opts.Title))
	}

	if len(s) >= 2 {
		values := s.Values()
		sum := analysis.Summarize(values)

		// 10% padding above and below
		lo, hi := sum.Min, sum.Max
		span := hi - lo
		if span == 0 {
			span = 1
		}
		lo -= span * 0.1
		hi += span * 0.1
		span = hi - lo

		x := func(i int) float64 {
			return float64(i) / float64(len(values)-1) * float64(opts.Width)
		}
		y := func(v float64) float64 {
			return float64(opts.Height) - (v-lo)/span*float64(opts.Height)
		}

		sb.WriteString(`<polyline fill="none" stroke="` + opts.Stroke + `" stroke-width="1.5" points="`)
		for i, v := range values {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%.1f,%.1f", x(i), y(v))
		}
		sb.WriteString("\"/>\n")

		my := y(sum.Mean)
		fmt.Fprintf(&sb, `<line class="mean" x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#888888" stroke-dasharray="4 4"/>
`, my, opts.Width, my)
	}

	sb.WriteString("</svg>\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
