// Package svg turns composed chart layouts into standalone SVG
// documents. The output embeds its styling, so the file works in a
// browser, a README or an <img> tag with nothing else around it.
package svg

import (
	"fmt"
	"strings"

	"gantt-planner/internal/chart"
)

const (
	barRadius    = 3.0
	labelPadding = 6.0
	// minLabelWidth is the narrowest bar that still gets an inline
	// name label; anything narrower keeps only the tooltip.
	minLabelWidth = 70.0
)

// Renderer draws chart layouts with a fixed theme. Safe for concurrent
// use, the theme is never mutated after construction.
type Renderer struct {
	theme Theme
}

// NewRenderer creates a Renderer with the given theme.
func NewRenderer(theme Theme) *Renderer {
	return &Renderer{theme: theme}
}

// Render produces a complete SVG document for one layout.
func (r *Renderer) Render(out chart.LayoutOutput) string {
	width := out.PixelsPerDay * float64(out.Window.Days())
	headerH := float64(r.theme.HeaderHeight)

	bodyH := out.TotalHeight
	if out.Empty {
		bodyH = 2 * chart.RowHeight
	}
	height := headerH + bodyH

	var svg strings.Builder
	svg.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg width="%.0f" height="%.0f" xmlns="http://www.w3.org/2000/svg">
<rect width="100%%" height="100%%" fill="%s"/>
<defs>
<style>
.header-text { font-family: %s; font-size: %dpx; fill: %s; }
.bar-text { font-family: %s; font-size: %dpx; fill: %s; }
.empty-text { font-family: %s; font-size: %dpx; fill: %s; text-anchor: middle; }
</style>
</defs>
`, width, height, r.theme.Colors.Background,
		r.theme.Font.Family, r.theme.Font.Size, r.theme.Colors.HeaderText,
		r.theme.Font.Family, r.theme.Font.Size, r.theme.Colors.BarText,
		r.theme.Font.Family, r.theme.Font.Size+2, r.theme.Colors.HeaderText))

	r.writeBands(&svg, out, headerH, bodyH)
	r.writeHeader(&svg, out, headerH, height)

	if out.Empty {
		svg.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" class="empty-text">No tasks to display</text>`+"\n",
			width/2, headerH+chart.RowHeight))
	} else {
		r.writeBars(&svg, out, headerH)
	}

	svg.WriteString("</svg>")
	return svg.String()
}

// writeBands draws the weekend and vacation shading under everything
// else. The group swallows no clicks, bars behind a band stay
// reachable.
func (r *Renderer) writeBands(svg *strings.Builder, out chart.LayoutOutput, headerH, bodyH float64) {
	if len(out.Bands) == 0 {
		return
	}

	svg.WriteString(`<g pointer-events="none">` + "\n")
	for _, band := range out.Bands {
		fill := r.theme.Colors.Weekend
		if band.Kind == chart.BandVacation {
			fill = r.theme.Colors.Vacation
		}
		svg.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
			band.X, headerH, band.Width, bodyH, fill))
	}
	svg.WriteString("</g>\n")
}

// writeHeader draws one grid line and one label per tick.
func (r *Renderer) writeHeader(svg *strings.Builder, out chart.LayoutOutput, headerH, height float64) {
	for _, tick := range out.Ticks {
		svg.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1"/>`+"\n",
			tick.X, headerH, tick.X, height, r.theme.Colors.GridLine))
		svg.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" class="header-text">%s</text>`+"\n",
			tick.X+labelPadding, headerH-labelPadding, escapeXML(tick.Label)))
	}
}

func (r *Renderer) writeBars(svg *strings.Builder, out chart.LayoutOutput, headerH float64) {
	for _, bar := range out.Bars {
		fill := r.theme.barFill(bar.Color, bar.Status)
		y := headerH + bar.Y + chart.RowGutter/2

		svg.WriteString(fmt.Sprintf(`<g><rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="%.0f" fill="%s"><title>%s</title></rect>`,
			bar.X, y, bar.Width, bar.Height, barRadius, fill, escapeXML(bar.Name)))
		if bar.Width >= minLabelWidth {
			svg.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" class="bar-text">%s</text>`,
				bar.X+labelPadding, y+bar.Height/2+4, escapeXML(bar.Name)))
		}
		svg.WriteString("</g>\n")
	}
}

// escapeXML escapes the characters that would break the document when
// task names or labels contain markup.
func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
