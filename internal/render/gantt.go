// Package render exports a laid-out timeline as a standalone SVG document.
package render

import (
	"fmt"
	"strings"

	"taskflow/internal/timeline"
)

// GanttSVG draws the chart: a day header, weekend shading, the today
// marker, and one bar per task with its progress. Bars that start before
// the window are drawn at their negative offset and clipped by the canvas.
func GanttSVG(l timeline.Layout, title string, theme Theme) string {
	g := l.Grid
	header := float64(theme.HeaderHeight)
	width := g.Width
	height := header + l.Height

	var svg strings.Builder
	fmt.Fprintf(&svg, `<?xml version="1.0" encoding="UTF-8"?>
<svg width="%s" height="%s" viewBox="0 0 %s %s" xmlns="http://www.w3.org/2000/svg">
<title>%s</title>
<defs>
<style>
.day { font-family: %s; font-size: %dpx; fill: %s; text-anchor: middle; }
.bar-title { font-family: %s; font-size: %dpx; fill: #ffffff; }
</style>
<clipPath id="canvas"><rect x="0" y="%s" width="%s" height="%s"/></clipPath>
</defs>
<rect width="100%%" height="100%%" fill="%s"/>
`,
		px(width), px(height), px(width), px(height),
		escapeXML(title),
		escapeXML(theme.Font.Family), theme.Font.Size-2, escapeXML(theme.Colors.Text),
		escapeXML(theme.Font.Family), theme.Font.Size,
		px(header), px(width), px(l.Height),
		escapeXML(theme.Colors.Background))

	for _, d := range g.Days {
		if d.Weekend {
			fmt.Fprintf(&svg, `<rect x="%s" y="0" width="%s" height="%s" fill="%s"/>`+"\n",
				px(d.Left), px(g.DayWidth), px(height), escapeXML(theme.Colors.Weekend))
		}
		fmt.Fprintf(&svg, `<line x1="%s" y1="0" x2="%s" y2="%s" stroke="%s"/>`+"\n",
			px(d.Left), px(d.Left), px(height), escapeXML(theme.Colors.Grid))
		fmt.Fprintf(&svg, `<text class="day" x="%s" y="%s">%d</text>`+"\n",
			px(d.Left+g.DayWidth/2), px(header/2+4), d.Date.Day())
	}
	fmt.Fprintf(&svg, `<line x1="0" y1="%s" x2="%s" y2="%s" stroke="%s"/>`+"\n",
		px(header), px(width), px(header), escapeXML(theme.Colors.Grid))

	if g.TodayOffset != nil {
		x := *g.TodayOffset + g.DayWidth/2
		fmt.Fprintf(&svg, `<line class="today" x1="%s" y1="0" x2="%s" y2="%s" stroke="%s" stroke-width="2"/>`+"\n",
			px(x), px(x), px(height), escapeXML(theme.Colors.Today))
	}

	svg.WriteString(`<g clip-path="url(#canvas)">` + "\n")
	for _, b := range l.Bars {
		y := header + b.Top
		fmt.Fprintf(&svg, `<g class="bar" data-task-id="%s" opacity="%s">`+"\n", b.TaskID, num(theme.barOpacity(b.Status)))
		fmt.Fprintf(&svg, `<rect x="%s" y="%s" width="%s" height="%s" rx="4" fill="%s"/>`+"\n",
			px(b.Left), px(y), px(b.Width), px(b.Height), escapeXML(theme.barColor(b.Priority)))
		if b.Progress > 0 {
			fmt.Fprintf(&svg, `<rect x="%s" y="%s" width="%s" height="%s" rx="4" fill="%s" fill-opacity="0.3"/>`+"\n",
				px(b.Left), px(y), px(b.Width*float64(b.Progress)/100), px(b.Height), escapeXML(theme.Colors.Progress))
		}
		fmt.Fprintf(&svg, `<text class="bar-title" x="%s" y="%s">%s</text>`+"\n",
			px(b.Left+timeline.HandleWidth), px(y+b.Height/2+4), escapeXML(b.Title))
		svg.WriteString("</g>\n")
	}
	svg.WriteString("</g>\n</svg>\n")
	return svg.String()
}

func px(v float64) string {
	return num(v)
}

func num(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}

func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
