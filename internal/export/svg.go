package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/chamber/internal/event"
	"github.com/san-kum/chamber/internal/numbering"
	"github.com/san-kum/chamber/internal/particle"
	"github.com/san-kum/chamber/internal/render"
	"github.com/san-kum/chamber/internal/viz"
)

// SVG renders an event to a standalone SVG document. The same draw pass
// feeds the terminal canvas, so the picture matches what the viewer shows,
// minus the pointer overlay.
func SVG(ev *event.Event, nums *numbering.Map, mode render.Mode, theme viz.Theme, width, height int) string {
	v := render.View{W: width, H: height, Scale: 1}
	frame := render.Draw(ev, nums, v, mode, nil)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a12"/>
`, width, height, width, height))

	for _, op := range frame.Ops {
		if len(op.Points) < 2 {
			continue
		}
		stroke := strokeColor(theme, op.Class, op.Dim)
		attrs := fmt.Sprintf(`fill="none" stroke="%s" stroke-width="1.5"`, stroke)
		if op.Dashed {
			attrs += ` stroke-dasharray="4 3"`
		}
		if op.Dim {
			attrs += ` opacity="0.5"`
		}
		sb.WriteString(fmt.Sprintf(`<path %s d="M`, attrs))
		for i, p := range op.Points {
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", p.X, p.Y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", p.X, p.Y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	for _, l := range frame.Labels {
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s" font-family="monospace" font-size="12">%s</text>
`, l.Pos.X, l.Pos.Y, string(theme.Label), escapeText(l.Text)))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

func strokeColor(theme viz.Theme, class particle.Class, dim bool) string {
	if dim {
		return string(theme.Neutral)
	}
	switch class {
	case particle.Baryon:
		return string(theme.Baryon)
	case particle.Meson:
		return string(theme.Meson)
	case particle.Lepton:
		return string(theme.Lepton)
	case particle.Boson:
		return string(theme.Boson)
	}
	return string(theme.Muted)
}

func escapeText(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
