// Package render projects a generated event through the view transform
// into draw operations, label positions and a hover target. Draw is a pure
// function: identical inputs always yield identical frames, and all
// geometry is recomputed per call from the stored track parameters.
package render

import (
	"strconv"

	"github.com/san-kum/chamber/internal/event"
	"github.com/san-kum/chamber/internal/geom"
	"github.com/san-kum/chamber/internal/numbering"
	"github.com/san-kum/chamber/internal/particle"
)

// Mode selects what the labels reveal.
type Mode int

const (
	ModeNumbered   Mode = iota // pre-reveal: shuffled quiz numbers
	ModeIdentified             // post-reveal: true symbols, neutrals dashed
)

const (
	// MinScale and MaxScale bound the multiplicative zoom.
	MinScale = 0.5
	MaxScale = 8.0
	ZoomStep = 1.2

	// LabelRadiusPx is the screen-space hit radius around a label.
	LabelRadiusPx = 12.0
	// OriginThreshold is the chamber-space fallback hit radius.
	OriginThreshold = 0.06

	curveSamples = 48
)

// View is the pan/zoom transform, applied about the viewport center.
type View struct {
	W, H  int
	Scale float64
	PanX  float64
	PanY  float64
}

func NewView(w, h int) View {
	return View{W: w, H: h, Scale: 1}
}

func (v View) span() float64 {
	s := v.W
	if v.H < s {
		s = v.H
	}
	return float64(s)
}

// ToScreen maps a normalized chamber point to screen pixels.
func (v View) ToScreen(p geom.Vec) geom.Vec {
	s := v.span() * v.Scale
	return geom.Vec{
		X: (p.X-0.5)*s + float64(v.W)/2 + v.PanX,
		Y: (p.Y-0.5)*s + float64(v.H)/2 + v.PanY,
	}
}

// ToChamber inverts ToScreen.
func (v View) ToChamber(p geom.Vec) geom.Vec {
	s := v.span() * v.Scale
	return geom.Vec{
		X: (p.X-float64(v.W)/2-v.PanX)/s + 0.5,
		Y: (p.Y-float64(v.H)/2-v.PanY)/s + 0.5,
	}
}

// Zoom applies one multiplicative step, clamped to the fixed range. The
// pan is rescaled by the applied factor so the chamber point under the
// viewport center stays put.
func (v View) Zoom(factor float64) View {
	scale := geom.Clamp(v.Scale*factor, MinScale, MaxScale)
	ratio := scale / v.Scale
	v.PanX *= ratio
	v.PanY *= ratio
	v.Scale = scale
	return v
}

// Pan shifts the view by a direct pixel offset.
func (v View) Pan(dx, dy float64) View {
	v.PanX += dx
	v.PanY += dy
	return v
}

// Op is one polyline to draw, in screen coordinates.
type Op struct {
	Points []geom.Vec
	Class  particle.Class
	Charge int
	Dashed bool
	Dim    bool
}

// Label is an on-screen annotation for one identifiable particle.
type Label struct {
	Pos     geom.Vec // screen coordinates
	Text    string
	Symbol  string
	Seq     int
	Display int
}

// Pointer is the raw pointer position in screen coordinates.
type Pointer struct {
	X, Y float64
}

// Frame is the complete output of one render pass.
type Frame struct {
	Ops    []Op
	Labels []Label
	Hover  *Label
}

// Draw renders every track and, recursively, every nested decay product,
// then resolves the hover target for the pointer (if any).
func Draw(ev *event.Event, nums *numbering.Map, v View, mode Mode, ptr *Pointer) *Frame {
	f := &Frame{}
	if ev == nil {
		return f
	}

	for _, tr := range ev.Tracks {
		drawTrack(f, tr, nums, v, mode)
	}
	f.Hover = hitTest(f.Labels, ev, v, mode, ptr)
	return f
}

func drawTrack(f *Frame, tr *event.Track, nums *numbering.Map, v View, mode Mode) {
	visible := tr.ID.Charge != 0 || mode == ModeIdentified
	if visible {
		f.Ops = append(f.Ops, shapeOp(tr.Shape, v, tr.ID, mode))
	}
	f.Labels = append(f.Labels, makeLabel(tr, nums, v, mode))

	if tr.DecayAt == nil {
		return
	}
	at := *tr.DecayAt
	switch d := tr.Decay.(type) {
	case event.PionDecay:
		drawMuonProduct(f, d.Muon, at, nums, v, mode)
		drawNeutrino(f, d.Neutrino, at, v, mode)
	case event.MuonDecay:
		drawMuonDecay(f, d, at, nums, v, mode)
	case event.NeutronDecay:
		drawNeutrino(f, d.Neutrino, at, v, mode)
	}
}

// drawMuonProduct regenerates the muon arc from its stored parameters and
// chains into its own decay at the arc end.
func drawMuonProduct(f *Frame, m event.MuonProduct, at geom.Vec, nums *numbering.Map, v View, mode Mode) {
	arc := m.Shape(at)
	id := particle.Muon(m.Charge)
	f.Ops = append(f.Ops, shapeOp(arc, v, id, mode))
	f.Labels = append(f.Labels, Label{
		Pos:     v.ToScreen(arc.EndPoint()),
		Text:    labelText(m.Seq, id, nums, mode),
		Symbol:  id.Symbol,
		Seq:     m.Seq,
		Display: nums.Display[m.Seq],
	})
	drawMuonDecay(f, m.Decay, arc.EndPoint(), nums, v, mode)
}

func drawMuonDecay(f *Frame, d event.MuonDecay, at geom.Vec, nums *numbering.Map, v View, mode Mode) {
	spiral := d.Lepton.Shape(at)
	id := particle.ChargedLepton(d.Lepton.Charge)
	f.Ops = append(f.Ops, shapeOp(spiral, v, id, mode))
	f.Labels = append(f.Labels, Label{
		Pos:     v.ToScreen(spiral.EndPoint()),
		Text:    labelText(d.Lepton.Seq, id, nums, mode),
		Symbol:  id.Symbol,
		Seq:     d.Lepton.Seq,
		Display: nums.Display[d.Lepton.Seq],
	})
	drawNeutrino(f, d.NeutrinoA, at, v, mode)
	drawNeutrino(f, d.NeutrinoB, at, v, mode)
}

// drawNeutrino draws an invisible neutral product as a dashed ray to the
// chamber boundary, post-reveal only. Neutrinos carry no label.
func drawNeutrino(f *Frame, n event.NeutrinoRay, at geom.Vec, v View, mode Mode) {
	if mode != ModeIdentified {
		return
	}
	end := geom.RayRectIntersect(at, n.Dir, geom.Chamber)
	ray := geom.Straight(at, n.Dir, end.Dist(at))
	f.Ops = append(f.Ops, Op{
		Points: flatten(ray, v),
		Class:  n.ID.Class,
		Charge: 0,
		Dashed: true,
		Dim:    true,
	})
}

func shapeOp(s geom.Shape, v View, id particle.ID, mode Mode) Op {
	return Op{
		Points: flatten(s, v),
		Class:  id.Class,
		Charge: id.Charge,
		Dashed: id.Charge == 0,
		Dim:    id.Charge == 0 && mode == ModeIdentified,
	}
}

func flatten(s geom.Shape, v View) []geom.Vec {
	pts := make([]geom.Vec, curveSamples+1)
	for i := 0; i <= curveSamples; i++ {
		pts[i] = v.ToScreen(s.PointAt(float64(i) / curveSamples))
	}
	return pts
}

// makeLabel places a track's label: charged particles at the shape end,
// neutral ones at the midpoint, or at the decay point when they decay.
func makeLabel(tr *event.Track, nums *numbering.Map, v View, mode Mode) Label {
	pos := tr.Shape.EndPoint()
	if tr.ID.Charge == 0 {
		if tr.DecayAt != nil {
			pos = *tr.DecayAt
		} else {
			pos = tr.Shape.PointAt(0.5)
		}
	}
	return Label{
		Pos:     v.ToScreen(pos),
		Text:    labelText(tr.Seq, tr.ID, nums, mode),
		Symbol:  tr.ID.Symbol,
		Seq:     tr.Seq,
		Display: nums.Display[tr.Seq],
	}
}

func labelText(seq int, id particle.ID, nums *numbering.Map, mode Mode) string {
	if mode == ModeIdentified {
		return id.Symbol
	}
	return strconv.Itoa(nums.Display[seq])
}

// hitTest resolves the pointer to a label. Post-reveal, rendered label
// positions win within a fixed pixel radius; otherwise the nearest track
// origin within a chamber-space threshold is used.
func hitTest(labels []Label, ev *event.Event, v View, mode Mode, ptr *Pointer) *Label {
	if ptr == nil {
		return nil
	}
	at := geom.Vec{X: ptr.X, Y: ptr.Y}

	if mode == ModeIdentified {
		best, bestDist := -1, LabelRadiusPx
		for i, l := range labels {
			if d := l.Pos.Dist(at); d <= bestDist {
				best, bestDist = i, d
			}
		}
		if best >= 0 {
			return &labels[best]
		}
	}

	chamber := v.ToChamber(at)
	bestSeq, bestDist := 0, OriginThreshold
	for _, tr := range ev.Tracks {
		if d := tr.Shape.Origin.Dist(chamber); d <= bestDist {
			bestSeq, bestDist = tr.Seq, d
		}
	}
	if bestSeq == 0 {
		return nil
	}
	for i := range labels {
		if labels[i].Seq == bestSeq {
			return &labels[i]
		}
	}
	return nil
}
