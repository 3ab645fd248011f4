// Package export serializes a generated event for the surrounding shell.
// Nothing is persisted: output goes to the supplied writer and the next
// generation starts from scratch.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/chamber/internal/event"
	"github.com/san-kum/chamber/internal/numbering"
	"github.com/san-kum/chamber/internal/particle"
)

type exportTrack struct {
	Seq      int     `json:"seq"`
	Display  int     `json:"display"`
	Name     string  `json:"name"`
	Symbol   string  `json:"symbol"`
	Charge   int     `json:"charge"`
	Momentum float64 `json:"momentum"`
	Shape    string  `json:"shape"`
	Nested   bool    `json:"nested"`
	Decays   bool    `json:"decays"`
}

type exportEvent struct {
	Scenario  string        `json:"scenario"`
	N         int           `json:"n"`
	Neutrinos int           `json:"neutrinos"`
	Tracks    []exportTrack `json:"tracks"`
}

// Rows flattens an event into one row per identifiable particle, nested
// decay products included, in ground-truth order.
func Rows(ev *event.Event, nums *numbering.Map) []exportTrack {
	bySeq := make(map[int]exportTrack, ev.N)

	add := func(seq int, name, symbol string, charge int, momentum float64, shape string, nested, decays bool) {
		bySeq[seq] = exportTrack{
			Seq: seq, Display: nums.Display[seq],
			Name: name, Symbol: symbol, Charge: charge, Momentum: momentum,
			Shape: shape, Nested: nested, Decays: decays,
		}
	}

	for _, tr := range ev.Tracks {
		add(tr.Seq, tr.ID.Name, tr.ID.Symbol, tr.ID.Charge, tr.Momentum,
			tr.Shape.Kind.String(), false, tr.DecayAt != nil)

		var md *event.MuonDecay
		switch d := tr.Decay.(type) {
		case event.PionDecay:
			m := d.Muon
			id := particle.Muon(m.Charge)
			add(m.Seq, id.Name, id.Symbol, m.Charge, m.Momentum, "arc", true, true)
			md = &m.Decay
		case event.MuonDecay:
			md = &d
		}
		if md != nil {
			l := md.Lepton
			id := particle.ChargedLepton(l.Charge)
			add(l.Seq, id.Name, id.Symbol, l.Charge, l.Momentum, "spiral", true, false)
		}
	}

	rows := make([]exportTrack, 0, len(bySeq))
	for seq := 1; seq <= ev.N; seq++ {
		if row, ok := bySeq[seq]; ok {
			rows = append(rows, row)
		}
	}
	return rows
}

// JSON writes the event as indented JSON.
func JSON(w io.Writer, ev *event.Event, nums *numbering.Map) error {
	data := exportEvent{
		Scenario:  ev.Scenario,
		N:         ev.N,
		Neutrinos: ev.Neutrinos,
		Tracks:    Rows(ev, nums),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// CSV writes one row per identifiable particle.
func CSV(w io.Writer, ev *event.Event, nums *numbering.Map) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"seq", "display", "name", "symbol", "charge", "momentum", "shape", "nested", "decays"}); err != nil {
		return err
	}
	for _, row := range Rows(ev, nums) {
		rec := []string{
			strconv.Itoa(row.Seq),
			strconv.Itoa(row.Display),
			row.Name,
			row.Symbol,
			strconv.Itoa(row.Charge),
			strconv.FormatFloat(row.Momentum, 'f', 6, 64),
			row.Shape,
			strconv.FormatBool(row.Nested),
			strconv.FormatBool(row.Decays),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	return cw.Error()
}
