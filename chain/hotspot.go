// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package chain defines the explorer records a hotspot report is built from.
package chain

import "github.com/tedder/helium-block-scraper/parser"

// Hotspot is one entry of the network hotspot directory.
type Hotspot struct {
	Address string  `json:"address"`
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`

	// Score is the reputation in [0,1].
	Score float64 `json:"score"`
}

// Normalized returns the lookup key for the hotspot name.
func (h *Hotspot) Normalized() string {
	return parser.NormalizeName(h.Name)
}

// ScorePercent truncates the score to a whole percent.
func (h *Hotspot) ScorePercent() int {
	return int(h.Score * 100)
}

// DistanceTo returns the geodesic distance in miles between h and o.
func (h *Hotspot) DistanceTo(o *Hotspot) float64 {
	return Distance(h.Lat, h.Lng, o.Lat, o.Lng)
}

// Directory indexes one snapshot of the hotspot directory.
type Directory struct {
	hotspots  []*Hotspot
	byAddress map[string]*Hotspot
	byName    map[string]*Hotspot
}

// NewDirectory indexes hs by address and by normalized name. Names are not
// unique; the first hotspot in fetch order owns a name. Addresses are unique
// within a snapshot, a repeated address keeps the last record.
func NewDirectory(hs []*Hotspot) *Directory {
	d := &Directory{
		hotspots:  make([]*Hotspot, 0, len(hs)),
		byAddress: make(map[string]*Hotspot, len(hs)),
		byName:    make(map[string]*Hotspot, len(hs)),
	}
	for _, h := range hs {
		if h == nil {
			continue
		}
		d.hotspots = append(d.hotspots, h)
		d.byAddress[h.Address] = h
		n := h.Normalized()
		if _, ok := d.byName[n]; !ok {
			d.byName[n] = h
		}
	}
	return d
}

// Lookup finds the hotspot whose normalized name equals the normalized form
// of name.
func (d *Directory) Lookup(name string) (*Hotspot, bool) {
	h, ok := d.byName[parser.NormalizeName(name)]
	return h, ok
}

func (d *Directory) Get(address string) (*Hotspot, bool) {
	h, ok := d.byAddress[address]
	return h, ok
}

// SafeName returns the normalized name of the hotspot at address, or "" when
// the address is not in the directory.
func (d *Directory) SafeName(address string) string {
	h, ok := d.byAddress[address]
	if !ok {
		return ""
	}
	return h.Normalized()
}

// Hotspots returns every hotspot in fetch order.
func (d *Directory) Hotspots() []*Hotspot {
	return d.hotspots
}

func (d *Directory) Len() int {
	return len(d.hotspots)
}
