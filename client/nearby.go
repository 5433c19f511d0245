// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package client

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/fatih/color"

	"github.com/tedder/helium-block-scraper/chain"
)

// DefaultRadius is the neighbor radius in miles.
const DefaultRadius = 30.0

type Neighbor struct {
	Hotspot *chain.Hotspot
	// Distance from home in miles.
	Distance float64
}

// Neighbors returns every directory hotspot, home included, strictly closer
// than radius miles to home, most distant first.
func Neighbors(home *chain.Hotspot, dir *chain.Directory, radius float64) []*Neighbor {
	ns := make([]*Neighbor, 0, dir.Len())
	for _, h := range dir.Hotspots() {
		ns = append(ns, &Neighbor{Hotspot: h, Distance: home.DistanceTo(h)})
	}
	ns = withinRadius(ns, radius)
	sortNeighbors(ns)
	return ns
}

func withinRadius(ns []*Neighbor, radius float64) []*Neighbor {
	kept := ns[:0]
	for _, n := range ns {
		if n.Distance < radius {
			kept = append(kept, n)
		}
	}
	return kept
}

func sortNeighbors(ns []*Neighbor) {
	sort.SliceStable(ns, func(i, j int) bool {
		return ns[i].Distance > ns[j].Distance
	})
}

// WitnessRow is a witness joined with its neighbor distance. HasDistance is
// false when the witness is not among the neighbors.
type WitnessRow struct {
	Witness     *chain.Witness
	Distance    float64
	HasDistance bool
}

// WitnessRows joins ws with ns by display name, least recently seen first.
func WitnessRows(ws []*chain.Witness, ns []*Neighbor) []*WitnessRow {
	dists := make(map[string]float64, len(ns))
	for _, n := range ns {
		if _, ok := dists[n.Hotspot.Name]; !ok {
			dists[n.Hotspot.Name] = n.Distance
		}
	}

	rows := make([]*WitnessRow, 0, len(ws))
	for _, w := range ws {
		if w == nil {
			continue
		}
		d, ok := dists[w.Name]
		rows = append(rows, &WitnessRow{Witness: w, Distance: d, HasDistance: ok})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Witness.RecentTime < rows[j].Witness.RecentTime
	})
	return rows
}

func PPNeighbors(w io.Writer, ns []*Neighbor) {
	fmt.Fprintf(w, "%-5s %6s %-35s\n", "dist", "score", "hotspot name")
	for _, n := range ns {
		fmt.Fprintf(w, "%4.1f %5d %-35s %3.4f, %3.4f\n",
			n.Distance, n.Hotspot.ScorePercent(), n.Hotspot.Name, n.Hotspot.Lat, n.Hotspot.Lng)
	}
}

func PPWitnesses(w io.Writer, rows []*WitnessRow, loc *time.Location) {
	fmt.Fprintf(w, "\n%-30s%s %s %6s%s\n",
		"hotspot name", center("dist", 5), center("count", 5), "rssi", center("witness time", 20))
	for _, r := range rows {
		dist := "--"
		if r.HasDistance {
			dist = fmt.Sprintf("%.1f", r.Distance)
		}
		fmt.Fprintf(w, "%-30s %s %5d %6s%20s\n",
			r.Witness.Name,
			center(dist, 4),
			r.Witness.Count(),
			r.Witness.Dominant(),
			formatTime(r.Witness.RecentUnix(), loc, witnessTimeLayout),
		)
	}
}

// PPNearby prints the neighbors of home and then the hotspots that have
// witnessed it.
func PPNearby(
	ctx context.Context,
	w io.Writer,
	cli Client,
	home *chain.Hotspot,
	dir *chain.Directory,
	opts ...OpOption,
) error {
	ret := &Op{}
	ret.applyOpts(opts)

	ns := Neighbors(home, dir, ret.radius)
	PPNeighbors(w, ns)

	ws, err := cli.Witnesses(ctx, home.Address)
	if err != nil {
		return err
	}
	if len(ws) == 0 {
		color.New(color.FgYellow).Fprintln(w, "\nno witnesses in the API for you.")
		return nil
	}
	PPWitnesses(w, WitnessRows(ws, ns), ret.loc)
	return nil
}
