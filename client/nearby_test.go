// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package client

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tedder/helium-block-scraper/chain"
)

func distances(ns []*Neighbor) []float64 {
	ds := make([]float64, 0, len(ns))
	for _, n := range ns {
		ds = append(ds, n.Distance)
	}
	return ds
}

func TestWithinRadius(t *testing.T) {
	t.Parallel()

	ns := []*Neighbor{
		{Hotspot: blueFox, Distance: 30.0},
		{Hotspot: blueFox, Distance: 29.999},
		{Hotspot: blueFox, Distance: 0},
		{Hotspot: blueFox, Distance: 30.0001},
	}
	assert.Equal(t, []float64{29.999, 0}, distances(withinRadius(ns, 30)))
}

func TestSortNeighbors(t *testing.T) {
	t.Parallel()

	ns := []*Neighbor{
		{Hotspot: blueFox, Distance: 5.2},
		{Hotspot: blueFox, Distance: 12.0},
		{Hotspot: blueFox, Distance: 1.1},
	}
	sortNeighbors(ns)
	assert.Equal(t, []float64{12.0, 5.2, 1.1}, distances(ns))
}

func TestNeighbors(t *testing.T) {
	t.Parallel()

	near := &chain.Hotspot{Address: "B1", Name: "Near One", Lat: 0, Lng: 0.1}
	mid := &chain.Hotspot{Address: "B2", Name: "Mid One", Lat: 0.3, Lng: 0}
	far := &chain.Hotspot{Address: "B3", Name: "Far One", Lat: 0, Lng: 1}
	dir := chain.NewDirectory([]*chain.Hotspot{near, blueFox, far, mid})

	ns := Neighbors(blueFox, dir, DefaultRadius)
	require.Len(t, ns, 3)
	assert.Same(t, mid, ns[0].Hotspot)
	assert.Same(t, near, ns[1].Hotspot)
	assert.Same(t, blueFox, ns[2].Hotspot)
	assert.InDelta(t, 20.612, ns[0].Distance, 0.01)
	assert.InDelta(t, 6.917, ns[1].Distance, 0.01)
	assert.Equal(t, 0.0, ns[2].Distance)

	assert.Len(t, Neighbors(blueFox, dir, 100), 4)
}

func TestWitnessRows(t *testing.T) {
	t.Parallel()

	ns := []*Neighbor{
		{Hotspot: &chain.Hotspot{Name: "Tall Red Tree"}, Distance: 5.2},
	}
	ws := []*chain.Witness{
		{Name: "Late One", RecentTime: 300},
		{Name: "Tall Red Tree", RecentTime: 100},
		nil,
		{Name: "Middle One", RecentTime: 200},
	}
	rows := WitnessRows(ws, ns)
	require.Len(t, rows, 3)
	assert.Equal(t, "Tall Red Tree", rows[0].Witness.Name)
	assert.True(t, rows[0].HasDistance)
	assert.Equal(t, 5.2, rows[0].Distance)
	assert.Equal(t, "Middle One", rows[1].Witness.Name)
	assert.False(t, rows[1].HasDistance)
	assert.Equal(t, "Late One", rows[2].Witness.Name)
}

func TestPPNearby(t *testing.T) {
	t.Parallel()

	home := &chain.Hotspot{Address: "A1", Name: "Blue Fox Otter", Score: 0.85}
	red := &chain.Hotspot{Address: "A2", Name: "Tall Red Tree", Lat: 0, Lng: 0.1, Score: 0.333}
	cli := &fakeClient{
		witnesses: map[string][]*chain.Witness{
			"A1": {
				{Name: "Far Away", Histogram: map[string]int{"-100": 3}, RecentTime: 1570000000000000000},
				{Name: "Tall Red Tree", Histogram: map[string]int{"-100": 2, "-92": 7, "-84": 3}, RecentTime: 1569999999000000000},
			},
		},
	}
	dir := chain.NewDirectory([]*chain.Hotspot{home, red})
	buf := new(bytes.Buffer)
	require.NoError(t, PPNearby(context.Background(), buf, cli, home, dir, WithLocation(time.UTC)))

	assert.Equal(t, []string{
		"dist   score hotspot name                       ",
		" 6.9    33 Tall Red Tree                       0.0000, 0.1000",
		" 0.0    85 Blue Fox Otter                      0.0000, 0.0000",
		"",
		"hotspot name                  dist  count   rssi    witness time    ",
		"Tall Red Tree                  6.9     12    -92    2019-10-02T07:06",
		"Far Away                        --      3   -100    2019-10-02T07:06",
	}, lines(buf))
	assert.Equal(t, []string{"witnesses/A1"}, cli.calls)
}

func TestPPNearbyRadius(t *testing.T) {
	t.Parallel()

	red := &chain.Hotspot{Address: "A2", Name: "Tall Red Tree", Lat: 0, Lng: 0.1}
	dir := chain.NewDirectory([]*chain.Hotspot{blueFox, red})
	buf := new(bytes.Buffer)
	require.NoError(t, PPNearby(context.Background(), buf, &fakeClient{}, blueFox, dir, WithRadius(5)))

	assert.Equal(t, []string{
		"dist   score hotspot name                       ",
		" 0.0    85 Blue Fox Otter                      0.0000, 0.0000",
		"",
		"no witnesses in the API for you.",
	}, lines(buf))
}

func TestPPNearbyError(t *testing.T) {
	t.Parallel()

	cli := &fakeClient{failOn: "witnesses/A1"}
	err := PPNearby(context.Background(), new(bytes.Buffer), cli, blueFox, chain.NewDirectory([]*chain.Hotspot{blueFox}))
	assert.ErrorIs(t, err, errFake)
}
