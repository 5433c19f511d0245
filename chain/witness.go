// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "sort"

// Witness is a hotspot that has witnessed another one. Histogram maps a
// signal strength bucket to the number of witness events in it.
type Witness struct {
	Address   string         `json:"address"`
	Name      string         `json:"name"`
	Histogram map[string]int `json:"hist"`

	// RecentTime is the last witness time in unix nanoseconds.
	RecentTime int64 `json:"recent_time"`
}

// Count returns the total number of witness events.
func (w *Witness) Count() int {
	n := 0
	for _, c := range w.Histogram {
		n += c
	}
	return n
}

// Dominant returns the bucket with the most events. Ties go to the bucket
// that sorts first; an empty histogram returns "".
func (w *Witness) Dominant() string {
	buckets := make([]string, 0, len(w.Histogram))
	for b := range w.Histogram {
		buckets = append(buckets, b)
	}
	sort.Strings(buckets)

	best, most := "", -1
	for _, b := range buckets {
		if c := w.Histogram[b]; c > most {
			best, most = b, c
		}
	}
	return best
}

// RecentUnix returns RecentTime in unix seconds.
func (w *Witness) RecentUnix() int64 {
	return w.RecentTime / 1_000_000_000
}
