// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "github.com/tidwall/geodesic"

const metersPerMile = 1609.344

// Distance returns the WGS84 geodesic surface distance in miles between two
// points given in degrees.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	var s12, azi1, azi2 float64
	geodesic.WGS84.Inverse(lat1, lng1, lat2, lng2, &s12, &azi1, &azi2)
	return s12 / metersPerMile
}
