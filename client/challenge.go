// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package client

import (
	"context"
	"fmt"
	"io"

	"github.com/tedder/helium-block-scraper/chain"
)

// PPChallenge fetches challenge id and prints one row per path hop with its
// distance from home.
func PPChallenge(ctx context.Context, w io.Writer, cli Client, home *chain.Hotspot, id chain.ID, dir *chain.Directory) error {
	c, err := cli.Challenge(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "  result     witnesses  distance path     target                    receipt?")
	for _, elem := range c.PathElements {
		if elem == nil {
			continue
		}
		fmt.Fprintln(w, hopRow(home, elem, dir))
	}
	return nil
}

func hopRow(home *chain.Hotspot, elem *chain.PathElement, dir *chain.Directory) string {
	// Same address skips the geodesic. The coordinates of the two records can
	// still differ.
	dist := "   " + noDistance
	if elem.Address != home.Address {
		dist = fmt.Sprintf("%7.2f", chain.Distance(home.Lat, home.Lng, elem.Lat, elem.Lng))
	}

	// Receipts are matched on resolved name, not address.
	tgt := dir.SafeName(elem.Address)
	label := "not received"
	if dir.SafeName(elem.ReceiptAddress()) == tgt {
		label = "received"
	}
	return fmt.Sprintf("  %-10s %5d      %s  %-8s %-25s %s",
		elem.Result, len(elem.Witnesses), dist, elem.ReceiptOrigin(), tgt, label)
}
