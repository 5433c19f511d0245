// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package client

import (
	"context"
	"fmt"

	log "github.com/inconshreveable/log15"

	"github.com/tedder/helium-block-scraper/chain"
	"github.com/tedder/helium-block-scraper/parser"
)

// ResolveHotspot fetches the hotspot directory and finds the hotspot named
// name. The directory is returned with it for address lookups.
func ResolveHotspot(ctx context.Context, cli Client, name string) (*chain.Hotspot, *chain.Directory, error) {
	if err := parser.CheckName(name); err != nil {
		return nil, nil, err
	}
	hs, err := cli.Hotspots(ctx)
	if err != nil {
		return nil, nil, err
	}
	dir := chain.NewDirectory(hs)
	home, ok := dir.Lookup(name)
	if !ok {
		return nil, dir, fmt.Errorf("%w: we didn't find your hotspot name (%s)", ErrHotspotNotFound, name)
	}
	log.Debug("resolved hotspot", "name", home.Name, "address", home.Address, "directory", dir.Len())
	return home, dir, nil
}
