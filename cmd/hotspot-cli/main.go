// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "hotspot-cli" implements the hotspot explorer report interface.
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/tedder/helium-block-scraper/cmd/hotspot-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		color.Red("hotspot-cli failed: %v", err)
		os.Exit(1)
	}
	os.Exit(0)
}
