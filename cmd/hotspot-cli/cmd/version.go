// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tedder/helium-block-scraper/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints out the version",
	RunE:  versionFunc,
}

func versionFunc(cmd *cobra.Command, args []string) error {
	fmt.Fprintf(cmd.OutOrStdout(), "hotspot-cli@%s\n", version.Version)
	return nil
}
