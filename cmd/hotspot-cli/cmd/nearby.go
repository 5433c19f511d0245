// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tedder/helium-block-scraper/client"
	"github.com/tedder/helium-block-scraper/parser"
)

var nearbyCmd = &cobra.Command{
	Use:   "nearby [options] hotspot name...",
	Short: "Prints the hotspots around a hotspot and the ones that witnessed it",
	RunE:  nearbyFunc,
}

func init() {
	nearbyCmd.Flags().Float64(
		"radius",
		client.DefaultRadius,
		"neighbor radius in miles",
	)
	if err := viper.BindPFlag("radius", nearbyCmd.Flags().Lookup("radius")); err != nil {
		panic(err)
	}
}

func nearbyFunc(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("expected at least 1 argument, got %d", len(args))
	}
	radius := viper.GetFloat64("radius")
	if radius <= 0 {
		return fmt.Errorf("radius must be positive, got %v", radius)
	}

	name := strings.Join(args, " ")
	fmt.Fprintf(cmd.OutOrStdout(), "normalized name: %s\n", parser.NormalizeName(name))

	ctx := context.Background()
	cli := newClient()
	home, dir, err := client.ResolveHotspot(ctx, cli, name)
	if err != nil {
		return err
	}
	return client.PPNearby(ctx, cmd.OutOrStdout(), cli, home, dir, client.WithRadius(radius))
}
