// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tedder/helium-block-scraper/client"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [options] hotspot name...",
	Short: "Looks up a hotspot by name in the hotspot directory",
	RunE:  resolveFunc,
}

func resolveFunc(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("expected at least 1 argument, got %d", len(args))
	}
	home, dir, err := client.ResolveHotspot(context.Background(), newClient(), strings.Join(args, " "))
	if err != nil {
		return err
	}
	out := color.New(color.FgGreen)
	out.Fprintf(cmd.OutOrStdout(), "%s address=%s\n", home.Name, home.Address)
	out.Fprintf(cmd.OutOrStdout(), "location=%3.4f, %3.4f score=%d%% (%d hotspots in directory)\n",
		home.Lat, home.Lng, home.ScorePercent(), dir.Len())
	return nil
}
