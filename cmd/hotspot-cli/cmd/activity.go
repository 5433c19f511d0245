// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tedder/helium-block-scraper/client"
	"github.com/tedder/helium-block-scraper/parser"
)

var since string

var activityCmd = &cobra.Command{
	Use:   "activity [options] hotspot name...",
	Short: "Prints the rewards and challenges of a hotspot, oldest first",
	Long: `Prints the rewards and challenges of a hotspot, oldest first.

The hotspot is named by its three words; spaces or dashes are fine:
  hotspot-cli activity blue fox otter
  hotspot-cli activity --since 2019-10-01 blue-fox-otter`,
	RunE: activityFunc,
}

func init() {
	activityCmd.Flags().StringVar(
		&since,
		"since",
		"",
		"show activity after date/timestamp",
	)
}

func activityFunc(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("expected at least 1 argument, got %d", len(args))
	}

	var opts []client.OpOption
	if len(since) > 0 {
		t, err := parser.ParseSince(since, time.Now())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Printing activity since: %s.\n", t.Format(time.RFC3339))
		opts = append(opts, client.WithSince(t))
	}

	ctx := context.Background()
	cli := newClient()
	home, dir, err := client.ResolveHotspot(ctx, cli, strings.Join(args, " "))
	if err != nil {
		return err
	}
	return client.PPActivity(ctx, cmd.OutOrStdout(), cli, home, dir, opts...)
}
