// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package client

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	log "github.com/inconshreveable/log15"
	"github.com/kr/pretty"

	"github.com/tedder/helium-block-scraper/chain"
)

// PPActivity fetches the activity feed of home and prints one line per event,
// oldest first. Challenge receipts are followed by their challenge path.
func PPActivity(
	ctx context.Context,
	w io.Writer,
	cli Client,
	home *chain.Hotspot,
	dir *chain.Directory,
	opts ...OpOption,
) error {
	ret := &Op{}
	ret.applyOpts(opts)

	feed, err := cli.Activity(ctx, home.Address)
	if err != nil {
		return err
	}
	if len(feed) == 0 {
		color.New(color.FgYellow).Fprintln(w, "no activity in the API for you.")
		return nil
	}

	// feed is newest first
	for i := len(feed) - 1; i >= 0; i-- {
		if feed[i] == nil {
			continue
		}
		ev := chain.Classify(feed[i])
		if ret.since != nil && !chain.Since(ev, ret.since.Unix()) {
			continue
		}
		if err := ppEvent(ctx, w, cli, home, dir, ev, ret.loc); err != nil {
			return err
		}
	}
	return nil
}

func ppEvent(
	ctx context.Context,
	w io.Writer,
	cli Client,
	home *chain.Hotspot,
	dir *chain.Directory,
	ev chain.Event,
	loc *time.Location,
) error {
	switch e := ev.(type) {
	case *chain.MiningReward:
		if e.Kind == chain.UnrecognizedReward {
			log.Debug("skipping unrecognized reward", "type", e.Type, "block", e.BlockHeight)
			return nil
		}
		fmt.Fprintf(w, "%s: Block %d - %9s Mined %s - %s\n",
			formatTime(e.BlockTime, loc, activityTimeLayout), e.BlockHeight, "", formatAmount(e.Amount), e.Kind)
	case *chain.Witnessed:
		fmt.Fprintf(w, "%s: Block %d - %7s - %s\n",
			formatTime(e.BlockTime, loc, activityTimeLayout), e.BlockHeight, e.ChallengeID, e.Label())
	case *chain.Constructed:
		fmt.Fprintf(w, "%s: Block %d - %9s %s\n",
			formatTime(e.BlockTime, loc, activityTimeLayout), e.BlockHeight, "", e.Label())
	case *chain.ChallengeSuccess:
		fmt.Fprintf(w, "%s: Block %d - %7s - %s\n",
			formatTime(e.BlockTime, loc, activityTimeLayout), e.BlockHeight, e.ChallengeID, e.Label())
		return PPChallenge(ctx, w, cli, home, e.ChallengeID, dir)
	case *chain.Unknown:
		log.Debug("unknown activity", "record", pretty.Sprint(e.Raw))
		fmt.Fprintln(w, e.Label())
	}
	return nil
}
