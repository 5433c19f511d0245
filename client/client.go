// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package client implements the hotspot explorer client SDK and reports.
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"

	"github.com/goccy/go-json"
	log "github.com/inconshreveable/log15"
	"github.com/klauspost/compress/gzhttp"

	"github.com/tedder/helium-block-scraper/chain"
)

const (
	DefaultEndpoint          = "https://explorer.helium.foundation/api"
	DefaultDirectoryEndpoint = "https://network.helium.com/fetchHotspots"
)

// Client defines explorer client operations. Every call is one blocking GET.
type Client interface {
	// Hotspots fetches the full hotspot directory.
	Hotspots(ctx context.Context) ([]*chain.Hotspot, error)
	// Activity fetches the activity feed of a hotspot, newest first.
	Activity(ctx context.Context, address string) ([]*chain.RawActivity, error)
	// Challenge fetches a challenge and its path.
	Challenge(ctx context.Context, id chain.ID) (*chain.Challenge, error)
	// Witnesses fetches the hotspots that have witnessed a hotspot.
	Witnesses(ctx context.Context, address string) ([]*chain.Witness, error)
}

// New creates a new client object. uri is the explorer API base and
// directoryURI the hotspot directory listing.
func New(uri string, directoryURI string, reqTimeout time.Duration) Client {
	return &client{
		uri:          strings.TrimRight(uri, "/"),
		directoryURI: directoryURI,
		hc: &http.Client{
			Timeout:   reqTimeout,
			Transport: gzhttp.Transport(http.DefaultTransport),
		},
	}
}

type client struct {
	uri          string
	directoryURI string
	hc           *http.Client
}

type activityReply struct {
	Data []*chain.RawActivity `json:"data"`
}

type challengeReply struct {
	Data *chain.Challenge `json:"data"`
}

type witnessesReply struct {
	Data []*chain.Witness `json:"data"`
}

func (cli *client) Hotspots(ctx context.Context) ([]*chain.Hotspot, error) {
	var resp []*chain.Hotspot
	if err := cli.get(ctx, cli.directoryURI, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (cli *client) Activity(ctx context.Context, address string) ([]*chain.RawActivity, error) {
	resp := new(activityReply)
	if err := cli.get(ctx, cli.uri+"/hotspots/"+url.PathEscape(address)+"/activity", resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (cli *client) Challenge(ctx context.Context, id chain.ID) (*chain.Challenge, error) {
	resp := new(challengeReply)
	if err := cli.get(ctx, cli.uri+"/challenges/"+url.PathEscape(id.String()), resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return &chain.Challenge{ID: id}, nil
	}
	return resp.Data, nil
}

func (cli *client) Witnesses(ctx context.Context, address string) ([]*chain.Witness, error) {
	resp := new(witnessesReply)
	if err := cli.get(ctx, cli.uri+"/witnesses/"+url.PathEscape(address), resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (cli *client) get(ctx context.Context, u string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("unable to new request: %w", err)
	}
	req.Header.Set("accept", "application/json")

	start := time.Now()
	resp, err := cli.hc.Do(req)
	if err != nil {
		return fmt.Errorf("unable to do http request: %w", err)
	}
	defer resp.Body.Close()
	log.Debug("explorer request", "url", u, "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode/100 != 2 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		text := strings.Map(func(r rune) rune {
			if unicode.IsPrint(r) {
				return r
			}
			return -1
		}, string(b))
		return fmt.Errorf("%w: GET %s: %d %.100s", ErrUnexpectedStatus, u, resp.StatusCode, text)
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("unable to json decode %s: %w", u, err)
	}
	return nil
}

type Op struct {
	since  *time.Time
	loc    *time.Location
	radius float64
}

type OpOption func(*Op)

func (op *Op) applyOpts(opts []OpOption) {
	op.loc = time.Local
	op.radius = DefaultRadius
	for _, opt := range opts {
		opt(op)
	}
}

// Drops activity older than t.
func WithSince(t time.Time) OpOption {
	return func(op *Op) { op.since = &t }
}

// Prints timestamps in loc instead of the local time zone.
func WithLocation(loc *time.Location) OpOption {
	return func(op *Op) { op.loc = loc }
}

// Neighbor radius in miles; hotspots at or beyond it are left out.
func WithRadius(miles float64) OpOption {
	return func(op *Op) { op.radius = miles }
}
