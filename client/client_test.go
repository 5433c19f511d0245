// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tedder/helium-block-scraper/chain"
)

func newTestServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.EscapedPath()]
		if !ok {
			http.Error(w, "no route for "+r.URL.Path, http.StatusNotFound)
			return
		}
		w.Header().Set("content-type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, map[string]string{
		"/fetchHotspots": `[
			{"address": "A1", "name": "Blue Fox Otter", "lat": 45.5, "lng": -122.6, "score": 0.85, "owner": "x"},
			{"address": "A2", "name": "Tall Red Tree", "lat": null, "lng": null}
		]`,
		"/api/hotspots/A1/activity": `{"data": [
			{"reward_type": "poc_witnesses", "reward_amount": 2500000000, "reward_block_height": 9, "reward_block_time": 1570000000,
			 "poc_witness_challenge_id": null, "poc_req_txn_hash": null, "poc_rx_txn_hash": null}
		]}`,
		"/api/challenges/42": `{"data": {"id": 42, "pathElements": [
			{"address": "A1", "result": "success", "witnesses": [{"address": "A2"}], "receipt": {"origin": "p2p", "address": "A1"}, "lat": 45.5, "lng": -122.6},
			{"address": "A2", "result": "failure", "witnesses": [], "receipt": null}
		]}}`,
		"/api/challenges/7": `{"data": null}`,
		"/api/witnesses/A1": `{"data": [{"name": "Tall Red Tree", "hist": {"-92": 3}, "recent_time": 1570000000000000000}]}`,
		"/api/witnesses/A%2F1": `{"data": []}`,
	})
	cli := New(srv.URL+"/api/", srv.URL+"/fetchHotspots", 5*time.Second)
	ctx := context.Background()

	hs, err := cli.Hotspots(ctx)
	require.NoError(t, err)
	require.Len(t, hs, 2)
	assert.Equal(t, &chain.Hotspot{Address: "A1", Name: "Blue Fox Otter", Lat: 45.5, Lng: -122.6, Score: 0.85}, hs[0])
	assert.Equal(t, 0.0, hs[1].Lat)

	feed, err := cli.Activity(ctx, "A1")
	require.NoError(t, err)
	require.Len(t, feed, 1)
	reward, ok := chain.Classify(feed[0]).(*chain.MiningReward)
	require.True(t, ok)
	assert.Equal(t, chain.WitnessReward, reward.Kind)
	assert.Equal(t, 25.0, reward.Amount)

	c, err := cli.Challenge(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, chain.ID("42"), c.ID)
	require.Len(t, c.PathElements, 2)
	assert.Len(t, c.PathElements[0].Witnesses, 1)
	assert.Equal(t, "p2p", c.PathElements[0].ReceiptOrigin())
	assert.Nil(t, c.PathElements[1].Receipt)
	assert.Equal(t, "", c.PathElements[1].ReceiptAddress())

	c, err = cli.Challenge(ctx, "7")
	require.NoError(t, err)
	assert.Empty(t, c.PathElements)

	ws, err := cli.Witnesses(ctx, "A1")
	require.NoError(t, err)
	require.Len(t, ws, 1)
	assert.Equal(t, 3, ws[0].Count())

	ws, err = cli.Witnesses(ctx, "A/1")
	require.NoError(t, err)
	assert.Empty(t, ws)
}

func TestClientErrors(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, map[string]string{
		"/api/hotspots/A1/activity": `{"data": [`,
	})
	cli := New(srv.URL+"/api", srv.URL+"/missing", 5*time.Second)
	ctx := context.Background()

	_, err := cli.Hotspots(ctx)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Contains(t, err.Error(), "404")

	_, err = cli.Activity(ctx, "A1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to json decode")

	srv.Close()
	_, err = cli.Witnesses(ctx, "A1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to do http request")
}
