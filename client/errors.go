// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package client

import "errors"

var (
	ErrHotspotNotFound  = errors.New("hotspot not found")
	ErrUnexpectedStatus = errors.New("unexpected http status")
)
