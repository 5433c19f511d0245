// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package parser

import (
	"errors"
	"fmt"
	"time"

	"github.com/araddon/dateparse"
)

var (
	ErrUnparsableTime = errors.New("time not parsable")
	ErrFutureTime     = errors.New("time is later than now")
)

// ParseSince parses a free-form date/time in now's location. Values that carry
// no zone are read as wall clock time in that location.
func ParseSince(s string, now time.Time) (time.Time, error) {
	t, err := dateparse.ParseIn(s, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnparsableTime, s)
	}
	if t.After(now) {
		return time.Time{}, fmt.Errorf("%w: parsed %s", ErrFutureTime, t.Format(time.RFC3339))
	}
	return t, nil
}
