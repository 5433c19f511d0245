// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package client

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	activityTimeLayout = "2006-01-02T15:04:05-07:00"
	witnessTimeLayout  = "2006-01-02T15:04"

	noDistance = "----"
)

func formatTime(unix int64, loc *time.Location, layout string) string {
	return time.Unix(unix, 0).In(loc).Format(layout)
}

// formatAmount prints the shortest representation of v that keeps at least
// one fractional digit, so 25 prints as "25.0".
func formatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// center pads s with spaces to width, putting the odd space on the right.
func center(s string, width int) string {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
