// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package parser defines hotspot name and time argument parsing operations.
package parser

import (
	"errors"
	"regexp"
	"strings"
)

const Separator = "-"

var (
	ErrEmptyName = errors.New("hotspot name cannot be empty")

	nonWord *regexp.Regexp
)

func init() {
	nonWord = regexp.MustCompile(`[^\p{L}\p{N}_]+`)
}

// NormalizeName lower-cases n and replaces every run of non-word characters
// with a single dash, so "Blue Fox Otter" and "blue--fox-otter" compare equal.
func NormalizeName(n string) string {
	return nonWord.ReplaceAllString(strings.ToLower(n), Separator)
}

// CheckName returns an error if n carries nothing to match a hotspot on.
func CheckName(n string) error {
	if len(strings.TrimSpace(n)) == 0 {
		return ErrEmptyName
	}
	return nil
}
