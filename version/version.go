// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package version defines version variables.
package version

// Version is overridden at build time with
// -ldflags "-X github.com/tedder/helium-block-scraper/version.Version=...".
var Version = "v0.1.0"
