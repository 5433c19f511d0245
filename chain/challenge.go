// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

// Receipt records which hotspot relayed a challenge hop.
type Receipt struct {
	Origin  string `json:"origin"`
	Address string `json:"address"`
}

// PathElement is one hop of a challenge path. Only the number of witnesses
// is used, so their contents are left undecoded.
type PathElement struct {
	Address   string        `json:"address"`
	Result    string        `json:"result"`
	Witnesses []interface{} `json:"witnesses"`
	Receipt   *Receipt      `json:"receipt"`
	Lat       float64       `json:"lat"`
	Lng       float64       `json:"lng"`
}

func (p *PathElement) ReceiptOrigin() string {
	if p.Receipt == nil {
		return ""
	}
	return p.Receipt.Origin
}

func (p *PathElement) ReceiptAddress() string {
	if p.Receipt == nil {
		return ""
	}
	return p.Receipt.Address
}

// Challenge is a proof-of-coverage challenge. The first path element is the
// challenger.
type Challenge struct {
	ID           ID             `json:"id"`
	PathElements []*PathElement `json:"pathElements"`
}
