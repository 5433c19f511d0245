// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "strings"

// BonesPerHNT is the fixed-point scale of reward amounts.
const BonesPerHNT = 100_000_000

const (
	RewardPrefix     = "poc"
	RewardChallenger = "poc_challengers"
	RewardChallengee = "poc_challengees"
	RewardWitness    = "poc_witnesses"
)

// RawActivity is one entry of a hotspot activity feed as the explorer sends
// it. The populated discriminant fields decide what happened.
type RawActivity struct {
	RewardType        *string `json:"reward_type"`
	RewardAmount      int64   `json:"reward_amount"`
	RewardBlockHeight uint64  `json:"reward_block_height"`
	RewardBlockTime   int64   `json:"reward_block_time"`

	POCWitnessChallengeID *ID `json:"poc_witness_challenge_id"`

	POCReqTxnHash        *string `json:"poc_req_txn_hash"`
	POCReqTxnBlockHeight uint64  `json:"poc_req_txn_block_height"`
	POCReqTxnBlockTime   int64   `json:"poc_req_txn_block_time"`

	POCRxTxnHash        *string `json:"poc_rx_txn_hash"`
	POCRxTxnBlockHeight uint64  `json:"poc_rx_txn_block_height"`
	POCRxTxnBlockTime   int64   `json:"poc_rx_txn_block_time"`
	POCRxChallengeID    ID      `json:"poc_rx_challenge_id"`
}

// Event is the classified form of a RawActivity. The set of implementations
// is closed: MiningReward, Witnessed, Constructed, ChallengeSuccess, Unknown.
type Event interface {
	// Label names the event kind for output.
	Label() string
	// Timestamp returns the block time in unix seconds. Unknown events carry
	// none and report false.
	Timestamp() (int64, bool)
	// Height returns the block the event was recorded in.
	Height() uint64

	event()
}

type RewardKind int

const (
	// UnrecognizedReward is a proof-of-coverage reward whose type matches
	// none of the known sub-kinds.
	UnrecognizedReward RewardKind = iota
	ChallengerReward
	ChallengeeReward
	WitnessReward
)

func (k RewardKind) String() string {
	switch k {
	case ChallengerReward:
		return "Challenger"
	case ChallengeeReward:
		return "Challengee"
	case WitnessReward:
		return "Witness"
	default:
		return "Unrecognized"
	}
}

type MiningReward struct {
	Kind RewardKind
	// Type is the reward_type the kind was derived from.
	Type string
	// Amount is in HNT.
	Amount      float64
	BlockHeight uint64
	BlockTime   int64
}

type Witnessed struct {
	ChallengeID ID
	BlockHeight uint64
	BlockTime   int64
}

type Constructed struct {
	TxnHash     string
	BlockHeight uint64
	BlockTime   int64
}

// ChallengeSuccess is a challenge receipt; ChallengeID names the challenge
// whose path can be fetched.
type ChallengeSuccess struct {
	ChallengeID ID
	TxnHash     string
	BlockHeight uint64
	BlockTime   int64
}

// Unknown keeps the record no discriminant matched.
type Unknown struct {
	Raw *RawActivity
}

func (e *MiningReward) Label() string { return "Mined " + e.Kind.String() }
func (e *MiningReward) Timestamp() (int64, bool) { return e.BlockTime, true }
func (e *MiningReward) Height() uint64 { return e.BlockHeight }
func (*MiningReward) event() {}

func (*Witnessed) Label() string { return "Challenge Witnessed" }
func (e *Witnessed) Timestamp() (int64, bool) { return e.BlockTime, true }
func (e *Witnessed) Height() uint64 { return e.BlockHeight }
func (*Witnessed) event() {}

func (*Constructed) Label() string { return "Challenge Constructed" }
func (e *Constructed) Timestamp() (int64, bool) { return e.BlockTime, true }
func (e *Constructed) Height() uint64 { return e.BlockHeight }
func (*Constructed) event() {}

func (*ChallengeSuccess) Label() string { return "Challenge Success" }
func (e *ChallengeSuccess) Timestamp() (int64, bool) { return e.BlockTime, true }
func (e *ChallengeSuccess) Height() uint64 { return e.BlockHeight }
func (*ChallengeSuccess) event() {}

func (*Unknown) Label() string { return "Unknown" }
func (*Unknown) Timestamp() (int64, bool) { return 0, false }
func (*Unknown) Height() uint64 { return 0 }
func (*Unknown) event() {}

// Classify maps a raw record to exactly one Event. Discriminants are checked
// in a fixed order and the first populated one wins: poc reward type, witness
// challenge id, request transaction hash, receive transaction hash.
func Classify(a *RawActivity) Event {
	switch {
	case a.RewardType != nil && strings.HasPrefix(*a.RewardType, RewardPrefix):
		return &MiningReward{
			Kind:        rewardKind(*a.RewardType),
			Type:        *a.RewardType,
			Amount:      float64(a.RewardAmount) / BonesPerHNT,
			BlockHeight: a.RewardBlockHeight,
			BlockTime:   a.RewardBlockTime,
		}
	case a.POCWitnessChallengeID != nil:
		return &Witnessed{
			ChallengeID: *a.POCWitnessChallengeID,
			BlockHeight: a.POCRxTxnBlockHeight,
			BlockTime:   a.POCRxTxnBlockTime,
		}
	case a.POCReqTxnHash != nil:
		return &Constructed{
			TxnHash:     *a.POCReqTxnHash,
			BlockHeight: a.POCReqTxnBlockHeight,
			BlockTime:   a.POCReqTxnBlockTime,
		}
	case a.POCRxTxnHash != nil:
		return &ChallengeSuccess{
			ChallengeID: a.POCRxChallengeID,
			TxnHash:     *a.POCRxTxnHash,
			BlockHeight: a.POCRxTxnBlockHeight,
			BlockTime:   a.POCRxTxnBlockTime,
		}
	default:
		return &Unknown{Raw: a}
	}
}

func rewardKind(typ string) RewardKind {
	switch typ {
	case RewardChallenger:
		return ChallengerReward
	case RewardChallengee:
		return ChallengeeReward
	case RewardWitness:
		return WitnessReward
	default:
		return UnrecognizedReward
	}
}

// Since reports whether e should be kept for a cutoff in unix seconds.
// Events without a timestamp are always kept.
func Since(e Event, cutoff int64) bool {
	ts, ok := e.Timestamp()
	return !ok || ts >= cutoff
}
