// Copyright (C) 2023 Gobalsky Labs Limited
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package types

import (
	"fmt"
	"strings"

	"code.vegaprotocol.io/tinyme/libs/num"
)

type MatchingState int32

const (
	MatchingStateContinuous MatchingState = iota
	MatchingStateAuction
)

func (s MatchingState) String() string {
	switch s {
	case MatchingStateContinuous:
		return "CONTINUOUS"
	case MatchingStateAuction:
		return "AUCTION"
	default:
		return "UNKNOWN"
	}
}

func (s MatchingState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *MatchingState) UnmarshalText(text []byte) error {
	switch strings.ToUpper(string(text)) {
	case "CONTINUOUS":
		*s = MatchingStateContinuous
	case "AUCTION":
		*s = MatchingStateAuction
	default:
		return fmt.Errorf("invalid matching state: %q", string(text))
	}
	return nil
}

type MatchingOutcome int32

const (
	MatchingOutcomeExecuted MatchingOutcome = iota
	MatchingOutcomeOrderEnqueuedInAuctionMode
	MatchingOutcomeInactiveOrderEnqueued
	MatchingOutcomeNotEnoughCredit
	MatchingOutcomeNotEnoughPositions
	MatchingOutcomeNotEnoughQuantitiesMatched
)

func (o MatchingOutcome) String() string {
	switch o {
	case MatchingOutcomeExecuted:
		return "EXECUTED"
	case MatchingOutcomeOrderEnqueuedInAuctionMode:
		return "ORDER_ENQUEUED_IN_AUCTION_MODE"
	case MatchingOutcomeInactiveOrderEnqueued:
		return "INACTIVE_ORDER_ENQUEUED"
	case MatchingOutcomeNotEnoughCredit:
		return "NOT_ENOUGH_CREDIT"
	case MatchingOutcomeNotEnoughPositions:
		return "NOT_ENOUGH_POSITIONS"
	case MatchingOutcomeNotEnoughQuantitiesMatched:
		return "NOT_ENOUGH_QUANTITIES_MATCHED"
	default:
		return "UNKNOWN"
	}
}

// IsRejection reports whether the outcome left all state untouched.
func (o MatchingOutcome) IsRejection() bool {
	switch o {
	case MatchingOutcomeNotEnoughCredit,
		MatchingOutcomeNotEnoughPositions,
		MatchingOutcomeNotEnoughQuantitiesMatched:
		return true
	default:
		return false
	}
}

// MatchResult is what a matching call hands back to its caller.
// Remainder is nil for every rejection outcome.
type MatchResult struct {
	Outcome   MatchingOutcome
	Remainder *Order
	Trades    []*Trade
	// Activations lists the stop-limit orders the request triggered,
	// in the order they were fed back through admission.
	Activations []*Activation
}

// Activation is a stop-limit order leaving its inactive queue together
// with the outcome of its admission.
type Activation struct {
	Order  *Order
	Result *MatchResult
}

// MatchingStateChange reports what a matching state transition did.
type MatchingStateChange struct {
	From             MatchingState
	To               MatchingState
	OpeningProcess   bool
	OpeningPrice     *num.Uint
	TradableQuantity uint64
	Trades           []*Trade
	Activations      []*Activation
}

func Executed(remainder *Order, trades []*Trade) *MatchResult {
	return &MatchResult{
		Outcome:   MatchingOutcomeExecuted,
		Remainder: remainder,
		Trades:    trades,
	}
}

func EnqueuedInAuction(order *Order) *MatchResult {
	return &MatchResult{
		Outcome:   MatchingOutcomeOrderEnqueuedInAuctionMode,
		Remainder: order,
	}
}

func InactiveOrderEnqueued(order *Order) *MatchResult {
	return &MatchResult{
		Outcome:   MatchingOutcomeInactiveOrderEnqueued,
		Remainder: order,
	}
}

func NotEnoughCredit() *MatchResult {
	return &MatchResult{Outcome: MatchingOutcomeNotEnoughCredit}
}

func NotEnoughPositions() *MatchResult {
	return &MatchResult{Outcome: MatchingOutcomeNotEnoughPositions}
}

func NotEnoughQuantitiesMatched() *MatchResult {
	return &MatchResult{Outcome: MatchingOutcomeNotEnoughQuantitiesMatched}
}

// Traded wraps the trades produced by an auction uncrossing.
func Traded(trades []*Trade) *MatchResult {
	return &MatchResult{
		Outcome: MatchingOutcomeExecuted,
		Trades:  trades,
	}
}
