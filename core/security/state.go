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

package security

import "code.vegaprotocol.io/tinyme/core/types"

// transitionAction is the side effect of moving between two matching states.
type transitionAction int

const (
	// nothing happens, the state stays as it is.
	transitionNone transitionAction = iota
	// the state flips without touching the book.
	transitionFlip
	// the book is uncrossed at the indicative opening price, then the
	// state is set.
	transitionOpen
)

func (a transitionAction) String() string {
	switch a {
	case transitionNone:
		return "none"
	case transitionFlip:
		return "flip"
	case transitionOpen:
		return "opening-process"
	default:
		return "unknown"
	}
}

var transitions = map[types.MatchingState]map[types.MatchingState]transitionAction{
	types.MatchingStateContinuous: {
		types.MatchingStateContinuous: transitionNone,
		types.MatchingStateAuction:    transitionFlip,
	},
	types.MatchingStateAuction: {
		types.MatchingStateContinuous: transitionOpen,
		types.MatchingStateAuction:    transitionOpen,
	},
}

func transitionFor(from, to types.MatchingState) (transitionAction, bool) {
	action, ok := transitions[from][to]
	return action, ok
}
