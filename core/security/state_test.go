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

import (
	"testing"

	"code.vegaprotocol.io/tinyme/core/types"

	"github.com/stretchr/testify/assert"
)

func TestTransitionTable(t *testing.T) {
	cases := []struct {
		from, to types.MatchingState
		action   transitionAction
	}{
		{types.MatchingStateContinuous, types.MatchingStateContinuous, transitionNone},
		{types.MatchingStateContinuous, types.MatchingStateAuction, transitionFlip},
		{types.MatchingStateAuction, types.MatchingStateContinuous, transitionOpen},
		{types.MatchingStateAuction, types.MatchingStateAuction, transitionOpen},
	}
	for _, c := range cases {
		t.Run(c.from.String()+"->"+c.to.String(), func(t *testing.T) {
			action, ok := transitionFor(c.from, c.to)
			assert.True(t, ok)
			assert.Equal(t, c.action, action)
		})
	}

	_, ok := transitionFor(types.MatchingState(42), types.MatchingStateAuction)
	assert.False(t, ok)
}
