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

package validation_test

import (
	"testing"
	"time"

	"code.vegaprotocol.io/tinyme/core/accounts"
	"code.vegaprotocol.io/tinyme/core/matching"
	"code.vegaprotocol.io/tinyme/core/security"
	"code.vegaprotocol.io/tinyme/core/types"
	"code.vegaprotocol.io/tinyme/core/validation"
	"code.vegaprotocol.io/tinyme/libs/num"
	"code.vegaprotocol.io/tinyme/logging"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const isin = "ABC"

type testValidator struct {
	*validation.Validator
	sec *security.Security
}

// getTestValidator knows security ABC (tick 10, lot 5), broker 1 with
// plenty of credit and shareholder 1 holding plenty of shares.
func getTestValidator(t *testing.T) *testValidator {
	t.Helper()
	log := logging.NewTestLogger()
	accs := accounts.NewRepository()
	_, err := accs.AddBroker(1, num.NewUint(100_000_000))
	require.NoError(t, err)
	sh, err := accs.AddShareholder(1)
	require.NoError(t, err)
	sh.IncPosition(isin, 100_000)

	matcher := matching.NewMatcher(log, matching.NewDefaultConfig(), accs)
	sec, err := security.NewSecurity(log, security.NewDefaultConfig(), matching.NewDefaultConfig(), isin, 10, 5, matcher, accs)
	require.NoError(t, err)
	secs := security.NewRepository()
	require.NoError(t, secs.Add(sec))

	return &testValidator{
		Validator: validation.NewValidator(secs, accs),
		sec:       sec,
	}
}

func newReq(id uint64, side types.Side, price, quantity uint64) *types.EnterOrderRequest {
	return &types.EnterOrderRequest{
		RequestID:     id,
		Type:          types.OrderEntryTypeNew,
		SecurityISIN:  isin,
		OrderID:       id,
		EntryTime:     time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		Side:          side,
		Quantity:      quantity,
		Price:         price,
		BrokerID:      1,
		ShareholderID: 1,
	}
}

func reasons(t *testing.T, err error) []string {
	t.Helper()
	var invalid *types.InvalidRequestError
	require.True(t, errors.As(err, &invalid), "expected an invalid request error, got %v", err)
	return invalid.Reasons
}

func TestValidNewOrder(t *testing.T) {
	v := getTestValidator(t)
	assert.NoError(t, v.CheckEnterOrder(newReq(1, types.SideBuy, 100, 10)))

	r := newReq(2, types.SideSell, 100, 10)
	r.PeakSize = 5
	assert.NoError(t, v.CheckEnterOrder(r))
}

func TestAllReasonsAreCollected(t *testing.T) {
	v := getTestValidator(t)

	r := newReq(0, types.SideBuy, 0, 0)
	r.SecurityISIN = "XYZ"
	r.BrokerID = 2
	r.ShareholderID = 2
	assert.Equal(t, []string{
		types.ReasonInvalidOrderID,
		types.ReasonOrderQuantityNotPositive,
		types.ReasonOrderPriceNotPositive,
		types.ReasonUnknownSecurityISIN,
		types.ReasonUnknownBrokerID,
		types.ReasonUnknownShareholderID,
	}, reasons(t, v.CheckEnterOrder(r)))
}

func TestOrderFieldCombinations(t *testing.T) {
	v := getTestValidator(t)

	t.Run("lot and tick size", func(t *testing.T) {
		assert.Equal(t, []string{
			types.ReasonQuantityNotMultipleOfLotSize,
			types.ReasonPriceNotMultipleOfTickSize,
		}, reasons(t, v.CheckEnterOrder(newReq(1, types.SideBuy, 105, 12))))
	})

	t.Run("minimum execution quantity above quantity", func(t *testing.T) {
		r := newReq(1, types.SideBuy, 100, 10)
		r.MinimumExecutionQuantity = 15
		assert.Equal(t, []string{types.ReasonMEQMoreThanQuantity}, reasons(t, v.CheckEnterOrder(r)))
	})

	t.Run("stop limit iceberg with minimum execution quantity", func(t *testing.T) {
		r := newReq(1, types.SideBuy, 100, 10)
		r.StopPrice = 90
		r.PeakSize = 5
		r.MinimumExecutionQuantity = 5
		assert.Equal(t, []string{
			types.ReasonStopLimitCannotBeIceberg,
			types.ReasonStopLimitCannotHaveMEQ,
		}, reasons(t, v.CheckEnterOrder(r)))
	})

	t.Run("peak size not below quantity", func(t *testing.T) {
		r := newReq(1, types.SideBuy, 100, 10)
		r.PeakSize = 10
		assert.Equal(t, []string{types.ReasonInvalidPeakSize}, reasons(t, v.CheckEnterOrder(r)))
	})
}

func TestAuctionProhibitions(t *testing.T) {
	v := getTestValidator(t)
	v.sec.ChangeMatchingState(types.MatchingStateAuction)

	r := newReq(1, types.SideBuy, 100, 10)
	r.MinimumExecutionQuantity = 5
	assert.Equal(t, []string{types.ReasonMEQProhibitedInAuction}, reasons(t, v.CheckEnterOrder(r)))

	r = newReq(2, types.SideBuy, 100, 10)
	r.StopPrice = 90
	assert.Equal(t, []string{types.ReasonStopLimitNotAllowedInAuction}, reasons(t, v.CheckEnterOrder(r)))

	r.Type = types.OrderEntryTypeUpdate
	assert.Equal(t, []string{
		types.ReasonStopLimitCannotUpdateInAuction,
		types.ReasonOrderIDNotFound,
	}, reasons(t, v.CheckEnterOrder(r)))
}

func TestUpdateChecks(t *testing.T) {
	v := getTestValidator(t)

	// a resting order with a minimum execution quantity must have met it
	require.False(t, v.sec.NewOrder(newReq(10, types.SideSell, 100, 10)).Outcome.IsRejection())
	meq := newReq(4, types.SideBuy, 100, 20)
	meq.MinimumExecutionQuantity = 5
	require.False(t, v.sec.NewOrder(meq).Outcome.IsRejection())

	plain := newReq(1, types.SideBuy, 100, 10)
	require.False(t, v.sec.NewOrder(plain).Outcome.IsRejection())
	ice := newReq(2, types.SideBuy, 100, 10)
	ice.PeakSize = 5
	require.False(t, v.sec.NewOrder(ice).Outcome.IsRejection())
	stop := newReq(3, types.SideBuy, 100, 10)
	stop.StopPrice = 200
	require.Equal(t, types.MatchingOutcomeInactiveOrderEnqueued, v.sec.NewOrder(stop).Outcome)

	update := func(r *types.EnterOrderRequest) *types.EnterOrderRequest {
		cpy := *r
		cpy.Type = types.OrderEntryTypeUpdate
		return &cpy
	}

	t.Run("valid updates", func(t *testing.T) {
		assert.NoError(t, v.CheckEnterOrder(update(plain)))
		assert.NoError(t, v.CheckEnterOrder(update(ice)))
		assert.NoError(t, v.CheckEnterOrder(update(stop)))
		assert.NoError(t, v.CheckEnterOrder(update(meq)))
	})

	t.Run("unknown order", func(t *testing.T) {
		r := update(plain)
		r.OrderID = 99
		assert.Equal(t, []string{types.ReasonOrderIDNotFound}, reasons(t, v.CheckEnterOrder(r)))
	})

	t.Run("peak size", func(t *testing.T) {
		r := update(ice)
		r.PeakSize = 0
		assert.Equal(t, []string{types.ReasonInvalidPeakSize}, reasons(t, v.CheckEnterOrder(r)))

		r = update(plain)
		r.PeakSize = 5
		assert.Equal(t, []string{types.ReasonPeakSizeForNonIceberg}, reasons(t, v.CheckEnterOrder(r)))
	})

	t.Run("stop price", func(t *testing.T) {
		r := update(plain)
		r.StopPrice = 90
		assert.Equal(t, []string{types.ReasonUpdatingNonStopLimit}, reasons(t, v.CheckEnterOrder(r)))

		r = update(stop)
		r.StopPrice = 0
		assert.Equal(t, []string{types.ReasonUpdatingNonStopLimit}, reasons(t, v.CheckEnterOrder(r)))
	})

	t.Run("minimum execution quantity", func(t *testing.T) {
		r := update(meq)
		r.MinimumExecutionQuantity = 0
		assert.Equal(t, []string{types.ReasonCannotUpdateMEQ}, reasons(t, v.CheckEnterOrder(r)))
	})
}

func TestUpdateActiveStopLimitOrder(t *testing.T) {
	v := getTestValidator(t)
	require.False(t, v.sec.NewOrder(newReq(1, types.SideBuy, 100, 10)).Outcome.IsRejection())
	require.False(t, v.sec.NewOrder(newReq(2, types.SideSell, 100, 10)).Outcome.IsRejection())

	// the trade at 100 lets a buy stop at 100 activate on admission
	stop := newReq(3, types.SideBuy, 100, 10)
	stop.StopPrice = 100
	res := v.sec.NewOrder(stop)
	require.Equal(t, types.MatchingOutcomeExecuted, res.Outcome)

	r := *stop
	r.Type = types.OrderEntryTypeUpdate
	assert.Equal(t, []string{types.ReasonUpdatingActiveStopLimit}, reasons(t, v.CheckEnterOrder(&r)))
}

func TestCheckDeleteOrder(t *testing.T) {
	v := getTestValidator(t)
	stop := newReq(1, types.SideBuy, 100, 10)
	stop.StopPrice = 200
	require.Equal(t, types.MatchingOutcomeInactiveOrderEnqueued, v.sec.NewOrder(stop).Outcome)

	del := &types.DeleteOrderRequest{RequestID: 2, SecurityISIN: isin, Side: types.SideBuy, OrderID: 1}
	assert.NoError(t, v.CheckDeleteOrder(del))

	assert.Equal(t, []string{types.ReasonInvalidOrderID, types.ReasonUnknownSecurityISIN},
		reasons(t, v.CheckDeleteOrder(&types.DeleteOrderRequest{SecurityISIN: "XYZ"})))

	v.sec.ChangeMatchingState(types.MatchingStateAuction)
	assert.Equal(t, []string{types.ReasonStopLimitCannotDeleteInAuction}, reasons(t, v.CheckDeleteOrder(del)))
}

func TestDuplicateOrderID(t *testing.T) {
	v := getTestValidator(t)
	require.False(t, v.sec.NewOrder(newReq(1, types.SideSell, 100, 10)).Outcome.IsRejection())
	stop := newReq(2, types.SideBuy, 100, 10)
	stop.StopPrice = 200
	require.Equal(t, types.MatchingOutcomeInactiveOrderEnqueued, v.sec.NewOrder(stop).Outcome)

	// live in the book
	assert.Equal(t, []string{types.ReasonDuplicateOrderID}, reasons(t, v.CheckEnterOrder(newReq(1, types.SideSell, 110, 5))))
	// parked among the inactive stop orders
	assert.Equal(t, []string{types.ReasonDuplicateOrderID}, reasons(t, v.CheckEnterOrder(newReq(2, types.SideBuy, 90, 5))))
	// ids are unique per side
	assert.NoError(t, v.CheckEnterOrder(newReq(1, types.SideBuy, 90, 5)))
}
