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

package types_test

import (
	"testing"

	"code.vegaprotocol.io/tinyme/core/types"
	"code.vegaprotocol.io/tinyme/libs/num"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(side types.Side, price, quantity uint64) *types.EnterOrderRequest {
	return &types.EnterOrderRequest{
		RequestID:     1,
		SecurityISIN:  "ABC",
		OrderID:       10,
		Side:          side,
		Quantity:      quantity,
		Price:         price,
		BrokerID:      1,
		ShareholderID: 1,
	}
}

func TestNewOrderFromRequest(t *testing.T) {
	t.Run("standard order", func(t *testing.T) {
		o := types.NewOrderFromRequest(newRequest(types.SideBuy, 100, 10))
		assert.Equal(t, types.OrderKindStandard, o.Kind())
		assert.Equal(t, types.OrderStatusNew, o.Status)
		assert.Equal(t, uint64(100), o.Price.Uint64())
	})

	t.Run("iceberg order displays at most its peak", func(t *testing.T) {
		req := newRequest(types.SideSell, 100, 10)
		req.PeakSize = 4
		o := types.NewOrderFromRequest(req)
		require.NotNil(t, o.Iceberg)
		assert.Equal(t, types.OrderKindIceberg, o.Kind())
		assert.Equal(t, uint64(4), o.Iceberg.DisplayedQuantity)
	})

	t.Run("stop limit order starts inactive", func(t *testing.T) {
		req := newRequest(types.SideBuy, 100, 10)
		req.StopPrice = 90
		o := types.NewOrderFromRequest(req)
		require.NotNil(t, o.StopLimit)
		assert.Equal(t, types.OrderKindStopLimit, o.Kind())
		assert.True(t, o.IsInactiveStopLimit())
	})
}

func TestIcebergQuantity(t *testing.T) {
	req := newRequest(types.SideSell, 100, 100)
	req.PeakSize = 20
	o := types.NewOrderFromRequest(req)

	// a new iceberg is matched with its full quantity
	assert.Equal(t, uint64(100), o.MatchableQuantity())

	o.Queue()
	assert.Equal(t, uint64(20), o.MatchableQuantity())

	o.DecreaseQuantity(20)
	assert.Equal(t, uint64(80), o.Quantity)
	assert.Equal(t, uint64(0), o.Iceberg.DisplayedQuantity)

	o.Replenish()
	assert.Equal(t, uint64(20), o.Iceberg.DisplayedQuantity)

	assert.Panics(t, func() { o.DecreaseQuantity(21) })

	o.IncreaseQuantity(5)
	assert.Equal(t, uint64(85), o.Quantity)
	assert.Equal(t, uint64(25), o.Iceberg.DisplayedQuantity)
}

func TestPricePriority(t *testing.T) {
	buyHigh := types.NewOrderFromRequest(newRequest(types.SideBuy, 110, 1))
	buyLow := types.NewOrderFromRequest(newRequest(types.SideBuy, 100, 1))
	sellHigh := types.NewOrderFromRequest(newRequest(types.SideSell, 110, 1))
	sellLow := types.NewOrderFromRequest(newRequest(types.SideSell, 100, 1))

	assert.True(t, buyHigh.QueuesBefore(buyLow))
	assert.False(t, buyLow.QueuesBefore(buyHigh))
	assert.True(t, sellLow.QueuesBefore(sellHigh))
	assert.False(t, sellHigh.QueuesBefore(sellLow))
	assert.False(t, buyLow.QueuesBefore(buyLow.Clone()))

	assert.True(t, buyHigh.Crosses(sellLow))
	assert.True(t, buyLow.Crosses(sellLow))
	assert.False(t, buyLow.Crosses(sellHigh))
	assert.True(t, sellLow.Crosses(buyHigh))
	assert.False(t, sellHigh.Crosses(buyLow))
}

func TestStopLimitActivation(t *testing.T) {
	buy := newRequest(types.SideBuy, 600, 1)
	buy.StopPrice = 500
	sell := newRequest(types.SideSell, 400, 1)
	sell.StopPrice = 500

	b := types.NewOrderFromRequest(buy)
	s := types.NewOrderFromRequest(sell)

	t.Run("no trade yet never activates", func(t *testing.T) {
		assert.False(t, b.CanActivate(num.UintZero()))
		assert.False(t, s.CanActivate(num.UintZero()))
	})

	t.Run("buy activates at or above its stop price", func(t *testing.T) {
		assert.False(t, b.CanActivate(num.NewUint(499)))
		assert.True(t, b.CanActivate(num.NewUint(500)))
		assert.True(t, b.CanActivate(num.NewUint(650)))
	})

	t.Run("sell activates at or below its stop price", func(t *testing.T) {
		assert.False(t, s.CanActivate(num.NewUint(501)))
		assert.True(t, s.CanActivate(num.NewUint(500)))
		assert.True(t, s.CanActivate(num.NewUint(300)))
	})

	t.Run("activation is permanent", func(t *testing.T) {
		b.Activate()
		assert.False(t, b.IsInactiveStopLimit())
		b.UpdateFromRequest(buy)
		assert.True(t, b.StopLimit.Active)
	})
}

func TestSnapshotIsDetached(t *testing.T) {
	req := newRequest(types.SideBuy, 100, 10)
	req.PeakSize = 5
	o := types.NewOrderFromRequest(req)
	o.Queue()

	snap := o.Snapshot()
	assert.Equal(t, types.OrderStatusSnapshot, snap.Status)

	o.DecreaseQuantity(5)
	o.Price = num.NewUint(200)
	assert.Equal(t, uint64(10), snap.Quantity)
	assert.Equal(t, uint64(5), snap.Iceberg.DisplayedQuantity)
	assert.Equal(t, uint64(100), snap.Price.Uint64())

	o.RestoreFrom(snap, types.OrderStatusQueued)
	assert.Equal(t, uint64(10), o.Quantity)
	assert.Equal(t, uint64(100), o.Price.Uint64())
	assert.Equal(t, types.OrderStatusQueued, o.Status)
}

func TestUpdateFromRequest(t *testing.T) {
	req := newRequest(types.SideBuy, 100, 50)
	req.PeakSize = 10
	o := types.NewOrderFromRequest(req)
	o.Queue()

	t.Run("smaller quantity keeps priority", func(t *testing.T) {
		up := *req
		up.Quantity = 40
		assert.False(t, o.LosesPriority(&up))
	})

	t.Run("larger quantity price change or larger peak lose priority", func(t *testing.T) {
		up := *req
		up.Quantity = 60
		assert.True(t, o.LosesPriority(&up))
		up = *req
		up.Price = 101
		assert.True(t, o.LosesPriority(&up))
		up = *req
		up.PeakSize = 11
		assert.True(t, o.LosesPriority(&up))
	})

	t.Run("smaller peak shrinks the displayed slice", func(t *testing.T) {
		up := *req
		up.PeakSize = 4
		o.UpdateFromRequest(&up)
		assert.Equal(t, uint64(4), o.Iceberg.DisplayedQuantity)
		assert.Equal(t, uint64(4), o.Iceberg.PeakSize)
	})
}

func TestTradedValue(t *testing.T) {
	buy := types.NewOrderFromRequest(newRequest(types.SideBuy, 15500, 10))
	sell := types.NewOrderFromRequest(newRequest(types.SideSell, 15400, 10))
	trade := types.NewTrade("ABC", sell.Price, 7, buy, sell)
	assert.Equal(t, uint64(15400*7), trade.TradedValue().Uint64())
	assert.Equal(t, uint64(7), types.TotalQuantity([]*types.Trade{trade}))
}

func TestInvalidRequestError(t *testing.T) {
	var err *types.InvalidRequestError
	assert.NoError(t, err.ErrOrNil())

	err = types.NewInvalidRequestError()
	assert.NoError(t, err.ErrOrNil())

	err.Add(types.ReasonInvalidOrderID)
	err.Add(types.ReasonUnknownBrokerID)
	require.Error(t, err.ErrOrNil())
	assert.Equal(t, "invalid request: invalid order ID, unknown broker ID", err.Error())
}
