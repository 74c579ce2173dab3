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

package matching

import (
	"testing"
	"time"

	"code.vegaprotocol.io/tinyme/core/types"
	"code.vegaprotocol.io/tinyme/logging"
)

const testISIN = "ABC"

type tstOB struct {
	*OrderBook
	log *logging.Logger
}

func (t *tstOB) Finish() {
	t.log.Sync()
}

func getTestOrderBook(_ *testing.T, isin string) *tstOB {
	tob := tstOB{
		log: logging.NewTestLogger(),
	}
	tob.OrderBook = NewOrderBook(tob.log, NewDefaultConfig(), isin)

	// Turn on all the debug levels so we can cover more lines of code
	tob.OrderBook.LogPriceLevelsDebug = true
	tob.OrderBook.LogRemovedOrdersDebug = true
	return &tob
}

func newTestOrder(id uint64, side types.Side, price, quantity uint64) *types.Order {
	return types.NewOrderFromRequest(&types.EnterOrderRequest{
		RequestID:     id,
		SecurityISIN:  testISIN,
		OrderID:       id,
		EntryTime:     time.Unix(0, int64(id)),
		Side:          side,
		Quantity:      quantity,
		Price:         price,
		BrokerID:      1,
		ShareholderID: 1,
	})
}

func newTestStopOrder(id uint64, side types.Side, price, quantity, stop uint64) *types.Order {
	o := newTestOrder(id, side, price, quantity)
	o.StopLimit = &types.StopLimitOrder{StopPrice: numFromUint64(stop)}
	return o
}

func ids(orders []*types.Order) []uint64 {
	out := make([]uint64, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.ID)
	}
	return out
}

func (b *OrderBook) getNumberOfBuyLevels() int {
	return len(b.buy.levels)
}

func (b *OrderBook) getNumberOfSellLevels() int {
	return len(b.sell.levels)
}
