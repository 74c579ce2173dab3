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
	"code.vegaprotocol.io/tinyme/core/types"
	"code.vegaprotocol.io/tinyme/libs/num"
	"code.vegaprotocol.io/tinyme/logging"
)

// FindBestAuctionPrice returns the price maximising the quantity that
// would trade if the book uncrossed at it, and that quantity. Among equal
// quantities the price closest to lastTradePrice wins, then the lowest
// one. A zero price means nothing would trade.
func FindBestAuctionPrice(buy, sell *OrderBookSide, lastTradePrice *num.Uint) (*num.Uint, uint64) {
	var (
		bestPrice    = num.UintZero()
		bestQuantity uint64
		bestDistance *num.Uint
	)
	for _, price := range candidatePrices(buy, sell) {
		quantity := min(buy.volumeAtOrBetter(price), sell.volumeAtOrBetter(price))
		if quantity == 0 || quantity < bestQuantity {
			continue
		}
		distance, _ := num.UintZero().Delta(price, lastTradePrice)
		if quantity > bestQuantity ||
			distance.LT(bestDistance) ||
			(distance.EQ(bestDistance) && price.LT(bestPrice)) {
			bestPrice, bestQuantity, bestDistance = price, quantity, distance
		}
	}
	return bestPrice, bestQuantity
}

// candidatePrices returns every distinct price present on either side.
func candidatePrices(buy, sell *OrderBookSide) []*num.Uint {
	seen := map[string]struct{}{}
	out := []*num.Uint{}
	for _, p := range append(buy.prices(), sell.prices()...) {
		k := p.String()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, p)
	}
	return out
}

// AddToAuction rests the order on the book without matching it. A buy
// order reserves its full value.
func (m *Matcher) AddToAuction(book *OrderBook, order *types.Order) *types.MatchResult {
	if order.Side == types.SideBuy {
		broker := m.broker(order.BrokerID)
		if !broker.HasEnoughCredit(order.Value()) {
			m.log.Debug("not enough credit to enqueue in auction", logging.Order(*order))
			return types.NotEnoughCredit()
		}
		broker.DecreaseCreditBy(order.Value())
	}
	book.Enqueue(order)
	return types.EnqueuedInAuction(order)
}

// Uncross runs the opening process: sell orders are taken in book order
// and traded against the best buy orders at the single given price until
// the book no longer crosses it. Fully traded orders are purged at the end.
func (m *Matcher) Uncross(book *OrderBook, price *num.Uint) []*types.Trade {
	trades := []*types.Trade{}
	if price == nil || price.IsZero() {
		return trades
	}
	expectedPrice, expected := book.IndicativePriceAndVolume()

	var traded uint64
	for _, sell := range book.SellOrders() {
		if !sell.CrossesPrice(price) {
			break
		}
		for sell.Quantity > 0 {
			buy := book.First(types.SideBuy)
			if buy == nil || !buy.CrossesPrice(price) {
				break
			}
			trade := types.NewTrade(book.ISIN(), price, min(sell.Quantity, buy.Quantity), buy, sell)
			m.settleAuctionTrade(trade)
			trades = append(trades, trade)
			traded += trade.Quantity

			buy.DecreaseRemaining(trade.Quantity)
			sell.DecreaseRemaining(trade.Quantity)
			if buy.Quantity == 0 {
				book.RemoveFirst(types.SideBuy)
			}
		}
	}
	book.PurgeEmpty()
	for _, o := range append(book.BuyOrders(), book.SellOrders()...) {
		if o.Iceberg != nil && o.Iceberg.DisplayedQuantity == 0 {
			o.Replenish()
		}
	}

	if len(trades) > 0 {
		book.SetLastTradePrice(price)
	}
	if expectedPrice.EQ(price) && traded != expected {
		m.log.Panic("uncrossing traded a different quantity than the equilibrium",
			logging.ISIN(book.ISIN()),
			logging.BigUint("price", price),
			logging.Uint64("expected", expected),
			logging.Uint64("traded", traded))
	}
	m.log.Debug("book uncrossed",
		logging.ISIN(book.ISIN()),
		logging.BigUint("price", price),
		logging.Uint64("quantity", traded),
		logging.Int("trades", len(trades)))
	return trades
}

// settleAuctionTrade moves credit and positions for an uncrossing trade.
// The buyer reserved its limit value when entering the auction, that
// reservation is released and the clearing value charged instead.
func (m *Matcher) settleAuctionTrade(trade *types.Trade) {
	value := trade.TradedValue()
	buyer := m.broker(trade.Buy.BrokerID)
	buyer.IncreaseCreditBy(trade.Buy.ValueOf(trade.Quantity))
	buyer.DecreaseCreditBy(value)
	m.broker(trade.Sell.BrokerID).IncreaseCreditBy(value)

	m.shareholder(trade.Buy.ShareholderID).IncPosition(trade.SecurityISIN, trade.Quantity)
	m.shareholder(trade.Sell.ShareholderID).DecPosition(trade.SecurityISIN, trade.Quantity)
}
