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

// Matcher executes orders against an order book. It keeps no state of
// its own besides the accounts it settles trades on.
type Matcher struct {
	log      *logging.Logger
	accounts Accounts
}

func NewMatcher(log *logging.Logger, config Config, accounts Accounts) *Matcher {
	log = log.Named(namedLogger)
	log.SetLevel(config.Level.Get())

	return &Matcher{
		log:      log,
		accounts: accounts,
	}
}

func (m *Matcher) broker(id uint64) Broker {
	b := m.accounts.Broker(id)
	if b == nil {
		m.log.Panic("order references an unknown broker", logging.BrokerID(id))
	}
	return b
}

func (m *Matcher) shareholder(id uint64) Shareholder {
	s := m.accounts.Shareholder(id)
	if s == nil {
		m.log.Panic("order references an unknown shareholder", logging.ShareholderID(id))
	}
	return s
}

// undoLog records the inverse of every mutation done while matching a
// single order, so a failing call can be reverted as a whole.
type undoLog struct {
	steps []func()
}

func (u *undoLog) push(step func()) {
	u.steps = append(u.steps, step)
}

// rollback applies the recorded steps newest first.
func (u *undoLog) rollback() {
	for i := len(u.steps) - 1; i >= 0; i-- {
		u.steps[i]()
	}
	u.steps = nil
}

// match trades the incoming order against the opposite side as long as
// prices cross. Nothing is committed to the positions, and the remainder
// is not queued: the returned log reverts everything done here.
func (m *Matcher) match(book *OrderBook, incoming *types.Order) ([]*types.Trade, *undoLog, types.MatchingOutcome) {
	var (
		trades = []*types.Trade{}
		undo   = &undoLog{}
	)
	for book.HasOrderOfType(incoming.Side.Opposite()) && incoming.Quantity > 0 {
		resting := book.MatchWithFirst(incoming)
		if resting == nil {
			break
		}

		quantity := min(incoming.Quantity, resting.MatchableQuantity())
		var trade *types.Trade
		if incoming.Side == types.SideBuy {
			trade = types.NewTrade(book.ISIN(), resting.Price, quantity, incoming, resting)
		} else {
			trade = types.NewTrade(book.ISIN(), resting.Price, quantity, resting, incoming)
		}

		value := trade.TradedValue()
		if incoming.Side == types.SideBuy {
			buyer := m.broker(incoming.BrokerID)
			if !buyer.HasEnoughCredit(value) {
				m.log.Debug("buyer ran out of credit, rolling back",
					logging.Order(*incoming),
					logging.Int("trades", len(trades)))
				undo.rollback()
				return nil, nil, types.MatchingOutcomeNotEnoughCredit
			}
			buyer.DecreaseCreditBy(value)
			undo.push(func() { buyer.IncreaseCreditBy(value) })
		}
		seller := m.broker(trade.Sell.BrokerID)
		seller.IncreaseCreditBy(value)
		undo.push(func() { seller.DecreaseCreditBy(value) })

		m.consumeResting(book, resting, quantity, undo)

		incoming.DecreaseQuantity(quantity)
		undo.push(func() { incoming.IncreaseQuantity(quantity) })

		trades = append(trades, trade)
		m.log.Debug("trade", logging.Trade(*trade))
	}

	if incoming.Status == types.OrderStatusNew &&
		incoming.MinimumExecutionQuantity > types.TotalQuantity(trades) {
		m.log.Debug("minimum execution quantity not reached, rolling back",
			logging.Order(*incoming),
			logging.Uint64("matched", types.TotalQuantity(trades)))
		undo.rollback()
		return nil, nil, types.MatchingOutcomeNotEnoughQuantitiesMatched
	}
	return trades, undo, types.MatchingOutcomeExecuted
}

// consumeResting takes quantity out of the head of the book. A head that
// is used up leaves the book, an iceberg with hidden quantity left comes
// back with a fresh slice at the tail of its price level.
func (m *Matcher) consumeResting(book *OrderBook, resting *types.Order, quantity uint64, undo *undoLog) {
	if quantity < resting.MatchableQuantity() {
		resting.DecreaseQuantity(quantity)
		undo.push(func() { resting.IncreaseQuantity(quantity) })
		return
	}

	prevQuantity := resting.Quantity
	var prevDisplayed uint64
	if resting.Iceberg != nil {
		prevDisplayed = resting.Iceberg.DisplayedQuantity
	}
	resting.DecreaseQuantity(quantity)
	_, pos := book.RemoveFirst(resting.Side)
	if resting.Quantity > 0 {
		book.Enqueue(resting)
	}
	undo.push(func() {
		resting.Quantity = prevQuantity
		if resting.Iceberg != nil {
			resting.Iceberg.DisplayedQuantity = prevDisplayed
		}
		book.Restore(resting, pos)
	})
}

// Execute runs continuous matching for the order: it trades whatever
// crosses, then queues the remainder, a buy remainder reserving its value.
// Any rejection leaves the book and every account as they were.
func (m *Matcher) Execute(book *OrderBook, order *types.Order) *types.MatchResult {
	trades, undo, outcome := m.match(book, order)
	switch outcome {
	case types.MatchingOutcomeNotEnoughCredit:
		return types.NotEnoughCredit()
	case types.MatchingOutcomeNotEnoughQuantitiesMatched:
		return types.NotEnoughQuantitiesMatched()
	}

	if order.Quantity > 0 {
		if order.Side == types.SideBuy {
			broker := m.broker(order.BrokerID)
			if !broker.HasEnoughCredit(order.Value()) {
				m.log.Debug("not enough credit to queue the remainder, rolling back",
					logging.Order(*order))
				undo.rollback()
				return types.NotEnoughCredit()
			}
			broker.DecreaseCreditBy(order.Value())
		}
		book.Enqueue(order)
	}

	if len(trades) > 0 {
		book.SetLastTradePrice(trades[len(trades)-1].Price)
		for _, trade := range trades {
			m.shareholder(trade.Buy.ShareholderID).IncPosition(trade.SecurityISIN, trade.Quantity)
			m.shareholder(trade.Sell.ShareholderID).DecPosition(trade.SecurityISIN, trade.Quantity)
		}
	}
	return types.Executed(order, trades)
}

// TradedValue sums the value of the given trades.
func TradedValue(trades []*types.Trade) *num.Uint {
	total := num.UintZero()
	for _, t := range trades {
		total.Add(total, t.TradedValue())
	}
	return total
}
