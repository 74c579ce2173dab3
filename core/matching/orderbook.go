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

// OrderBook holds the matchable orders of a single security together
// with the stop-limit orders still waiting for their trigger.
type OrderBook struct {
	log *logging.Logger
	Config

	isin         string
	buy          *OrderBookSide
	sell         *OrderBookSide
	inactiveBuy  *stopQueue
	inactiveSell *stopQueue

	lastTradePrice *num.Uint
	// arrival counter of the inactive queues
	stopSeq uint64
	cache   BookCache
}

// NewOrderBook create an order book with a given name.
func NewOrderBook(log *logging.Logger, config Config, isin string) *OrderBook {
	// setup logger
	log = log.Named(namedLogger)
	log.SetLevel(config.Level.Get())

	return &OrderBook{
		log:            log,
		Config:         config,
		isin:           isin,
		buy:            newOrderBookSide(log, types.SideBuy),
		sell:           newOrderBookSide(log, types.SideSell),
		inactiveBuy:    newStopQueue(types.SideBuy),
		inactiveSell:   newStopQueue(types.SideSell),
		lastTradePrice: num.UintZero(),
		cache:          NewBookCache(),
	}
}

// ReloadConf is used in order to reload the internal configuration of
// the OrderBook.
func (b *OrderBook) ReloadConf(cfg Config) {
	b.log.Info("reloading configuration")
	if b.log.GetLevel() != cfg.Level.Get() {
		b.log.Info("updating log level",
			logging.String("old", b.log.GetLevel().String()),
			logging.String("new", cfg.Level.String()),
		)
		b.log.SetLevel(cfg.Level.Get())
	}
	b.LogPriceLevelsDebug = cfg.LogPriceLevelsDebug
	b.LogRemovedOrdersDebug = cfg.LogRemovedOrdersDebug
}

func (b *OrderBook) ISIN() string {
	return b.isin
}

func (b *OrderBook) getSide(side types.Side) *OrderBookSide {
	if side == types.SideBuy {
		return b.buy
	}
	return b.sell
}

func (b *OrderBook) getStopQueue(side types.Side) *stopQueue {
	if side == types.SideBuy {
		return b.inactiveBuy
	}
	return b.inactiveSell
}

// Enqueue inserts the order behind every order with the same or better
// price on its side.
func (b *OrderBook) Enqueue(o *types.Order) {
	o.Queue()
	b.getSide(o.Side).addOrder(o)
	b.cache.Invalidate()

	if b.LogPriceLevelsDebug {
		b.log.Debug("order enqueued", logging.Order(*o))
	}
}

// FindByOrderID returns the matchable order with the given id, nil if
// there is none.
func (b *OrderBook) FindByOrderID(side types.Side, id uint64) *types.Order {
	return b.getSide(side).find(id)
}

// FindInactiveByOrderID returns the inactive stop-limit order with the
// given id, nil if there is none.
func (b *OrderBook) FindInactiveByOrderID(side types.Side, id uint64) *types.Order {
	return b.getStopQueue(side).find(id)
}

// RemoveByOrderID removes a matchable order and returns the slot it held
// so that it can be restored later.
func (b *OrderBook) RemoveByOrderID(side types.Side, id uint64) (*types.Order, Position, bool) {
	o, pos, ok := b.getSide(side).remove(id)
	if !ok {
		return nil, Position{}, false
	}
	b.cache.Invalidate()
	if b.LogRemovedOrdersDebug {
		b.log.Debug("order removed", logging.Order(*o))
	}
	return o, pos, true
}

// HasOrderOfType reports whether the given side holds any matchable order.
func (b *OrderBook) HasOrderOfType(side types.Side) bool {
	return !b.getSide(side).empty()
}

// MatchWithFirst peeks at the head of the side opposite to the incoming
// order, it returns nil when the head does not cross.
func (b *OrderBook) MatchWithFirst(incoming *types.Order) *types.Order {
	head := b.getSide(incoming.Side.Opposite()).head()
	if head == nil || !incoming.Crosses(head) {
		return nil
	}
	return head
}

// First returns the order with the best priority on the given side.
func (b *OrderBook) First(side types.Side) *types.Order {
	return b.getSide(side).head()
}

// RemoveFirst pops the head of the given side.
func (b *OrderBook) RemoveFirst(side types.Side) (*types.Order, Position) {
	o, pos := b.getSide(side).removeHead()
	if o != nil {
		b.cache.Invalidate()
	}
	return o, pos
}

// RestoreBuyOrder puts a previously removed buy order back in the slot
// it held, dropping any other copy of it still on the book.
func (b *OrderBook) RestoreBuyOrder(o *types.Order, pos Position) {
	b.restore(b.buy, o, pos)
}

// RestoreSellOrder is the sell side counterpart of RestoreBuyOrder.
func (b *OrderBook) RestoreSellOrder(o *types.Order, pos Position) {
	b.restore(b.sell, o, pos)
}

// Restore dispatches to RestoreBuyOrder or RestoreSellOrder.
func (b *OrderBook) Restore(o *types.Order, pos Position) {
	if o.Side == types.SideBuy {
		b.RestoreBuyOrder(o, pos)
		return
	}
	b.RestoreSellOrder(o, pos)
}

func (b *OrderBook) restore(s *OrderBookSide, o *types.Order, pos Position) {
	o.Status = types.OrderStatusQueued
	s.restore(o, pos)
	b.cache.Invalidate()
}

// PositionOf returns the slot currently held by a matchable order.
func (b *OrderBook) PositionOf(side types.Side, id uint64) (Position, bool) {
	return b.getSide(side).position(id)
}

// EnqueueInactiveStopLimitOrder parks a stop-limit order until its
// trigger is met.
func (b *OrderBook) EnqueueInactiveStopLimitOrder(o *types.Order) uint64 {
	b.stopSeq++
	b.getStopQueue(o.Side).add(o, b.stopSeq)
	return b.stopSeq
}

// RestoreInactiveStopLimitOrder parks the order again with the arrival
// sequence it was originally queued with.
func (b *OrderBook) RestoreInactiveStopLimitOrder(o *types.Order, seq uint64) {
	q := b.getStopQueue(o.Side)
	q.remove(o.ID)
	q.add(o, seq)
}

// RemoveInactiveByOrderID drops an inactive stop-limit order and returns
// its arrival sequence.
func (b *OrderBook) RemoveInactiveByOrderID(side types.Side, id uint64) (*types.Order, uint64, bool) {
	return b.getStopQueue(side).remove(id)
}

// DequeueNextStopLimitOrder removes and activates the first inactive
// order of the side whose trigger is met by the last trade price.
func (b *OrderBook) DequeueNextStopLimitOrder(side types.Side) *types.Order {
	o := b.getStopQueue(side).popActivatable(b.lastTradePrice)
	if o == nil {
		return nil
	}
	o.Activate()
	b.log.Debug("stop limit order activated",
		logging.Order(*o),
		logging.BigUint("last-trade-price", b.lastTradePrice))
	return o
}

// ActivateStopLimitOrders sweeps both inactive queues against the last
// trade price, activated orders are returned buys first then sells, each
// in priority order.
func (b *OrderBook) ActivateStopLimitOrders() []*types.Order {
	activated := []*types.Order{}
	for _, side := range []types.Side{types.SideBuy, types.SideSell} {
		for o := b.DequeueNextStopLimitOrder(side); o != nil; o = b.DequeueNextStopLimitOrder(side) {
			activated = append(activated, o)
		}
	}
	return activated
}

// ActiveStopLimitOrders lists the activated stop-limit orders resting in
// the matchable queues.
func (b *OrderBook) ActiveStopLimitOrders() []*types.Order {
	out := []*types.Order{}
	for _, o := range append(b.buy.orders(), b.sell.orders()...) {
		if o.IsStopLimit() && o.StopLimit.Active {
			out = append(out, o)
		}
	}
	return out
}

func (b *OrderBook) LastTradePrice() *num.Uint {
	return b.lastTradePrice.Clone()
}

// SetLastTradePrice moves the activation reference of the stop-limit
// orders, the equilibrium tie-break depends on it too.
func (b *OrderBook) SetLastTradePrice(price *num.Uint) {
	b.lastTradePrice = price.Clone()
	b.cache.Invalidate()
}

// BuyOrders returns the matchable buy orders in priority order.
func (b *OrderBook) BuyOrders() []*types.Order {
	return b.buy.orders()
}

// SellOrders returns the matchable sell orders in priority order.
func (b *OrderBook) SellOrders() []*types.Order {
	return b.sell.orders()
}

// InactiveBuyOrders returns the parked buy stop-limit orders, closest
// to activation first.
func (b *OrderBook) InactiveBuyOrders() []*types.Order {
	return b.inactiveBuy.orders()
}

// InactiveSellOrders returns the parked sell stop-limit orders, closest
// to activation first.
func (b *OrderBook) InactiveSellOrders() []*types.Order {
	return b.inactiveSell.orders()
}

// TotalSellQuantityByShareholder is the quantity a shareholder already
// committed to sell, parked stop-limit orders included.
func (b *OrderBook) TotalSellQuantityByShareholder(id uint64) uint64 {
	return b.sell.totalQuantityByShareholder(id) + b.inactiveSell.totalQuantityByShareholder(id)
}

// OrderAmended must be called after a resting order was changed in place.
func (b *OrderBook) OrderAmended(o *types.Order) {
	b.cache.Invalidate()
	if b.LogPriceLevelsDebug {
		b.log.Debug("order amended in place", logging.Order(*o))
	}
}

// PurgeEmpty drops every fully consumed order from both sides.
func (b *OrderBook) PurgeEmpty() {
	b.buy.purgeEmpty()
	b.sell.purgeEmpty()
	b.cache.Invalidate()
}

// BestBidPrice returns the highest buy price, an error on an empty side.
func (b *OrderBook) BestBidPrice() (*num.Uint, error) {
	price, _, err := b.buy.BestPriceAndVolume()
	return price, err
}

// BestOfferPrice returns the lowest sell price, an error on an empty side.
func (b *OrderBook) BestOfferPrice() (*num.Uint, error) {
	price, _, err := b.sell.BestPriceAndVolume()
	return price, err
}

// IndicativePriceAndVolume returns the equilibrium price of the book and
// the quantity tradable at it, recomputed only after a mutation.
func (b *OrderBook) IndicativePriceAndVolume() (*num.Uint, uint64) {
	price, priceOk := b.cache.GetIndicativePrice()
	volume, volumeOk := b.cache.GetIndicativeVolume()
	if priceOk && volumeOk {
		return price, volume
	}
	price, volume = FindBestAuctionPrice(b.buy, b.sell, b.lastTradePrice)
	b.cache.SetIndicativePrice(price.Clone())
	b.cache.SetIndicativeVolume(volume)
	return price, volume
}
