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
	"code.vegaprotocol.io/tinyme/core/matching"
	"code.vegaprotocol.io/tinyme/core/types"
	"code.vegaprotocol.io/tinyme/libs/num"
	"code.vegaprotocol.io/tinyme/logging"
)

// Security runs the order book of a single instrument: it admits, updates
// and deletes orders, switches between continuous trading and auction,
// and feeds triggered stop-limit orders back into admission.
type Security struct {
	log *logging.Logger
	cfg Config

	isin     string
	tickSize uint64
	lotSize  uint64

	book     *matching.OrderBook
	matcher  *matching.Matcher
	accounts matching.Accounts

	state                  types.MatchingState
	indicativeOpeningPrice *num.Uint
	highestQuantity        uint64
}

// NewSecurity creates a security in continuous trading with an empty book.
func NewSecurity(
	log *logging.Logger,
	cfg Config,
	bookCfg matching.Config,
	isin string,
	tickSize, lotSize uint64,
	matcher *matching.Matcher,
	accounts matching.Accounts,
) (*Security, error) {
	if tickSize == 0 {
		return nil, types.ErrInvalidTickSize
	}
	if lotSize == 0 {
		return nil, types.ErrInvalidLotSize
	}

	// setup logger
	log = log.Named(namedLogger).With(logging.ISIN(isin))
	log.SetLevel(cfg.Level.Get())

	return &Security{
		log:                    log,
		cfg:                    cfg,
		isin:                   isin,
		tickSize:               tickSize,
		lotSize:                lotSize,
		book:                   matching.NewOrderBook(log, bookCfg, isin),
		matcher:                matcher,
		accounts:               accounts,
		state:                  types.MatchingStateContinuous,
		indicativeOpeningPrice: num.UintZero(),
	}, nil
}

// ReloadConf updates the internal configuration of the security.
func (s *Security) ReloadConf(cfg Config, bookCfg matching.Config) {
	s.log.Info("reloading configuration")
	if s.log.GetLevel() != cfg.Level.Get() {
		s.log.Info("updating log level",
			logging.String("old", s.log.GetLevel().String()),
			logging.String("new", cfg.Level.String()),
		)
		s.log.SetLevel(cfg.Level.Get())
	}
	s.cfg = cfg
	s.book.ReloadConf(bookCfg)
}

func (s *Security) ISIN() string {
	return s.isin
}

func (s *Security) TickSize() uint64 {
	return s.tickSize
}

func (s *Security) LotSize() uint64 {
	return s.lotSize
}

func (s *Security) State() types.MatchingState {
	return s.state
}

func (s *Security) OrderBook() *matching.OrderBook {
	return s.book
}

// IndicativeOpeningPrice is the equilibrium price last computed in auction.
func (s *Security) IndicativeOpeningPrice() *num.Uint {
	return s.indicativeOpeningPrice.Clone()
}

// HighestQuantity is the quantity tradable at the indicative opening price.
func (s *Security) HighestQuantity() uint64 {
	return s.highestQuantity
}

// UpdateIndicativeOpeningPrice recomputes the equilibrium of the book.
func (s *Security) UpdateIndicativeOpeningPrice() (*num.Uint, uint64) {
	price, quantity := s.book.IndicativePriceAndVolume()
	s.indicativeOpeningPrice = price
	s.highestQuantity = quantity
	s.log.Debug("indicative opening price updated",
		logging.BigUint("price", price),
		logging.Uint64("quantity", quantity))
	return price.Clone(), quantity
}

// FindOrder looks an order up in the book first, then among the inactive
// stop-limit orders. The second value reports which one held it.
func (s *Security) FindOrder(side types.Side, id uint64) (*types.Order, bool) {
	if o := s.book.FindByOrderID(side, id); o != nil {
		return o, false
	}
	if o := s.book.FindInactiveByOrderID(side, id); o != nil {
		return o, true
	}
	return nil, false
}

func (s *Security) broker(id uint64) matching.Broker {
	b := s.accounts.Broker(id)
	if b == nil {
		s.log.Panic("order references an unknown broker", logging.BrokerID(id))
	}
	return b
}

func (s *Security) shareholder(id uint64) matching.Shareholder {
	sh := s.accounts.Shareholder(id)
	if sh == nil {
		s.log.Panic("order references an unknown shareholder", logging.ShareholderID(id))
	}
	return sh
}

// hasEnoughPositions checks a seller can cover everything it already
// offers plus the given extra quantity.
func (s *Security) hasEnoughPositions(shareholderID uint64, committed, extra uint64) bool {
	total := s.book.TotalSellQuantityByShareholder(shareholderID) - committed + extra
	return s.shareholder(shareholderID).HasEnoughPositionsOn(s.isin, total)
}

// NewOrder admits a new order.
func (s *Security) NewOrder(req *types.EnterOrderRequest) *types.MatchResult {
	if req.Side == types.SideSell && !s.hasEnoughPositions(req.ShareholderID, 0, req.Quantity) {
		return types.NotEnoughPositions()
	}

	order := types.NewOrderFromRequest(req)
	if order.IsStopLimit() {
		if order.Side == types.SideBuy && !s.broker(order.BrokerID).HasEnoughCredit(order.Value()) {
			return types.NotEnoughCredit()
		}
		if !order.CanActivate(s.book.LastTradePrice()) {
			return s.park(order, 0)
		}
		order.Activate()
	}

	res := s.process(order)
	if !res.Outcome.IsRejection() {
		res.Activations = s.drainStopLimitOrders()
	}
	return res
}

// park puts a stop-limit order in its inactive queue. A buy reserves its
// value while waiting, exactly as a resting buy does. A zero seq queues
// the order behind every other order with the same stop price.
func (s *Security) park(order *types.Order, seq uint64) *types.MatchResult {
	if order.Side == types.SideBuy {
		s.broker(order.BrokerID).DecreaseCreditBy(order.Value())
	}
	if seq == 0 {
		s.book.EnqueueInactiveStopLimitOrder(order)
	} else {
		s.book.RestoreInactiveStopLimitOrder(order, seq)
	}
	s.log.Debug("stop limit order parked", logging.Order(*order))
	return types.InactiveOrderEnqueued(order)
}

// process routes a matchable order according to the matching state.
func (s *Security) process(order *types.Order) *types.MatchResult {
	if s.state == types.MatchingStateContinuous {
		return s.matcher.Execute(s.book, order)
	}
	res := s.matcher.AddToAuction(s.book, order)
	if !res.Outcome.IsRejection() {
		s.UpdateIndicativeOpeningPrice()
	}
	return res
}

// drainStopLimitOrders feeds every triggered stop-limit order back into
// admission, one at a time, until none is left. Each admission may trade
// and move the last trade price, triggering more orders.
func (s *Security) drainStopLimitOrders() []*types.Activation {
	activations := []*types.Activation{}
	for {
		order := s.book.DequeueNextStopLimitOrder(types.SideBuy)
		if order == nil {
			order = s.book.DequeueNextStopLimitOrder(types.SideSell)
		}
		if order == nil {
			return activations
		}

		// the reservation made while parked is taken again by admission
		if order.Side == types.SideBuy {
			s.broker(order.BrokerID).IncreaseCreditBy(order.Value())
		}
		res := s.process(order)
		if res.Outcome.IsRejection() {
			s.log.Warn("activated stop limit order rejected",
				logging.Order(*order),
				logging.Outcome(res.Outcome))
		}
		activations = append(activations, &types.Activation{Order: order, Result: res})
	}
}

// UpdateOrder amends a live order. An amendment keeping priority is done
// in place, anything else takes the order out and admits it again; a
// rejected re-admission puts the original order back untouched.
func (s *Security) UpdateOrder(req *types.EnterOrderRequest) (*types.MatchResult, error) {
	order, inactive := s.FindOrder(req.Side, req.OrderID)
	if order == nil {
		return nil, types.NewInvalidRequestError(types.ReasonOrderIDNotFound)
	}

	if req.Side == types.SideSell && !s.hasEnoughPositions(order.ShareholderID, order.Quantity, req.Quantity) {
		return types.NotEnoughPositions(), nil
	}

	if !inactive && !order.LosesPriority(req) && req.StopPrice == 0 {
		return s.amendInPlace(order, req), nil
	}
	return s.readmit(order, inactive, req), nil
}

func (s *Security) amendInPlace(order *types.Order, req *types.EnterOrderRequest) *types.MatchResult {
	if order.Side == types.SideBuy {
		broker := s.broker(order.BrokerID)
		broker.IncreaseCreditBy(order.Value())
		order.UpdateFromRequest(req)
		broker.DecreaseCreditBy(order.Value())
	} else {
		order.UpdateFromRequest(req)
	}
	s.book.OrderAmended(order)
	if s.state == types.MatchingStateAuction {
		s.UpdateIndicativeOpeningPrice()
	}
	return types.Executed(order, []*types.Trade{})
}

func (s *Security) readmit(order *types.Order, inactive bool, req *types.EnterOrderRequest) *types.MatchResult {
	var (
		original   = order.Snapshot()
		prevStatus = order.Status
		pos        matching.Position
		seq        uint64
	)
	keepStopSlot := inactive && !order.LosesPriority(req) &&
		(req.StopPrice == 0 || order.StopLimit.StopPrice.EQUint64(req.StopPrice))

	if inactive {
		_, seq, _ = s.book.RemoveInactiveByOrderID(order.Side, order.ID)
	} else {
		_, pos, _ = s.book.RemoveByOrderID(order.Side, order.ID)
	}
	if order.Side == types.SideBuy {
		s.broker(order.BrokerID).IncreaseCreditBy(original.Value())
	}

	restore := func() {
		order.RestoreFrom(original, prevStatus)
		if order.Side == types.SideBuy {
			s.broker(order.BrokerID).DecreaseCreditBy(original.Value())
		}
		if inactive {
			s.book.RestoreInactiveStopLimitOrder(order, seq)
		} else {
			s.book.Restore(order, pos)
		}
		s.log.Debug("update rejected, order restored", logging.Order(*order))
	}

	order.UpdateFromRequest(req)
	order.MarkAsUpdating()

	if inactive && !order.CanActivate(s.book.LastTradePrice()) {
		if order.Side == types.SideBuy && !s.broker(order.BrokerID).HasEnoughCredit(order.Value()) {
			restore()
			return types.NotEnoughCredit()
		}
		if keepStopSlot {
			return s.park(order, seq)
		}
		return s.park(order, 0)
	}
	// activated only once re-admission holds, a rejected update leaves
	// the order parked and never active
	res := s.process(order)
	if res.Outcome.IsRejection() {
		restore()
		return res
	}
	if inactive {
		order.Activate()
	}
	res.Activations = s.drainStopLimitOrders()
	return res
}

// DeleteOrder removes a live or parked order and releases what a buy
// order reserved.
func (s *Security) DeleteOrder(req *types.DeleteOrderRequest) error {
	order, _, ok := s.book.RemoveByOrderID(req.Side, req.OrderID)
	if !ok {
		order, _, ok = s.book.RemoveInactiveByOrderID(req.Side, req.OrderID)
	}
	if !ok {
		return types.NewInvalidRequestError(types.ReasonOrderIDNotFound)
	}

	if order.Side == types.SideBuy {
		s.broker(order.BrokerID).IncreaseCreditBy(order.Value())
	}
	s.log.Debug("order deleted", logging.Order(*order))

	if s.state == types.MatchingStateAuction {
		s.UpdateIndicativeOpeningPrice()
	}
	return nil
}

// ChangeMatchingState moves the security to the requested state, running
// the opening process when leaving or renewing an auction.
func (s *Security) ChangeMatchingState(target types.MatchingState) *types.MatchingStateChange {
	action, ok := transitionFor(s.state, target)
	if !ok {
		s.log.Panic("unsupported matching state transition",
			logging.MatchingState(s.state),
			logging.String("target", target.String()))
	}

	change := &types.MatchingStateChange{
		From:         s.state,
		To:           target,
		OpeningPrice: num.UintZero(),
		Trades:       []*types.Trade{},
	}
	switch action {
	case transitionNone:
	case transitionFlip:
		s.state = target
	case transitionOpen:
		price, quantity := s.UpdateIndicativeOpeningPrice()
		change.OpeningProcess = true
		change.OpeningPrice = price
		change.TradableQuantity = quantity
		change.Trades = s.matcher.Uncross(s.book, price)
		s.state = target
		if target == types.MatchingStateAuction {
			s.UpdateIndicativeOpeningPrice()
		}
	}
	s.log.Debug("matching state changed",
		logging.String("from", change.From.String()),
		logging.String("to", change.To.String()),
		logging.String("action", action.String()),
		logging.Int("trades", len(change.Trades)))

	change.Activations = s.drainStopLimitOrders()
	return change
}
