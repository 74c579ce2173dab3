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

package execution

import (
	"context"

	"code.vegaprotocol.io/tinyme/core/accounts"
	"code.vegaprotocol.io/tinyme/core/events"
	"code.vegaprotocol.io/tinyme/core/matching"
	"code.vegaprotocol.io/tinyme/core/security"
	"code.vegaprotocol.io/tinyme/core/types"
	"code.vegaprotocol.io/tinyme/core/validation"
	"code.vegaprotocol.io/tinyme/logging"
	"code.vegaprotocol.io/tinyme/metrics"

	"github.com/pkg/errors"
)

//go:generate go run github.com/golang/mock/mockgen -destination mocks/mocks.go -package mocks code.vegaprotocol.io/tinyme/core/execution EventPublisher

// EventPublisher receives the events produced while handling requests.
type EventPublisher interface {
	Send(e events.Event)
	SendBatch(evts []events.Event)
}

const (
	kindNew    = "new"
	kindUpdate = "update"
	kindDelete = "delete"
	kindState  = "state"

	outcomeInvalid = "INVALID"
	outcomeDeleted = "DELETED"
)

// Engine is the execution engine: it validates requests, hands them to
// the security they target and publishes what happened.
type Engine struct {
	Config
	log *logging.Logger

	accounts   *accounts.Repository
	securities *security.Repository
	validator  *validation.Validator
	matcher    *matching.Matcher
	broker     EventPublisher

	seq uint64
}

// NewEngine returns an execution engine without any security. Brokers and
// shareholders are resolved through accts.
func NewEngine(log *logging.Logger, executionConfig Config, accts *accounts.Repository, broker EventPublisher) *Engine {
	// setup logger
	log = log.Named(namedLogger)
	log.SetLevel(executionConfig.Level.Get())

	securities := security.NewRepository()
	return &Engine{
		Config:     executionConfig,
		log:        log,
		accounts:   accts,
		securities: securities,
		validator:  validation.NewValidator(securities, accts),
		matcher:    matching.NewMatcher(log, executionConfig.Matching, accts),
		broker:     broker,
	}
}

// ReloadConf updates the internal configuration of the execution
// engine and its securities.
func (e *Engine) ReloadConf(cfg Config) {
	e.log.Debug("reloading configuration")

	if e.log.GetLevel() != cfg.Level.Get() {
		e.log.Info("updating log level",
			logging.String("old", e.log.GetLevel().String()),
			logging.String("new", cfg.Level.String()),
		)
		e.log.SetLevel(cfg.Level.Get())
	}

	e.Config = cfg
	for _, sec := range e.securities.All() {
		sec.ReloadConf(e.Security, e.Matching)
	}
}

func (e *Engine) Accounts() *accounts.Repository {
	return e.accounts
}

func (e *Engine) Securities() *security.Repository {
	return e.securities
}

// AddSecurity starts trading a new security in continuous mode.
func (e *Engine) AddSecurity(isin string, tickSize, lotSize uint64) (*security.Security, error) {
	sec, err := security.NewSecurity(e.log, e.Security, e.Matching, isin, tickSize, lotSize, e.matcher, e.accounts)
	if err != nil {
		return nil, err
	}
	if err := e.securities.Add(sec); err != nil {
		return nil, err
	}
	e.log.Info("security added",
		logging.ISIN(isin),
		logging.Uint64("tick-size", tickSize),
		logging.Uint64("lot-size", lotSize))
	return sec, nil
}

// HandleEnterOrder processes a new order or an order update.
func (e *Engine) HandleEnterOrder(ctx context.Context, req *types.EnterOrderRequest) {
	kind := kindNew
	if req.Type == types.OrderEntryTypeUpdate {
		kind = kindUpdate
	}
	defer metrics.RequestTimeObserve(kind)()

	if e.log.IsDebug() {
		e.log.Debug("enter order",
			logging.String("kind", kind),
			logging.RequestID(req.RequestID),
			logging.OrderID(req.OrderID),
			logging.ISIN(req.SecurityISIN))
	}

	if err := e.validator.CheckEnterOrder(req); err != nil {
		e.reject(ctx, kind, req.RequestID, req.OrderID, err)
		return
	}
	sec, err := e.securities.Get(req.SecurityISIN)
	if err != nil {
		e.reject(ctx, kind, req.RequestID, req.OrderID, err)
		return
	}

	var res *types.MatchResult
	timer := metrics.NewTimeCounter(sec.ISIN(), "security", "EnterOrder")
	if req.Type == types.OrderEntryTypeNew {
		res = sec.NewOrder(req)
	} else {
		res, err = sec.UpdateOrder(req)
	}
	timer.EngineTimeCounterAdd()
	if err != nil {
		e.reject(ctx, kind, req.RequestID, req.OrderID, err)
		return
	}

	metrics.RequestCounterInc(kind, res.Outcome.String())
	e.publish(e.enterOrderEvents(ctx, sec, req, res)...)
	e.updateBookGauges(sec)
}

func (e *Engine) enterOrderEvents(ctx context.Context, sec *security.Security, req *types.EnterOrderRequest, res *types.MatchResult) []events.Event {
	if res.Outcome.IsRejection() {
		return []events.Event{
			events.NewOrderRejected(ctx, req.RequestID, req.OrderID, []string{types.RejectionReason(res.Outcome)}),
		}
	}

	evts := []events.Event{}
	if req.Type == types.OrderEntryTypeNew {
		if res.Outcome == types.MatchingOutcomeOrderEnqueuedInAuctionMode {
			evts = append(evts, e.openingPrice(ctx, sec))
		}
		evts = append(evts, events.NewOrderAccepted(ctx, req.RequestID, req.OrderID))
	} else {
		evts = append(evts, events.NewOrderUpdated(ctx, req.RequestID, req.OrderID))
		if sec.State() == types.MatchingStateAuction {
			evts = append(evts, e.openingPrice(ctx, sec))
		}
	}

	if req.IsStopLimit() && res.Outcome != types.MatchingOutcomeInactiveOrderEnqueued {
		evts = append(evts, events.NewOrderActivated(ctx, req.RequestID, req.OrderID))
		metrics.ActivationsAdd(sec.ISIN(), 1)
	}
	if len(res.Trades) > 0 && sec.State() == types.MatchingStateContinuous {
		evts = append(evts, events.NewOrderExecuted(ctx, req.RequestID, req.OrderID, events.NewTradeViews(res.Trades)))
		metrics.TradesAdd(sec.ISIN(), "continuous", len(res.Trades), types.TotalQuantity(res.Trades))
	}
	return append(evts, e.activationEvents(ctx, sec, res.Activations)...)
}

// activationEvents reports stop-limit orders triggered by a request, each
// under the request id that originally entered it.
func (e *Engine) activationEvents(ctx context.Context, sec *security.Security, acts []*types.Activation) []events.Event {
	evts := []events.Event{}
	for _, act := range acts {
		o, res := act.Order, act.Result
		if res.Outcome.IsRejection() {
			evts = append(evts, events.NewOrderRejected(ctx, o.RequestID, o.ID, []string{types.RejectionReason(res.Outcome)}))
			continue
		}
		evts = append(evts, events.NewOrderActivated(ctx, o.RequestID, o.ID))
		metrics.ActivationsAdd(sec.ISIN(), 1)
		if len(res.Trades) > 0 {
			evts = append(evts, events.NewOrderExecuted(ctx, o.RequestID, o.ID, events.NewTradeViews(res.Trades)))
			metrics.TradesAdd(sec.ISIN(), "continuous", len(res.Trades), types.TotalQuantity(res.Trades))
		}
	}
	return evts
}

// HandleDeleteOrder removes an order from its security.
func (e *Engine) HandleDeleteOrder(ctx context.Context, req *types.DeleteOrderRequest) {
	defer metrics.RequestTimeObserve(kindDelete)()

	if e.log.IsDebug() {
		e.log.Debug("delete order",
			logging.RequestID(req.RequestID),
			logging.OrderID(req.OrderID),
			logging.ISIN(req.SecurityISIN))
	}

	if err := e.validator.CheckDeleteOrder(req); err != nil {
		e.reject(ctx, kindDelete, req.RequestID, req.OrderID, err)
		return
	}
	sec, err := e.securities.Get(req.SecurityISIN)
	if err == nil {
		err = sec.DeleteOrder(req)
	}
	if err != nil {
		e.reject(ctx, kindDelete, req.RequestID, req.OrderID, err)
		return
	}

	metrics.RequestCounterInc(kindDelete, outcomeDeleted)
	evts := []events.Event{events.NewOrderDeleted(ctx, req.RequestID, req.OrderID)}
	if sec.State() == types.MatchingStateAuction {
		evts = append(evts, e.openingPrice(ctx, sec))
	}
	e.publish(evts...)
	e.updateBookGauges(sec)
}

// HandleChangeMatchingState moves a security to the requested matching
// state, publishing the opening trades when an auction closes.
func (e *Engine) HandleChangeMatchingState(ctx context.Context, req *types.ChangeMatchingStateRequest) error {
	defer metrics.RequestTimeObserve(kindState)()

	sec, err := e.securities.Get(req.SecurityISIN)
	if err != nil {
		e.log.Error("matching state change for an unknown security",
			logging.ISIN(req.SecurityISIN),
			logging.Error(err))
		return errors.Wrapf(err, "changing matching state of %s", req.SecurityISIN)
	}

	timer := metrics.NewTimeCounter(sec.ISIN(), "security", "ChangeMatchingState")
	change := sec.ChangeMatchingState(req.State)
	timer.EngineTimeCounterAdd()

	metrics.RequestCounterInc(kindState, change.To.String())
	metrics.StateChangeInc(sec.ISIN(), change.From.String(), change.To.String())

	evts := []events.Event{}
	if change.OpeningProcess {
		evts = append(evts, events.NewOpeningPrice(ctx, sec.ISIN(), change.OpeningPrice, change.TradableQuantity))
		for _, t := range change.Trades {
			evts = append(evts, events.NewTradeEvent(ctx, t))
		}
		metrics.TradesAdd(sec.ISIN(), "auction", len(change.Trades), types.TotalQuantity(change.Trades))
	}
	evts = append(evts, events.NewSecurityStateChanged(ctx, sec.ISIN(), sec.State()))
	evts = append(evts, e.activationEvents(ctx, sec, change.Activations)...)

	e.publish(evts...)
	e.updateBookGauges(sec)
	return nil
}

func (e *Engine) openingPrice(ctx context.Context, sec *security.Security) events.Event {
	return events.NewOpeningPrice(ctx, sec.ISIN(), sec.IndicativeOpeningPrice(), sec.HighestQuantity())
}

func (e *Engine) reject(ctx context.Context, kind string, requestID, orderID uint64, err error) {
	var invalid *types.InvalidRequestError
	reasons := []string{err.Error()}
	if errors.As(err, &invalid) {
		reasons = invalid.Reasons
	}
	if e.log.IsDebug() {
		e.log.Debug("request rejected",
			logging.RequestID(requestID),
			logging.Strings("reasons", reasons))
	}
	metrics.RequestCounterInc(kind, outcomeInvalid)
	e.publish(events.NewOrderRejected(ctx, requestID, orderID, reasons))
}

func (e *Engine) publish(evts ...events.Event) {
	for _, evt := range evts {
		e.seq++
		evt.SetSequenceID(e.seq)
	}
	if len(evts) == 1 {
		e.broker.Send(evts[0])
		return
	}
	e.broker.SendBatch(evts)
}

func (e *Engine) updateBookGauges(sec *security.Security) {
	book := sec.OrderBook()
	metrics.OrderGaugeSet(len(book.BuyOrders()), sec.ISIN(), types.SideBuy.String())
	metrics.OrderGaugeSet(len(book.SellOrders()), sec.ISIN(), types.SideSell.String())
}
