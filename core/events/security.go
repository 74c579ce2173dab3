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

package events

import (
	"context"

	"code.vegaprotocol.io/tinyme/core/types"
	"code.vegaprotocol.io/tinyme/libs/num"
)

// TradeView is the published form of a trade.
type TradeView struct {
	SecurityISIN string `json:"securityIsin"`
	Price        string `json:"price"`
	Quantity     uint64 `json:"quantity"`
	BuyID        uint64 `json:"buyId"`
	SellID       uint64 `json:"sellId"`
}

func NewTradeView(t *types.Trade) TradeView {
	return TradeView{
		SecurityISIN: t.SecurityISIN,
		Price:        num.UintToString(t.Price),
		Quantity:     t.Quantity,
		BuyID:        t.Buy.ID,
		SellID:       t.Sell.ID,
	}
}

func NewTradeViews(trades []*types.Trade) []TradeView {
	out := make([]TradeView, 0, len(trades))
	for _, t := range trades {
		out = append(out, NewTradeView(t))
	}
	return out
}

// Trade is published for each trade of an auction uncrossing.
type Trade struct {
	*Base
	t TradeView
}

func NewTradeEvent(ctx context.Context, t *types.Trade) *Trade {
	return &Trade{
		Base: newBase(ctx, TradeEvent),
		t:    NewTradeView(t),
	}
}

func (t Trade) ISIN() string {
	return t.t.SecurityISIN
}

func (t Trade) Trade() TradeView {
	return t.t
}

func (t Trade) StreamMessage() *BusEvent {
	return newBusEventFromBase(t.Base, t.t)
}

// OpeningPrice reports the indicative opening price of a security in
// auction and the quantity tradable at it.
type OpeningPrice struct {
	*Base
	isin             string
	price            *num.Uint
	tradableQuantity uint64
}

func NewOpeningPrice(ctx context.Context, isin string, price *num.Uint, tradableQuantity uint64) *OpeningPrice {
	return &OpeningPrice{
		Base:             newBase(ctx, OpeningPriceEvent),
		isin:             isin,
		price:            price.Clone(),
		tradableQuantity: tradableQuantity,
	}
}

func (o OpeningPrice) ISIN() string {
	return o.isin
}

func (o OpeningPrice) Price() *num.Uint {
	return o.price.Clone()
}

func (o OpeningPrice) TradableQuantity() uint64 {
	return o.tradableQuantity
}

func (o OpeningPrice) StreamMessage() *BusEvent {
	return newBusEventFromBase(o.Base, struct {
		SecurityISIN     string `json:"securityIsin"`
		OpeningPrice     string `json:"openingPrice"`
		TradableQuantity uint64 `json:"tradableQuantity"`
	}{o.isin, o.price.String(), o.tradableQuantity})
}

type SecurityStateChanged struct {
	*Base
	isin  string
	state types.MatchingState
}

func NewSecurityStateChanged(ctx context.Context, isin string, state types.MatchingState) *SecurityStateChanged {
	return &SecurityStateChanged{
		Base:  newBase(ctx, SecurityStateChangedEvent),
		isin:  isin,
		state: state,
	}
}

func (s SecurityStateChanged) ISIN() string {
	return s.isin
}

func (s SecurityStateChanged) State() types.MatchingState {
	return s.state
}

func (s SecurityStateChanged) StreamMessage() *BusEvent {
	return newBusEventFromBase(s.Base, struct {
		SecurityISIN string              `json:"securityIsin"`
		State        types.MatchingState `json:"state"`
	}{s.isin, s.state})
}
