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
)

// OrderRef identifies the request and order an order event is about.
type OrderRef struct {
	RequestID uint64 `json:"requestId"`
	OrderID   uint64 `json:"orderId"`
}

type OrderAccepted struct {
	*Base
	OrderRef
}

func NewOrderAccepted(ctx context.Context, requestID, orderID uint64) *OrderAccepted {
	return &OrderAccepted{
		Base:     newBase(ctx, OrderAcceptedEvent),
		OrderRef: OrderRef{RequestID: requestID, OrderID: orderID},
	}
}

func (o OrderAccepted) StreamMessage() *BusEvent {
	return newBusEventFromBase(o.Base, o.OrderRef)
}

type OrderUpdated struct {
	*Base
	OrderRef
}

func NewOrderUpdated(ctx context.Context, requestID, orderID uint64) *OrderUpdated {
	return &OrderUpdated{
		Base:     newBase(ctx, OrderUpdatedEvent),
		OrderRef: OrderRef{RequestID: requestID, OrderID: orderID},
	}
}

func (o OrderUpdated) StreamMessage() *BusEvent {
	return newBusEventFromBase(o.Base, o.OrderRef)
}

type OrderDeleted struct {
	*Base
	OrderRef
}

func NewOrderDeleted(ctx context.Context, requestID, orderID uint64) *OrderDeleted {
	return &OrderDeleted{
		Base:     newBase(ctx, OrderDeletedEvent),
		OrderRef: OrderRef{RequestID: requestID, OrderID: orderID},
	}
}

func (o OrderDeleted) StreamMessage() *BusEvent {
	return newBusEventFromBase(o.Base, o.OrderRef)
}

// OrderActivated reports a stop-limit order leaving its inactive queue,
// RequestID is the one of the request that entered the stop order.
type OrderActivated struct {
	*Base
	OrderRef
}

func NewOrderActivated(ctx context.Context, requestID, orderID uint64) *OrderActivated {
	return &OrderActivated{
		Base:     newBase(ctx, OrderActivatedEvent),
		OrderRef: OrderRef{RequestID: requestID, OrderID: orderID},
	}
}

func (o OrderActivated) StreamMessage() *BusEvent {
	return newBusEventFromBase(o.Base, o.OrderRef)
}

type OrderRejected struct {
	*Base
	OrderRef
	reasons []string
}

func NewOrderRejected(ctx context.Context, requestID, orderID uint64, reasons []string) *OrderRejected {
	return &OrderRejected{
		Base:     newBase(ctx, OrderRejectedEvent),
		OrderRef: OrderRef{RequestID: requestID, OrderID: orderID},
		reasons:  append([]string{}, reasons...),
	}
}

func (o OrderRejected) Reasons() []string {
	return o.reasons
}

func (o OrderRejected) StreamMessage() *BusEvent {
	return newBusEventFromBase(o.Base, struct {
		OrderRef
		Reasons []string `json:"errors"`
	}{o.OrderRef, o.reasons})
}

type OrderExecuted struct {
	*Base
	OrderRef
	trades []TradeView
}

func NewOrderExecuted(ctx context.Context, requestID, orderID uint64, trades []TradeView) *OrderExecuted {
	return &OrderExecuted{
		Base:     newBase(ctx, OrderExecutedEvent),
		OrderRef: OrderRef{RequestID: requestID, OrderID: orderID},
		trades:   trades,
	}
}

func (o OrderExecuted) Trades() []TradeView {
	return o.trades
}

func (o OrderExecuted) StreamMessage() *BusEvent {
	return newBusEventFromBase(o.Base, struct {
		OrderRef
		Trades []TradeView `json:"trades"`
	}{o.OrderRef, o.trades})
}
