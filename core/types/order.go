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

package types

import (
	"fmt"
	"time"

	"code.vegaprotocol.io/tinyme/libs/num"
)

// IcebergOrder holds the hidden quantity part of an order: only
// DisplayedQuantity is visible to the matcher while the order rests.
type IcebergOrder struct {
	PeakSize          uint64
	DisplayedQuantity uint64
}

func (i IcebergOrder) Clone() *IcebergOrder {
	return &i
}

// StopLimitOrder holds the deferred activation part of an order.
// Active only ever moves from false to true.
type StopLimitOrder struct {
	StopPrice *num.Uint
	Active    bool
}

func (s StopLimitOrder) Clone() *StopLimitOrder {
	return &StopLimitOrder{
		StopPrice: s.StopPrice.Clone(),
		Active:    s.Active,
	}
}

type Order struct {
	ID                       uint64
	SecurityISIN             string
	Side                     Side
	Price                    *num.Uint
	Quantity                 uint64
	MinimumExecutionQuantity uint64
	BrokerID                 uint64
	ShareholderID            uint64
	EntryTime                time.Time
	RequestID                uint64
	Status                   OrderStatus
	Iceberg                  *IcebergOrder
	StopLimit                *StopLimitOrder
}

// Kind returns the variant of the order.
func (o *Order) Kind() OrderKind {
	switch {
	case o.Iceberg != nil:
		return OrderKindIceberg
	case o.StopLimit != nil:
		return OrderKindStopLimit
	default:
		return OrderKindStandard
	}
}

func (o Order) Clone() *Order {
	cpy := o
	if o.Price != nil {
		cpy.Price = o.Price.Clone()
	}
	if o.Iceberg != nil {
		cpy.Iceberg = o.Iceberg.Clone()
	}
	if o.StopLimit != nil {
		cpy.StopLimit = o.StopLimit.Clone()
	}
	return &cpy
}

// Snapshot returns a detached copy of the order flagged as a snapshot.
func (o *Order) Snapshot() *Order {
	cpy := o.Clone()
	cpy.Status = OrderStatusSnapshot
	return cpy
}

// RestoreFrom copies back every mutable field from a snapshot taken
// earlier with Snapshot, keeping the receiver's identity.
func (o *Order) RestoreFrom(snapshot *Order, status OrderStatus) {
	o.Price = snapshot.Price.Clone()
	o.Quantity = snapshot.Quantity
	o.EntryTime = snapshot.EntryTime
	o.RequestID = snapshot.RequestID
	o.Status = status
	o.Iceberg = nil
	if snapshot.Iceberg != nil {
		o.Iceberg = snapshot.Iceberg.Clone()
	}
	o.StopLimit = nil
	if snapshot.StopLimit != nil {
		o.StopLimit = snapshot.StopLimit.Clone()
	}
}

// MatchableQuantity is the quantity the matcher may trade against:
// a resting iceberg only exposes its displayed slice.
func (o *Order) MatchableQuantity() uint64 {
	if o.Iceberg != nil && o.Status == OrderStatusQueued {
		return o.Iceberg.DisplayedQuantity
	}
	return o.Quantity
}

// Value is the price of the full remaining quantity.
func (o *Order) Value() *num.Uint {
	return o.ValueOf(o.Quantity)
}

// ValueOf is the price of the given quantity at the order's limit price.
func (o *Order) ValueOf(quantity uint64) *num.Uint {
	return num.UintZero().MulUint64(o.Price, quantity)
}

// DecreaseQuantity consumes quantity from the order. A resting iceberg
// consumes from its displayed slice.
func (o *Order) DecreaseQuantity(amount uint64) {
	if amount > o.MatchableQuantity() {
		panic(fmt.Sprintf("cannot decrease order %d by %d, only %d matchable", o.ID, amount, o.MatchableQuantity()))
	}
	o.Quantity -= amount
	if o.Iceberg != nil && o.Status == OrderStatusQueued {
		o.Iceberg.DisplayedQuantity -= amount
	}
}

// IncreaseQuantity reverts a previous DecreaseQuantity.
func (o *Order) IncreaseQuantity(amount uint64) {
	o.Quantity += amount
	if o.Iceberg != nil && o.Status == OrderStatusQueued {
		o.Iceberg.DisplayedQuantity += amount
	}
}

// DecreaseRemaining consumes from the full remaining quantity, hidden
// iceberg quantity included. Used by auction uncrossing.
func (o *Order) DecreaseRemaining(amount uint64) {
	if amount > o.Quantity {
		panic(fmt.Sprintf("cannot decrease order %d by %d, only %d remaining", o.ID, amount, o.Quantity))
	}
	o.Quantity -= amount
	if o.Iceberg != nil {
		o.Iceberg.DisplayedQuantity = min(o.Iceberg.DisplayedQuantity, o.Quantity)
	}
}

// Replenish refreshes the displayed slice of an iceberg order.
func (o *Order) Replenish() {
	if o.Iceberg == nil {
		return
	}
	o.Iceberg.DisplayedQuantity = min(o.Quantity, o.Iceberg.PeakSize)
}

// Queue marks the order as resting in the book.
func (o *Order) Queue() {
	o.Status = OrderStatusQueued
	o.Replenish()
}

// MarkAsUpdating flags the order as being re-admitted after an update.
func (o *Order) MarkAsUpdating() {
	o.Status = OrderStatusUpdating
}

// QueuesBefore reports whether o has strictly better price priority than other.
func (o *Order) QueuesBefore(other *Order) bool {
	if o.Side == SideBuy {
		return o.Price.GT(other.Price)
	}
	return o.Price.LT(other.Price)
}

// Crosses reports whether o, as the incoming order, can trade with the
// resting order at the resting order's price.
func (o *Order) Crosses(resting *Order) bool {
	return o.CrossesPrice(resting.Price)
}

// CrossesPrice reports whether o accepts trading at the given price.
func (o *Order) CrossesPrice(price *num.Uint) bool {
	if o.Side == SideBuy {
		return o.Price.GTE(price)
	}
	return o.Price.LTE(price)
}

func (o *Order) IsStopLimit() bool {
	return o.StopLimit != nil
}

// IsInactiveStopLimit is true for stop-limit orders still waiting for their trigger.
func (o *Order) IsInactiveStopLimit() bool {
	return o.StopLimit != nil && !o.StopLimit.Active
}

// CanActivate evaluates the stop trigger against the last trade price.
// A zero last trade price means no trade happened yet and never triggers.
func (o *Order) CanActivate(lastTradePrice *num.Uint) bool {
	if o.StopLimit == nil || lastTradePrice == nil || lastTradePrice.IsZero() {
		return false
	}
	if o.Side == SideBuy {
		return o.StopLimit.StopPrice.LTE(lastTradePrice)
	}
	return o.StopLimit.StopPrice.GTE(lastTradePrice)
}

// Activate flips a stop-limit order to active, it never reverts.
func (o *Order) Activate() {
	if o.StopLimit != nil {
		o.StopLimit.Active = true
	}
}

// UpdateFromRequest applies the mutable fields of an update request.
func (o *Order) UpdateFromRequest(req *EnterOrderRequest) {
	o.Quantity = req.Quantity
	o.Price = num.NewUint(req.Price)
	o.RequestID = req.RequestID
	if o.Iceberg != nil {
		switch {
		case req.PeakSize > o.Iceberg.PeakSize:
			o.Iceberg.DisplayedQuantity = min(o.Quantity, req.PeakSize)
		case req.PeakSize < o.Iceberg.PeakSize:
			o.Iceberg.DisplayedQuantity = min(o.Iceberg.DisplayedQuantity, req.PeakSize)
		}
		o.Iceberg.PeakSize = req.PeakSize
		o.Iceberg.DisplayedQuantity = min(o.Iceberg.DisplayedQuantity, o.Quantity)
	}
	if o.StopLimit != nil && req.StopPrice > 0 {
		o.StopLimit.StopPrice = num.NewUint(req.StopPrice)
	}
}

// LosesPriority reports whether applying the update would move the
// order behind its current priority position.
func (o *Order) LosesPriority(req *EnterOrderRequest) bool {
	return req.Quantity > o.Quantity ||
		!o.Price.EQUint64(req.Price) ||
		(o.Iceberg != nil && req.PeakSize > o.Iceberg.PeakSize)
}

func (o Order) String() string {
	s := fmt.Sprintf(
		"id(%d) isin(%s) side(%s) price(%s) quantity(%d) broker(%d) shareholder(%d) status(%s) kind(%s)",
		o.ID, o.SecurityISIN, o.Side, num.UintToString(o.Price), o.Quantity,
		o.BrokerID, o.ShareholderID, o.Status, o.Kind(),
	)
	if o.MinimumExecutionQuantity > 0 {
		s += fmt.Sprintf(" meq(%d)", o.MinimumExecutionQuantity)
	}
	if o.Iceberg != nil {
		s += fmt.Sprintf(" peak(%d) displayed(%d)", o.Iceberg.PeakSize, o.Iceberg.DisplayedQuantity)
	}
	if o.StopLimit != nil {
		s += fmt.Sprintf(" stop(%s) active(%v)", num.UintToString(o.StopLimit.StopPrice), o.StopLimit.Active)
	}
	return s
}

// NewOrderFromRequest builds the order variant matching the request:
// a non-zero stop price makes a stop-limit order, a non-zero peak size
// an iceberg, anything else a standard limit order.
func NewOrderFromRequest(req *EnterOrderRequest) *Order {
	o := &Order{
		ID:                       req.OrderID,
		SecurityISIN:             req.SecurityISIN,
		Side:                     req.Side,
		Price:                    num.NewUint(req.Price),
		Quantity:                 req.Quantity,
		MinimumExecutionQuantity: req.MinimumExecutionQuantity,
		BrokerID:                 req.BrokerID,
		ShareholderID:            req.ShareholderID,
		EntryTime:                req.EntryTime,
		RequestID:                req.RequestID,
		Status:                   OrderStatusNew,
	}
	switch {
	case req.StopPrice > 0:
		o.StopLimit = &StopLimitOrder{StopPrice: num.NewUint(req.StopPrice)}
	case req.PeakSize > 0:
		o.Iceberg = &IcebergOrder{
			PeakSize:          req.PeakSize,
			DisplayedQuantity: min(req.PeakSize, req.Quantity),
		}
	}
	return o
}
