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
	"strings"
)

type Type int

// Event is what the engine publishes after handling a request.
type Event interface {
	Type() Type
	Context() context.Context
	Sequence() uint64
	SetSequenceID(s uint64)
	StreamMessage() *BusEvent
}

// Base common denominator all events share.
type Base struct {
	ctx context.Context
	seq uint64
	et  Type
}

// BusEvent is the serialisable form of an event.
type BusEvent struct {
	Sequence uint64 `json:"sequence"`
	Type     string `json:"type"`
	Payload  any    `json:"payload"`
}

const (
	// All event type -> used by subscribers to just receive all events, has no actual corresponding event payload.
	All Type = iota
	OrderAcceptedEvent
	OrderRejectedEvent
	OrderUpdatedEvent
	OrderDeletedEvent
	OrderExecutedEvent
	OrderActivatedEvent
	OpeningPriceEvent
	TradeEvent
	SecurityStateChangedEvent
)

var eventStrings = map[Type]string{
	All:                       "ALL",
	OrderAcceptedEvent:        "OrderAcceptedEvent",
	OrderRejectedEvent:        "OrderRejectedEvent",
	OrderUpdatedEvent:         "OrderUpdatedEvent",
	OrderDeletedEvent:         "OrderDeletedEvent",
	OrderExecutedEvent:        "OrderExecutedEvent",
	OrderActivatedEvent:       "OrderActivatedEvent",
	OpeningPriceEvent:         "OpeningPriceEvent",
	TradeEvent:                "TradeEvent",
	SecurityStateChangedEvent: "SecurityStateChangedEvent",
}

func newBase(ctx context.Context, t Type) *Base {
	return &Base{
		ctx: ctx,
		et:  t,
	}
}

func (b *Base) SetSequenceID(s uint64) {
	// sequence ID can only be set once
	if b.seq != 0 {
		return
	}
	b.seq = s
}

// Sequence returns event sequence number.
func (b Base) Sequence() uint64 {
	return b.seq
}

// Context returns context.
func (b Base) Context() context.Context {
	return b.ctx
}

// Type returns the event type.
func (b Base) Type() Type {
	return b.et
}

func (t Type) String() string {
	s, ok := eventStrings[t]
	if !ok {
		return "UNKNOWN EVENT"
	}
	return s
}

// TryFromString tries to parse a raw string into an event type, false indicates that.
func TryFromString(s string) (*Type, bool) {
	for k, v := range eventStrings {
		if strings.EqualFold(s, v) {
			return &k, true
		}
	}
	return nil, false
}

func newBusEventFromBase(base *Base, payload any) *BusEvent {
	return &BusEvent{
		Sequence: base.seq,
		Type:     base.et.String(),
		Payload:  payload,
	}
}
