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

import "time"

type OrderEntryType int32

const (
	OrderEntryTypeNew OrderEntryType = iota
	OrderEntryTypeUpdate
)

func (t OrderEntryType) String() string {
	switch t {
	case OrderEntryTypeNew:
		return "NEW_ORDER"
	case OrderEntryTypeUpdate:
		return "UPDATE_ORDER"
	default:
		return "UNKNOWN"
	}
}

// EnterOrderRequest creates or updates an order. Zero PeakSize,
// MinimumExecutionQuantity and StopPrice mean the feature is not used.
type EnterOrderRequest struct {
	RequestID                uint64         `json:"requestId"`
	Type                     OrderEntryType `json:"-"`
	SecurityISIN             string         `json:"securityIsin"`
	OrderID                  uint64         `json:"orderId"`
	EntryTime                time.Time      `json:"entryTime"`
	Side                     Side           `json:"side"`
	Quantity                 uint64         `json:"quantity"`
	Price                    uint64         `json:"price"`
	BrokerID                 uint64         `json:"brokerId"`
	ShareholderID            uint64         `json:"shareholderId"`
	PeakSize                 uint64         `json:"peakSize"`
	MinimumExecutionQuantity uint64         `json:"minimumExecutionQuantity"`
	StopPrice                uint64         `json:"stopPrice"`
}

func (r *EnterOrderRequest) IsIceberg() bool {
	return r.PeakSize > 0
}

func (r *EnterOrderRequest) IsStopLimit() bool {
	return r.StopPrice > 0
}

type DeleteOrderRequest struct {
	RequestID    uint64 `json:"requestId"`
	SecurityISIN string `json:"securityIsin"`
	Side         Side   `json:"side"`
	OrderID      uint64 `json:"orderId"`
}

type ChangeMatchingStateRequest struct {
	SecurityISIN string        `json:"securityIsin"`
	State        MatchingState `json:"state"`
}
