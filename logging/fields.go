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

package logging

import (
	"code.vegaprotocol.io/tinyme/core/types"
	"code.vegaprotocol.io/tinyme/libs/num"

	"go.uber.org/zap"
)

// Int constructs a field with the given key and value.
func Int(key string, val int) zap.Field {
	return zap.Int(key, val)
}

// Uint64 constructs a field with the given key and value.
func Uint64(key string, val uint64) zap.Field {
	return zap.Uint64(key, val)
}

// BigUint constructs a field with the given key and value.
func BigUint(key string, val *num.Uint) zap.Field {
	return zap.String(key, num.UintToString(val))
}

// String constructs a field with the given key and value.
func String(key string, val string) zap.Field {
	return zap.String(key, val)
}

// Strings constructs a field with the given key and value.
func Strings(key string, val []string) zap.Field {
	return zap.Strings(key, val)
}

// Error constructs a field with the given error value.
func Error(val error) zap.Field {
	return zap.Error(val)
}

// ISIN constructs a field with the given security ISIN.
func ISIN(isin string) zap.Field {
	return zap.String("isin", isin)
}

// OrderID constructs a field with the given order id.
func OrderID(id uint64) zap.Field {
	return zap.Uint64("order-id", id)
}

// RequestID constructs a field with the given request id.
func RequestID(id uint64) zap.Field {
	return zap.Uint64("request-id", id)
}

// BrokerID constructs a field with the given broker id.
func BrokerID(id uint64) zap.Field {
	return zap.Uint64("broker-id", id)
}

// ShareholderID constructs a field with the given shareholder id.
func ShareholderID(id uint64) zap.Field {
	return zap.Uint64("shareholder-id", id)
}

// MatchingState constructs a field with the given matching state.
func MatchingState(state types.MatchingState) zap.Field {
	return zap.String("matching-state", state.String())
}

// Outcome constructs a field with the given matching outcome.
func Outcome(outcome types.MatchingOutcome) zap.Field {
	return zap.String("outcome", outcome.String())
}

// Order constructs a field with the given order.
func Order(order types.Order) zap.Field {
	return zap.String("order", order.String())
}

// Trade constructs a field with the given trade.
func Trade(trade types.Trade) zap.Field {
	return zap.String("trade", trade.String())
}
