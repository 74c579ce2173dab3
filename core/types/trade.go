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

	"code.vegaprotocol.io/tinyme/libs/num"
)

// Trade is an immutable fill between a buy and a sell order.
type Trade struct {
	SecurityISIN string
	Price        *num.Uint
	Quantity     uint64
	Buy          *Order
	Sell         *Order
}

func NewTrade(isin string, price *num.Uint, quantity uint64, buy, sell *Order) *Trade {
	return &Trade{
		SecurityISIN: isin,
		Price:        price.Clone(),
		Quantity:     quantity,
		Buy:          buy,
		Sell:         sell,
	}
}

// TradedValue is price times quantity.
func (t *Trade) TradedValue() *num.Uint {
	return num.UintZero().MulUint64(t.Price, t.Quantity)
}

func (t Trade) String() string {
	return fmt.Sprintf(
		"isin(%s) price(%s) quantity(%d) buy-order(%d) sell-order(%d)",
		t.SecurityISIN, num.UintToString(t.Price), t.Quantity, t.Buy.ID, t.Sell.ID,
	)
}

// TotalQuantity sums the quantity of the given trades.
func TotalQuantity(trades []*Trade) uint64 {
	var total uint64
	for _, t := range trades {
		total += t.Quantity
	}
	return total
}
