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
)

// PriceLevel holds all the orders resting at one price, in arrival order.
type PriceLevel struct {
	price  *num.Uint
	orders []*types.Order
}

func NewPriceLevel(price *num.Uint) *PriceLevel {
	return &PriceLevel{
		price:  price,
		orders: []*types.Order{},
	}
}

func (l *PriceLevel) addOrder(o *types.Order) {
	l.orders = append(l.orders, o)
}

// insertOrder puts o at index, or at the tail when index is past the end.
func (l *PriceLevel) insertOrder(index int, o *types.Order) {
	if index >= len(l.orders) {
		l.orders = append(l.orders, o)
		return
	}
	l.orders = append(l.orders, nil)
	copy(l.orders[index+1:], l.orders[index:])
	l.orders[index] = o
}

func (l *PriceLevel) removeOrder(index int) {
	copy(l.orders[index:], l.orders[index+1:])
	l.orders[len(l.orders)-1] = nil
	l.orders = l.orders[:len(l.orders)-1]
}

func (l *PriceLevel) indexOf(id uint64) int {
	for i, o := range l.orders {
		if o.ID == id {
			return i
		}
	}
	return -1
}

// volume is the full remaining quantity at this level, hidden iceberg quantity included.
func (l *PriceLevel) indexOfOrder(o *types.Order) int {
	for i, resting := range l.orders {
		if resting == o {
			return i
		}
	}
	return -1
}

func (l *PriceLevel) volume() uint64 {
	var v uint64
	for _, o := range l.orders {
		v += o.Quantity
	}
	return v
}

func (l *PriceLevel) purgeEmpty() {
	kept := l.orders[:0]
	for _, o := range l.orders {
		if o.Quantity > 0 {
			kept = append(kept, o)
		}
	}
	for i := len(kept); i < len(l.orders); i++ {
		l.orders[i] = nil
	}
	l.orders = kept
}
