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

package accounts

import (
	"code.vegaprotocol.io/tinyme/libs/num"
)

// Broker owns the credit that pays for buy orders.
type Broker struct {
	id     uint64
	credit *num.Uint
}

func NewBroker(id uint64, credit *num.Uint) *Broker {
	if credit == nil {
		credit = num.UintZero()
	}
	return &Broker{
		id:     id,
		credit: credit.Clone(),
	}
}

func (b *Broker) ID() uint64 {
	return b.id
}

// Credit returns a copy of the available credit.
func (b *Broker) Credit() *num.Uint {
	return b.credit.Clone()
}

func (b *Broker) HasEnoughCredit(value *num.Uint) bool {
	return b.credit.GTE(value)
}

func (b *Broker) IncreaseCreditBy(value *num.Uint) {
	b.credit.Add(b.credit, value)
}

// DecreaseCreditBy panics when the credit would go negative, callers
// check HasEnoughCredit first.
func (b *Broker) DecreaseCreditBy(value *num.Uint) {
	if b.credit.LT(value) {
		panic("broker credit would become negative")
	}
	b.credit.Sub(b.credit, value)
}
