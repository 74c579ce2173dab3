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
	"code.vegaprotocol.io/tinyme/libs/num"
)

//go:generate go run github.com/golang/mock/mockgen -destination mocks/mocks.go -package mocks code.vegaprotocol.io/tinyme/core/matching Broker,Shareholder,Accounts

// Broker is the credit capability the matcher needs from a broker.
type Broker interface {
	HasEnoughCredit(value *num.Uint) bool
	IncreaseCreditBy(value *num.Uint)
	DecreaseCreditBy(value *num.Uint)
}

// Shareholder is the position capability the matcher needs from a shareholder.
type Shareholder interface {
	HasEnoughPositionsOn(isin string, quantity uint64) bool
	IncPosition(isin string, quantity uint64)
	DecPosition(isin string, quantity uint64)
}

// Accounts resolves the broker and shareholder ids carried by orders.
// Unknown ids resolve to nil.
type Accounts interface {
	Broker(id uint64) Broker
	Shareholder(id uint64) Shareholder
}
