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
	"code.vegaprotocol.io/tinyme/core/matching"
	"code.vegaprotocol.io/tinyme/core/types"
	"code.vegaprotocol.io/tinyme/libs/num"
)

// Repository keeps every broker and shareholder known to the engine.
type Repository struct {
	brokers      map[uint64]*Broker
	shareholders map[uint64]*Shareholder
}

func NewRepository() *Repository {
	return &Repository{
		brokers:      map[uint64]*Broker{},
		shareholders: map[uint64]*Shareholder{},
	}
}

func (r *Repository) AddBroker(id uint64, credit *num.Uint) (*Broker, error) {
	if _, ok := r.brokers[id]; ok {
		return nil, types.ErrBrokerExists
	}
	b := NewBroker(id, credit)
	r.brokers[id] = b
	return b, nil
}

func (r *Repository) AddShareholder(id uint64) (*Shareholder, error) {
	if _, ok := r.shareholders[id]; ok {
		return nil, types.ErrShareholderExists
	}
	s := NewShareholder(id)
	r.shareholders[id] = s
	return s, nil
}

func (r *Repository) GetBroker(id uint64) (*Broker, error) {
	b, ok := r.brokers[id]
	if !ok {
		return nil, types.ErrUnknownBroker
	}
	return b, nil
}

func (r *Repository) GetShareholder(id uint64) (*Shareholder, error) {
	s, ok := r.shareholders[id]
	if !ok {
		return nil, types.ErrUnknownShareholder
	}
	return s, nil
}

func (r *Repository) HasBroker(id uint64) bool {
	_, ok := r.brokers[id]
	return ok
}

func (r *Repository) HasShareholder(id uint64) bool {
	_, ok := r.shareholders[id]
	return ok
}

// Broker implements matching.Accounts.
func (r *Repository) Broker(id uint64) matching.Broker {
	b, ok := r.brokers[id]
	if !ok {
		return nil
	}
	return b
}

// Shareholder implements matching.Accounts.
func (r *Repository) Shareholder(id uint64) matching.Shareholder {
	s, ok := r.shareholders[id]
	if !ok {
		return nil
	}
	return s
}
