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

// Shareholder holds positions per security ISIN.
type Shareholder struct {
	id        uint64
	positions map[string]uint64
}

func NewShareholder(id uint64) *Shareholder {
	return &Shareholder{
		id:        id,
		positions: map[string]uint64{},
	}
}

func (s *Shareholder) ID() uint64 {
	return s.id
}

func (s *Shareholder) Position(isin string) uint64 {
	return s.positions[isin]
}

func (s *Shareholder) HasEnoughPositionsOn(isin string, quantity uint64) bool {
	return s.positions[isin] >= quantity
}

func (s *Shareholder) IncPosition(isin string, quantity uint64) {
	s.positions[isin] += quantity
}

// DecPosition panics when the position would go negative, callers
// check HasEnoughPositionsOn first.
func (s *Shareholder) DecPosition(isin string, quantity uint64) {
	current := s.positions[isin]
	if current < quantity {
		panic("shareholder position would become negative")
	}
	if current == quantity {
		delete(s.positions, isin)
		return
	}
	s.positions[isin] = current - quantity
}

// Positions returns a copy of all non-zero positions.
func (s *Shareholder) Positions() map[string]uint64 {
	out := make(map[string]uint64, len(s.positions))
	for k, v := range s.positions {
		out[k] = v
	}
	return out
}
