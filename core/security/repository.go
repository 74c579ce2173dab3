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

package security

import (
	"sort"

	"code.vegaprotocol.io/tinyme/core/types"
)

// Repository keeps the securities traded by the engine, by ISIN.
type Repository struct {
	securities map[string]*Security
}

func NewRepository() *Repository {
	return &Repository{
		securities: map[string]*Security{},
	}
}

func (r *Repository) Add(s *Security) error {
	if _, ok := r.securities[s.ISIN()]; ok {
		return types.ErrSecurityExists
	}
	r.securities[s.ISIN()] = s
	return nil
}

func (r *Repository) Get(isin string) (*Security, error) {
	s, ok := r.securities[isin]
	if !ok {
		return nil, types.ErrUnknownSecurity
	}
	return s, nil
}

func (r *Repository) Has(isin string) bool {
	_, ok := r.securities[isin]
	return ok
}

// All returns the securities sorted by ISIN.
func (r *Repository) All() []*Security {
	out := make([]*Security, 0, len(r.securities))
	for _, s := range r.securities {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ISIN() < out[j].ISIN() })
	return out
}
