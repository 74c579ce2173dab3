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

import "code.vegaprotocol.io/tinyme/libs/num"

// BookCache keeps the last computed equilibrium of the book until a
// mutation invalidates it.
type BookCache struct {
	indicativePrice  cachedUint
	indicativeVolume cachedVolume
}

type cachedUint struct {
	valid bool
	value *num.Uint
}

type cachedVolume struct {
	valid bool
	value uint64
}

func NewBookCache() BookCache {
	return BookCache{}
}

func (c *cachedUint) Set(u *num.Uint) {
	c.value = u
	c.valid = true
}

func (c *cachedUint) Invalidate() {
	c.valid = false
}

func (c *cachedUint) Get() (*num.Uint, bool) {
	if !c.valid {
		return nil, false
	}
	return c.value.Clone(), true
}

func (c *cachedVolume) Set(v uint64) {
	c.value = v
	c.valid = true
}

func (c *cachedVolume) Invalidate() {
	c.valid = false
}

func (c *cachedVolume) Get() (uint64, bool) {
	return c.value, c.valid
}

func (c *BookCache) Invalidate() {
	c.indicativePrice.Invalidate()
	c.indicativeVolume.Invalidate()
}

func (c *BookCache) SetIndicativePrice(v *num.Uint) {
	c.indicativePrice.Set(v)
}

func (c *BookCache) GetIndicativePrice() (*num.Uint, bool) {
	return c.indicativePrice.Get()
}

func (c *BookCache) SetIndicativeVolume(v uint64) {
	c.indicativeVolume.Set(v)
}

func (c *BookCache) GetIndicativeVolume() (uint64, bool) {
	return c.indicativeVolume.Get()
}
