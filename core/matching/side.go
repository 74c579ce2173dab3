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
	"sort"

	"code.vegaprotocol.io/tinyme/core/types"
	"code.vegaprotocol.io/tinyme/libs/num"
	"code.vegaprotocol.io/tinyme/logging"

	"github.com/pkg/errors"
)

// ErrPriceNotFound signals that a price was not found on the book side.
var ErrPriceNotFound = errors.New("price-volume pair not found")

// Position is the slot an order held inside its side of the book.
type Position struct {
	Price *num.Uint
	Index int
}

// OrderBookSide represent a side of the book, either Sell or Buy.
// Levels are sorted so the best price is always the last element.
type OrderBookSide struct {
	side   types.Side
	log    *logging.Logger
	levels []*PriceLevel
}

func newOrderBookSide(log *logging.Logger, side types.Side) *OrderBookSide {
	return &OrderBookSide{
		side:   side,
		log:    log,
		levels: []*PriceLevel{},
	}
}

func (s *OrderBookSide) search(price *num.Uint) int {
	if s.side == types.SideBuy {
		// buy side levels should be ordered in ascending
		return sort.Search(len(s.levels), func(i int) bool { return s.levels[i].price.GTE(price) })
	}
	// sell side levels should be ordered in descending
	return sort.Search(len(s.levels), func(i int) bool { return s.levels[i].price.LTE(price) })
}

func (s *OrderBookSide) getPriceLevelIfExists(price *num.Uint) *PriceLevel {
	i := s.search(price)
	if i < len(s.levels) && s.levels[i].price.EQ(price) {
		return s.levels[i]
	}
	return nil
}

func (s *OrderBookSide) getPriceLevel(price *num.Uint) *PriceLevel {
	i := s.search(price)
	if i < len(s.levels) && s.levels[i].price.EQ(price) {
		return s.levels[i]
	}

	level := NewPriceLevel(price.Clone())
	s.levels = append(s.levels, nil)
	copy(s.levels[i+1:], s.levels[i:])
	s.levels[i] = level
	return level
}

func (s *OrderBookSide) removeLevel(i int) {
	s.levels = s.levels[:i+copy(s.levels[i:], s.levels[i+1:])]
}

func (s *OrderBookSide) addOrder(o *types.Order) {
	s.getPriceLevel(o.Price).addOrder(o)
}

func (s *OrderBookSide) empty() bool {
	return len(s.levels) == 0
}

// head returns the order with the best priority, or nil on an empty side.
func (s *OrderBookSide) head() *types.Order {
	if len(s.levels) == 0 {
		return nil
	}
	return s.levels[len(s.levels)-1].orders[0]
}

func (s *OrderBookSide) removeHead() (*types.Order, Position) {
	if len(s.levels) == 0 {
		return nil, Position{}
	}
	last := len(s.levels) - 1
	level := s.levels[last]
	o := level.orders[0]
	level.removeOrder(0)
	if len(level.orders) == 0 {
		s.removeLevel(last)
	}
	return o, Position{Price: level.price.Clone(), Index: 0}
}

func (s *OrderBookSide) locate(id uint64) (int, int) {
	for i := len(s.levels) - 1; i >= 0; i-- {
		if j := s.levels[i].indexOf(id); j >= 0 {
			return i, j
		}
	}
	return -1, -1
}

func (s *OrderBookSide) find(id uint64) *types.Order {
	i, j := s.locate(id)
	if i < 0 {
		return nil
	}
	return s.levels[i].orders[j]
}

// position returns the slot currently held by the order.
func (s *OrderBookSide) position(id uint64) (Position, bool) {
	i, j := s.locate(id)
	if i < 0 {
		return Position{}, false
	}
	return Position{Price: s.levels[i].price.Clone(), Index: j}, true
}

func (s *OrderBookSide) remove(id uint64) (*types.Order, Position, bool) {
	i, j := s.locate(id)
	if i < 0 {
		return nil, Position{}, false
	}
	level := s.levels[i]
	o := level.orders[j]
	pos := Position{Price: level.price.Clone(), Index: j}
	level.removeOrder(j)
	if len(level.orders) == 0 {
		s.removeLevel(i)
	}
	return o, pos, true
}

// dropOrder removes o itself, not another order sharing its id.
func (s *OrderBookSide) dropOrder(o *types.Order) {
	for i := len(s.levels) - 1; i >= 0; i-- {
		if j := s.levels[i].indexOfOrder(o); j >= 0 {
			s.levels[i].removeOrder(j)
			if len(s.levels[i].orders) == 0 {
				s.removeLevel(i)
			}
			return
		}
	}
}

// restore puts o back in the slot it held before being removed. A
// replenished iceberg may still sit at the tail of its level and is
// dropped first.
func (s *OrderBookSide) restore(o *types.Order, pos Position) {
	s.dropOrder(o)
	price := pos.Price
	if price == nil {
		price = o.Price
	}
	if !price.EQ(o.Price) {
		s.log.Panic("restoring order at a foreign price level",
			logging.Order(*o),
			logging.BigUint("level-price", price))
	}
	s.getPriceLevel(price).insertOrder(pos.Index, o)
}

// orders returns every order in priority order.
func (s *OrderBookSide) orders() []*types.Order {
	out := make([]*types.Order, 0, len(s.levels))
	for i := len(s.levels) - 1; i >= 0; i-- {
		out = append(out, s.levels[i].orders...)
	}
	return out
}

func (s *OrderBookSide) prices() []*num.Uint {
	out := make([]*num.Uint, 0, len(s.levels))
	for i := len(s.levels) - 1; i >= 0; i-- {
		out = append(out, s.levels[i].price.Clone())
	}
	return out
}

// volumeAtOrBetter sums the full remaining quantity of every level that
// would trade at price.
func (s *OrderBookSide) volumeAtOrBetter(price *num.Uint) uint64 {
	var volume uint64
	for i := len(s.levels) - 1; i >= 0; i-- {
		l := s.levels[i]
		if (s.side == types.SideBuy && l.price.LT(price)) ||
			(s.side == types.SideSell && l.price.GT(price)) {
			break
		}
		volume += l.volume()
	}
	return volume
}

// GetVolume returns the volume at the given pricelevel.
func (s *OrderBookSide) GetVolume(price *num.Uint) (uint64, error) {
	priceLevel := s.getPriceLevelIfExists(price)
	if priceLevel == nil {
		return 0, ErrPriceNotFound
	}
	return priceLevel.volume(), nil
}

// BestPriceAndVolume returns the top of book price and volume
// returns an error if the book is empty.
func (s *OrderBookSide) BestPriceAndVolume() (*num.Uint, uint64, error) {
	if len(s.levels) == 0 {
		return num.UintZero(), 0, errors.New("no orders on the book")
	}
	last := len(s.levels) - 1
	return s.levels[last].price.Clone(), s.levels[last].volume(), nil
}

func (s *OrderBookSide) purgeEmpty() {
	for i := len(s.levels) - 1; i >= 0; i-- {
		s.levels[i].purgeEmpty()
		if len(s.levels[i].orders) == 0 {
			s.removeLevel(i)
		}
	}
}

func (s *OrderBookSide) totalQuantityByShareholder(id uint64) uint64 {
	var total uint64
	for _, l := range s.levels {
		for _, o := range l.orders {
			if o.ShareholderID == id {
				total += o.Quantity
			}
		}
	}
	return total
}
