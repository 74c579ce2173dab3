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

	"github.com/google/btree"
)

const stopQueueDegree = 32

type stopEntry struct {
	order *types.Order
	seq   uint64
}

// stopQueue keeps the inactive stop-limit orders of one side, sorted so
// that the order closest to activation comes first: ascending stop price
// for buys, descending for sells, arrival order at equal stop price.
type stopQueue struct {
	side types.Side
	tree *btree.BTreeG[*stopEntry]
	byID map[uint64]*stopEntry
}

// newStopQueue orders by stop price rather than limit price: the queue is
// drained one activatable order at a time and the head must be the order
// the last trade price reaches first, so a cascade stops as soon as the
// head is not activatable.
func newStopQueue(side types.Side) *stopQueue {
	less := func(a, b *stopEntry) bool {
		pa, pb := a.order.StopLimit.StopPrice, b.order.StopLimit.StopPrice
		if !pa.EQ(pb) {
			if side == types.SideBuy {
				return pa.LT(pb)
			}
			return pa.GT(pb)
		}
		return a.seq < b.seq
	}
	return &stopQueue{
		side: side,
		tree: btree.NewG[*stopEntry](stopQueueDegree, less),
		byID: map[uint64]*stopEntry{},
	}
}

func (q *stopQueue) add(o *types.Order, seq uint64) {
	e := &stopEntry{order: o, seq: seq}
	q.tree.ReplaceOrInsert(e)
	q.byID[o.ID] = e
}

func (q *stopQueue) find(id uint64) *types.Order {
	if e, ok := q.byID[id]; ok {
		return e.order
	}
	return nil
}

// remove drops the order and returns the arrival sequence it was queued with.
func (q *stopQueue) remove(id uint64) (*types.Order, uint64, bool) {
	e, ok := q.byID[id]
	if !ok {
		return nil, 0, false
	}
	q.tree.Delete(e)
	delete(q.byID, id)
	return e.order, e.seq, true
}

// popActivatable removes and returns the first order whose trigger is
// met by lastTradePrice, nil when none is.
func (q *stopQueue) popActivatable(lastTradePrice *num.Uint) *types.Order {
	e, ok := q.tree.Min()
	if !ok || !e.order.CanActivate(lastTradePrice) {
		return nil
	}
	q.tree.DeleteMin()
	delete(q.byID, e.order.ID)
	return e.order
}

func (q *stopQueue) orders() []*types.Order {
	out := make([]*types.Order, 0, q.tree.Len())
	q.tree.Ascend(func(e *stopEntry) bool {
		out = append(out, e.order)
		return true
	})
	return out
}

func (q *stopQueue) len() int {
	return q.tree.Len()
}

func (q *stopQueue) totalQuantityByShareholder(id uint64) uint64 {
	var total uint64
	q.tree.Ascend(func(e *stopEntry) bool {
		if e.order.ShareholderID == id {
			total += e.order.Quantity
		}
		return true
	})
	return total
}
