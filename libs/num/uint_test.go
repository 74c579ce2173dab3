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

package num_test

import (
	"encoding/json"
	"math/big"
	"testing"

	"code.vegaprotocol.io/tinyme/libs/num"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUint256Constructors(t *testing.T) {
	var expected uint64 = 42

	t.Run("test from uint64", func(t *testing.T) {
		n := num.NewUint(expected)
		assert.Equal(t, expected, n.Uint64())
	})

	t.Run("test from string", func(t *testing.T) {
		n, overflow := num.UintFromString("42", 10)
		assert.False(t, overflow)
		assert.Equal(t, expected, n.Uint64())
	})

	t.Run("test from invalid string", func(t *testing.T) {
		_, overflow := num.UintFromString("forty-two", 10)
		assert.True(t, overflow)
	})

	t.Run("test from big", func(t *testing.T) {
		n, overflow := num.UintFromBig(big.NewInt(int64(expected)))
		assert.False(t, overflow)
		assert.Equal(t, expected, n.Uint64())
	})
}

func TestUint256Clone(t *testing.T) {
	var (
		expect1 uint64 = 42
		expect2 uint64 = 84
		first          = num.NewUint(expect1)
		second         = first.Clone()
	)

	// now we change second value, and ensure 1 hasn't changed
	second.Add(second, num.NewUint(42))

	assert.Equal(t, expect1, first.Uint64())
	assert.Equal(t, expect2, second.Uint64())
}

func TestUint256Arithmetic(t *testing.T) {
	a, b := num.NewUint(15490), num.NewUint(285)

	assert.Equal(t, uint64(15490*285), num.UintZero().MulUint64(a, 285).Uint64())
	assert.Equal(t, uint64(15775), num.UintZero().Add(a, b).Uint64())
	assert.Equal(t, uint64(15205), num.UintZero().Sub(a, b).Uint64())

	d, neg := num.UintZero().Delta(b, a)
	assert.True(t, neg)
	assert.Equal(t, uint64(15205), d.Uint64())

	assert.True(t, b.LT(a))
	assert.True(t, a.GTE(a))
	assert.False(t, a.EQ(b))
}

func TestUint256JSON(t *testing.T) {
	type wrapper struct {
		Price *num.Uint `json:"price"`
	}
	buf, err := json.Marshal(wrapper{Price: num.NewUint(15700)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"price":"15700"}`, string(buf))

	var w wrapper
	require.NoError(t, json.Unmarshal(buf, &w))
	assert.Equal(t, uint64(15700), w.Price.Uint64())
}
