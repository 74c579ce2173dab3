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

package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabledMetricsAreNoop(t *testing.T) {
	require.NoError(t, Start(Config{Enabled: false}))
	// none of these may panic before the instruments exist
	RequestCounterInc("new", "EXECUTED")
	TradesAdd("ABC", "continuous", 1, 10)
	OrderGaugeSet(1, "ABC", "buy")
}

func TestInstruments(t *testing.T) {
	require.NoError(t, Start(Config{Enabled: true}))
	// a second start keeps the registered instruments
	require.NoError(t, Start(Config{Enabled: true}))

	RequestCounterInc("new", "EXECUTED")
	RequestCounterInc("new", "EXECUTED")
	TradesAdd("ABC", "auction", 3, 285)
	ActivationsAdd("ABC", 2)
	StateChangeInc("ABC", "AUCTION", "CONTINUOUS")
	OrderGaugeSet(4, "ABC", "sell")
	RequestTimeObserve("new")()
	NewTimeCounter("ABC", "security", "NewOrder").EngineTimeCounterAdd()

	assert.Equal(t, 2.0, testutil.ToFloat64(requestCounter.WithLabelValues("new", "EXECUTED")))
	assert.Equal(t, 3.0, testutil.ToFloat64(tradeCounter.WithLabelValues("ABC", "auction")))
	assert.Equal(t, 285.0, testutil.ToFloat64(tradedQuantity.WithLabelValues("ABC", "auction")))
	assert.Equal(t, 2.0, testutil.ToFloat64(activations.WithLabelValues("ABC")))
	assert.Equal(t, 1.0, testutil.ToFloat64(stateChanges.WithLabelValues("ABC", "AUCTION", "CONTINUOUS")))
	assert.Equal(t, 4.0, testutil.ToFloat64(orderGauge.WithLabelValues("ABC", "sell")))

	path := filepath.Join(t.TempDir(), "tinyme.prom")
	require.NoError(t, WriteTextfile(path))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `tinyme_trades_total{mode="auction",security="ABC"} 3`)
}
