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

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"code.vegaprotocol.io/tinyme/core/accounts"
	"code.vegaprotocol.io/tinyme/core/execution"
	"code.vegaprotocol.io/tinyme/core/types"
	"code.vegaprotocol.io/tinyme/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const session = `
# reference data
{"kind": "security", "isin": "ABC", "tickSize": 1, "lotSize": 1}
{"kind": "broker", "id": 1, "credit": "100000"}
{"kind": "broker", "id": 2, "credit": "0"}
{"kind": "shareholder", "id": 1}
{"kind": "shareholder", "id": 2, "positions": {"ABC": 50}}

{"kind": "new", "request": {"requestId": 1, "securityIsin": "ABC", "orderId": 1, "side": "SELL", "quantity": 10, "price": 100, "brokerId": 2, "shareholderId": 2}}
{"kind": "new", "request": {"requestId": 2, "securityIsin": "ABC", "orderId": 2, "side": "BUY", "quantity": 4, "price": 100, "brokerId": 1, "shareholderId": 1}}
{"kind": "update", "request": {"requestId": 3, "securityIsin": "ABC", "orderId": 1, "side": "SELL", "quantity": 5, "price": 100, "brokerId": 2, "shareholderId": 2}}
{"kind": "delete", "request": {"requestId": 4, "securityIsin": "ABC", "side": "SELL", "orderId": 1}}
{"kind": "state", "request": {"securityIsin": "ABC", "state": "AUCTION"}}
{"kind": "state", "request": {"securityIsin": "XYZ", "state": "AUCTION"}}
`

type printed struct {
	Sequence uint64          `json:"sequence"`
	Type     string          `json:"type"`
	Payload  json.RawMessage `json:"payload"`
}

func getTestReplayer(t *testing.T) (*replayer, *execution.Engine, *bytes.Buffer) {
	t.Helper()
	log := logging.NewTestLogger()
	out := &bytes.Buffer{}
	engine := execution.NewEngine(log, execution.NewDefaultConfig(), accounts.NewRepository(), newEventPrinter(log, out, false))
	return newReplayer(log, engine), engine, out
}

func TestReplaySession(t *testing.T) {
	r, engine, out := getTestReplayer(t)
	require.NoError(t, r.Run(context.Background(), strings.NewReader(session)))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	evts := make([]printed, 0, len(lines))
	for _, l := range lines {
		p := printed{}
		require.NoError(t, json.Unmarshal([]byte(l), &p))
		evts = append(evts, p)
	}

	kinds := []string{}
	for i, e := range evts {
		assert.Equal(t, uint64(i+1), e.Sequence)
		kinds = append(kinds, e.Type)
	}
	assert.Equal(t, []string{
		"OrderAcceptedEvent",
		"OrderAcceptedEvent", "OrderExecutedEvent",
		"OrderUpdatedEvent",
		"OrderDeletedEvent",
		"SecurityStateChangedEvent",
	}, kinds)

	assert.JSONEq(t,
		`{"requestId": 2, "orderId": 2, "trades": [{"securityIsin": "ABC", "price": "100", "quantity": 4, "buyId": 2, "sellId": 1}]}`,
		string(evts[2].Payload))
	assert.JSONEq(t, `{"securityIsin": "ABC", "state": "AUCTION"}`, string(evts[5].Payload))

	sec, err := engine.Securities().Get("ABC")
	require.NoError(t, err)
	assert.Equal(t, types.MatchingStateAuction, sec.State())

	sh, err := engine.Accounts().GetShareholder(1)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), sh.Position("ABC"))
	b, err := engine.Accounts().GetBroker(2)
	require.NoError(t, err)
	assert.Equal(t, "400", b.Credit().String())
}

func TestReplayMalformedRecords(t *testing.T) {
	cases := map[string]string{
		"not json":          `{"kind": "new"`,
		"unknown kind":      `{"kind": "cancel"}`,
		"missing request":   `{"kind": "delete"}`,
		"negative credit":   `{"kind": "broker", "id": 1, "credit": "-10"}`,
		"bad credit":        `{"kind": "broker", "id": 1, "credit": "ten"}`,
		"bad side":          `{"kind": "new", "request": {"side": "HOLD"}}`,
		"duplicate security": "{\"kind\": \"security\", \"isin\": \"ABC\", \"tickSize\": 1, \"lotSize\": 1}\n{\"kind\": \"security\", \"isin\": \"ABC\", \"tickSize\": 1, \"lotSize\": 1}",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			r, _, _ := getTestReplayer(t)
			assert.ErrorContains(t, r.Run(context.Background(), strings.NewReader(in)), "line ")
		})
	}
}

func TestReplayConfigOverrides(t *testing.T) {
	opts := ReplayCmd{LogLevel: "debug", MetricsFile: "out.prom"}
	cfg, err := opts.loadConfig()
	require.NoError(t, err)
	assert.Equal(t, logging.DebugLevel, cfg.Execution.Level.Get())
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "out.prom", cfg.Metrics.Path)

	_, err = (&ReplayCmd{LogLevel: "loud"}).loadConfig()
	assert.ErrorContains(t, err, "invalid --log-level")
}
