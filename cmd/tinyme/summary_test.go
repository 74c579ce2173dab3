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
	"testing"

	"code.vegaprotocol.io/tinyme/core/events"
	"code.vegaprotocol.io/tinyme/logging"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestSummary(t *testing.T) {
	color.NoColor = true
	ctx := context.Background()

	p := newEventPrinter(logging.NewTestLogger(), &bytes.Buffer{}, false)
	p.Send(events.NewOrderAccepted(ctx, 1, 1))
	p.SendBatch([]events.Event{
		events.NewOrderAccepted(ctx, 2, 2),
		events.NewOrderRejected(ctx, 3, 3, []string{"unknown broker ID"}),
	})

	assert.Equal(t, 2, p.summary.Count(events.OrderAcceptedEvent))
	assert.Equal(t, 1, p.summary.Count(events.OrderRejectedEvent))
	assert.Equal(t, 0, p.summary.Count(events.TradeEvent))

	out := bytes.Buffer{}
	p.summary.Dump(&out)
	assert.Equal(t, "3 events published\n"+
		"  OrderAcceptedEvent: 2\n"+
		"  OrderRejectedEvent: 1\n"+
		"rejected request 3 order 3: [unknown broker ID]\n", out.String())

	out.Reset()
	newSummary().Dump(&out)
	assert.Equal(t, "0 events published\nno rejected request\n", out.String())
}
