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
	"io"
	"sync"

	"code.vegaprotocol.io/tinyme/core/events"
	vgjson "code.vegaprotocol.io/tinyme/libs/json"
	"code.vegaprotocol.io/tinyme/logging"
)

// eventPrinter publishes events by writing their stream message to an
// output, one JSON document per event.
type eventPrinter struct {
	log     *logging.Logger
	mu      sync.Mutex
	out     io.Writer
	pretty  bool
	summary *summary
}

func newEventPrinter(log *logging.Logger, out io.Writer, pretty bool) *eventPrinter {
	return &eventPrinter{
		log:     log,
		out:     out,
		pretty:  pretty,
		summary: newSummary(),
	}
}

func (p *eventPrinter) Send(evt events.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.print(evt)
}

func (p *eventPrinter) SendBatch(evts []events.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, evt := range evts {
		p.print(evt)
	}
}

func (p *eventPrinter) print(evt events.Event) {
	p.summary.Add(evt)
	write := vgjson.Fprint
	if p.pretty {
		write = vgjson.PrettyFprint
	}
	if err := write(p.out, evt.StreamMessage()); err != nil {
		p.log.Error("couldn't print event",
			logging.String("event", evt.Type().String()),
			logging.Error(err))
	}
}
