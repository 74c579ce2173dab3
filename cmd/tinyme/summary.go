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
	"fmt"
	"io"
	"sort"

	"code.vegaprotocol.io/tinyme/core/events"

	"github.com/fatih/color"
)

var (
	red   = color.New(color.FgRed).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
)

// summary counts the events published during a replay.
type summary struct {
	total    int
	byType   map[events.Type]int
	rejected []*events.OrderRejected
}

func newSummary() *summary {
	return &summary{
		byType: map[events.Type]int{},
	}
}

func (s *summary) Add(evt events.Event) {
	s.total++
	s.byType[evt.Type()]++
	if r, ok := evt.(*events.OrderRejected); ok {
		s.rejected = append(s.rejected, r)
	}
}

func (s *summary) Count(t events.Type) int {
	return s.byType[t]
}

func (s *summary) Dump(w io.Writer) {
	fmt.Fprintf(w, "%v events published\n", s.total)

	types := make([]events.Type, 0, len(s.byType))
	for t := range s.byType {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	for _, t := range types {
		fmt.Fprintf(w, "  %v: %v\n", t, s.byType[t])
	}

	if len(s.rejected) == 0 {
		fmt.Fprintf(w, "%v\n", green("no rejected request"))
		return
	}
	for _, r := range s.rejected {
		fmt.Fprintf(w, "%v request %v order %v: %v\n", red("rejected"), r.RequestID, r.OrderID, r.Reasons())
	}
}
