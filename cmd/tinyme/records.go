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
	"bufio"
	"context"
	"encoding/json"
	"io"
	"strings"

	"code.vegaprotocol.io/tinyme/core/execution"
	"code.vegaprotocol.io/tinyme/core/types"
	"code.vegaprotocol.io/tinyme/libs/num"
	"code.vegaprotocol.io/tinyme/logging"

	"github.com/pkg/errors"
)

const maxRecordSize = 1 << 20

// Record kinds accepted in a request file.
const (
	recordSecurity    = "security"
	recordBroker      = "broker"
	recordShareholder = "shareholder"
	recordNewOrder    = "new"
	recordUpdateOrder = "update"
	recordDeleteOrder = "delete"
	recordState       = "state"
)

// record is one line of a request file. Reference data records use the
// flat fields, requests carry their payload under "request".
type record struct {
	Kind      string            `json:"kind"`
	ISIN      string            `json:"isin"`
	TickSize  uint64            `json:"tickSize"`
	LotSize   uint64            `json:"lotSize"`
	ID        uint64            `json:"id"`
	Credit    string            `json:"credit"`
	Positions map[string]uint64 `json:"positions"`
	Request   json.RawMessage   `json:"request"`
}

type replayer struct {
	log    *logging.Logger
	engine *execution.Engine
}

func newReplayer(log *logging.Logger, engine *execution.Engine) *replayer {
	return &replayer{
		log:    log.Named("replay"),
		engine: engine,
	}
}

// Run applies every record of in to the engine, in order. Blank lines and
// lines starting with # are skipped. A malformed record stops the replay.
func (r *replayer) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRecordSize)

	line, applied := 0, 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if len(text) == 0 || strings.HasPrefix(text, "#") {
			continue
		}
		if err := r.apply(ctx, []byte(text)); err != nil {
			return errors.Wrapf(err, "line %d", line)
		}
		applied++
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "couldn't read requests")
	}

	r.log.Info("replay done", logging.Int("records", applied))
	return nil
}

func (r *replayer) apply(ctx context.Context, raw []byte) error {
	rec := record{}
	if err := json.Unmarshal(raw, &rec); err != nil {
		return errors.Wrap(err, "invalid record")
	}

	switch rec.Kind {
	case recordSecurity:
		_, err := r.engine.AddSecurity(rec.ISIN, rec.TickSize, rec.LotSize)
		return err
	case recordBroker:
		if strings.HasPrefix(rec.Credit, "-") {
			return errors.Errorf("invalid credit %q", rec.Credit)
		}
		credit, overflow := num.UintFromString(rec.Credit, 10)
		if overflow {
			return errors.Errorf("invalid credit %q", rec.Credit)
		}
		_, err := r.engine.Accounts().AddBroker(rec.ID, credit)
		return err
	case recordShareholder:
		sh, err := r.engine.Accounts().AddShareholder(rec.ID)
		if err != nil {
			return err
		}
		for isin, quantity := range rec.Positions {
			sh.IncPosition(isin, quantity)
		}
		return nil
	case recordNewOrder, recordUpdateOrder:
		req := &types.EnterOrderRequest{}
		if err := decodeRequest(rec, req); err != nil {
			return err
		}
		req.Type = types.OrderEntryTypeNew
		if rec.Kind == recordUpdateOrder {
			req.Type = types.OrderEntryTypeUpdate
		}
		r.engine.HandleEnterOrder(ctx, req)
		return nil
	case recordDeleteOrder:
		req := &types.DeleteOrderRequest{}
		if err := decodeRequest(rec, req); err != nil {
			return err
		}
		r.engine.HandleDeleteOrder(ctx, req)
		return nil
	case recordState:
		req := &types.ChangeMatchingStateRequest{}
		if err := decodeRequest(rec, req); err != nil {
			return err
		}
		// the engine already logged it, an unknown security does not stop the replay
		_ = r.engine.HandleChangeMatchingState(ctx, req)
		return nil
	default:
		return errors.Errorf("unknown record kind %q", rec.Kind)
	}
}

func decodeRequest(rec record, req any) error {
	if len(rec.Request) == 0 {
		return errors.Errorf("%s record without request", rec.Kind)
	}
	if err := json.Unmarshal(rec.Request, req); err != nil {
		return errors.Wrapf(err, "invalid %s request", rec.Kind)
	}
	return nil
}
