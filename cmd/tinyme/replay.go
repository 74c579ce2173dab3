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
	"context"
	"os"

	"code.vegaprotocol.io/tinyme/config"
	"code.vegaprotocol.io/tinyme/core/accounts"
	"code.vegaprotocol.io/tinyme/core/execution"
	"code.vegaprotocol.io/tinyme/logging"
	"code.vegaprotocol.io/tinyme/metrics"

	"github.com/jessevdk/go-flags"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

type ReplayCmd struct {
	Config      string `short:"c" long:"config"       description:"TOML configuration file, defaults apply when omitted"`
	LogLevel    string `long:"log-level"              description:"Override the execution log level (debug, info, warning, error)"`
	MetricsFile string `long:"metrics-file"           description:"Write prometheus metrics to this textfile once the replay is done"`
	Pretty      bool   `long:"pretty"                 description:"Indent the printed events, the default when stdout is a terminal"`
	Summary     bool   `long:"summary"                description:"Print event counts and rejected requests to stderr at the end"`

	Args struct {
		Requests string `positional-arg-name:"REQUESTS" description:"JSON-lines request file"`
	} `positional-args:"yes" required:"yes"`
}

var replayCmd ReplayCmd

func (opts *ReplayCmd) Execute(_ []string) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}

	log := logging.NewLoggerFromConfig(cfg.Logging)
	defer log.AtExit()

	if err := metrics.Start(cfg.Metrics); err != nil {
		return err
	}

	f, err := os.Open(opts.Args.Requests)
	if err != nil {
		return errors.Wrap(err, "couldn't open request file")
	}
	defer f.Close()

	pretty := opts.Pretty || isatty.IsTerminal(os.Stdout.Fd())
	printer := newEventPrinter(log, os.Stdout, pretty)
	engine := execution.NewEngine(log, cfg.Execution, accounts.NewRepository(), printer)
	if err := newReplayer(log, engine).Run(context.Background(), f); err != nil {
		return err
	}
	if opts.Summary {
		printer.summary.Dump(os.Stderr)
	}

	if cfg.Metrics.Enabled {
		if err := metrics.WriteTextfile(cfg.Metrics.Path); err != nil {
			return err
		}
		log.Info("metrics written", logging.String("path", cfg.Metrics.Path))
	}
	return nil
}

func (opts *ReplayCmd) loadConfig() (*config.Config, error) {
	cfg := config.NewDefaultConfig()
	if len(opts.Config) > 0 {
		loaded, err := config.Load(opts.Config)
		if err != nil {
			return nil, err
		}
		cfg = *loaded
	}

	if len(opts.LogLevel) > 0 {
		if err := cfg.Execution.Level.UnmarshalFlag(opts.LogLevel); err != nil {
			return nil, errors.Wrap(err, "invalid --log-level")
		}
	}
	if len(opts.MetricsFile) > 0 {
		cfg.Metrics.Enabled = true
		cfg.Metrics.Path = opts.MetricsFile
	}
	return &cfg, nil
}

func Replay(_ context.Context, parser *flags.Parser) error {
	replayCmd = ReplayCmd{}

	var (
		short = "Replay a request file through the matching engine"
		long  = "Replay reads one JSON record per line (securities, brokers, shareholders, order entries, deletions and matching state changes), runs them through the engine in order and prints every published event"
	)
	_, err := parser.AddCommand("replay", short, long, &replayCmd)
	return err
}
