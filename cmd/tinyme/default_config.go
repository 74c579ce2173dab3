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

	"github.com/jessevdk/go-flags"
)

type DefaultConfigCmd struct{}

var defaultConfigCmd DefaultConfigCmd

func (opts *DefaultConfigCmd) Execute(_ []string) error {
	return config.NewDefaultConfig().Encode(os.Stdout)
}

func DefaultConfig(_ context.Context, parser *flags.Parser) error {
	defaultConfigCmd = DefaultConfigCmd{}

	var (
		short = "Print the default configuration"
		long  = "Print the default configuration as TOML, ready to be edited and passed to replay with --config"
	)
	_, err := parser.AddCommand("default-config", short, long, &defaultConfigCmd)
	return err
}
