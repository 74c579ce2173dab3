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

package config

import (
	"io"
	"os"

	"code.vegaprotocol.io/tinyme/core/execution"
	"code.vegaprotocol.io/tinyme/logging"
	"code.vegaprotocol.io/tinyme/metrics"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config ties together all other application configuration types.
type Config struct {
	Logging   logging.Config   `group:"Logging" namespace:"logging"`
	Execution execution.Config `group:"Execution" namespace:"execution"`
	Metrics   metrics.Config   `group:"Metrics" namespace:"metrics"`
}

// NewDefaultConfig returns the default configuration of every package.
func NewDefaultConfig() Config {
	return Config{
		Logging:   logging.NewDefaultConfig(),
		Execution: execution.NewDefaultConfig(),
		Metrics:   metrics.NewDefaultConfig(),
	}
}

// Load reads a TOML configuration file. Keys missing from the file keep
// their default value.
func Load(path string) (*Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "couldn't read configuration file %s", path)
	}
	cfg := NewDefaultConfig()
	if err := Decode(string(buf), &cfg); err != nil {
		return nil, errors.Wrapf(err, "couldn't parse configuration file %s", path)
	}
	return &cfg, nil
}

// Decode overrides cfg with the values set in the given TOML document.
func Decode(doc string, cfg *Config) error {
	md, err := toml.Decode(doc, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return errors.Errorf("unknown configuration key %s", undecoded[0])
	}
	return nil
}

// Encode writes the configuration as TOML.
func (c Config) Encode(w io.Writer) error {
	return errors.Wrap(toml.NewEncoder(w).Encode(c), "couldn't encode configuration")
}
