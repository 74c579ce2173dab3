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

package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"code.vegaprotocol.io/tinyme/config"
	"code.vegaprotocol.io/tinyme/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	doc := `
[Logging]
Environment = "prod"

[Execution]
Level = "debug"

[Execution.Matching]
LogRemovedOrdersDebug = true

[Metrics]
Enabled = true
Path = "/tmp/engine.prom"
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Logging.Environment)
	assert.Equal(t, logging.DebugLevel, cfg.Execution.Level.Get())
	assert.True(t, cfg.Execution.Matching.LogRemovedOrdersDebug)
	assert.False(t, cfg.Execution.Matching.LogPriceLevelsDebug)
	assert.Equal(t, logging.InfoLevel, cfg.Execution.Security.Level.Get())
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/tmp/engine.prom", cfg.Metrics.Path)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := config.Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorContains(t, err, "couldn't read configuration file")

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[Execution]\nLevel = \"loud\"\n"), 0o600))
	_, err = config.Load(bad)
	assert.ErrorContains(t, err, "couldn't parse configuration file")

	unknown := filepath.Join(dir, "unknown.toml")
	require.NoError(t, os.WriteFile(unknown, []byte("[Execution]\nWorkers = 4\n"), 0o600))
	_, err = config.Load(unknown)
	assert.ErrorContains(t, err, "unknown configuration key Execution.Workers")
}

func TestEncodedDefaultsDecodeBack(t *testing.T) {
	buf := bytes.Buffer{}
	require.NoError(t, config.NewDefaultConfig().Encode(&buf))
	assert.Contains(t, buf.String(), `Level = "Info"`)

	cfg := config.Config{}
	require.NoError(t, config.Decode(buf.String(), &cfg))
	assert.Equal(t, config.NewDefaultConfig(), cfg)
}
