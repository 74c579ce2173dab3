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

package json

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

func Prettify(data any) ([]byte, error) {
	return json.MarshalIndent(data, "", "  ")
}

// Fprint writes data to w as a single line of JSON.
func Fprint(w io.Writer, data any) error {
	buf, err := json.Marshal(data)
	if err != nil {
		return errors.Wrap(err, "unable to marshal message")
	}
	_, err = w.Write(append(buf, '\n'))
	return err
}

// PrettyFprint writes data to w as indented JSON.
func PrettyFprint(w io.Writer, data any) error {
	buf, err := Prettify(data)
	if err != nil {
		return errors.Wrap(err, "unable to marshal message")
	}
	_, err = w.Write(append(buf, '\n'))
	return err
}
