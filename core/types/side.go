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

package types

import (
	"fmt"
	"strings"
)

type Side int32

const (
	SideUnspecified Side = iota
	SideBuy
	SideSell
)

func (s Side) String() string {
	switch s {
	case SideBuy:
		return "BUY"
	case SideSell:
		return "SELL"
	default:
		return "UNSPECIFIED"
	}
}

// Opposite returns the other side of the book.
func (s Side) Opposite() Side {
	switch s {
	case SideBuy:
		return SideSell
	case SideSell:
		return SideBuy
	default:
		return SideUnspecified
	}
}

func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Side) UnmarshalText(text []byte) error {
	switch strings.ToUpper(string(text)) {
	case "BUY":
		*s = SideBuy
	case "SELL":
		*s = SideSell
	default:
		return fmt.Errorf("invalid side: %q", string(text))
	}
	return nil
}

type OrderStatus int32

const (
	OrderStatusNew OrderStatus = iota
	OrderStatusQueued
	OrderStatusUpdating
	OrderStatusSnapshot
)

func (s OrderStatus) String() string {
	switch s {
	case OrderStatusNew:
		return "NEW"
	case OrderStatusQueued:
		return "QUEUED"
	case OrderStatusUpdating:
		return "UPDATING"
	case OrderStatusSnapshot:
		return "SNAPSHOT"
	default:
		return "UNKNOWN"
	}
}

// OrderKind tags the variant carried by an Order.
type OrderKind int32

const (
	OrderKindStandard OrderKind = iota
	OrderKindIceberg
	OrderKindStopLimit
)

func (k OrderKind) String() string {
	switch k {
	case OrderKindStandard:
		return "STANDARD"
	case OrderKindIceberg:
		return "ICEBERG"
	case OrderKindStopLimit:
		return "STOP_LIMIT"
	default:
		return "UNKNOWN"
	}
}
