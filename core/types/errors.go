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
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrUnknownSecurity      = errors.New("unknown security")
	ErrUnknownBroker        = errors.New("unknown broker")
	ErrUnknownShareholder   = errors.New("unknown shareholder")
	ErrSecurityExists       = errors.New("security already registered")
	ErrBrokerExists         = errors.New("broker already registered")
	ErrShareholderExists    = errors.New("shareholder already registered")
	ErrInvalidTickSize      = errors.New("tick size must be positive")
	ErrInvalidLotSize       = errors.New("lot size must be positive")
	ErrInsufficientCredit   = errors.New("insufficient credit")
	ErrInsufficientPosition = errors.New("insufficient position")
)

// Reason texts carried by rejected requests.
const (
	ReasonInvalidOrderID                       = "invalid order ID"
	ReasonOrderQuantityNotPositive             = "order quantity is not-positive"
	ReasonOrderPriceNotPositive                = "order price is not-positive"
	ReasonUnknownSecurityISIN                  = "unknown security ISIN"
	ReasonUnknownBrokerID                      = "unknown broker ID"
	ReasonUnknownShareholderID                 = "unknown shareholder ID"
	ReasonQuantityNotMultipleOfLotSize         = "quantity is not a multiple of security lot size"
	ReasonPriceNotMultipleOfTickSize           = "price is not a multiple of security tick size"
	ReasonInvalidPeakSize                      = "invalid peak size"
	ReasonMEQMoreThanQuantity                  = "minimum execution quantity is more than quantity"
	ReasonStopLimitCannotBeIceberg             = "stop limit order can not be iceberg"
	ReasonStopLimitCannotHaveMEQ               = "stop limit order can not have minimum execution quantity"
	ReasonMEQProhibitedInAuction               = "minimum execution quantity is prohibited in auction mode"
	ReasonStopLimitNotAllowedInAuction         = "stop limit order is not allowed in auction mode"
	ReasonStopLimitCannotUpdateInAuction       = "stop limit order can not be updated in auction mode"
	ReasonStopLimitCannotDeleteInAuction       = "stop limit order can not be deleted in auction mode"
	ReasonPeakSizeForNonIceberg                = "cannot specify peak size for a non-iceberg order"
	ReasonUpdatingActiveStopLimit              = "updating rejected because the stop limit order is active"
	ReasonUpdatingNonStopLimit                 = "updating rejected because it is not a stop limit order"
	ReasonCannotUpdateMEQ                      = "can not update order minimum execution quantity"
	ReasonOrderIDNotFound                      = "order ID not found"
	ReasonDuplicateOrderID                     = "order ID already exists"
	ReasonBuyerHasNotEnoughCredit              = "buyer has not enough credit"
	ReasonSellerHasNotEnoughPositions          = "seller has not enough positions"
	ReasonMinimumExecutionQuantityNotSatisfied = "order did not match its minimum execution quantity"
)

// InvalidRequestError rejects a request before it reaches the book.
type InvalidRequestError struct {
	Reasons []string
}

func NewInvalidRequestError(reasons ...string) *InvalidRequestError {
	return &InvalidRequestError{Reasons: reasons}
}

func (e *InvalidRequestError) Error() string {
	return "invalid request: " + strings.Join(e.Reasons, ", ")
}

// Add appends a reason.
func (e *InvalidRequestError) Add(reason string) {
	e.Reasons = append(e.Reasons, reason)
}

// ErrOrNil returns nil when no reason was collected.
func (e *InvalidRequestError) ErrOrNil() error {
	if e == nil || len(e.Reasons) == 0 {
		return nil
	}
	return e
}

// RejectionReason maps a rejecting outcome to the reason published for it.
func RejectionReason(o MatchingOutcome) string {
	switch o {
	case MatchingOutcomeNotEnoughCredit:
		return ReasonBuyerHasNotEnoughCredit
	case MatchingOutcomeNotEnoughPositions:
		return ReasonSellerHasNotEnoughPositions
	case MatchingOutcomeNotEnoughQuantitiesMatched:
		return ReasonMinimumExecutionQuantityNotSatisfied
	default:
		return ""
	}
}
