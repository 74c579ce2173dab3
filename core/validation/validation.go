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

package validation

import (
	"code.vegaprotocol.io/tinyme/core/security"
	"code.vegaprotocol.io/tinyme/core/types"
)

// Securities gives access to the traded securities by ISIN.
type Securities interface {
	Get(isin string) (*security.Security, error)
}

// Accounts tells whether brokers and shareholders are known.
type Accounts interface {
	HasBroker(id uint64) bool
	HasShareholder(id uint64) bool
}

// Validator checks requests before they reach a security. Every problem
// found is reported, not only the first one.
type Validator struct {
	securities Securities
	accounts   Accounts
}

func NewValidator(securities Securities, accounts Accounts) *Validator {
	return &Validator{
		securities: securities,
		accounts:   accounts,
	}
}

func (v *Validator) CheckEnterOrder(req *types.EnterOrderRequest) error {
	return v.checkEnterOrder(req).ErrOrNil()
}

func (v *Validator) checkEnterOrder(req *types.EnterOrderRequest) *types.InvalidRequestError {
	errs := types.NewInvalidRequestError()
	checkOrderFields(req, errs)

	sec, err := v.securities.Get(req.SecurityISIN)
	if err != nil {
		errs.Add(types.ReasonUnknownSecurityISIN)
	} else {
		checkSecurityRules(sec, req, errs)
	}

	if !v.accounts.HasBroker(req.BrokerID) {
		errs.Add(types.ReasonUnknownBrokerID)
	}
	if !v.accounts.HasShareholder(req.ShareholderID) {
		errs.Add(types.ReasonUnknownShareholderID)
	}

	if sec != nil {
		switch req.Type {
		case types.OrderEntryTypeNew:
			if o, _ := sec.FindOrder(req.Side, req.OrderID); o != nil {
				errs.Add(types.ReasonDuplicateOrderID)
			}
		case types.OrderEntryTypeUpdate:
			checkUpdate(sec, req, errs)
		}
	}
	return errs
}

func checkOrderFields(req *types.EnterOrderRequest, errs *types.InvalidRequestError) {
	if req.OrderID == 0 {
		errs.Add(types.ReasonInvalidOrderID)
	}
	if req.Quantity == 0 {
		errs.Add(types.ReasonOrderQuantityNotPositive)
	}
	if req.Price == 0 {
		errs.Add(types.ReasonOrderPriceNotPositive)
	}
	if req.MinimumExecutionQuantity > req.Quantity {
		errs.Add(types.ReasonMEQMoreThanQuantity)
	}
	if req.IsStopLimit() && req.IsIceberg() {
		errs.Add(types.ReasonStopLimitCannotBeIceberg)
	}
	if req.IsStopLimit() && req.MinimumExecutionQuantity > 0 {
		errs.Add(types.ReasonStopLimitCannotHaveMEQ)
	}
	// an iceberg must hide part of its quantity
	if req.IsIceberg() && req.PeakSize >= req.Quantity {
		errs.Add(types.ReasonInvalidPeakSize)
	}
}

func checkSecurityRules(sec *security.Security, req *types.EnterOrderRequest, errs *types.InvalidRequestError) {
	if req.Quantity%sec.LotSize() != 0 {
		errs.Add(types.ReasonQuantityNotMultipleOfLotSize)
	}
	if req.Price%sec.TickSize() != 0 {
		errs.Add(types.ReasonPriceNotMultipleOfTickSize)
	}

	if sec.State() != types.MatchingStateAuction {
		return
	}
	if req.MinimumExecutionQuantity > 0 {
		errs.Add(types.ReasonMEQProhibitedInAuction)
	}
	if req.IsStopLimit() {
		if req.Type == types.OrderEntryTypeNew {
			errs.Add(types.ReasonStopLimitNotAllowedInAuction)
		} else {
			errs.Add(types.ReasonStopLimitCannotUpdateInAuction)
		}
	}
}

// checkUpdate verifies the update does not change what kind of order it is.
func checkUpdate(sec *security.Security, req *types.EnterOrderRequest, errs *types.InvalidRequestError) {
	order, inactive := sec.FindOrder(req.Side, req.OrderID)
	if order == nil {
		errs.Add(types.ReasonOrderIDNotFound)
		return
	}

	switch {
	case order.Iceberg != nil && req.PeakSize == 0:
		errs.Add(types.ReasonInvalidPeakSize)
	case order.Iceberg == nil && req.PeakSize != 0:
		errs.Add(types.ReasonPeakSizeForNonIceberg)
	}

	switch {
	case order.StopLimit != nil && !inactive:
		errs.Add(types.ReasonUpdatingActiveStopLimit)
	case order.StopLimit == nil && req.IsStopLimit(),
		order.StopLimit != nil && !req.IsStopLimit():
		errs.Add(types.ReasonUpdatingNonStopLimit)
	}

	if order.MinimumExecutionQuantity != req.MinimumExecutionQuantity {
		errs.Add(types.ReasonCannotUpdateMEQ)
	}
}

func (v *Validator) CheckDeleteOrder(req *types.DeleteOrderRequest) error {
	errs := types.NewInvalidRequestError()
	if req.OrderID == 0 {
		errs.Add(types.ReasonInvalidOrderID)
	}

	sec, err := v.securities.Get(req.SecurityISIN)
	if err != nil {
		errs.Add(types.ReasonUnknownSecurityISIN)
		return errs.ErrOrNil()
	}
	if sec.State() == types.MatchingStateAuction {
		if o, inactive := sec.FindOrder(req.Side, req.OrderID); o != nil && inactive {
			errs.Add(types.ReasonStopLimitCannotDeleteInAuction)
		}
	}
	return errs.ErrOrNil()
}
