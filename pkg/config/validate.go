// Zaparoo GiantBomb
// Copyright (c) 2025 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Zaparoo GiantBomb.
//
// Zaparoo GiantBomb is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zaparoo GiantBomb is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Zaparoo GiantBomb.  If not, see <http://www.gnu.org/licenses/>.

package config

import (
	"github.com/ZaparooProject/giantbomb/pkg/validation"
	"github.com/go-playground/validator/v10"
)

var valuesValidator = func() *validation.Validator {
	v := validation.NewValidator()
	v.RegisterStructValidation(validateValues, Values{})
	return v
}()

// Validate checks config values. Failures are returned as *validation.Error.
func Validate(vals *Values) error {
	return valuesValidator.Validate(vals)
}

func validateValues(sl validator.StructLevel) {
	vals, ok := sl.Current().Interface().(Values)
	if !ok {
		return
	}
	if vals.ErrorReporting && vals.SentryDSN == "" {
		sl.ReportError(vals.SentryDSN, "SentryDSN", "sentry_dsn", "required_if", "ErrorReporting true")
	}
}
