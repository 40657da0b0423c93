// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"sync"

	"cogentcore.org/colorwell/base/errors"
	"cogentcore.org/colorwell/colors"
	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator, with the colorhex rule
// for hex color strings.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		errors.Must(v.RegisterValidation("colorhex", func(fl validator.FieldLevel) bool {
			return colors.IsHex(fl.Field().String())
		}))
		validateInst = v
	})
	return validateInst
}
