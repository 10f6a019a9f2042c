// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks draft service requests before they reach storage.
// The draft validator is built on go-playground/validator struct tags and
// reports failures with the package's sentinel errors.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {
	// Validate validates the provided input.
	Validate(context.Context, any) error
}
