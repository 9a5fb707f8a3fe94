// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of model constraints across the application.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - ValidationError: aggregated description of every violated constraint.
//
// Constraints are declared with `validate:"..."` struct tags on the models
// and checked with go-playground/validator. Two custom tags are registered:
//   - objectid:    24-character hexadecimal identity
//   - url_pattern: http(s) link in the form accepted for avatars and cards
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields (JSON names).
	Validate(context.Context, any, ...string) error
}
