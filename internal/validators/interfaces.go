// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides the entity validation rules of the courses
// API.
//
// Core concepts:
//   - Validator: generic interface to validate a request payload.
//   - Rule: a single (predicate, message) pair bound to one attribute.
//   - ValidationError: the ordered list of violated rule messages, tagged
//     with the failure Kind (validation or uniqueness).
//
// Rules are declared as explicit ordered lists per entity and evaluated
// eagerly, so the produced message list is deterministic: attributes in
// declaration order, and within an attribute its rules in declaration order.
package validators

import "context"

// Validator defines a generic validation interface for request payloads.
// Implementations return nil when obj is valid or a *[ValidationError]
// listing every violated rule.
type Validator interface {
	Validate(ctx context.Context, obj any) error
}
