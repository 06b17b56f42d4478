// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches the store:
// credentials on register and login, profile updates, and recipes on create
// and update. Every failure wraps a sentinel from errors.go so the HTTP layer
// can answer 400.
package validators

import "context"

// Validator checks obj, which is one of models.Credentials,
// models.ProfileUpdate or models.Recipe. When fields are given only those
// fields are checked, e.g. "login" on sign-in.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
