// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
)

var drivers = []string{DriverMongo, DriverPostgres, DriverSQLite}

// validate checks that the final merged [StructuredConfig] can start the
// server. Optional groups (Redis, Images) are only checked when enabled.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if err := cfg.Storage.validate(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}
	if cfg.Server.RateLimit < 0 || cfg.Server.RateBurst < 0 {
		return fmt.Errorf("%w: negative rate limit", ErrInvalidServerConfigs)
	}

	return nil
}

func (s Storage) validate() error {
	if !slices.Contains(drivers, s.Driver) {
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, s.Driver)
	}

	switch s.Driver {
	case DriverMongo:
		if s.Mongo.URI == "" || s.Mongo.Database == "" {
			return fmt.Errorf("%w: mongo uri and database are required", ErrInvalidStorageConfigs)
		}
	default:
		if s.DB.DSN == "" {
			return fmt.Errorf("%w: dsn is required for %s", ErrInvalidStorageConfigs, s.Driver)
		}
	}

	if s.Images.Endpoint != "" && (s.Images.Bucket == "" || s.Images.MaxDimension <= 0) {
		return ErrInvalidImagesConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
