package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates missing token settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates an unknown driver or missing
	// connection settings for the selected driver.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidImagesConfigs indicates an enabled image store without a
	// bucket or size limit.
	ErrInvalidImagesConfigs = errors.New("invalid images configuration")
	// ErrInvalidServerConfigs indicates invalid listener or throttling
	// settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing base URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
