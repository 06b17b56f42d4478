// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Storage drivers accepted in [Storage.Driver].
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// StructuredConfig is the top-level configuration container for the recipe
// backend. It aggregates all sub-configurations and is populated by merging
// values from a .env file, environment variables, command-line flags, an
// optional JSON file and finally built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token parameters, the
	// password pepper and the application version.
	App App `envPrefix:"APP_"`

	// Storage selects the persistence backend and holds its connection
	// settings, plus the cache and image store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address, timeout and throttling settings for the
	// HTTP and gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Seed makes the server insert the default categories and filters
	// before it starts serving.
	// Env: SEED
	Seed bool `env:"SEED"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control security,
// token lifecycle, and versioning.
type App struct {
	// PasswordPepper is a server-wide secret appended to every password
	// before hashing. Must be kept confidential.
	// Env: APP_PASSWORD_PEPPER
	PasswordPepper string `env:"PASSWORD_PEPPER"`

	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// Driver is one of "mongo", "postgres" or "sqlite".
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// Mongo holds the document database settings used by the "mongo" driver.
	Mongo Mongo `envPrefix:"MONGO_"`

	// DB holds the SQL connection settings used by "postgres" and "sqlite".
	DB DB `envPrefix:"DB_"`

	// Redis holds the optional cache settings. An empty address disables
	// caching.
	Redis Redis `envPrefix:"REDIS_"`

	// Images holds the optional object storage settings. An empty endpoint
	// disables image uploads.
	Images Images `envPrefix:"IMAGES_"`
}

// Mongo holds connection settings for the document database.
type Mongo struct {
	// URI is the connection string (e.g. "mongodb://localhost:27017").
	// Env: STORAGE_MONGO_URI
	URI string `env:"URI"`

	// Database is the name of the database holding every collection.
	// Env: STORAGE_MONGO_DATABASE
	Database string `env:"DATABASE"`
}

// DB holds connection settings for the relational database backends.
type DB struct {
	// DSN is a PostgreSQL connection string or a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Redis holds connection settings for the categorized-filters cache.
type Redis struct {
	// Env: STORAGE_REDIS_ADDRESS
	Address string `env:"ADDRESS"`
	// Env: STORAGE_REDIS_PASSWORD
	Password string `env:"PASSWORD"`
	// Env: STORAGE_REDIS_DB
	DB int `env:"DB"`
	// TTL bounds how long a cached value may be served.
	// Env: STORAGE_REDIS_TTL
	TTL time.Duration `env:"TTL"`
}

// Images holds connection settings for the S3-compatible image store.
type Images struct {
	// Env: STORAGE_IMAGES_ENDPOINT
	Endpoint string `env:"ENDPOINT"`
	// Env: STORAGE_IMAGES_ACCESS_KEY
	AccessKey string `env:"ACCESS_KEY"`
	// Env: STORAGE_IMAGES_SECRET_KEY
	SecretKey string `env:"SECRET_KEY"`
	// Env: STORAGE_IMAGES_BUCKET
	Bucket string `env:"BUCKET"`
	// Env: STORAGE_IMAGES_USE_SSL
	UseSSL bool `env:"USE_SSL"`
	// MaxDimension caps the longest side of stored images, in pixels.
	// Env: STORAGE_IMAGES_MAX_DIMENSION
	MaxDimension int `env:"MAX_DIMENSION"`
	// URLExpiry is the lifetime of presigned download URLs.
	// Env: STORAGE_IMAGES_URL_EXPIRY
	URLExpiry time.Duration `env:"URL_EXPIRY"`
}

// Server holds network, timeout and throttling settings for the inbound
// transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health server.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit is the number of requests per second allowed per client.
	// Zero disables rate limiting.
	// Env: SERVER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`

	// RateBurst is the token bucket size per client.
	// Env: SERVER_RATE_BURST
	RateBurst int `env:"RATE_BURST"`

	// CORSOrigins lists the origins allowed to call the API.
	// Env: SERVER_CORS_ORIGINS (comma separated)
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration. Sources are consulted in the following order; a field set
// by an earlier source is not overwritten by a later one:
//  1. .env file in the working directory (exported to the environment)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//  5. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
