// Package config provides configuration loading, merging, and validation
// facilities for the recipe backend and its command-line client.
//
// Server configuration is assembled from multiple sources; a field set by an
// earlier source is kept:
//  1. .env file (exported to the environment, never overriding it)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//  5. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the client.
package config
