// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional config file. It provides
// type-safe access to application settings while keeping configuration
// details separate from request handling: the loaded Config is passed to
// constructors explicitly and nothing else reads the environment.
package config
