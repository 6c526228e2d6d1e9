// Package config handles configuration loading, parsing, and validation
// from defaults, an optional YAML file and environment variables. It provides
// type-safe access to the settings needed by the server, the storage
// backends and the metrics endpoint.
package config
