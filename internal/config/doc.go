// Package config manages user-level settings stored at ~/.newpack/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the default author name used by the create command, and validates the file
// against an embedded JSON schema.
package config
