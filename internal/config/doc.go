// Package config loads, merges and validates the qr-studio configuration.
//
// Sources, in order of precedence (the first non-zero value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// [GetServerConfig] and [GetClientConfig] return validated views for the
// two binaries.
package config
