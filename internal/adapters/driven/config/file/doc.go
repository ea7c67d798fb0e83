// Package file provides the TOML-backed configuration store and the
// resolved Config built from it plus environment overrides.
package file
