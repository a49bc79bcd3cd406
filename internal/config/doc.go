// Package config loads the engine settings and dialect descriptions from
// TOML or YAML files and can watch a settings file for changes.
//
// Configuration is consumed, not owned, by the core packages: loading
// produces plain Settings values and immutable dialect configs that are
// passed into every call. A missing file is never an error; it simply
// yields the defaults.
package config
