// Package config loads marsdome settings from defaults, an optional config
// file and MARSDOME_* environment variables, in increasing precedence, and
// validates the result.
package config
