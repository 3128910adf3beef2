// Package logger sets up structured logging with log/slog.
//
// Logs go to stderr by default so they never mix with shell output on stdout.
package logger
