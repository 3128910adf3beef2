// Package app wires application dependencies for the CLI.
//
// It builds the logger and the dome service from Config and exposes them via
// the App struct for commands to use.
package app
