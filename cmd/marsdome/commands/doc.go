// Package commands defines the marsdome CLI and wires dependencies for subcommands.
//
// Commands
//
//   - shell      Interactive calculator loop (also the default without a subcommand)
//   - calc       One calculation from flags, printed as text, JSON or YAML
//   - materials  Print the density table
//
// # Implementation
//
// The root command loads configuration (file, then MARSDOME_* environment,
// then flags) and builds the app before any subcommand runs, so handlers share
// one logger and one dome service.
package commands
