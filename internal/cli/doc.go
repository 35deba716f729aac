// Package cli defines the Cobra command tree for the wasmhub CLI. Each file
// in this package registers one top-level command (check, lesson, build,
// serve, new, etc.) with the root command. Command implementations delegate
// to internal packages for the actual work and only handle argument parsing,
// I/O formatting, and user interaction.
package cli
