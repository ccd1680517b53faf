// Package cli defines the Cobra command tree for cargo-php. Each file in this
// package registers one top-level command (install, remove, stubs, etc.) with
// the root command. Command implementations delegate to internal/workflow and
// only handle flag parsing, output formatting, and user interaction.
package cli
