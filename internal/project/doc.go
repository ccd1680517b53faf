// Package project discovers the library targets of a Cargo project and
// resolves the single target an extension is built from. Target metadata comes
// from a MetadataSource: `cargo metadata` by default, or a direct read of
// Cargo.toml when cargo is not available.
package project
