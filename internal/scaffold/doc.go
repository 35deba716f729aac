// Package scaffold generates new C/WASM projects from embedded templates.
// It powers the "wasmhub new" command, producing a source stub, an HTML
// harness, the platform build script, and a project manifest with the
// project name substituted into each.
package scaffold
