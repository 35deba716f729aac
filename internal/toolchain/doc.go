// Package toolchain probes the external executables the hub relies on
// (emcc, node, wat2wasm, git). A probe runs the binary with --version under
// a bounded timeout and reports found/not-found plus the first output line;
// it never retries and never distinguishes "missing" from "timed out".
package toolchain
