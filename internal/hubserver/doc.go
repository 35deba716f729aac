// Package hubserver implements the local development server: the hub root
// served as static files with standard index and MIME semantics, bound
// eagerly so port conflicts fail fast, and shut down gracefully on
// interrupt.
package hubserver
