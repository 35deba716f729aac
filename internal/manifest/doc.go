// Package manifest handles parsing and validation of wasmhub project
// manifests (wasmhub.yaml). The scaffolder writes one into every generated
// project and validates it against the embedded JSON schema.
package manifest
