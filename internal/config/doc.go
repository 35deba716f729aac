// Package config manages user-level settings stored at ~/.wasmhub/config.yaml
// (serve port, hub root override) and resolves the root of the learning
// repository for commands that need it.
package config
