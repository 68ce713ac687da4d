// Package config loads the optional check-signals.yaml file and resolves it,
// together with built-in defaults, into the Settings of one run.
package config
