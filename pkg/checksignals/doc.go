// Package checksignals holds the public types shared by the check-signals
// packages: findings, scan results, the Logger and Reporter interfaces,
// sentinel errors and exit codes.
package checksignals
