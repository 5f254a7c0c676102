// Package telegram resolves the host-platform identity. The desktop client
// runs outside the chat platform, so the numeric identity arrives through a
// flag or the environment instead of the mini-app bootstrap.
package telegram

import (
	"os"
	"strconv"
)

// EnvVar names the environment variable carrying the numeric identity.
const EnvVar = "TELEGRAM_ID"

// Unset is the sentinel for a missing identity. A test can still be taken
// anonymously; statistics require a real identity.
const Unset int64 = 0

// Resolve returns the identity: an explicit non-zero flag value wins,
// otherwise the environment is consulted, otherwise Unset.
func Resolve(flagValue int64) int64 {
	if flagValue != Unset {
		return flagValue
	}
	raw := os.Getenv(EnvVar)
	if raw == "" {
		return Unset
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return Unset
	}
	return id
}

// IsSet reports whether id is a real identity.
func IsSet(id int64) bool {
	return id != Unset
}
