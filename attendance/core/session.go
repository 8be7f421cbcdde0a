package core

import "time"

// SessionValid reports whether a session established at establishedAt is
// still usable at now. Expiry is a hard boundary: callers must force
// re-authentication, there is no refresh in here.
func SessionValid(establishedAt, now time.Time, timeout time.Duration) bool {
	return now.Sub(establishedAt) < timeout
}
