package tokens

import "time"

// ComputeExpiry advances now by the given amount of minutes.
// Range checking is the callers job, the api boundary enforces
// the 525600 minute ceiling before this is ever reached.
func ComputeExpiry(now time.Time, minutes int) time.Time {
	return now.Add(time.Duration(minutes) * time.Minute)
}

// IsExpired reports whether the expiry instant has passed,
// the exact expiry instant itself does not count as expired
func IsExpired(expiresAt time.Time, now time.Time) bool {
	return now.After(expiresAt)
}
