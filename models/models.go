package models

import "time"

// Now returns the timestamp used for all server-populated time fields.
// Mongo stores datetimes at millisecond resolution, so truncate up front to
// keep a freshly built entity equal to its re-read form.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
