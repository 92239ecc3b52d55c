// Package timefmt serializes timestamps in the canonical ISO-8601 form used
// by every JSON response.
package timefmt

import "time"

// Layout is ISO-8601 in UTC with millisecond precision.
const Layout = "2006-01-02T15:04:05.000Z"

// ISO formats t in UTC using Layout.
func ISO(t time.Time) string {
	return t.UTC().Format(Layout)
}
