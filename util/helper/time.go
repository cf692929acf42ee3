package helper_util

import (
	"fmt"
	"time"

	things_errors "github.com/dev-mohitbeniwal/thingsconsole/errors"
)

// Helper function to parse time
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	return t, err
}

// ParseTimeRange parses an optional from/to pair. A missing bound defaults to
// the epoch or now, and from must not be after to.
func ParseTimeRange(from, to string, now time.Time) (time.Time, time.Time, error) {
	start := time.Unix(0, 0).UTC()
	end := now
	var err error
	if from != "" {
		if start, err = ParseTime(from); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid from: %w", err)
		}
	}
	if to != "" {
		if end, err = ParseTime(to); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid to: %w", err)
		}
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: from %s is after to %s", things_errors.ErrInvalidTimeRange, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return start, end, nil
}
