// Package derive holds the pure presentation helpers: values computed from
// already-fetched slice state with no I/O and no state of their own. Callers
// pass an explicit "now" so one render pass classifies everything against a
// single instant.
package derive

import "time"

// TimelineStatus classifies a course's date range against the current time.
type TimelineStatus string

const (
	Upcoming  TimelineStatus = "upcoming"
	Ongoing   TimelineStatus = "ongoing"
	Completed TimelineStatus = "completed"
)

// dateLayouts are the wire formats the backend has been seen sending.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// CourseTimeline buckets a date range relative to now. Boundaries are
// inclusive toward ongoing: a course starting or ending exactly now is
// ongoing. Unparseable dates also classify as ongoing, the neutral bucket.
func CourseTimeline(startDate, endDate string, now time.Time) TimelineStatus {
	start, okStart := parseDate(startDate)
	end, okEnd := parseDate(endDate)
	if !okStart || !okEnd {
		return Ongoing
	}
	if now.Before(start) {
		return Upcoming
	}
	if now.After(end) {
		return Completed
	}
	return Ongoing
}

func parseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
