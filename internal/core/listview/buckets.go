package listview

import (
	"strings"
	"time"
)

// DateBucket is a relative creation-date filter.
type DateBucket string

const (
	BucketAny       DateBucket = ""
	BucketToday     DateBucket = "today"
	BucketLastWeek  DateBucket = "week"
	BucketThisMonth DateBucket = "month"
)

// midnight truncates t to the start of its calendar day in t's location.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Contains reports whether ts falls in the bucket relative to now.
// Boundaries are inclusive at day resolution: "week" spans the 7 calendar
// days ending today, "month" spans the current calendar month.
func (b DateBucket) Contains(ts, now time.Time) bool {
	today := midnight(now)
	day := midnight(ts)

	switch b {
	case BucketAny:
		return true
	case BucketToday:
		return day.Equal(today)
	case BucketLastWeek:
		return !day.Before(today.AddDate(0, 0, -6)) && !day.After(today)
	case BucketThisMonth:
		return day.Year() == today.Year() && day.Month() == today.Month()
	default:
		return true
	}
}

// ParseDateBucket maps user input to a DateBucket; unknown values mean no
// date filtering.
func ParseDateBucket(s string) DateBucket {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "today":
		return BucketToday
	case "week", "last7", "last7days":
		return BucketLastWeek
	case "month", "thismonth":
		return BucketThisMonth
	default:
		return BucketAny
	}
}

// DueClass positions a target date relative to the current day.
type DueClass int

const (
	DueNone    DueClass = iota // no target date set
	DueFuture                  // strictly after today
	DueToday                   // same calendar day
	DueOverdue                 // strictly before today, at midnight resolution
)

// ClassifyDue compares target against now truncated to midnight. The
// comparison is always made at call time; callers must not cache "today".
func ClassifyDue(target *time.Time, now time.Time) DueClass {
	if target == nil {
		return DueNone
	}
	today := midnight(now)
	day := midnight(*target)
	switch {
	case day.Equal(today):
		return DueToday
	case day.Before(today):
		return DueOverdue
	default:
		return DueFuture
	}
}

// containsFold is a case-insensitive substring test.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
