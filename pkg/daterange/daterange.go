package daterange

import "time"

// ToUTCDay truncates t to its UTC calendar day. All cache keys and range
// comparisons use these truncated days, never wall-clock time.
func ToUTCDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// EnumerateDays returns the inclusive day sequence from ToUTCDay(from) to
// ToUTCDay(to), in order. Empty when from is after to.
func EnumerateDays(from, to time.Time) []time.Time {
	cursor := ToUTCDay(from)
	end := ToUTCDay(to)

	var days []time.Time
	for !cursor.After(end) {
		days = append(days, cursor)
		cursor = cursor.AddDate(0, 0, 1)
	}
	return days
}

// Range is an inclusive span of UTC calendar days.
type Range struct {
	From time.Time
	To   time.Time
}

// MissingRanges walks the requested days once and returns the maximal,
// non-adjacent, ordered spans of days absent from cached. The union of the
// returned spans covers exactly the requested days not in cached: an empty
// list when everything is cached, a single full span when nothing is.
func MissingRanges(from, to time.Time, cached map[time.Time]bool) []Range {
	var (
		missing []Range
		open    bool
		start   time.Time
		last    time.Time
	)

	for _, day := range EnumerateDays(from, to) {
		if !cached[day] {
			if !open {
				start = day
				open = true
			}
			last = day
			continue
		}
		if open {
			missing = append(missing, Range{From: start, To: last})
			open = false
		}
	}
	if open {
		missing = append(missing, Range{From: start, To: last})
	}
	return missing
}

// DaySet indexes rows' days for MissingRanges lookups.
func DaySet(days []time.Time) map[time.Time]bool {
	set := make(map[time.Time]bool, len(days))
	for _, d := range days {
		set[ToUTCDay(d)] = true
	}
	return set
}
