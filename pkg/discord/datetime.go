package discord

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"raidbot/internal/domain"
	"raidbot/pkg/tz"
)

// Formats d'heure acceptés : 6:30PM, 6PM, 630PM, 18:30, 1830, 630, 6.
var (
	reTwelveHour   = regexp.MustCompile(`^(\d{1,2}):?(\d{2})?([AP]M)$`)
	reColonTime    = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	reCompactTime  = regexp.MustCompile(`^(\d{3,4})$`)
	reHourOnlyTime = regexp.MustCompile(`^(\d{1,2})$`)
)

// ParseClockTime normalizes free-text time input into hour/minute.
// Returns domain.ErrInvalidTimeFormat for anything unrecognized.
func ParseClockTime(input string) (hour, minute int, err error) {
	s := strings.ToUpper(strings.ReplaceAll(input, " ", ""))

	if m := reTwelveHour.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		min := 0
		if m[2] != "" {
			min, _ = strconv.Atoi(m[2])
		}
		if h < 1 || h > 12 || min > 59 {
			return 0, 0, domain.ErrInvalidTimeFormat
		}
		if m[3] == "AM" {
			if h == 12 {
				h = 0
			}
		} else if h != 12 {
			h += 12
		}
		return h, min, nil
	}

	if m := reColonTime.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		min, _ := strconv.Atoi(m[2])
		if h > 23 || min > 59 {
			return 0, 0, domain.ErrInvalidTimeFormat
		}
		return h, min, nil
	}

	if m := reCompactTime.FindStringSubmatch(s); m != nil {
		digits := m[1]
		h, _ := strconv.Atoi(digits[:len(digits)-2])
		min, _ := strconv.Atoi(digits[len(digits)-2:])
		if h > 23 || min > 59 {
			return 0, 0, domain.ErrInvalidTimeFormat
		}
		return h, min, nil
	}

	if m := reHourOnlyTime.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		if h > 23 {
			return 0, 0, domain.ErrInvalidTimeFormat
		}
		return h, 0, nil
	}

	return 0, 0, domain.ErrInvalidTimeFormat
}

// CombineDateTime builds the UTC start instant from a date (AAAA-MM-JJ), a
// clock time and the organizer's timezone code.
func CombineDateTime(dateStr string, hour, minute int, tzCode string) (time.Time, error) {
	day, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, domain.ErrInvalidTimeFormat
	}
	loc, err := tz.Location(tzCode)
	if err != nil {
		return time.Time{}, err
	}
	local := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc)
	return local.UTC(), nil
}
