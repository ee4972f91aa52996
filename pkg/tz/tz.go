// Package tz maps the short timezone codes shown to organizers onto IANA
// locations, with DST-aware display abbreviations.
package tz

import (
	"time"

	"raidbot/internal/domain"
)

var zones = map[string]string{
	"AT":  "America/Anchorage",
	"PT":  "America/Los_Angeles",
	"MT":  "America/Denver",
	"CT":  "America/Chicago",
	"ET":  "America/New_York",
	"UTC": "UTC",
}

// Ordre d'affichage dans le menu déroulant.
var order = []string{"AT", "PT", "MT", "CT", "ET", "UTC"}

var abbrs = map[string][2]string{
	// code -> {standard, daylight}
	"AT": {"AKST", "AKDT"},
	"PT": {"PST", "PDT"},
	"MT": {"MST", "MDT"},
	"CT": {"CST", "CDT"},
	"ET": {"EST", "EDT"},
}

// Codes lists the supported timezone codes in display order.
func Codes() []string {
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// Location resolves a timezone code to its IANA location.
func Location(code string) (*time.Location, error) {
	zone, ok := zones[code]
	if !ok {
		return nil, domain.ErrUnknownTimezone
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, err
	}
	return loc, nil
}

// DisplayAbbr returns the abbreviation to show for code at instant now
// (PDT vs PST, etc.). Unknown codes fall back to the code itself.
func DisplayAbbr(code string, now time.Time) string {
	if code == "UTC" {
		return "UTC"
	}
	pair, ok := abbrs[code]
	if !ok {
		return code
	}
	loc, err := Location(code)
	if err != nil {
		return code
	}
	if now.In(loc).IsDST() {
		return pair[1]
	}
	return pair[0]
}
