package normalizer

import (
	"regexp"
	"time"

	"github.com/araddon/dateparse"

	"bookstats/internal/models"
	"bookstats/pkg/utils"
)

var (
	amPattern      = regexp.MustCompile(`(?i)(\d)\s*a\.?\s?m\b\.?`)
	pmPattern      = regexp.MustCompile(`(?i)(\d)\s*p\.?\s?m\b\.?`)
	ordinalPattern = regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)\b`)
	fillerPattern  = regexp.MustCompile(`(?i)\bat\b`)
	utcZonePattern = regexp.MustCompile(`(?i) (?:UTC|GMT|Z)$`)
	// <time> <junk> <date>, date last: numeric with - or / separators, or a
	// textual month before or after the day.
	timeFirstPattern = regexp.MustCompile(
		`^(\d{1,2}:\d{2}(?::\d{2}(?:\.\d+)?)?(?: [AP]M)?|\d{1,2} [AP]M)(.*?)` +
			`(\d{1,4}[-/][A-Za-z0-9]+[-/]\d{2,4}|[A-Za-z]+\.? \d{1,2} \d{2,4}|\d{1,2} [A-Za-z]+\.? \d{2,4})$`)
)

// Date layouts that read the same under either convention.
var unambiguousDateLayouts = []string{
	"2006-1-2",
	"2006/1/2",
	"2006.1.2",
	"2006-Jan-2",
	"Jan 2 2006",
	"January 2 2006",
	"Mon Jan 2 2006",
	"Monday January 2 2006",
	"2 Jan 2006",
	"2 January 2006",
	"Mon 2 Jan 2006",
	"Monday 2 January 2006",
	"2-Jan-2006",
	"2/Jan/2006",
	"Jan-2-2006",
	"2-Jan-06",
}

var monthFirstDateLayouts = []string{
	"1/2/2006",
	"1-2-2006",
	"1.2.2006",
	"1/2/06",
	"1-2-06",
	"1.2.06",
}

var dayFirstDateLayouts = []string{
	"2/1/2006",
	"2-1-2006",
	"2.1.2006",
	"2/1/06",
	"2-1-06",
	"2.1.06",
	"2006-2-1",
	"2006/2/1",
}

var clockLayouts = []string{
	"15:04:05",
	"15:04",
	"3:04:05 PM",
	"3:04 PM",
	"3 PM",
}

var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05 -0700",
}

// TimestampNormalizer repairs and parses free-text order timestamps.
type TimestampNormalizer struct {
	strings  *utils.StringHelper
	location *time.Location
	passes   []parsePass
}

// parsePass is one reading convention: exact layouts first, then the lenient parser
// with the same month/day preference.
type parsePass struct {
	layouts    []string
	monthFirst bool
}

// NewTimestampNormalizer creates a normalizer that reads zone-less input as UTC.
func NewTimestampNormalizer() *TimestampNormalizer {
	return &TimestampNormalizer{
		strings:  utils.NewStringHelper(";", ","),
		location: time.UTC,
		passes: []parsePass{
			{layouts: buildLayouts(monthFirstDateLayouts), monthFirst: true},
			{layouts: buildLayouts(dayFirstDateLayouts), monthFirst: false},
		},
	}
}

func buildLayouts(ambiguous []string) []string {
	dates := append(append([]string{}, unambiguousDateLayouts...), ambiguous...)

	layouts := append([]string{}, isoLayouts...)
	for _, d := range dates {
		layouts = append(layouts, d)
		for _, c := range clockLayouts {
			layouts = append(layouts, d+" "+c)
		}
	}

	return layouts
}

// Clean removes separator noise, day ordinals, the filler word "at" and a trailing
// UTC zone name, canonicalizes meridiem markers and moves a leading time behind the date.
func (n *TimestampNormalizer) Clean(raw string) string {
	s := n.strings.CollapseSeparators(raw)
	s = ordinalPattern.ReplaceAllString(s, "${1}")
	s = amPattern.ReplaceAllString(s, "${1} AM")
	s = pmPattern.ReplaceAllString(s, "${1} PM")
	s = fillerPattern.ReplaceAllString(s, " ")
	s = n.strings.NormalizeWhitespace(s)
	s = utcZonePattern.ReplaceAllString(s, "")

	if m := timeFirstPattern.FindStringSubmatch(s); m != nil {
		s = m[3] + " " + m[1]
	}

	return s
}

// Normalize parses raw, reading it month-first before trying day-first.
// present is false when the source had no value at all.
func (n *TimestampNormalizer) Normalize(raw string, present bool) models.Timestamp {
	if !present || isNull(raw) {
		return models.Timestamp{Status: models.StatusMissing}
	}

	s := n.Clean(raw)

	for _, p := range n.passes {
		if t, ok := n.parse(s, p); ok {
			return models.Timestamp{Time: t, Raw: raw, Status: models.StatusValid}
		}
	}

	return models.Timestamp{Raw: raw, Status: models.StatusUnparseable}
}

func (n *TimestampNormalizer) parse(s string, p parsePass) (time.Time, bool) {
	for _, layout := range p.layouts {
		if t, err := time.ParseInLocation(layout, s, n.location); err == nil {
			return t.In(n.location), true
		}
	}

	t, err := dateparse.ParseIn(s, n.location, dateparse.PreferMonthFirst(p.monthFirst))
	if err != nil || t.Year() == 0 {
		// A bare clock reading has no date to group by.
		return time.Time{}, false
	}

	return t.In(n.location), true
}
