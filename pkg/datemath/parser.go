package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ISODate is the layout produced by Normalize.
const ISODate = "2006-01-02"

// ErrUnrecognized is returned when a string is not a supported date expression.
var ErrUnrecognized = errors.New("datemath: unrecognized date expression")

var (
	inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)
	monthDayRe   = regexp.MustCompile(`^([a-z]+)\.? (\d{1,2})(?:st|nd|rd|th)?$`)
	weekdays     = map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}
)

// Parser converts relative travel-date strings to absolute dates.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/Paris"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts a date string to the start of that day in the parser's
// timezone. ISO dates, today/tomorrow/yesterday, "in N days|weeks|months",
// "next <weekday>" and "<month> <day>" are understood; anything else yields
// ErrUnrecognized.
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	if t, err := time.ParseInLocation(ISODate, relative, p.location); err == nil {
		return t, nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, baseTime)
	}

	if t, ok := p.parseMonthDay(relative, baseTime); ok {
		return t, nil
	}

	return baseTime, fmt.Errorf("%w: %q", ErrUnrecognized, relative)
}

// Normalize rewrites a recognised date expression as YYYY-MM-DD. Unrecognised
// input is returned unchanged with ok=false.
func (p *Parser) Normalize(value string, baseTime time.Time) (string, bool) {
	t, err := p.Parse(value, baseTime)
	if err != nil {
		return value, false
	}
	return t.Format(ISODate), true
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("%w: invalid duration %q", ErrUnrecognized, relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	default:
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("%w: unknown weekday %q", ErrUnrecognized, dayName)
	}

	base := baseTime.In(p.location)
	daysUntil := int(targetWeekday - base.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.startOfDay(base.AddDate(0, 0, daysUntil)), nil
}

// parseMonthDay handles "june 15" or "jun 15th". The next occurrence on or
// after baseTime is returned.
func (p *Parser) parseMonthDay(relative string, baseTime time.Time) (time.Time, bool) {
	matches := monthDayRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return time.Time{}, false
	}

	month, ok := lookupMonth(matches[1])
	if !ok {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(matches[2])
	if day < 1 || day > 31 {
		return time.Time{}, false
	}

	today := p.startOfDay(baseTime)
	t := time.Date(today.Year(), month, day, 0, 0, 0, 0, p.location)
	if t.Month() != month {
		return time.Time{}, false
	}
	if t.Before(today) {
		t = t.AddDate(1, 0, 0)
	}
	return t, true
}

// lookupMonth accepts full English month names and three-letter abbreviations.
func lookupMonth(name string) (time.Month, bool) {
	if len(name) < 3 {
		return 0, false
	}
	for m := time.January; m <= time.December; m++ {
		full := strings.ToLower(m.String())
		if name == full || name == full[:3] {
			return m, true
		}
	}
	return 0, false
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
