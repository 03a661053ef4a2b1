package negotiationtime

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// Clock abstracts time.Now so parsing is testable against a fixed reference.
type Clock interface {
	Now() time.Time
}

// RealClock is the production Clock.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// TimeParserInterface defines lenient time parsing for negotiation offers.
type TimeParserInterface interface {
	ParseUserTimeInput(input string, loc *time.Location, clock Clock) (time.Time, error)
}

// TimeParser parses free-form user time input.
type TimeParser struct{}

// NewTimeParser creates a new TimeParser.
func NewTimeParser() *TimeParser {
	return &TimeParser{}
}

var compactTimePattern = regexp.MustCompile(`(\d{1,2})(\d{2})(am|pm)`)

// ParseUserTimeInput parses user-provided time text in the tournament
// timezone and returns the result in UTC. Accepts natural language ("friday
// 8pm", "tomorrow at 19:00") plus bare HH:MM, which means the next occurrence
// of that wall-clock time.
func (tp *TimeParser) ParseUserTimeInput(input string, loc *time.Location, clock Clock) (time.Time, error) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return time.Time{}, fmt.Errorf("time input is empty")
	}

	// "932pm" -> "9:32 pm"
	normalized = compactTimePattern.ReplaceAllString(normalized, "$1:$2 $3")

	nowInLoc := clock.Now().In(loc).Truncate(time.Minute)

	// Bare HH:MM means the next occurrence of that wall-clock time.
	if parsed, err := time.ParseInLocation("15:04", normalized, loc); err == nil {
		candidate := time.Date(nowInLoc.Year(), nowInLoc.Month(), nowInLoc.Day(),
			parsed.Hour(), parsed.Minute(), 0, 0, loc)
		if !candidate.After(nowInLoc) {
			candidate = candidate.AddDate(0, 0, 1)
		}
		return candidate.UTC(), nil
	}

	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)

	r, err := w.Parse(normalized, nowInLoc)
	if err != nil || r == nil {
		return time.Time{}, fmt.Errorf("could not recognize time format: %s", input)
	}

	parsedTime := r.Time.In(loc).Truncate(time.Minute)
	if parsedTime.Before(nowInLoc) {
		return time.Time{}, fmt.Errorf("proposed time must be in the future (parsed: %s)", parsedTime)
	}

	return parsedTime.UTC(), nil
}
