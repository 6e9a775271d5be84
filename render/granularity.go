// render/granularity.go
package render

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/waozixyz/gantt/metrics"
	"gopkg.in/yaml.v3"
)

// ErrInvalidGranularity is returned for any granularity outside day, week and month.
var ErrInvalidGranularity = errors.New("invalid granularity")

// Granularity is the time unit covered by one grid column.
type Granularity uint8

const (
	Day Granularity = iota
	Week
	Month
)

// bucketColumns is how many columns share one top-band label for week and month views.
const bucketColumns = 4

// ParseGranularity maps "day", "week" or "month" (any case) to a Granularity.
func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "day":
		return Day, nil
	case "week":
		return Week, nil
	case "month":
		return Month, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidGranularity, s)
}

// Valid reports whether g is one of the defined granularities.
func (g Granularity) Valid() bool {
	return g <= Month
}

func (g Granularity) String() string {
	switch g {
	case Day:
		return "day"
	case Week:
		return "week"
	case Month:
		return "month"
	}
	return fmt.Sprintf("Granularity(%d)", uint8(g))
}

// Days is the number of days in one unit. Month is a fixed 30 day approximation.
func (g Granularity) Days() int {
	switch g {
	case Week:
		return 7
	case Month:
		return 30
	}
	return 1
}

// Unit is the duration of one column.
func (g Granularity) Unit() time.Duration {
	return time.Duration(g.Days()) * metrics.Day
}

// header returns the header band painter for g.
func (g Granularity) header() headerBand {
	if g == Day {
		return dayHeader{}
	}
	return bucketHeader{size: bucketColumns, days: g.Days()}
}

// UnmarshalYAML decodes and validates a granularity name.
func (g *Granularity) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseGranularity(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*g = parsed
	return nil
}

// MarshalYAML writes the granularity name.
func (g Granularity) MarshalYAML() (interface{}, error) {
	if !g.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidGranularity, uint8(g))
	}
	return g.String(), nil
}
