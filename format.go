package tably

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Default display layouts, mirroring en-US locale output. Overridable via
// FormatConfig.
const (
	DefaultDateLayout = "1/2/2006"
	DefaultTimeLayout = "3:04:05 PM"
)

// DateFormat selects which components of a recognized date-time string are
// displayed. Both false renders recognized dates as empty strings.
type DateFormat struct {
	ShowDate bool `yaml:"date" json:"date"`
	ShowTime bool `yaml:"time" json:"time"`
}

// FormatConfig controls cell formatting. A nil Dates field disables date
// recognition entirely: ISO strings pass through as plain strings.
type FormatConfig struct {
	Dates      *DateFormat
	DateLayout string
	TimeLayout string
}

func (c FormatConfig) dateLayout() string {
	if c.DateLayout != "" {
		return c.DateLayout
	}
	return DefaultDateLayout
}

func (c FormatConfig) timeLayout() string {
	if c.TimeLayout != "" {
		return c.TimeLayout
	}
	return DefaultTimeLayout
}

// isoPattern is the strict ISO-8601 date-time shape the legacy API emits:
// full date, 'T', full time, optional fraction, optional zone. Anything that
// only resembles it is a plain string.
var isoPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:\d{2})?$`)

// parseISOTime parses s when it strictly matches the ISO-8601 date-time
// pattern. Zone-less values are taken as UTC.
func parseISOTime(s string) (time.Time, bool) {
	if !isoPattern.MatchString(s) {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// FormatValue renders a single cell value as its display string. It is a
// pure function and total over the Value domain: every finite value formats
// without error.
//
// Null renders empty. Recognized ISO date-time strings honor cfg.Dates when
// set. Sequences join their formatted elements with ", ". Mappings render
// "key: value" pairs joined with ", " in entry order. Numbers and booleans
// use their standard textual form.
func FormatValue(v Value, cfg FormatConfig) string {
	switch v.kind {
	case Null:
		return ""
	case Bool:
		return strconv.FormatBool(v.b)
	case Number:
		return strconv.FormatFloat(v.n, 'f', -1, 64)
	case String:
		if cfg.Dates != nil {
			if t, ok := parseISOTime(v.s); ok {
				return formatTime(t, *cfg.Dates, cfg)
			}
		}
		return v.s
	case Sequence:
		parts := make([]string, len(v.seq))
		for i, el := range v.seq {
			parts[i] = FormatValue(el, cfg)
		}
		return strings.Join(parts, ", ")
	default:
		parts := make([]string, len(v.entries))
		for i, e := range v.entries {
			parts[i] = e.Key + ": " + FormatValue(e.Value, cfg)
		}
		return strings.Join(parts, ", ")
	}
}

func formatTime(t time.Time, df DateFormat, cfg FormatConfig) string {
	switch {
	case df.ShowDate && df.ShowTime:
		return t.Format(cfg.dateLayout() + ", " + cfg.timeLayout())
	case df.ShowDate:
		return t.Format(cfg.dateLayout())
	case df.ShowTime:
		return t.Format(cfg.timeLayout())
	default:
		return ""
	}
}
