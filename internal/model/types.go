package model

import (
	"fmt"
	"strings"
)

type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
)

// ParseOutputFormat is case-insensitive and ignores surrounding whitespace.
func ParseOutputFormat(raw string) (OutputFormat, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch OutputFormat(s) {
	case OutputText, OutputJSON:
		return OutputFormat(s), nil
	default:
		return "", fmt.Errorf("invalid output format %q (expected text|json)", raw)
	}
}

// Category names one bucket of the "on this day" feed. The lower-case value
// doubles as the URL path segment; CategoryAll merges every bucket.
type Category string

const (
	CategoryAll      Category = "all"
	CategorySelected Category = "selected"
	CategoryBirths   Category = "births"
	CategoryDeaths   Category = "deaths"
	CategoryHolidays Category = "holidays"
	CategoryEvents   Category = "events"
)

func ParseCategory(raw string) (Category, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch Category(s) {
	case CategoryAll, CategorySelected, CategoryBirths, CategoryDeaths, CategoryHolidays, CategoryEvents:
		return Category(s), nil
	default:
		return "", fmt.Errorf("invalid event type %q (expected all|selected|births|deaths|holidays|events)", raw)
	}
}

// Event is one historical fact. Year is nil when the feed omits it, which is
// common for holidays.
type Event struct {
	Text string `json:"text"`
	Year *int   `json:"year,omitempty"`
}

// OnThisDayResponse mirrors the feed payload. Buckets the endpoint does not
// return decode to nil and are treated as empty.
type OnThisDayResponse struct {
	Selected []Event `json:"selected"`
	Births   []Event `json:"births"`
	Deaths   []Event `json:"deaths"`
	Holidays []Event `json:"holidays"`
	Events   []Event `json:"events"`
}
