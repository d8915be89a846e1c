// internal/payload/event.go
package payload

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// maxLineOctets is the RFC 5545 physical line limit, excluding CRLF.
const maxLineOctets = 75

// EventTime is a VEVENT timestamp. Floating times carry no zone marker and
// are emitted unchanged; zone-aware times are normalized to UTC with a
// trailing Z.
type EventTime struct {
	Time     time.Time `json:"time"`
	Floating bool      `json:"floating,omitempty"`
}

func (t EventTime) format() string {
	if t.Floating {
		return t.Time.Format("20060102T150405")
	}
	return t.Time.UTC().Format("20060102T150405Z")
}

// GeoPoint is the optional GEO property of an event.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Event represents an iCalendar VEVENT.
type Event struct {
	UID          string     `json:"uid,omitempty"`
	Summary      string     `json:"summary,omitempty"`
	Start        *EventTime `json:"start,omitempty"`
	End          *EventTime `json:"end,omitempty"`
	Stamp        *time.Time `json:"stamp,omitempty"`
	Description  string     `json:"description,omitempty"`
	Organizer    string     `json:"organizer,omitempty"`
	Status       string     `json:"status,omitempty"`
	Location     string     `json:"location,omitempty"`
	Geo          *GeoPoint  `json:"geo,omitempty"`
	Class        string     `json:"class,omitempty"`
	Categories   []string   `json:"categories,omitempty"`
	Transparency string     `json:"transparency,omitempty"`
	URL          string     `json:"url,omitempty"`
}

// Data builds the VCALENDAR/VEVENT text with CRLF line endings. DTSTAMP
// defaults to the current UTC time and UID to a fresh UUID when absent.
// Long free-text properties are folded per RFC 5545.
func (e *Event) Data() string {
	lines := []string{"BEGIN:VCALENDAR", "VERSION:2.0", "BEGIN:VEVENT"}

	stamp := time.Now().UTC()
	if e.Stamp != nil {
		stamp = e.Stamp.UTC()
	}
	lines = append(lines, "DTSTAMP:"+stamp.Format("20060102T150405Z"))

	uid := e.UID
	if uid == "" {
		uid = uuid.NewString()
	}
	lines = append(lines, "UID:"+uid)

	if e.Start != nil {
		lines = append(lines, "DTSTART:"+e.Start.format())
	}
	if e.End != nil {
		lines = append(lines, "DTEND:"+e.End.format())
	}
	if e.Summary != "" {
		lines = append(lines, "SUMMARY:"+escapeText(e.Summary))
	}
	if e.Description != "" {
		lines = append(lines, foldLine("DESCRIPTION:"+escapeText(e.Description)))
	}
	if e.Organizer != "" {
		lines = append(lines, "ORGANIZER:"+e.Organizer)
	}
	if e.Status != "" {
		lines = append(lines, "STATUS:"+e.Status)
	}
	if e.Location != "" {
		lines = append(lines, foldLine("LOCATION:"+escapeText(e.Location)))
	}
	if e.Geo != nil {
		lines = append(lines, "GEO:"+FormatCoordinate(e.Geo.Latitude)+";"+FormatCoordinate(e.Geo.Longitude))
	}
	if e.Class != "" {
		lines = append(lines, "CLASS:"+e.Class)
	}
	if len(e.Categories) > 0 {
		escaped := make([]string, len(e.Categories))
		for i, category := range e.Categories {
			escaped[i] = escapeText(category)
		}
		lines = append(lines, foldLine("CATEGORIES:"+strings.Join(escaped, ",")))
	}
	if e.Transparency != "" {
		lines = append(lines, "TRANSP:"+e.Transparency)
	}
	if e.URL != "" {
		lines = append(lines, "URL:"+e.URL)
	}

	lines = append(lines, "END:VEVENT", "END:VCALENDAR")
	return strings.Join(lines, "\r\n") + "\r\n"
}

// foldLine splits a content line so that no physical line exceeds 75 octets.
// Continuation lines start with CRLF followed by a single space, which counts
// against their budget. The split is byte-aware and never lands inside a
// multi-byte character.
func foldLine(line string) string {
	if len(line) <= maxLineOctets {
		return line
	}
	var parts []string
	var cur strings.Builder
	limit := maxLineOctets
	for _, r := range line {
		if cur.Len()+utf8.RuneLen(r) > limit {
			parts = append(parts, cur.String())
			cur.Reset()
			// The leading space of a continuation line takes one octet.
			limit = maxLineOctets - 1
		}
		cur.WriteRune(r)
	}
	if cur.Len() > 0 {
		parts = append(parts, cur.String())
	}
	return strings.Join(parts, "\r\n ")
}
