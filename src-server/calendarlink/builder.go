// Package calendarlink builds one-click "add to calendar" links for career
// events. Building never fails from the caller's point of view: any problem
// degrades to the calendar service's home page.
package calendarlink

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"careerhub/src-server/ical/utils"
)

const (
	RenderURL = "https://calendar.google.com/calendar/render"
	RootURL   = "https://calendar.google.com"

	DefaultTimezone        = "Africa/Nairobi"
	DefaultFooter          = "Powered by CareerHub Events"
	PlaceholderDescription = "Join us for this amazing event!"
)

var ErrEncoding = errors.New("can't encode calendar link")

// CalendarEvent is the data a link is built from.
type CalendarEvent struct {
	Title       string
	SpeakerName string
	SpeakerRole string
	Location    string
	Price       string
	Description string // optional

	Date string // human-entered, e.g. "Monday, June 10, 2024"
	Time string // e.g. "18:00"

	DurationHours float64 // optional, see Duration
}

type Builder struct {
	timezone string
	location *time.Location
	footer   string
}

type Option func(*Builder)

// WithLocation sets the zone dates are interpreted in and the `ctz` value.
func WithLocation(timezone string, loc *time.Location) Option {
	return func(b *Builder) {
		if timezone != "" {
			b.timezone = timezone
		}
		if loc != nil {
			b.location = loc
		}
	}
}

func WithFooter(footer string) Option {
	return func(b *Builder) {
		if footer = strings.TrimSpace(footer); footer != "" {
			b.footer = footer
		}
	}
}

func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		timezone: DefaultTimezone,
		footer:   DefaultFooter,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.location == nil {
		loc, err := time.LoadLocation(b.timezone)
		if err != nil {
			slog.Warn("can't load timezone, using UTC+3", "timezone", b.timezone, "error", err)
			loc = time.FixedZone("EAT", 3*60*60)
		}
		b.location = loc
	}
	return b
}

func (b *Builder) Timezone() string {
	return b.timezone
}

// Build returns the deep link for ev with email added as a guest, or RootURL
// when the link can't be produced.
func (b *Builder) Build(ev CalendarEvent, email string) string {
	link, err := b.Resolve(ev, email)
	if err != nil {
		return RootURL
	}
	return link
}

// Resolve is Build with the failure made visible: on error the link is empty
// and the caller is expected to fall back to RootURL.
func (b *Builder) Resolve(ev CalendarEvent, email string) (link string, err error) {
	defer func() {
		if r := recover(); r != nil {
			link = ""
			err = fmt.Errorf("%w: %v", ErrEncoding, r)
		}
	}()

	start, err := b.ResolveStart(ev.Date, ev.Time)
	if err != nil {
		return "", err
	}
	end := start.Add(Duration(ev.DurationHours))

	startStr, err := utils.TimeToUTCDatetime(start)
	if err != nil {
		return "", fmt.Errorf("%w: start: %w", ErrEncoding, err)
	}
	endStr, err := utils.TimeToUTCDatetime(end)
	if err != nil {
		return "", fmt.Errorf("%w: end: %w", ErrEncoding, err)
	}

	params := [][2]string{
		{"action", "TEMPLATE"},
		{"text", cleanupString(ev.Title)},
		{"dates", startStr + "/" + endStr},
		{"details", b.Details(ev)},
		{"location", cleanupString(ev.Location)},
		{"add", strings.TrimSpace(email)},
		{"ctz", b.timezone},
	}
	var sb strings.Builder
	sb.WriteString(RenderURL)
	sb.WriteByte('?')
	for i, p := range params {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p[0]))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p[1]))
	}
	return sb.String(), nil
}

// Details renders the plain-text body shown in the calendar entry.
func (b *Builder) Details(ev CalendarEvent) string {
	description := cleanupString(ev.Description)
	if description == "" {
		description = PlaceholderDescription
	}
	lines := []string{
		cleanupString(ev.Title),
		"Speaker: " + cleanupString(ev.SpeakerName),
		"Role: " + cleanupString(ev.SpeakerRole),
		"Location: " + cleanupString(ev.Location),
		"Price: " + cleanupString(ev.Price),
		"",
		description,
		b.footer,
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// ParseDates decodes a `dates` parameter ("start/end") back into instants.
func ParseDates(dates string) (time.Time, time.Time, error) {
	parts := strings.Split(dates, "/")
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, fmt.Errorf("ParseDates: expected start/end, got %q", dates)
	}
	start, err := utils.UTCDatetimeToTime(parts[0])
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("ParseDates: start: %w", err)
	}
	end, err := utils.UTCDatetimeToTime(parts[1])
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("ParseDates: end: %w", err)
	}
	return start, end, nil
}
