package calendarlink_test

import (
	"errors"
	"math"
	"net/url"
	"strings"
	"testing"
	"time"

	"careerhub/src-server/calendarlink"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var eat = time.FixedZone("EAT", 3*60*60)

func newBuilder() *calendarlink.Builder {
	return calendarlink.NewBuilder(calendarlink.WithLocation("Africa/Nairobi", eat))
}

func sampleEvent() calendarlink.CalendarEvent {
	return calendarlink.CalendarEvent{
		Title:       "Breaking into Product Management",
		SpeakerName: "Amina Otieno",
		SpeakerRole: "Senior PM, Fintech",
		Location:    "iHub, Nairobi",
		Price:       "Free",
		Description: "A fireside chat & Q/A.",
		Date:        "Monday, June 10, 2024",
		Time:        "18:00",
	}
}

func parseLink(t *testing.T, link string) *url.URL {
	t.Helper()
	u, err := url.Parse(link)
	require.NoError(t, err)
	return u
}

func TestBuildCommaDateFallsBackToStrippedParse(t *testing.T) {
	link := newBuilder().Build(sampleEvent(), "jane@example.com")
	require.True(t, strings.HasPrefix(link, calendarlink.RenderURL+"?"), link)

	q := parseLink(t, link).Query()
	start, end, err := calendarlink.ParseDates(q.Get("dates"))
	require.NoError(t, err)
	assert.True(t, start.Equal(time.Date(2024, time.June, 10, 18, 0, 0, 0, eat)))
	assert.Equal(t, 2*time.Hour, end.Sub(start))
	assert.Equal(t, "20240610T150000Z/20240610T170000Z", q.Get("dates"))
}

func TestBuildQueryContract(t *testing.T) {
	link := newBuilder().Build(sampleEvent(), "jane+events@example.com")
	u := parseLink(t, link)

	var keys []string
	for _, pair := range strings.Split(u.RawQuery, "&") {
		keys = append(keys, strings.SplitN(pair, "=", 2)[0])
	}
	assert.Equal(t, []string{"action", "text", "dates", "details", "location", "add", "ctz"}, keys)

	q := u.Query()
	assert.Equal(t, "TEMPLATE", q.Get("action"))
	assert.Equal(t, "Breaking into Product Management", q.Get("text"))
	assert.Equal(t, "iHub, Nairobi", q.Get("location"))
	assert.Equal(t, "jane+events@example.com", q.Get("add"))
	assert.Equal(t, "Africa/Nairobi", q.Get("ctz"))

	assert.Contains(t, u.RawQuery, "dates=20240610T150000Z%2F20240610T170000Z")
	assert.Contains(t, u.RawQuery, "add=jane%2Bevents%40example.com")
	assert.NotContains(t, u.RawQuery, " ")
}

func TestBuildDetails(t *testing.T) {
	b := newBuilder()
	ev := sampleEvent()

	want := strings.Join([]string{
		"Breaking into Product Management",
		"Speaker: Amina Otieno",
		"Role: Senior PM, Fintech",
		"Location: iHub, Nairobi",
		"Price: Free",
		"",
		"A fireside chat & Q/A.",
		calendarlink.DefaultFooter,
	}, "\n")
	assert.Equal(t, want, b.Details(ev))
	assert.Equal(t, want, parseLink(t, b.Build(ev, "a@b.co")).Query().Get("details"))

	ev.Description = "   "
	assert.Contains(t, b.Details(ev), "\n\n"+calendarlink.PlaceholderDescription+"\n")

	custom := calendarlink.NewBuilder(
		calendarlink.WithLocation("Africa/Nairobi", eat),
		calendarlink.WithFooter("Sent by the careers team"),
	)
	assert.True(t, strings.HasSuffix(custom.Details(ev), "\nSent by the careers team"))
}

func TestBuildUnparsableDateReturnsRoot(t *testing.T) {
	b := newBuilder()
	ev := sampleEvent()
	ev.Date = "not-a-date"
	assert.Equal(t, calendarlink.RootURL, b.Build(ev, "jane@example.com"))

	_, err := b.Resolve(ev, "jane@example.com")
	var parseErr *calendarlink.DateParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "not-a-date", parseErr.Date)
	assert.Equal(t, "18:00", parseErr.Time)

	ev = sampleEvent()
	ev.Time = ""
	assert.Equal(t, calendarlink.RootURL, b.Build(ev, "jane@example.com"))
}

func TestBuildNilBuilderDegrades(t *testing.T) {
	var b *calendarlink.Builder
	assert.Equal(t, calendarlink.RootURL, b.Build(sampleEvent(), "jane@example.com"))

	_, err := b.Resolve(sampleEvent(), "jane@example.com")
	assert.True(t, errors.Is(err, calendarlink.ErrEncoding))
}

func TestBuildDuration(t *testing.T) {
	b := newBuilder()
	ev := sampleEvent()
	ev.DurationHours = 1.5

	start, end, err := calendarlink.ParseDates(parseLink(t, b.Build(ev, "a@b.co")).Query().Get("dates"))
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, end.Sub(start))

	for _, hours := range []float64{0, -3, math.NaN(), math.Inf(1), math.MaxFloat64} {
		assert.Equal(t, 2*time.Hour, calendarlink.Duration(hours), "hours=%v", hours)
	}
	assert.Equal(t, 45*time.Minute, calendarlink.Duration(0.75))
}

func TestResolveStartFormats(t *testing.T) {
	b := newBuilder()
	want := time.Date(2024, time.June, 10, 18, 0, 0, 0, eat)

	for _, tc := range []struct{ date, clock string }{
		{"2024-06-10", "18:00"},
		{"2024-06-10", "18:00:00"},
		{"June 10, 2024", "18:00"},
		{"Monday, June 10, 2024", "6:00 PM"},
		{"Mon, Jun 10, 2024", "6pm"},
		{"10 June 2024", "18:00"},
		{"  Monday,  June 10,   2024 ", "18:00"},
	} {
		got, err := b.ResolveStart(tc.date, tc.clock)
		if assert.NoError(t, err, "%q %q", tc.date, tc.clock) {
			assert.True(t, got.Equal(want), "%q %q -> %s", tc.date, tc.clock, got)
		}
	}
}

func TestDatesRoundTrip(t *testing.T) {
	b := newBuilder()
	for _, hours := range []float64{0, 0.5, 1, 1.5, 3, 26} {
		ev := sampleEvent()
		ev.DurationHours = hours

		start, err := b.ResolveStart(ev.Date, ev.Time)
		require.NoError(t, err)
		end := start.Add(calendarlink.Duration(hours))

		gotStart, gotEnd, err := calendarlink.ParseDates(parseLink(t, b.Build(ev, "a@b.co")).Query().Get("dates"))
		require.NoError(t, err)
		assert.True(t, gotStart.Equal(start))
		assert.True(t, gotEnd.Equal(end))
	}

	for _, bad := range []string{"", "20240610T150000Z", "a/b", "20240610T150000Z/20240610T170000Z/x"} {
		_, _, err := calendarlink.ParseDates(bad)
		assert.Error(t, err, bad)
	}
}

func TestBuildConcurrent(t *testing.T) {
	b := newBuilder()
	want := b.Build(sampleEvent(), "jane@example.com")
	done := make(chan string, 16)
	for range 16 {
		go func() { done <- b.Build(sampleEvent(), "jane@example.com") }()
	}
	for range 16 {
		assert.Equal(t, want, <-done)
	}
}
