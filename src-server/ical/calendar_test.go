package ical_test

import (
	"strings"
	"testing"
	"time"

	"careerhub/src-server/ical"
	"careerhub/src-server/ical/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarToIcal(t *testing.T) {
	start := time.Date(2024, time.June, 10, 15, 0, 0, 0, time.UTC)
	id := uuid.NewString()

	cn, err := utils.NewCommonName("", "jane@example.com")
	require.NoError(t, err)

	event := ical.NewEvent(id)
	event.
		SetSummary("Resume clinic, part 2").
		SetDescription("Bring your CV;\nwe'll review it live. " + strings.Repeat("x", 120)).
		SetLocation("Nairobi Garage").
		SetStartDate(start).
		SetEndDate(start.Add(2 * time.Hour)).
		SetAttendee(cn).
		SetCreatedAt(start.Add(-24 * time.Hour))

	calendar := ical.NewCalendar()
	calendar.SetName("Career events")
	require.NoError(t, calendar.AddEvent(event))

	out, err := calendar.String()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR\r\n"))
	assert.True(t, strings.HasSuffix(out, "END:VCALENDAR\r\n"))
	for _, line := range strings.Split(strings.TrimSuffix(out, "\r\n"), "\r\n") {
		assert.LessOrEqual(t, len(line), 75, line)
	}

	unfolded := strings.ReplaceAll(out, "\r\n ", "")
	assert.Contains(t, unfolded, "UID:"+id+"\r\n")
	assert.Contains(t, unfolded, "DTSTART:20240610T150000Z\r\n")
	assert.Contains(t, unfolded, "DTEND:20240610T170000Z\r\n")
	assert.Contains(t, unfolded, "DTSTAMP:20240609T150000Z\r\n")
	assert.Contains(t, unfolded, `SUMMARY:Resume clinic\, part 2`+"\r\n")
	assert.Contains(t, unfolded, `DESCRIPTION:Bring your CV\;\nwe'll review it live.`)
	assert.Contains(t, unfolded, "ATTENDEE;CN=jane@example.com:mailto:jane@example.com\r\n")
}

func TestCalendarAddEventValidation(t *testing.T) {
	start := time.Date(2024, time.June, 10, 15, 0, 0, 0, time.UTC)
	calendar := ical.NewCalendar()

	noSummary := ical.NewEvent("a")
	noSummary.SetStartDate(start).SetEndDate(start)
	assert.ErrorContains(t, calendar.AddEvent(noSummary), ical.ErrSummaryNotSet)

	backwards := ical.NewEvent("b")
	backwards.SetSummary("x").SetStartDate(start).SetEndDate(start.Add(-time.Hour))
	assert.ErrorContains(t, calendar.AddEvent(backwards), ical.ErrStartDateAfterEndDate)

	assert.ErrorContains(t, calendar.AddEvent(ical.NewEvent("")), ical.ErrIDNotInit)
	assert.Empty(t, calendar.GetEvents())
}
