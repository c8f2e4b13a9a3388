package ical

import (
	"strings"
	"time"

	"careerhub/src-server/ical/utils"
)

// Event is a single, non-recurring VEVENT.
type Event struct {
	id          string // required
	summary     string // required
	description string
	location    string
	startDate   time.Time // required
	endDate     time.Time // required
	attendee    string    // a NewCommonName value
	createdAt   time.Time
}

func NewEvent(id string) Event {
	return Event{
		id:        id,
		createdAt: time.Now().UTC(),
	}
}

// #region Getters

func (e *Event) GetID() string {
	return e.id
}

func (e *Event) GetSummary() string {
	return e.summary
}

func (e *Event) GetStartDate() time.Time {
	return e.startDate
}

func (e *Event) GetEndDate() time.Time {
	return e.endDate
}

// #endregion

// #region Setters

func (e *Event) SetSummary(summary string) *Event {
	e.summary = summary
	return e
}

func (e *Event) SetDescription(description string) *Event {
	e.description = description
	return e
}

func (e *Event) SetLocation(location string) *Event {
	e.location = location
	return e
}

func (e *Event) SetStartDate(startDate time.Time) *Event {
	e.startDate = startDate
	return e
}

func (e *Event) SetEndDate(endDate time.Time) *Event {
	e.endDate = endDate
	return e
}

// Set the attendee; the value must come from utils.NewCommonName
func (e *Event) SetAttendee(commonName string) *Event {
	e.attendee = commonName
	return e
}

func (e *Event) SetCreatedAt(createdAt time.Time) *Event {
	e.createdAt = createdAt
	return e
}

// #endregion

func (e *Event) Validate() error {
	switch {
	case e.id == "":
		return NewCustomError(ErrIDNotInit, nil)
	case e.summary == "":
		return NewCustomError(ErrSummaryNotSet, map[string]any{"id": e.id})
	case e.startDate.IsZero():
		return NewCustomError(ErrStartDateInvalid, map[string]any{"id": e.id})
	case e.endDate.IsZero():
		return NewCustomError(ErrEndDateInvalid, map[string]any{"id": e.id})
	case e.startDate.After(e.endDate):
		return NewCustomError(ErrStartDateAfterEndDate, map[string]any{"id": e.id})
	}
	return nil
}

// Write the VEVENT block, one logical line per writer call.
func (e *Event) ToIcal(writeLine func(string) error) error {
	if err := e.Validate(); err != nil {
		return err
	}
	dtstamp, err := utils.TimeToUTCDatetime(e.createdAt)
	if err != nil {
		return NewCustomError("invalid DTSTAMP", map[string]any{"id": e.id, "err": err})
	}
	dtstart, err := utils.TimeToUTCDatetime(e.startDate)
	if err != nil {
		return NewCustomError(ErrStartDateInvalid, map[string]any{"id": e.id, "err": err})
	}
	dtend, err := utils.TimeToUTCDatetime(e.endDate)
	if err != nil {
		return NewCustomError(ErrEndDateInvalid, map[string]any{"id": e.id, "err": err})
	}

	lines := []string{
		"BEGIN:VEVENT",
		"UID:" + e.id,
		"DTSTAMP:" + dtstamp,
		"DTSTART:" + dtstart,
		"DTEND:" + dtend,
		"SUMMARY:" + escapeText(e.summary),
	}
	if e.description != "" {
		lines = append(lines, "DESCRIPTION:"+escapeText(e.description))
	}
	if e.location != "" {
		lines = append(lines, "LOCATION:"+escapeText(e.location))
	}
	if e.attendee != "" {
		lines = append(lines, "ATTENDEE;"+e.attendee)
	}
	lines = append(lines, "END:VEVENT")

	for _, line := range lines {
		if err := writeLine(line); err != nil {
			return err
		}
	}
	return nil
}

// RFC5545 TEXT escaping
func escapeText(s string) string {
	return strings.NewReplacer(
		`\`, `\\`,
		";", `\;`,
		",", `\,`,
		"\r\n", `\n`,
		"\n", `\n`,
	).Replace(s)
}
