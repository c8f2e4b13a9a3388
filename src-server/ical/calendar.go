// The `ical` package serializes career events into iCalendar files so a
// registrant can import them into any calendar client.
//
// # References:
// - RFC5545: https://datatracker.ietf.org/doc/html/rfc5545
//
// # Notes:
// - Only single, non-recurring VEVENTs are produced. All datetimes are
//   written in UTC.
//
// # Example usage:
//
//	calendar := ical.NewCalendar()
//	event := ical.NewEvent("event-id")
//	event.SetSummary("Resume clinic").SetStartDate(start).SetEndDate(end)
//	_ = calendar.AddEvent(event)
//	_ = calendar.ToIcal(func(s string) { fmt.Print(s) })
package ical

import (
	"strings"

	"careerhub/src-server/ical/utils"
)

const defaultProdID = "-//careerhub//events//EN"

type Calendar struct {
	prodID      string
	name        string
	description string
	events      []Event
}

func NewCalendar() Calendar {
	return Calendar{
		prodID: defaultProdID,
	}
}

// #region Getters

func (c *Calendar) GetProdID() string {
	return c.prodID
}

func (c *Calendar) GetName() string {
	return c.name
}

func (c *Calendar) GetDescription() string {
	return c.description
}

func (c *Calendar) GetEvents() []Event {
	return c.events
}

// #endregion

// #region Setters

func (c *Calendar) SetName(name string) {
	c.name = name
}

func (c *Calendar) SetDescription(description string) {
	c.description = description
}

// #endregion

// Validate the event and add it to the calendar
func (c *Calendar) AddEvent(event Event) error {
	if err := event.Validate(); err != nil {
		return err
	}
	c.events = append(c.events, event)
	return nil
}

// Marshal the calendar into iCalendar text, feeding it to writer chunk by
// chunk. Long lines are folded at 75 octets and terminated with CRLF.
func (c *Calendar) ToIcal(writer func(string)) error {
	folded := utils.Split75wrapper(func(s string) (int, error) {
		writer(s)
		return len(s), nil
	})
	writeLine := func(line string) error {
		if _, err := folded(line); err != nil {
			return err
		}
		writer("\r\n")
		return nil
	}

	header := []string{
		"BEGIN:VCALENDAR",
		"PRODID:" + c.prodID,
		"VERSION:2.0",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
	}
	if c.name != "" {
		header = append(header, "X-WR-CALNAME:"+escapeText(c.name))
	}
	if c.description != "" {
		header = append(header, "X-WR-CALDESC:"+escapeText(c.description))
	}
	for _, line := range header {
		if err := writeLine(line); err != nil {
			return err
		}
	}

	for i := range c.events {
		if err := c.events[i].ToIcal(writeLine); err != nil {
			return NewCustomError("can't marshal event", map[string]any{
				"eventID": c.events[i].GetID(),
				"err":     err,
			})
		}
	}
	return writeLine("END:VCALENDAR")
}

// Same as ToIcal but returns the whole document.
func (c *Calendar) String() (string, error) {
	var sb strings.Builder
	if err := c.ToIcal(func(s string) { sb.WriteString(s) }); err != nil {
		return "", err
	}
	return sb.String(), nil
}
