package route

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"careerhub/src-server/calendarlink"
	"careerhub/src-server/ical"
	icalutils "careerhub/src-server/ical/utils"
	"careerhub/src-server/utils"

	"github.com/go-chi/chi/v5"
)

func Ical(router chi.Router, as *utils.AppState) {
	router.Get("/api/events/{id}/calendar.ics", func(w http.ResponseWriter, r *http.Request) {
		eventModel, ok := careerEventFromRequest(w, r, as)
		if !ok {
			return
		}
		calendarEvent := eventModel.ToCalendarEvent()

		// turn into ical calendar
		icalCalendar, err := func() (*ical.Calendar, error) {
			start, err := as.LinkBuilder.ResolveStart(calendarEvent.Date, calendarEvent.Time)
			if err != nil {
				return nil, err
			}
			icalEvent := ical.NewEvent(eventModel.ID + "@careerhub")
			icalEvent.
				SetSummary(calendarEvent.Title).
				SetDescription(as.LinkBuilder.Details(calendarEvent)).
				SetLocation(calendarEvent.Location).
				SetStartDate(start).
				SetEndDate(start.Add(calendarlink.Duration(calendarEvent.DurationHours)))
			if email, ok := registrantEmail(r); ok {
				if cn, err := icalutils.NewCommonName("", email); err == nil {
					icalEvent.SetAttendee(cn)
				}
			}

			icalCalendar := ical.NewCalendar()
			icalCalendar.SetName(calendarEvent.Title)
			if err := icalCalendar.AddEvent(icalEvent); err != nil {
				return nil, err
			}
			return &icalCalendar, nil
		}()
		var parseErr *calendarlink.DateParseError
		switch {
		case errors.As(err, &parseErr):
			writeError(w, http.StatusUnprocessableEntity, "event date can't be parsed")
			return
		case err != nil:
			slog.Error("can't build ical calendar", "event_id", eventModel.ID, "error", err)
			writeError(w, http.StatusInternalServerError, "can't build calendar file")
			return
		}

		// write the ical calendar
		w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.ics"`, eventModel.ID))
		w.WriteHeader(http.StatusOK)
		writer := func(s string) {
			if _, err := io.WriteString(w, s); err != nil {
				slog.Warn("can't write to response", "where", "route/ical.go", "err", err)
			}
		}
		if err := icalCalendar.ToIcal(writer); err != nil {
			slog.Error("can't write ical calendar", "event_id", eventModel.ID, "error", err)
		}
	})
}
