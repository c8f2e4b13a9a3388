package route

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"careerhub/src-server/calendarlink"
	"careerhub/src-server/model"
	"careerhub/src-server/utils"

	"github.com/go-chi/chi/v5"
)

// registrant email from the query string; the UI has already checked it
// for presence, so this only rejects obviously malformed input
func registrantEmail(r *http.Request) (string, bool) {
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	at := strings.Index(email, "@")
	return email, at > 0 && at < len(email)-1
}

// load the career event named by the {id} URL param, writing the error
// response itself when it can't
func careerEventFromRequest(w http.ResponseWriter, r *http.Request, as *utils.AppState) (*model.CareerEvent, bool) {
	startTimer := time.Now()
	eventModel, err := model.GetCareerEvent(r.Context(), as.BunDB, chi.URLParam(r, "id"))
	switch {
	case errors.Is(err, model.ErrCareerEventNotFound):
		writeError(w, http.StatusNotFound, "event not found")
		return nil, false
	case err != nil:
		slog.Error("can't get career event", "error", err)
		writeError(w, http.StatusInternalServerError, "can't load event")
		return nil, false
	}
	as.MetricChans.ObserveDatabaseRead(float64(time.Since(startTimer).Microseconds()))
	return eventModel, true
}

// the deep link, or the service root when the event can't be turned into one
func calendarLink(as *utils.AppState, eventModel *model.CareerEvent, email string) (string, bool) {
	link, err := as.LinkBuilder.Resolve(eventModel.ToCalendarEvent(), email)
	if err != nil {
		slog.Warn("calendar link degraded to service root", "event_id", eventModel.ID, "error", err)
		as.MetricChans.ObserveCalendarLinkFallback()
		return calendarlink.RootURL, true
	}
	return link, false
}

func Calendar(router chi.Router, as *utils.AppState) {
	type CalendarLinkRespBody struct {
		URL      string `json:"url"`
		Fallback bool   `json:"fallback"`
	}

	router.Get("/api/events/{id}/calendar-link", func(w http.ResponseWriter, r *http.Request) {
		email, ok := registrantEmail(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "a valid email query parameter is required")
			return
		}
		eventModel, ok := careerEventFromRequest(w, r, as)
		if !ok {
			return
		}
		link, fallback := calendarLink(as, eventModel, email)
		writeJSON(w, http.StatusOK, CalendarLinkRespBody{URL: link, Fallback: fallback})
	})

	// same link, as a redirect usable directly from an anchor
	router.Get("/api/events/{id}/add-to-calendar", func(w http.ResponseWriter, r *http.Request) {
		email, ok := registrantEmail(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "a valid email query parameter is required")
			return
		}
		eventModel, ok := careerEventFromRequest(w, r, as)
		if !ok {
			return
		}
		link, _ := calendarLink(as, eventModel, email)
		http.Redirect(w, r, link, http.StatusFound)
	})
}
