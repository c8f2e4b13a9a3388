package model

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"careerhub/src-server/calendarlink"

	"github.com/uptrace/bun"
)

var ErrCareerEventNotFound = errors.New("career event not found")

// CareerEvent is a talk or workshop people register for. Date and Time are
// kept exactly as the organiser typed them.
type CareerEvent struct {
	bun.BaseModel `bun:"table:career_events"`

	ID            string  `bun:"id,pk"`         // required
	Title         string  `bun:"title,notnull"` // required
	SpeakerName   string  `bun:"speaker_name"`
	SpeakerRole   string  `bun:"speaker_role"`
	Location      string  `bun:"location"`
	Price         string  `bun:"price"`
	Description   string  `bun:"description"`
	Date          string  `bun:"date,notnull"` // required
	Time          string  `bun:"time,notnull"` // required
	DurationHours float64 `bun:"duration_hours,nullzero"`

	CreatedAt int64 `bun:"created_at,notnull"`
	UpdatedAt int64 `bun:"updated_at"`
}

func (e *CareerEvent) Upsert(ctx context.Context, db bun.IDB) error {
	switch {
	case e.ID == "":
		return fmt.Errorf("(*CareerEvent).Upsert: event id is blank")
	case e.Title == "":
		return fmt.Errorf("(*CareerEvent).Upsert: title is blank")
	case e.Date == "":
		return fmt.Errorf("(*CareerEvent).Upsert: date is blank")
	case e.Time == "":
		return fmt.Errorf("(*CareerEvent).Upsert: time is blank")
	}
	if e.CreatedAt == 0 {
		e.CreatedAt = time.Now().UTC().Unix()
	}

	exists, err := db.NewSelect().
		Model((*CareerEvent)(nil)).
		Where("id = ?", e.ID).
		Exists(ctx)
	if err != nil {
		return fmt.Errorf("(*CareerEvent).Upsert: %w", err)
	}

	switch exists {
	case true:
		e.UpdatedAt = time.Now().UTC().Unix()
		if _, err := db.NewUpdate().
			Model(e).
			WherePK().
			Exec(ctx); err != nil {
			return fmt.Errorf("(*CareerEvent).Upsert: %w", err)
		}
	case false:
		if _, err := db.NewInsert().
			Model(e).
			Exec(ctx); err != nil {
			return fmt.Errorf("(*CareerEvent).Upsert: %w", err)
		}
	}

	return nil
}

func GetCareerEvent(ctx context.Context, db bun.IDB, id string) (*CareerEvent, error) {
	eventModel := new(CareerEvent)
	if err := db.NewSelect().
		Model(eventModel).
		Where("id = ?", id).
		Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("GetCareerEvent: %w: %s", ErrCareerEventNotFound, id)
		}
		return nil, fmt.Errorf("GetCareerEvent: %w", err)
	}
	return eventModel, nil
}

func (e *CareerEvent) ToCalendarEvent() calendarlink.CalendarEvent {
	return calendarlink.CalendarEvent{
		Title:         e.Title,
		SpeakerName:   e.SpeakerName,
		SpeakerRole:   e.SpeakerRole,
		Location:      e.Location,
		Price:         e.Price,
		Description:   e.Description,
		Date:          e.Date,
		Time:          e.Time,
		DurationHours: e.DurationHours,
	}
}
