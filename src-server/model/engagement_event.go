package model

import (
	"context"
	"fmt"
	"time"

	"careerhub/src-server/engagement"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type EngagementEvent struct {
	bun.BaseModel `bun:"table:engagement_events"`

	ID               string               `bun:"id,pk"`                // required
	CampaignID       string               `bun:"campaign_id,notnull"`  // required
	EventType        engagement.EventType `bun:"event_type,notnull"`   // required
	SubscriberID     string               `bun:"subscriber_id"`
	CreatedAtUnixUTC int64                `bun:"created_at,notnull"`

	Campaign *Campaign `bun:"rel:belongs-to,join:campaign_id=id"`
}

// Insert records an event. Events are immutable once recorded, so there is
// no update path.
func (e *EngagementEvent) Insert(ctx context.Context, db bun.IDB) error {
	switch {
	case e.CampaignID == "":
		return fmt.Errorf("(*EngagementEvent).Insert: campaign id is blank")
	case e.EventType == "":
		return fmt.Errorf("(*EngagementEvent).Insert: event type is blank")
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAtUnixUTC == 0 {
		e.CreatedAtUnixUTC = time.Now().UTC().Unix()
	}
	if _, err := db.NewInsert().
		Model(e).
		Exec(ctx); err != nil {
		return fmt.Errorf("(*EngagementEvent).Insert: %w", err)
	}
	return nil
}

func (e *EngagementEvent) ToEngagement() engagement.Event {
	return engagement.Event{
		CampaignID: e.CampaignID,
		Type:       e.EventType,
	}
}

// SelectEngagementEvents loads every event that falls within scope.
func SelectEngagementEvents(ctx context.Context, db bun.IDB, scope engagement.Scope) ([]engagement.Event, error) {
	eventModels := make([]EngagementEvent, 0)
	query := db.NewSelect().
		Model(&eventModels).
		Column("id", "campaign_id", "event_type")

	switch scope.Kind() {
	case engagement.ScopeSingle:
		query = query.Where("campaign_id = ?", scope.CampaignID())
	case engagement.ScopeRecentSent:
		if scope.Limit() <= 0 {
			return nil, fmt.Errorf("SelectEngagementEvents: %w", engagement.ErrInvalidScopeLimit)
		}
		query = query.Where("campaign_id IN (?)", recentSentCampaignsQuery(db, scope.Limit()))
	default:
		return nil, fmt.Errorf("SelectEngagementEvents: unknown scope %s", scope)
	}

	if err := query.OrderExpr("id ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("SelectEngagementEvents: %w", err)
	}

	events := make([]engagement.Event, len(eventModels))
	for i := range eventModels {
		events[i] = eventModels[i].ToEngagement()
	}
	return events, nil
}
