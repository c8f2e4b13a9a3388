package model

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

const (
	CampaignStatusDraft = "draft"
	CampaignStatusSent  = "sent"
)

type Campaign struct {
	bun.BaseModel `bun:"table:campaigns"`

	ID            string `bun:"id,pk"`           // required
	Title         string `bun:"title,notnull"`   // required
	Status        string `bun:"status,notnull"`  // required
	SentAtUnixUTC int64  `bun:"sent_at,notnull"` // 0 until sent

	CreatedAt int64 `bun:"created_at,notnull"`
	UpdatedAt int64 `bun:"updated_at"`

	Events []*EngagementEvent `bun:"rel:has-many,join:id=campaign_id"`
}

func (c *Campaign) Upsert(ctx context.Context, db bun.IDB) error {
	switch {
	case c.ID == "":
		return fmt.Errorf("(*Campaign).Upsert: campaign id is blank")
	case c.Title == "":
		return fmt.Errorf("(*Campaign).Upsert: title is blank")
	case c.Status != CampaignStatusDraft && c.Status != CampaignStatusSent:
		return fmt.Errorf("(*Campaign).Upsert: unknown status %q", c.Status)
	case c.Status == CampaignStatusSent && c.SentAtUnixUTC == 0:
		return fmt.Errorf("(*Campaign).Upsert: sent campaign has no send date")
	}
	if c.CreatedAt == 0 {
		c.CreatedAt = time.Now().UTC().Unix()
	}

	exists, err := db.NewSelect().
		Model((*Campaign)(nil)).
		Where("id = ?", c.ID).
		Exists(ctx)
	if err != nil {
		return fmt.Errorf("(*Campaign).Upsert: %w", err)
	}

	switch exists {
	case true:
		c.UpdatedAt = time.Now().UTC().Unix()
		if _, err := db.NewUpdate().
			Model(c).
			WherePK().
			Exec(ctx); err != nil {
			return fmt.Errorf("(*Campaign).Upsert: %w", err)
		}
	case false:
		if _, err := db.NewInsert().
			Model(c).
			Exec(ctx); err != nil {
			return fmt.Errorf("(*Campaign).Upsert: %w", err)
		}
	}

	return nil
}

// the `limit` most recently sent campaigns; equal send dates fall back to id
// ascending so the selection is stable
func recentSentCampaignsQuery(db bun.IDB, limit int) *bun.SelectQuery {
	return db.NewSelect().
		Model((*Campaign)(nil)).
		Column("id").
		Where("status = ?", CampaignStatusSent).
		OrderExpr("sent_at DESC, id ASC").
		Limit(limit)
}

// RecentSentCampaignIDs lists the ids of the `limit` most recently sent
// campaigns, newest first.
func RecentSentCampaignIDs(ctx context.Context, db bun.IDB, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("RecentSentCampaignIDs: limit must be positive, got %d", limit)
	}
	ids := make([]string, 0, limit)
	if err := recentSentCampaignsQuery(db, limit).Scan(ctx, &ids); err != nil {
		return nil, fmt.Errorf("RecentSentCampaignIDs: %w", err)
	}
	return ids, nil
}

func CountSentCampaigns(ctx context.Context, db bun.IDB) (int, error) {
	count, err := db.NewSelect().
		Model((*Campaign)(nil)).
		Where("status = ?", CampaignStatusSent).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("CountSentCampaigns: %w", err)
	}
	return count, nil
}
