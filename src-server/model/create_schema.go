package model

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
)

func CreateSchema(ctx context.Context, db *bun.DB) error {
	if err := db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		for _, model := range []interface{}{
			(*Campaign)(nil),
			(*EngagementEvent)(nil),
			(*Subscriber)(nil),
			(*CareerEvent)(nil),
		} {
			if _, err := tx.
				NewCreateTable().
				Model(model).
				IfNotExists().
				Exec(ctx); err != nil {
				return err
			}
		}
		if _, err := tx.
			NewCreateIndex().
			Model((*EngagementEvent)(nil)).
			Index("engagement_events_campaign_id_idx").
			Column("campaign_id").
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}
		if _, err := tx.
			NewCreateIndex().
			Model((*Campaign)(nil)).
			Index("campaigns_status_sent_at_idx").
			Column("status", "sent_at").
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}
		return nil
	}); err != nil {
		return fmt.Errorf("CreateSchema: %w", err)
	}

	return nil
}
