package model

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/uptrace/bun"
)

type Subscriber struct {
	bun.BaseModel `bun:"table:subscribers"`

	ID               string `bun:"id,pk"`               // required
	Email            string `bun:"email,notnull,unique"` // required
	IsActive         bool   `bun:"is_active,notnull"`
	CreatedAtUnixUTC int64  `bun:"created_at,notnull"`
}

func (s *Subscriber) Insert(ctx context.Context, db bun.IDB) error {
	s.Email = strings.ToLower(strings.TrimSpace(s.Email))
	switch {
	case s.ID == "":
		return fmt.Errorf("(*Subscriber).Insert: subscriber id is blank")
	case s.Email == "":
		return fmt.Errorf("(*Subscriber).Insert: email is blank")
	}
	if s.CreatedAtUnixUTC == 0 {
		s.CreatedAtUnixUTC = time.Now().UTC().Unix()
	}
	if _, err := db.NewInsert().
		Model(s).
		Exec(ctx); err != nil {
		return fmt.Errorf("(*Subscriber).Insert: %w", err)
	}
	return nil
}

func CountActiveSubscribers(ctx context.Context, db bun.IDB) (int, error) {
	count, err := db.NewSelect().
		Model((*Subscriber)(nil)).
		Where("is_active = ?", true).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("CountActiveSubscribers: %w", err)
	}
	return count, nil
}
