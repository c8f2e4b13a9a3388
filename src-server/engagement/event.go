package engagement

import (
	"errors"
	"fmt"
)

type EventType string

const (
	EventTypeSent    EventType = "sent"
	EventTypeOpened  EventType = "opened"
	EventTypeClicked EventType = "clicked"
)

// Event is one observed interaction with a campaign.
type Event struct {
	CampaignID string
	Type       EventType
}

// DefaultRecentLimit is the number of campaigns the dashboard looks back over.
const DefaultRecentLimit = 5

var ErrInvalidScopeLimit = errors.New("scope limit must be a positive integer")

type ScopeKind int

const (
	ScopeSingle ScopeKind = iota
	ScopeRecentSent
)

// Scope selects which campaigns' events feed the aggregation.
//
// A RecentSent scope means the `limit` most recently sent campaigns, ordered
// by send timestamp descending; ties are broken by campaign id ascending.
type Scope struct {
	kind       ScopeKind
	campaignID string
	limit      int
}

func Single(campaignID string) Scope {
	return Scope{kind: ScopeSingle, campaignID: campaignID}
}

func RecentSent(limit int) (Scope, error) {
	if limit <= 0 {
		return Scope{}, fmt.Errorf("RecentSent: %w, got %d", ErrInvalidScopeLimit, limit)
	}
	return Scope{kind: ScopeRecentSent, limit: limit}, nil
}

func (s Scope) Kind() ScopeKind { return s.kind }

func (s Scope) CampaignID() string { return s.campaignID }

func (s Scope) Limit() int { return s.limit }

func (s Scope) String() string {
	switch s.kind {
	case ScopeSingle:
		return "campaign:" + s.campaignID
	default:
		return fmt.Sprintf("recent:%d", s.limit)
	}
}
