package metric

import (
	"context"
	"fmt"

	"careerhub/src-server/engagement"
	"careerhub/src-server/model"
	"careerhub/src-server/utils"
)

// Snapshot is what the dashboard shows for one scope.
type Snapshot struct {
	TotalSubscribers int                   `json:"totalSubscribers"`
	TotalCampaigns   int                   `json:"totalCampaigns"`
	Counts           engagement.Counts     `json:"-"`
	Rates            engagement.RateResult `json:"rates"`
}

// TakeSnapshot loads the companion counts and the scoped event log, then
// aggregates it.
func TakeSnapshot(ctx context.Context, as *utils.AppState, scope engagement.Scope) (Snapshot, error) {
	var snapshot Snapshot
	var err error

	if snapshot.TotalSubscribers, err = model.CountActiveSubscribers(ctx, as.BunDB); err != nil {
		return Snapshot{}, fmt.Errorf("TakeSnapshot: %w", err)
	}
	if snapshot.TotalCampaigns, err = model.CountSentCampaigns(ctx, as.BunDB); err != nil {
		return Snapshot{}, fmt.Errorf("TakeSnapshot: %w", err)
	}
	events, err := model.SelectEngagementEvents(ctx, as.BunDB, scope)
	if err != nil {
		return Snapshot{}, fmt.Errorf("TakeSnapshot: %w", err)
	}
	snapshot.Counts = engagement.Count(events)
	snapshot.Rates = snapshot.Counts.Rates()
	return snapshot, nil
}
