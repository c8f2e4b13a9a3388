package metric_test

import (
	"context"
	"database/sql"
	"testing"

	"careerhub/src-server/engagement"
	"careerhub/src-server/metric"
	"careerhub/src-server/model"
	"careerhub/src-server/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func TestTakeSnapshot(t *testing.T) {
	ctx := context.Background()
	rawDB, err := sql.Open(sqliteshim.ShimName, ":memory:")
	require.NoError(t, err)
	rawDB.SetMaxOpenConns(1)
	as := utils.NewAppStateFromDB(utils.NewConfig(), rawDB)
	t.Cleanup(as.GracefulShutdown)
	require.NoError(t, model.CreateSchema(ctx, as.BunDB))

	campaignModel := model.Campaign{ID: "c1", Title: "June digest", Status: model.CampaignStatusSent, SentAtUnixUTC: 1}
	require.NoError(t, campaignModel.Upsert(ctx, as.BunDB))
	for _, eventType := range []engagement.EventType{"sent", "sent", "sent", "sent", "opened", "clicked", "bounced"} {
		eventModel := model.EngagementEvent{CampaignID: "c1", EventType: eventType}
		require.NoError(t, eventModel.Insert(ctx, as.BunDB))
	}
	subscriberModel := model.Subscriber{ID: "s1", Email: "a@b.co", IsActive: true}
	require.NoError(t, subscriberModel.Insert(ctx, as.BunDB))

	scope, err := engagement.RecentSent(5)
	require.NoError(t, err)
	snapshot, err := metric.TakeSnapshot(ctx, as, scope)
	require.NoError(t, err)
	assert.Equal(t, 1, snapshot.TotalSubscribers)
	assert.Equal(t, 1, snapshot.TotalCampaigns)
	assert.Equal(t, engagement.Counts{Sent: 4, Opened: 1, Clicked: 1}, snapshot.Counts)
	assert.Equal(t, engagement.RateResult{OpenRatePercent: 25, ClickRatePercent: 25}, snapshot.Rates)

	empty, err := metric.TakeSnapshot(ctx, as, engagement.Single("nope"))
	require.NoError(t, err)
	assert.Equal(t, engagement.RateResult{}, empty.Rates)
}
