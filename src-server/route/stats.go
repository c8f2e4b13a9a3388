package route

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"careerhub/src-server/engagement"
	"careerhub/src-server/metric"
	"careerhub/src-server/utils"

	"github.com/go-chi/chi/v5"
)

func Stats(router chi.Router, as *utils.AppState) {
	type StatsRespBody struct {
		Scope            string  `json:"scope"`
		TotalSubscribers int     `json:"totalSubscribers"`
		TotalCampaigns   int     `json:"totalCampaigns"`
		OpenRate         float64 `json:"openRate"`
		ClickRate        float64 `json:"clickRate"`
	}

	// engagement figures for one campaign (?campaign_id=) or the most
	// recently sent ones (?limit=, default RECENT_CAMPAIGN_LIMIT)
	router.Get("/api/stats", func(w http.ResponseWriter, r *http.Request) {
		scope, err := func() (engagement.Scope, error) {
			if campaignID := strings.TrimSpace(r.URL.Query().Get("campaign_id")); campaignID != "" {
				return engagement.Single(campaignID), nil
			}
			limit := as.Config.GetRecentCampaignLimit()
			if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
				var err error
				if limit, err = strconv.Atoi(limitStr); err != nil {
					return engagement.Scope{}, engagement.ErrInvalidScopeLimit
				}
			}
			return engagement.RecentSent(limit)
		}()
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}

		startTimer := time.Now()
		snapshot, err := metric.TakeSnapshot(r.Context(), as, scope)
		if err != nil {
			slog.Error("can't take engagement snapshot", "scope", scope.String(), "error", err)
			writeError(w, http.StatusInternalServerError, "can't load engagement stats")
			return
		}
		as.MetricChans.ObserveDatabaseRead(float64(time.Since(startTimer).Microseconds()))

		writeJSON(w, http.StatusOK, StatsRespBody{
			Scope:            scope.String(),
			TotalSubscribers: snapshot.TotalSubscribers,
			TotalCampaigns:   snapshot.TotalCampaigns,
			OpenRate:         snapshot.Rates.OpenRatePercent,
			ClickRate:        snapshot.Rates.ClickRatePercent,
		})
	})
}
