package metric

import (
	"context"
	"log/slog"
	"time"

	"careerhub/src-server/engagement"
	"careerhub/src-server/utils"

	"github.com/prometheus/client_golang/prometheus"
)

// register a collector, tolerating one left over from a previous Init
func register[T prometheus.Collector](name string, collector T) T {
	if err := prometheus.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing
			}
		}
		slog.Error("can't register metric", "metric", name, "error", err)
		return collector
	}
	slog.Debug("metric registered", "metric", name)
	return collector
}

func databaseEmptyRead(as *utils.AppState, tickerInterval time.Duration) {
	databaseEmptyRead := register("careerhub_database_empty_read_microsec", prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "careerhub_database_empty_read_microsec",
		Help: "The latency of an empty database read in microseconds",
	}))
	databaseEmptyRead.Set(0)
	go func() {
		gracefulShutdownCh := as.CreateGracefulShutdownChan()
		ticker := time.NewTicker(tickerInterval)
		defer ticker.Stop()
		for {
			select {
			case <-*gracefulShutdownCh:
				prometheus.Unregister(databaseEmptyRead)
				return
			case <-ticker.C:
				latency, err := database(context.Background(), as)
				if err != nil {
					slog.Error("can't get database latency", "error", err)
					continue
				}
				databaseEmptyRead.Set(float64(latency.Microseconds()))
			}
		}
	}()
}

func databaseRead(as *utils.AppState, clearTickerInterval time.Duration) {
	databaseRead := register("careerhub_database_read_microsec", prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "careerhub_database_read_microsec",
		Help: "The latency of the last request-path database read in microseconds",
	}))
	databaseRead.Set(0)
	go func() {
		gracefulShutdownCh := as.CreateGracefulShutdownChan()
		clearTicker := time.NewTicker(clearTickerInterval)
		defer clearTicker.Stop()
		for {
			select {
			case <-*gracefulShutdownCh:
				prometheus.Unregister(databaseRead)
				return
			case latency := <-as.MetricChans.DatabaseRead:
				databaseRead.Set(latency)
				clearTicker.Reset(clearTickerInterval)
			case <-clearTicker.C:
				databaseRead.Set(0)
			}
		}
	}()
}

func calendarLinkFallback(as *utils.AppState) {
	calendarLinkFallback := register("careerhub_calendar_link_fallback_total", prometheus.NewCounter(prometheus.CounterOpts{
		Name: "careerhub_calendar_link_fallback_total",
		Help: "Calendar links that degraded to the calendar service root",
	}))
	go func() {
		gracefulShutdownCh := as.CreateGracefulShutdownChan()
		for {
			select {
			case <-*gracefulShutdownCh:
				prometheus.Unregister(calendarLinkFallback)
				return
			case <-as.MetricChans.CalendarLinkFallback:
				calendarLinkFallback.Inc()
			}
		}
	}()
}

// periodically aggregate the dashboard's default scope
func engagementSnapshot(as *utils.AppState, tickerInterval time.Duration) {
	gauges := register("careerhub_engagement", prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "careerhub_engagement",
		Help: "Engagement figures over the most recently sent campaigns",
	}, []string{"figure"}))

	scope, err := engagement.RecentSent(as.Config.GetRecentCampaignLimit())
	if err != nil {
		slog.Error("can't build engagement scope", "error", err)
		return
	}

	collect := func() {
		snapshot, err := TakeSnapshot(context.Background(), as, scope)
		if err != nil {
			slog.Error("can't take engagement snapshot", "error", err)
			return
		}
		gauges.WithLabelValues("open_rate_percent").Set(snapshot.Rates.OpenRatePercent)
		gauges.WithLabelValues("click_rate_percent").Set(snapshot.Rates.ClickRatePercent)
		gauges.WithLabelValues("subscribers").Set(float64(snapshot.TotalSubscribers))
		gauges.WithLabelValues("campaigns_sent").Set(float64(snapshot.TotalCampaigns))
	}

	go func() {
		gracefulShutdownCh := as.CreateGracefulShutdownChan()
		ticker := time.NewTicker(tickerInterval)
		defer ticker.Stop()
		collect()
		for {
			select {
			case <-*gracefulShutdownCh:
				prometheus.Unregister(gauges)
				return
			case <-ticker.C:
				collect()
			}
		}
	}()
}

func Init(as *utils.AppState) {
	tickerInterval := as.Config.GetMetricCollectionInterval()
	clearTickerInterval := as.Config.GetMetricCollectionInterval() * 2

	databaseEmptyRead(as, tickerInterval)
	databaseRead(as, clearTickerInterval)
	calendarLinkFallback(as)
	engagementSnapshot(as, tickerInterval)
}
