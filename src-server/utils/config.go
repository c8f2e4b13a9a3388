package utils

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	port string

	timezone string
	location *time.Location

	databasePath string

	metricCollectionInterval time.Duration
	recentCampaignLimit      int

	calendarFooter string
}

func NewConfig() *Config {
	return &Config{
		port: func() string {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}
			slog.Debug("env", "PORT", port)
			return port
		}(),

		timezone: func() string {
			timezoneStr := os.Getenv("TIMEZONE")
			if timezoneStr == "" {
				timezoneStr = "Africa/Nairobi"
			}
			slog.Debug("env", "TIMEZONE", timezoneStr)
			return timezoneStr
		}(),
		location: func() *time.Location {
			timezoneStr := os.Getenv("TIMEZONE")
			var loc *time.Location
			var err error
			switch timezoneStr {
			case "":
				loc, err = time.LoadLocation("Africa/Nairobi")
				if err != nil {
					slog.Warn("can't load Africa/Nairobi, using a fixed UTC+3 zone", "error", err)
					loc = time.FixedZone("EAT", 3*60*60)
				}
			case "UTC":
				slog.Warn("TIMEZONE is set to UTC, using UTC timezone", "timezone", time.UTC)
				loc = time.UTC
			default:
				loc, err = time.LoadLocation(timezoneStr)
				if err != nil {
					slog.Error("invalid timezone", "timezone", timezoneStr, "error", err)
					os.Exit(1)
				}
			}
			return loc
		}(),

		databasePath: func() string {
			databasePath := os.Getenv("DATABASE_PATH")
			if databasePath == "" {
				databasePath = "./sqlite.db"
			}
			slog.Debug("env", "DATABASE_PATH", databasePath)
			return databasePath
		}(),

		metricCollectionInterval: func() time.Duration {
			interval := os.Getenv("METRIC_COLLECTION_INTERVAL")
			if interval == "" {
				interval = "15s"
			}
			duration, err := time.ParseDuration(interval)
			if err != nil || duration <= 0 {
				slog.Error("invalid METRIC_COLLECTION_INTERVAL", "value", interval, "error", err)
				os.Exit(1)
			}
			slog.Debug("env", "METRIC_COLLECTION_INTERVAL", duration)
			return duration
		}(),
		recentCampaignLimit: func() int {
			limitStr := os.Getenv("RECENT_CAMPAIGN_LIMIT")
			if limitStr == "" {
				limitStr = "5"
			}
			limit, err := strconv.Atoi(limitStr)
			if err != nil || limit <= 0 {
				slog.Error("RECENT_CAMPAIGN_LIMIT must be a positive integer", "value", limitStr, "error", err)
				os.Exit(1)
			}
			slog.Debug("env", "RECENT_CAMPAIGN_LIMIT", limit)
			return limit
		}(),

		calendarFooter: func() string {
			footer := strings.TrimSpace(os.Getenv("CALENDAR_FOOTER"))
			if footer != "" {
				slog.Debug("env", "CALENDAR_FOOTER", footer)
			}
			return footer
		}(),
	}
}

// Get PORT env, default to 8080
func (c *Config) GetPort() string {
	return c.port
}

// Get TIMEZONE env, default to Africa/Nairobi
func (c *Config) GetTimezone() string {
	return c.timezone
}

// Get the loaded TIMEZONE
func (c *Config) GetLocation() *time.Location {
	return c.location
}

// Get DATABASE_PATH env, default to ./sqlite.db
func (c *Config) GetDatabasePath() string {
	return c.databasePath
}

// Get METRIC_COLLECTION_INTERVAL env, default to 15s
func (c *Config) GetMetricCollectionInterval() time.Duration {
	return c.metricCollectionInterval
}

// Get RECENT_CAMPAIGN_LIMIT env, default to 5
func (c *Config) GetRecentCampaignLimit() int {
	return c.recentCampaignLimit
}

// Get CALENDAR_FOOTER env; empty means the built-in footer
func (c *Config) GetCalendarFooter() string {
	return c.calendarFooter
}
