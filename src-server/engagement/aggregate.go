package engagement

// Counts holds the per-type cardinalities of a scoped event log.
type Counts struct {
	Sent    int
	Opened  int
	Clicked int
}

// RateResult is what the dashboard displays for a scope.
type RateResult struct {
	OpenRatePercent  float64 `json:"openRate"`
	ClickRatePercent float64 `json:"clickRate"`
}

// Count partitions events by type. Unknown types land in none of the buckets.
func Count(events []Event) Counts {
	var c Counts
	for _, e := range events {
		switch e.Type {
		case EventTypeSent:
			c.Sent++
		case EventTypeOpened:
			c.Opened++
		case EventTypeClicked:
			c.Clicked++
		}
	}
	return c
}

// Rates converts counts into percentages of the sent baseline.
//
// No upper clamp is applied: duplicate "opened" rows can push a rate past 100
// and that anomaly is passed through as-is.
func (c Counts) Rates() RateResult {
	if c.Sent <= 0 {
		return RateResult{}
	}
	sent := float64(c.Sent)
	return RateResult{
		OpenRatePercent:  float64(c.Opened) / sent * 100,
		ClickRatePercent: float64(c.Clicked) / sent * 100,
	}
}

// Aggregate computes open and click rates over events that the caller has
// already narrowed to one Scope.
func Aggregate(events []Event) RateResult {
	return Count(events).Rates()
}
