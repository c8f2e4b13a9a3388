package utils

type Metric struct {
	DatabaseRead         chan float64
	CalendarLinkFallback chan struct{}
}

func NewMetric() *Metric {
	return &Metric{
		DatabaseRead:         make(chan float64, 64),
		CalendarLinkFallback: make(chan struct{}, 64),
	}
}

// Record a database read latency in microseconds; dropped when nobody is
// collecting.
func (m *Metric) ObserveDatabaseRead(microsec float64) {
	select {
	case m.DatabaseRead <- microsec:
	default:
	}
}

// Record that a calendar link degraded to the service root.
func (m *Metric) ObserveCalendarLinkFallback() {
	select {
	case m.CalendarLinkFallback <- struct{}{}:
	default:
	}
}
