package deal

import "time"

// Window is the closed time window of a deal query. Start and End span the
// explicit filter range; LookbackStart anchors the trailing 12-month window
// that is always ORed into the base clause so that recently won deals surface
// even when their installment activity falls outside the explicit range.
type Window struct {
	Start         time.Time
	End           time.Time
	LookbackStart time.Time
}

// NewWindow normalizes startDate to the start of its UTC calendar day and
// endDate to the end of its UTC calendar day, and computes LookbackStart as
// the start of the calendar month 11 months before endDate's month.
func NewWindow(startDate, endDate time.Time) Window {
	start := startDate.UTC()
	end := endDate.UTC()

	dayStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)

	// time.Date normalizes out-of-range months, so January minus 11 months
	// lands in February of the previous year as expected.
	lookback := time.Date(end.Year(), end.Month()-11, 1, 0, 0, 0, 0, time.UTC)

	return Window{
		Start:         dayStart,
		End:           dayEnd,
		LookbackStart: lookback,
	}
}

// Contains reports whether t falls within [Start, End].
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// ContainsLookback reports whether t falls within [LookbackStart, End].
func (w Window) ContainsLookback(t time.Time) bool {
	return !t.Before(w.LookbackStart) && !t.After(w.End)
}
