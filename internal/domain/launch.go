package domain

// LaunchEvent is a scheduled launch.
type LaunchEvent struct {
	ID       int    `json:"id"`
	Site     string `json:"site"`
	Date     string `json:"date"` // YYYY-MM-DD
	Time     string `json:"time"` // HH:MM
	Status   string `json:"status"`
	Mission  string `json:"mission,omitempty"`
	Rocket   string `json:"rocket,omitempty"`
	Customer string `json:"customer,omitempty"`
}

// LaunchFilter selects launch events. Empty fields are ignored; the rest
// must all match.
type LaunchFilter struct {
	Site      string
	StartDate string // inclusive, ISO date
	EndDate   string // inclusive, ISO date
	Status    string
}

// Matches reports whether e satisfies every set field of f. Dates compare
// lexicographically, which orders ISO dates correctly.
func (f LaunchFilter) Matches(e LaunchEvent) bool {
	if f.Site != "" && e.Site != f.Site {
		return false
	}
	if f.Status != "" && e.Status != f.Status {
		return false
	}
	if f.StartDate != "" && e.Date < f.StartDate {
		return false
	}
	if f.EndDate != "" && e.Date > f.EndDate {
		return false
	}
	return true
}

// LaunchDirectory is the immutable launch schedule.
type LaunchDirectory struct {
	events []LaunchEvent
}

// NewLaunchDirectory copies events into a directory.
func NewLaunchDirectory(events []LaunchEvent) *LaunchDirectory {
	d := &LaunchDirectory{events: make([]LaunchEvent, len(events))}
	copy(d.events, events)
	return d
}

// List returns the events matching f in schedule order. The result is never nil.
func (d *LaunchDirectory) List(f LaunchFilter) []LaunchEvent {
	out := make([]LaunchEvent, 0, len(d.events))
	for _, e := range d.events {
		if f.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}
