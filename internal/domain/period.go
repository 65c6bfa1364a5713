package domain

import "time"

// Period is a closed reporting interval. End is the last instant of its final day.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the period, bounds included
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// Equal reports whether both periods cover the same instants
func (p Period) Equal(other Period) bool {
	return p.Start.Equal(other.Start) && p.End.Equal(other.End)
}

// PeriodOption is a named, precomputed reporting window offered to the dashboard
type PeriodOption struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Period Period `json:"period"`
}

// PeriodState is the snapshot returned by the periods endpoints
type PeriodState struct {
	Options     []PeriodOption `json:"options"`
	SelectedID  string         `json:"selected_id"`
	Selected    Period         `json:"selected"`
	LastUpdated time.Time      `json:"last_updated"`
}

type SelectPeriodRequest struct {
	ID string `json:"id"`
}
