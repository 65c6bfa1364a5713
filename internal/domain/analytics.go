package domain

import "time"

// BreakdownItem is one bucket of a workforce distribution. Percentage is rounded to an integer.
type BreakdownItem struct {
	Name       string `json:"name"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// WorkforceAnalytics is the distribution of the resources active in a period
type WorkforceAnalytics struct {
	Period       *Period         `json:"period,omitempty"`
	Total        int             `json:"total"`
	Departments  []BreakdownItem `json:"departments"`
	Designations []BreakdownItem `json:"designations"`
	Locations    []BreakdownItem `json:"locations"`
	Skills       []BreakdownItem `json:"skills"`
}

// UpcomingRelease is a resource whose project ends soon and who will need a new assignment
type UpcomingRelease struct {
	ResourceID  int       `json:"resource_id"`
	FullName    string    `json:"full_name"`
	ProjectName string    `json:"project_name"`
	ReleaseDate time.Time `json:"release_date"`
	Skills      []string  `json:"skills"`
}
