package models

// JobPosting is the canonical record every source adapter produces.
// ID is stable across runs for the same provider-native posting, which is
// what makes deduplication work.
type JobPosting struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Salary      string `json:"salary,omitempty"`
	URL         string `json:"url"`
	Description string `json:"description"`
	PublishedAt string `json:"published_at"`
	Source      string `json:"source"`
}

// ScoredPosting carries the per-cycle priority. Never persisted.
type ScoredPosting struct {
	JobPosting
	Priority int `json:"priority"`
}
