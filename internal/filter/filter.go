package filter

import (
	"regexp"
	"strings"

	"go-remote-jobs-bot/internal/models"
)

// Matches "5 years", "6+ years", "10+ years", any two-digit years figure.
var experienceRegex = regexp.MustCompile(`(?i)\b([5-9]|\d{2,})\+?\s*years?\b`)

// PostedChecker is the read side of the dedup store.
type PostedChecker interface {
	Contains(keys ...string) bool
}

// Filter applies the hard accept/reject rules to one posting.
type Filter struct {
	rules  Rules
	posted PostedChecker
}

// New builds a Filter over the given rule tables and posted-jobs store.
func New(rules Rules, posted PostedChecker) *Filter {
	return &Filter{rules: rules, posted: posted}
}

// Eligible evaluates the rules in order and short-circuits on the first
// failure. The returned reason is empty when the posting is accepted.
func (f *Filter) Eligible(job models.JobPosting, compositeKey string) (bool, string) {
	titleLower := strings.ToLower(job.Title)
	descLower := strings.ToLower(job.Description)
	companyLower := strings.ToLower(job.Company)
	locationLower := strings.ToLower(job.Location)

	// 1. Skip if already posted (both plain ID and composite key)
	if f.posted.Contains(job.ID, compositeKey) {
		return false, "Already Posted"
	}

	// 2. Hard reject senior/management roles, title only
	for _, kw := range f.rules.SeniorityMarkers {
		if strings.Contains(titleLower, kw) {
			return false, "Senior/Manager"
		}
	}

	// 3. Hard reject 5+ years of experience
	if experienceRegex.MatchString(titleLower) || experienceRegex.MatchString(descLower) {
		return false, "Experience"
	}

	// 4. Excluded categories, title+company only. Description is left out
	// on purpose: "work with the marketing team" is not a marketing role.
	excludeText := titleLower + " " + companyLower
	for _, kw := range f.rules.ExcludeKeywords {
		if strings.Contains(excludeText, kw) {
			return false, "Excluded"
		}
	}

	// 5. Must match a technical keyword in the title. Whitelist: absence
	// is rejection.
	if !containsAny(titleLower, f.rules.TechnicalKeywords) {
		return false, "Non-tech"
	}

	// 6. Strict location: India, or remote AND globally remote
	isIndia := containsAny(locationLower, f.rules.IndiaLocations)
	remoteCheckText := titleLower + " " + descLower + " " + locationLower
	isGlobalRemote := containsAny(remoteCheckText, f.rules.GlobalRemoteKeywords)
	isRemote := strings.Contains(locationLower, "remote")

	if isIndia || (isRemote && isGlobalRemote) {
		return true, ""
	}
	return false, "Location"
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
