// Package score computes the per-cycle priority of a posting from weighted
// keyword signals. The score only orders and thresholds a batch; it is
// recomputed every cycle and never persisted.
package score

import (
	"strings"

	"go-remote-jobs-bot/internal/models"
)

const (
	baseScore        = 50
	internshipBoost  = 15
	fullTimeBoost    = 10
	remoteBoost      = 10
	seniorityPenalty = 40
	locationPenalty  = 30
	languagePenalty  = 35
	techStackBonus   = 7
	techStackCap     = 25
)

// Scorer scores postings against its keyword tables. Company tier bonuses
// are tunable, the rest are fixed weights.
type Scorer struct {
	tables       Tables
	topTierBonus int
	midTierBonus int
}

// New builds a Scorer. Tier bonuses are deliberately small (defaults 4/2)
// so big names don't crowd out batch diversity.
func New(tables Tables, topTierBonus, midTierBonus int) *Scorer {
	return &Scorer{
		tables:       tables,
		topTierBonus: topTierBonus,
		midTierBonus: midTierBonus,
	}
}

// Score is a pure function of the posting's fields, clamped at zero.
func (s *Scorer) Score(job models.JobPosting) int {
	titleLower := strings.ToLower(job.Title)
	descLower := strings.ToLower(job.Description)
	combined := titleLower + " " + descLower

	score := baseScore

	// Strict internship check on the title only, so "junior engineer"
	// descriptions mentioning internships don't flip the category.
	isInternship := strings.Contains(titleLower, "intern")
	if isInternship {
		score += internshipBoost
	} else {
		score += fullTimeBoost
	}

	if containsAny(combined, s.tables.GlobalRemote) ||
		strings.Contains(strings.ToLower(job.Location), "remote") {
		score += remoteBoost
	}

	// Seniority penalty fires once even when several markers match
	for _, kw := range s.tables.SeniorityPenalty {
		if strings.Contains(combined, kw) {
			score -= seniorityPenalty
			break
		}
	}

	if containsAny(combined, s.tables.LocationRestricted) {
		score -= locationPenalty
	}

	if containsAny(combined, s.tables.LanguagePatterns) {
		score -= languagePenalty
	}

	// Popular tech stack mentions, capped
	techMatches := 0
	for _, tech := range s.tables.TechStack {
		if strings.Contains(combined, tech) {
			techMatches++
		}
	}
	bonus := techMatches * techStackBonus
	if bonus > techStackCap {
		bonus = techStackCap
	}
	score += bonus

	// Company tier bonus
	companyLower := strings.ToLower(job.Company)
	if containsAny(companyLower, s.tables.TopTierCompanies) {
		score += s.topTierBonus
	} else if containsAny(companyLower, s.tables.MidTierCompanies) {
		score += s.midTierBonus
	}

	if score < 0 {
		return 0
	}
	return score
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
