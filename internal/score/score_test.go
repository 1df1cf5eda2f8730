package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-remote-jobs-bot/internal/models"
)

func newTestScorer() *Scorer {
	return New(DefaultTables(), 4, 2)
}

func TestScore_InternWithTechStack(t *testing.T) {
	job := models.JobPosting{
		Title:       "Software Engineer Intern",
		Location:    "Bangalore, India",
		Description: "React, Node",
	}

	// 50 base + 15 intern + 7*2 tech
	assert.Equal(t, 79, newTestScorer().Score(job))
}

func TestScore_RemoteFullTime(t *testing.T) {
	job := models.JobPosting{
		Title:    "Backend Developer",
		Location: "Remote (Worldwide)",
	}

	// 50 base + 10 full-time + 10 remote
	assert.Equal(t, 70, newTestScorer().Score(job))
}

func TestScore_Deterministic(t *testing.T) {
	scorer := newTestScorer()
	job := models.JobPosting{
		Title:       "Flutter Developer",
		Company:     "Figma",
		Location:    "Remote, worldwide",
		Description: "Flutter, Kotlin, AWS, 2 years experience",
	}

	first := scorer.Score(job)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, scorer.Score(job))
	}
}

func TestScore_NeverNegative(t *testing.T) {
	job := models.JobPosting{
		Title:       "Senior Architect (m/w/d)",
		Location:    "Berlin, Germany",
		Description: "8+ years required, must be based in Germany",
	}

	assert.Equal(t, 0, newTestScorer().Score(job))
}

func TestScore_SeniorityPenaltyAppliedOnce(t *testing.T) {
	scorer := newTestScorer()
	one := scorer.Score(models.JobPosting{Title: "Senior Developer"})
	many := scorer.Score(models.JobPosting{Title: "Senior Staff Developer", Description: "seasoned expert"})

	assert.Equal(t, one, many)
}

func TestScore_TechStackBonusCapped(t *testing.T) {
	job := models.JobPosting{
		Title:       "Developer",
		Description: "react node python javascript typescript aws docker kubernetes golang redis",
	}

	// 50 base + 10 full-time + capped 25 tech
	assert.Equal(t, 85, newTestScorer().Score(job))
}

func TestScore_CompanyTierBonus(t *testing.T) {
	scorer := newTestScorer()
	base := scorer.Score(models.JobPosting{Title: "Developer", Company: "Acme"})

	assert.Equal(t, base+4, scorer.Score(models.JobPosting{Title: "Developer", Company: "Stripe"}))
	assert.Equal(t, base+2, scorer.Score(models.JobPosting{Title: "Developer", Company: "Bosch"}))
}

func TestScore_LanguageAndLocationPenalties(t *testing.T) {
	scorer := newTestScorer()
	base := scorer.Score(models.JobPosting{Title: "Developer"})

	assert.Equal(t, base-35, scorer.Score(models.JobPosting{Title: "Developer (m/w/d)"}))
	assert.Equal(t, base-30, scorer.Score(models.JobPosting{Title: "Developer", Description: "eu only"}))
}
