package filter

import (
	"testing"

	"go-remote-jobs-bot/internal/models"
)

type fakePosted map[string]bool

func (f fakePosted) Contains(keys ...string) bool {
	for _, k := range keys {
		if f[k] {
			return true
		}
	}
	return false
}

func TestEligible(t *testing.T) {
	tests := []struct {
		name       string
		job        models.JobPosting
		posted     fakePosted
		wantOK     bool
		wantReason string
	}{
		{
			name: "senior title hard-rejected before anything else",
			job: models.JobPosting{
				ID:       "gh_acme_1",
				Title:    "Senior Backend Engineer",
				Location: "Berlin, Germany",
			},
			wantOK:     false,
			wantReason: "Senior/Manager",
		},
		{
			name: "intern in India accepted",
			job: models.JobPosting{
				ID:          "unstop_2",
				Title:       "Software Engineer Intern",
				Location:    "Bangalore, India",
				Description: "React, Node",
			},
			wantOK: true,
		},
		{
			name: "worldwide remote accepted",
			job: models.JobPosting{
				ID:       "remotive_3",
				Title:    "Backend Developer",
				Location: "Remote (Worldwide)",
			},
			wantOK: true,
		},
		{
			name: "already posted by plain id",
			job: models.JobPosting{
				ID:       "remotive_4",
				Title:    "Backend Developer",
				Location: "Remote (Worldwide)",
			},
			posted:     fakePosted{"remotive_4": true},
			wantOK:     false,
			wantReason: "Already Posted",
		},
		{
			name: "already posted by composite key",
			job: models.JobPosting{
				ID:       "remotive_5",
				URL:      "https://example.com/5",
				Title:    "Backend Developer",
				Location: "Remote (Worldwide)",
			},
			posted:     fakePosted{"remotive_5|https://example.com/5": true},
			wantOK:     false,
			wantReason: "Already Posted",
		},
		{
			name: "five plus years of experience rejected",
			job: models.JobPosting{
				ID:          "lever_6",
				Title:       "Backend Developer",
				Location:    "Remote (Worldwide)",
				Description: "We need 6+ years of production Go experience",
			},
			wantOK:     false,
			wantReason: "Experience",
		},
		{
			name: "ten years in title rejected",
			job: models.JobPosting{
				ID:       "lever_7",
				Title:    "Backend Developer (10+ years)",
				Location: "Remote (Worldwide)",
			},
			wantOK:     false,
			wantReason: "Experience",
		},
		{
			name: "excluded category by title",
			job: models.JobPosting{
				ID:       "gh_acme_8",
				Title:    "Sales Development Representative",
				Location: "Mumbai, India",
			},
			wantOK:     false,
			wantReason: "Excluded",
		},
		{
			name: "non-technical title rejected by whitelist",
			job: models.JobPosting{
				ID:       "gh_acme_9",
				Title:    "Operations Associate",
				Location: "Pune, India",
			},
			wantOK:     false,
			wantReason: "Non-tech",
		},
		{
			name: "regional remote without global marker rejected",
			job: models.JobPosting{
				ID:       "remotive_10",
				Title:    "Software Engineer",
				Location: "Remote (US)",
			},
			wantOK:     false,
			wantReason: "Location",
		},
		{
			name: "in-office outside India rejected",
			job: models.JobPosting{
				ID:       "wd_11",
				Title:    "Software Engineer",
				Location: "London, UK",
			},
			wantOK:     false,
			wantReason: "Location",
		},
		{
			name: "SRE title survives the sr marker",
			job: models.JobPosting{
				ID:       "gh_acme_12",
				Title:    "SRE - Platform Team",
				Location: "Hyderabad, India",
			},
			wantOK: true,
		},
		{
			name: "description mentioning marketing team still accepted",
			job: models.JobPosting{
				ID:          "remotive_13",
				Title:       "Frontend Developer",
				Location:    "Remote - work from anywhere",
				Description: "You will collaborate with the marketing team",
			},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posted := tt.posted
			if posted == nil {
				posted = fakePosted{}
			}
			f := New(DefaultRules(), posted)

			ok, reason := f.Eligible(tt.job, tt.job.ID+"|"+tt.job.URL)
			if ok != tt.wantOK {
				t.Errorf("Eligible() = %v, want %v (reason %q)", ok, tt.wantOK, reason)
			}
			if !tt.wantOK && reason != tt.wantReason {
				t.Errorf("reason = %q, want %q", reason, tt.wantReason)
			}
		})
	}
}

// A senior hard-reject holds no matter which source produced the posting.
func TestEligible_SeniorRejectIsUnconditional(t *testing.T) {
	f := New(DefaultRules(), fakePosted{})
	for _, src := range []string{"Remotive", "Greenhouse", "Lever", "Workday", "Unstop"} {
		job := models.JobPosting{
			ID:       "x_" + src,
			Title:    "Staff Software Engineer",
			Location: "Bangalore, India",
			Source:   src,
		}
		if ok, reason := f.Eligible(job, job.ID+"|"); ok || reason != "Senior/Manager" {
			t.Errorf("source %s: got ok=%v reason=%q, want senior reject", src, ok, reason)
		}
	}
}
