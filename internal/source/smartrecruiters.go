package source

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	"go-remote-jobs-bot/internal/models"
)

const smartRecruitersBaseURL = "https://api.smartrecruiters.com/v1/companies"

// SmartRecruiters fetches each roster company's public postings list.
// The list API carries no description body, so the title stands in for
// keyword checks downstream.
type SmartRecruiters struct {
	baseURL   string
	companies []smartRecruitersCompany
	client    *http.Client
}

func NewSmartRecruiters() *SmartRecruiters {
	return &SmartRecruiters{
		baseURL:   smartRecruitersBaseURL,
		companies: smartRecruitersCompanies,
		client:    newClient(),
	}
}

func (s *SmartRecruiters) Name() string { return "SmartRecruiters" }

type smartRecruitersResponse struct {
	Content []smartRecruitersJob `json:"content"`
}

type smartRecruitersJob struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ReleasedDate string `json:"releasedDate"`
	Location     struct {
		City    string `json:"city"`
		Region  string `json:"region"`
		Country string `json:"country"`
		Remote  bool   `json:"remote"`
	} `json:"location"`
}

func (s *SmartRecruiters) Fetch(ctx context.Context) []models.JobPosting {
	log.Println("🧲 Fetching SmartRecruiters jobs...")
	var all []models.JobPosting

	for _, company := range s.companies {
		var resp smartRecruitersResponse
		url := fmt.Sprintf("%s/%s/postings?limit=100", s.baseURL, company.ID)
		if err := getJSON(ctx, s.client, url, nil, &resp); err != nil {
			log.Printf("  - [SmartRecruiters] Error fetching %s: %v", company.Name, err)
			continue
		}

		for _, j := range resp.Content {
			parts := make([]string, 0, 3)
			for _, p := range []string{j.Location.City, j.Location.Region, j.Location.Country} {
				if p != "" {
					parts = append(parts, p)
				}
			}
			location := strings.Join(parts, ", ")
			if location == "" {
				location = "Unknown"
			}
			if j.Location.Remote {
				location += " (Remote)"
			}

			all = append(all, models.JobPosting{
				ID:          "smartrecruiters-" + j.ID,
				Title:       j.Name,
				Company:     company.Name,
				Location:    location,
				Type:        "Full-time",
				URL:         fmt.Sprintf("https://jobs.smartrecruiters.com/%s/%s", company.ID, j.ID),
				Description: j.Name,
				PublishedAt: j.ReleasedDate,
				Source:      "SmartRecruiters",
			})
		}
	}
	return all
}
