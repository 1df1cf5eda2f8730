package source

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"go-remote-jobs-bot/internal/models"
)

const remotiveBaseURL = "https://remotive.com/api/remote-jobs"

// Remotive fetches from the Remotive public API. Category filtering
// happens API-side so only software-dev postings come back.
type Remotive struct {
	baseURL string
	client  *http.Client
}

func NewRemotive() *Remotive {
	return &Remotive{baseURL: remotiveBaseURL, client: newClient()}
}

func (r *Remotive) Name() string { return "Remotive" }

type remotiveResponse struct {
	Jobs []remotiveJob `json:"jobs"`
}

type remotiveJob struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	CompanyName     string `json:"company_name"`
	JobType         string `json:"job_type"`
	Salary          string `json:"salary"`
	URL             string `json:"url"`
	Description     string `json:"description"`
	PublicationDate string `json:"publication_date"`
}

func (r *Remotive) Fetch(ctx context.Context) []models.JobPosting {
	url := r.baseURL + "?category=software-dev&limit=50"

	var resp remotiveResponse
	if err := getJSON(ctx, r.client, url, nil, &resp); err != nil {
		log.Printf("❌ Error fetching Remotive jobs: %v", err)
		return nil
	}

	jobs := make([]models.JobPosting, 0, len(resp.Jobs))
	for _, j := range resp.Jobs {
		jobType := j.JobType
		if jobType == "" {
			jobType = "Full-time"
		}
		jobs = append(jobs, models.JobPosting{
			ID:          fmt.Sprintf("remotive_%d", j.ID),
			Title:       j.Title,
			Company:     j.CompanyName,
			Location:    "Remote",
			Type:        jobType,
			Salary:      j.Salary,
			URL:         j.URL,
			Description: j.Description,
			PublishedAt: j.PublicationDate,
			Source:      "Remotive",
		})
	}
	return jobs
}
