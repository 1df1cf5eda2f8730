package source

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"go-remote-jobs-bot/internal/models"
)

const unstopBaseURL = "https://unstop.com/api/public/opportunity/search-result"

// Unstop fetches jobs and internships from the Unstop search API. The two
// opportunity kinds are separate requests; one failing doesn't lose the
// other.
type Unstop struct {
	baseURL string
	client  *http.Client
}

func NewUnstop() *Unstop {
	return &Unstop{baseURL: unstopBaseURL, client: newClient()}
}

func (u *Unstop) Name() string { return "Unstop" }

type unstopResponse struct {
	Data struct {
		Data []unstopOpportunity `json:"data"`
	} `json:"data"`
}

type unstopOpportunity struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Type      string `json:"type"`
	Subtype   string `json:"subtype"`
	PublicURL string `json:"public_url"`
	UpdatedAt string `json:"updated_at"`
	Details   string `json:"details"`

	Organisation struct {
		Name string `json:"name"`
	} `json:"organisation"`

	Locations []struct {
		City string `json:"city"`
	} `json:"locations"`

	JobDetail struct {
		Timing     string `json:"timing"`
		ShowSalary bool   `json:"show_salary"`
		MinSalary  int64  `json:"min_salary"`
		MaxSalary  int64  `json:"max_salary"`
		Currency   string `json:"currency"`
		PayIn      string `json:"pay_in"`
	} `json:"jobDetail"`
}

func (u *Unstop) Fetch(ctx context.Context) []models.JobPosting {
	var jobs []models.JobPosting

	for _, kind := range []string{"jobs", "internships"} {
		url := fmt.Sprintf("%s?opportunity=%s&page=1&per_page=50", u.baseURL, kind)
		headers := map[string]string{
			"User-Agent": browserUserAgent,
			"Referer":    "https://unstop.com/" + kind,
		}

		var resp unstopResponse
		if err := getJSON(ctx, u.client, url, headers, &resp); err != nil {
			log.Printf("❌ Error fetching Unstop %s: %v", kind, err)
			continue
		}

		for _, opp := range resp.Data.Data {
			jobs = append(jobs, u.toPosting(opp))
		}
	}
	return jobs
}

func (u *Unstop) toPosting(opp unstopOpportunity) models.JobPosting {
	// Location from the cities list, default Remote
	var cities []string
	for _, loc := range opp.Locations {
		if loc.City != "" {
			cities = append(cities, loc.City)
		}
	}
	location := strings.Join(cities, ", ")
	if location == "" {
		location = "Remote"
	}

	jobType := "Full-time"
	switch {
	case opp.Type == "internships" || opp.Subtype == "internship":
		jobType = "Internship"
	case opp.JobDetail.Timing == "part_time":
		jobType = "Part-time"
	case opp.JobDetail.Timing == "contract":
		jobType = "Contract"
	}

	salary := ""
	if opp.JobDetail.ShowSalary && opp.JobDetail.MinSalary > 0 {
		currency := "$"
		if opp.JobDetail.Currency == "fa-rupee" {
			currency = "₹"
		}
		payIn := opp.JobDetail.PayIn
		if payIn == "" {
			payIn = "monthly"
		}
		if opp.JobDetail.MaxSalary > 0 && opp.JobDetail.MaxSalary != opp.JobDetail.MinSalary {
			salary = fmt.Sprintf("%s%d-%d/%s", currency, opp.JobDetail.MinSalary, opp.JobDetail.MaxSalary, payIn)
		} else {
			salary = fmt.Sprintf("%s%d/%s", currency, opp.JobDetail.MinSalary, payIn)
		}
	}

	description := opp.Title
	if opp.Details != "" {
		description = stripHTML(opp.Details, 500)
	}

	company := opp.Organisation.Name
	if company == "" {
		company = "Unknown Company"
	}

	publishedAt := opp.UpdatedAt
	if publishedAt == "" {
		publishedAt = time.Now().UTC().Format(time.RFC3339)
	}

	return models.JobPosting{
		ID:          fmt.Sprintf("unstop_%d", opp.ID),
		Title:       opp.Title,
		Company:     company,
		Location:    location,
		Type:        jobType,
		Salary:      salary,
		URL:         "https://unstop.com/" + opp.PublicURL,
		Description: description,
		PublishedAt: publishedAt,
		Source:      "Unstop",
	}
}
