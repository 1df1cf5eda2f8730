package source

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	"go-remote-jobs-bot/internal/models"
)

// The CXS endpoint serves at most 20 postings per request; three pages
// per tenant keeps parity with the 60-per-company cap.
var workdayOffsets = []int{0, 20, 40}

const workdayPageSize = 20

// Workday fetches each tenant's CXS JSON job feed. Tenants block default
// Go user agents, hence the browser UA.
type Workday struct {
	// urlFormat receives host params (tenant, host, tenant, site)
	urlFormat string
	companies []workdayCompany
	client    *http.Client
}

func NewWorkday() *Workday {
	return &Workday{
		urlFormat: "https://%s.%s.myworkdayjobs.com/wday/cxs/%s/%s/jobs",
		companies: workdayCompanies,
		client:    newClient(),
	}
}

func (w *Workday) Name() string { return "Workday" }

type workdayRequest struct {
	AppliedFacets map[string]any `json:"appliedFacets"`
	Limit         int            `json:"limit"`
	Offset        int            `json:"offset"`
	SearchText    string         `json:"searchText"`
}

type workdayResponse struct {
	JobPostings []workdayJob `json:"jobPostings"`
}

type workdayJob struct {
	Title         string   `json:"title"`
	ExternalPath  string   `json:"externalPath"`
	LocationsText string   `json:"locationsText"`
	PostedOn      string   `json:"postedOn"`
	BulletFields  []string `json:"bulletFields"`
}

func (w *Workday) Fetch(ctx context.Context) []models.JobPosting {
	log.Println("🏢 Fetching Workday jobs...")
	var all []models.JobPosting

	for _, company := range w.companies {
		url := fmt.Sprintf(w.urlFormat, company.Tenant, company.Host, company.Tenant, company.Site)

		for _, offset := range workdayOffsets {
			payload := workdayRequest{
				AppliedFacets: map[string]any{},
				Limit:         workdayPageSize,
				Offset:        offset,
			}
			headers := map[string]string{"User-Agent": browserUserAgent}

			var resp workdayResponse
			if err := postJSON(ctx, w.client, url, payload, headers, &resp); err != nil {
				log.Printf("  - [Workday] Error fetching %s (offset %d): %v", company.Name, offset, err)
				continue
			}
			if len(resp.JobPostings) == 0 {
				break
			}

			for _, j := range resp.JobPostings {
				all = append(all, w.toPosting(company, j))
			}
		}
	}
	return all
}

func (w *Workday) toPosting(company workdayCompany, j workdayJob) models.JobPosting {
	// The list feed has no stable numeric ID; the requisition number in
	// bulletFields is, with the external path as fallback.
	nativeID := strings.ReplaceAll(j.ExternalPath, "/", "-")
	if len(j.BulletFields) > 0 {
		nativeID = j.BulletFields[0]
	}

	description := j.Title
	if len(j.BulletFields) > 0 {
		description = strings.Join(j.BulletFields, " ")
	}

	location := j.LocationsText
	if location == "" {
		location = "Unknown"
	}

	return models.JobPosting{
		ID:          fmt.Sprintf("workday-%s-%s", company.Tenant, nativeID),
		Title:       j.Title,
		Company:     company.Name,
		Location:    location,
		Type:        "Full-time",
		URL:         fmt.Sprintf("https://%s.%s.myworkdayjobs.com/%s%s", company.Tenant, company.Host, company.Site, j.ExternalPath),
		Description: description,
		PublishedAt: j.PostedOn,
		Source:      "Workday",
	}
}
