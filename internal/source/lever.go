package source

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"sort"
	"strings"
	"time"

	"go-remote-jobs-bot/internal/models"
)

const leverBaseURL = "https://api.lever.co/v0/postings"

// Internal ticket prefixes some tenants leave in titles
var leverTitlePrefixRegex = regexp.MustCompile(`(?i)^\[Job-[^\]]+\]\s*`)

// Lever fetches each roster board from the Lever postings API.
type Lever struct {
	baseURL string
	boards  []string
	client  *http.Client
}

func NewLever() *Lever {
	return &Lever{baseURL: leverBaseURL, boards: leverBoards, client: newClient()}
}

func (l *Lever) Name() string { return "Lever" }

type leverJob struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	CreatedAt  int64  `json:"createdAt"` // epoch millis
	HostedURL  string `json:"hostedUrl"`
	Country    string `json:"country"`
	Categories struct {
		Location   string `json:"location"`
		Commitment string `json:"commitment"`
	} `json:"categories"`
}

func (l *Lever) Fetch(ctx context.Context) []models.JobPosting {
	log.Println("🚀 Fetching Lever jobs...")
	var all []models.JobPosting

	for _, board := range l.boards {
		var jobs []leverJob
		url := fmt.Sprintf("%s/%s?mode=json", l.baseURL, board)
		if err := getJSON(ctx, l.client, url, nil, &jobs); err != nil {
			log.Printf("  - [Lever] Error fetching %s: %v", board, err)
			continue
		}
		totalRaw := len(jobs)

		sort.Slice(jobs, func(i, j int) bool {
			return jobs[i].CreatedAt > jobs[j].CreatedAt
		})

		cutoff := time.Now().Add(-maxPostingAge)
		var recent []leverJob
		for _, j := range jobs {
			if time.UnixMilli(j.CreatedAt).Before(cutoff) {
				continue
			}
			recent = append(recent, j)
		}
		recentCount := len(recent)
		if len(recent) > maxPerCompany {
			recent = recent[:maxPerCompany]
		}

		relevant := 0
		for _, j := range recent {
			if !matchesBoardKeywords(j.Text) {
				continue
			}
			location := j.Categories.Location
			if location == "" {
				location = j.Country
			}
			if location == "" {
				location = "Remote"
			}
			jobType := j.Categories.Commitment
			if jobType == "" {
				jobType = "Full-time"
			}
			title := strings.TrimSpace(leverTitlePrefixRegex.ReplaceAllString(j.Text, ""))
			all = append(all, models.JobPosting{
				ID:          fmt.Sprintf("lever_%s_%s", board, j.ID),
				Title:       title,
				Company:     displayName(board),
				Location:    location,
				Type:        jobType,
				URL:         j.HostedURL,
				Description: fmt.Sprintf("%s | Location: %s | Source: %s", j.Text, location, board),
				PublishedAt: time.UnixMilli(j.CreatedAt).UTC().Format(time.RFC3339),
				Source:      "Lever",
			})
			relevant++
		}

		log.Printf("  - [Lever] %s: fetched %d -> recent %d -> relevant %d", board, totalRaw, recentCount, relevant)
	}
	return all
}
