package source

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sort"
	"time"

	"go-remote-jobs-bot/internal/models"
)

const greenhouseBaseURL = "https://boards-api.greenhouse.io/v1/boards"

// Greenhouse fetches each board on the roster. One board failing never
// loses the rest.
type Greenhouse struct {
	baseURL string
	boards  []string
	client  *http.Client
}

func NewGreenhouse() *Greenhouse {
	return &Greenhouse{baseURL: greenhouseBaseURL, boards: greenhouseBoards, client: newClient()}
}

func (g *Greenhouse) Name() string { return "Greenhouse" }

type greenhouseResponse struct {
	Jobs []greenhouseJob `json:"jobs"`
}

type greenhouseJob struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	UpdatedAt   string `json:"updated_at"`
	AbsoluteURL string `json:"absolute_url"`
	Location    struct {
		Name string `json:"name"`
	} `json:"location"`
}

func (g *Greenhouse) Fetch(ctx context.Context) []models.JobPosting {
	log.Println("🌱 Fetching Greenhouse jobs...")
	var all []models.JobPosting

	for _, board := range g.boards {
		var resp greenhouseResponse
		url := fmt.Sprintf("%s/%s/jobs", g.baseURL, board)
		if err := getJSON(ctx, g.client, url, nil, &resp); err != nil {
			log.Printf("  - [Greenhouse] Error fetching %s: %v", board, err)
			continue
		}
		totalRaw := len(resp.Jobs)

		// A posting without a timestamp counts as fresh
		for i := range resp.Jobs {
			if resp.Jobs[i].UpdatedAt == "" {
				resp.Jobs[i].UpdatedAt = time.Now().UTC().Format(time.RFC3339)
			}
		}

		// Newest first, cut anything past the age cap, bound per board
		sort.Slice(resp.Jobs, func(i, j int) bool {
			return models.ParsePublishedAt(resp.Jobs[i].UpdatedAt).After(models.ParsePublishedAt(resp.Jobs[j].UpdatedAt))
		})

		cutoff := time.Now().Add(-maxPostingAge)
		var recent []greenhouseJob
		for _, j := range resp.Jobs {
			if models.ParsePublishedAt(j.UpdatedAt).Before(cutoff) {
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
			if !matchesBoardKeywords(j.Title) {
				continue
			}
			location := j.Location.Name
			if location == "" {
				location = "Remote"
			}
			all = append(all, models.JobPosting{
				ID:       fmt.Sprintf("gh_%s_%d", board, j.ID),
				Title:    j.Title,
				Company:  displayName(board),
				Location: location,
				Type:     "Full-time",
				URL:      j.AbsoluteURL,
				// List API has no body; enrich so downstream keyword
				// checks have something to chew on
				Description: fmt.Sprintf("%s | Location: %s | Source: %s", j.Title, location, board),
				PublishedAt: j.UpdatedAt,
				Source:      "Greenhouse",
			})
			relevant++
		}

		log.Printf("  - [Greenhouse] %s: fetched %d -> recent %d -> relevant %d", board, totalRaw, recentCount, relevant)
	}
	return all
}
