package source

import (
	"context"
	"encoding/xml"
	"io"
	"log"
	"net/http"
	"strings"

	"go-remote-jobs-bot/internal/models"
)

const weWorkRemotelyFeedURL = "https://weworkremotely.com/categories/remote-programming-jobs.rss"

// WeWorkRemotely fetches the programming-category RSS feed. Item titles
// come as "Company: Job Title".
type WeWorkRemotely struct {
	feedURL string
	client  *http.Client
}

func NewWeWorkRemotely() *WeWorkRemotely {
	return &WeWorkRemotely{feedURL: weWorkRemotelyFeedURL, client: newClient()}
}

func (w *WeWorkRemotely) Name() string { return "WeWorkRemotely" }

type wwrFeed struct {
	Channel struct {
		Items []wwrItem `xml:"item"`
	} `xml:"channel"`
}

type wwrItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	GUID        string `xml:"guid"`
	PubDate     string `xml:"pubDate"`
	Description string `xml:"description"`
}

func (w *WeWorkRemotely) Fetch(ctx context.Context) []models.JobPosting {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.feedURL, nil)
	if err != nil {
		log.Printf("❌ Error fetching WeWorkRemotely jobs: %v", err)
		return nil
	}

	resp, err := w.client.Do(req)
	if err != nil {
		log.Printf("❌ Error fetching WeWorkRemotely jobs: %v", err)
		return nil
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("❌ Error reading WeWorkRemotely feed: %v", err)
		return nil
	}

	var feed wwrFeed
	if err := xml.Unmarshal(data, &feed); err != nil {
		log.Printf("❌ Error parsing WeWorkRemotely feed: %v", err)
		return nil
	}

	jobs := make([]models.JobPosting, 0, len(feed.Channel.Items))
	for _, item := range feed.Channel.Items {
		company, title := splitFeedTitle(item.Title)
		jobs = append(jobs, models.JobPosting{
			ID:          "weworkremotely_" + item.GUID,
			Title:       title,
			Company:     company,
			Location:    "Remote",
			Type:        "Full-time",
			URL:         item.Link,
			Description: stripHTML(item.Description, 0),
			PublishedAt: item.PubDate,
			Source:      "WeWorkRemotely",
		})
	}
	return jobs
}

// splitFeedTitle splits "Company: Job Title" into its parts; titles without
// a separator keep an "Unknown" company.
func splitFeedTitle(raw string) (company, title string) {
	parts := strings.SplitN(raw, ":", 2)
	if len(parts) < 2 {
		return "Unknown", raw
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
}
