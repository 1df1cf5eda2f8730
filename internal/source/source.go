// Package source holds the per-provider adapters. Each adapter turns a
// provider payload into canonical postings and never fails the cycle: any
// network or parse error is logged and shrinks the result instead.
package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"go-remote-jobs-bot/internal/models"
)

const (
	httpTimeout = 10 * time.Second

	// Board adapters discard anything older than this and keep at most
	// maxPerCompany of the freshest postings per sub-source.
	maxPostingAge = 30 * 24 * time.Hour
	maxPerCompany = 60

	// Some board tenants refuse non-browser clients
	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

// Source is one upstream provider of job postings.
type Source interface {
	// Name is the provider tag stamped on each posting.
	Name() string

	// Fetch returns the provider's current postings. It never returns an
	// error: failures are logged inside and yield an empty or partial list.
	Fetch(ctx context.Context) []models.JobPosting
}

// Board-hosted providers list many non-technical roles, so a coarse
// title-only pre-filter runs before the shared eligibility rules.
var boardTitleKeywords = []string{
	"software", "engineer", "developer", "backend", "frontend", "full stack", "fullstack",
	"platform", "infrastructure", "systems", "mobile", "android", "ios",
	"machine learning", "ai engineer",
}

func matchesBoardKeywords(title string) bool {
	titleLower := strings.ToLower(title)
	for _, kw := range boardTitleKeywords {
		if strings.Contains(titleLower, kw) {
			return true
		}
	}
	return false
}

var (
	htmlTagRegex = regexp.MustCompile(`<[^>]*>`)
	titleCaser   = cases.Title(language.English)
)

// stripHTML drops tags and truncates, for providers that ship rich-text
// descriptions. Truncation backs up to a rune boundary so a multi-byte
// character is never split.
func stripHTML(s string, maxLen int) string {
	out := htmlTagRegex.ReplaceAllString(s, "")
	out = strings.TrimSpace(out)
	if maxLen > 0 && len(out) > maxLen {
		cut := maxLen
		for cut > 0 && !utf8.RuneStart(out[cut]) {
			cut--
		}
		out = out[:cut]
	}
	return out
}

// displayName turns a board slug like "western-digital" into a readable
// company name.
func displayName(slug string) string {
	return titleCaser.String(strings.ReplaceAll(slug, "-", " "))
}

func newClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// getJSON fetches url and decodes the JSON body into v.
func getJSON(ctx context.Context, client *http.Client, url string, headers map[string]string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	for k, val := range headers {
		req.Header.Set(k, val)
	}
	return doJSON(client, req, v)
}

// postJSON sends payload as a JSON body and decodes the response into v.
func postJSON(ctx context.Context, client *http.Client, url string, payload any, headers map[string]string, v any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, val := range headers {
		req.Header.Set(k, val)
	}
	return doJSON(client, req, v)
}

func doJSON(client *http.Client, req *http.Request, v any) error {
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(data[:min(len(data), 200)])))
	}
	return json.Unmarshal(data, v)
}
