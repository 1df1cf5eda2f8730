package source

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func leverJobJSON(id, text string, createdAt int64, location, commitment, country string) string {
	return fmt.Sprintf(`{"id":%q,"text":%q,"createdAt":%d,"hostedUrl":"https://jobs.lever.co/acme/%s","country":%q,"categories":{"location":%q,"commitment":%q}}`,
		id, text, createdAt, id, country, location, commitment)
}

func TestLever_Fetch(t *testing.T) {
	fresh := time.Now().Add(-24 * time.Hour).UnixMilli()
	fresher := time.Now().Add(-12 * time.Hour).UnixMilli()
	stale := time.Now().Add(-45 * 24 * time.Hour).UnixMilli()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/acme", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("mode"))
		fmt.Fprintf(w, `[%s,%s,%s,%s]`,
			leverJobJSON("a1", "[Job-9921] Software Engineer", fresher, "", "", "India"),
			leverJobJSON("b2", "Platform Engineer", fresh, "Remote - Europe", "Part-time", ""),
			leverJobJSON("c3", "Backend Engineer", stale, "Berlin", "", ""),
			leverJobJSON("d4", "Recruiter", fresh, "Berlin", "", ""))
	}))
	defer srv.Close()

	l := NewLever()
	l.baseURL = srv.URL
	l.boards = []string{"acme"}

	jobs := l.Fetch(context.Background())

	// Stale posting age-capped, non-technical title pre-filtered
	assert.Len(t, jobs, 2)

	// Ticket prefix stripped, country stands in for a missing location,
	// commitment defaults to full time
	assert.Equal(t, "lever_acme_a1", jobs[0].ID)
	assert.Equal(t, "Software Engineer", jobs[0].Title)
	assert.Equal(t, "Acme", jobs[0].Company)
	assert.Equal(t, "India", jobs[0].Location)
	assert.Equal(t, "Full-time", jobs[0].Type)
	assert.Equal(t, "https://jobs.lever.co/acme/a1", jobs[0].URL)
	assert.Equal(t, "Lever", jobs[0].Source)

	assert.Equal(t, "lever_acme_b2", jobs[1].ID)
	assert.Equal(t, "Remote - Europe", jobs[1].Location)
	assert.Equal(t, "Part-time", jobs[1].Type)
}

func TestLever_LocationDefaultsToRemote(t *testing.T) {
	fresh := time.Now().Add(-time.Hour).UnixMilli()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `[%s]`, leverJobJSON("a1", "Software Engineer", fresh, "", "", ""))
	}))
	defer srv.Close()

	l := NewLever()
	l.baseURL = srv.URL
	l.boards = []string{"acme"}

	jobs := l.Fetch(context.Background())

	assert.Len(t, jobs, 1)
	assert.Equal(t, "Remote", jobs[0].Location)
}

func TestLever_FailingBoardSkipped(t *testing.T) {
	fresh := time.Now().Add(-time.Hour).UnixMilli()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/broken" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprintf(w, `[%s]`, leverJobJSON("a1", "Software Engineer", fresh, "Berlin", "", ""))
	}))
	defer srv.Close()

	l := NewLever()
	l.baseURL = srv.URL
	l.boards = []string{"broken", "acme"}

	jobs := l.Fetch(context.Background())

	assert.Len(t, jobs, 1)
	assert.Equal(t, "lever_acme_a1", jobs[0].ID)
}
