package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkday_FetchPaginatesUntilEmpty(t *testing.T) {
	var requests atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.Header.Get("User-Agent"), "Mozilla")

		var req workdayRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		// Only the first page has postings
		if req.Offset == 0 {
			fmt.Fprint(w, `{"jobPostings":[{"title":"Software Engineer","externalPath":"/job/Bangalore/SE_R-123","locationsText":"Bangalore, India","postedOn":"2026-08-20","bulletFields":["R-123"]}]}`)
			return
		}
		fmt.Fprint(w, `{"jobPostings":[]}`)
	}))
	defer srv.Close()

	wd := NewWorkday()
	wd.urlFormat = srv.URL + "/%s-%s/%s/%s"
	wd.companies = []workdayCompany{{Name: "Acme", Tenant: "acme", Site: "External", Host: "wd1"}}

	jobs := wd.Fetch(context.Background())

	assert.Len(t, jobs, 1)
	assert.Equal(t, "workday-acme-R-123", jobs[0].ID)
	assert.Equal(t, "Acme", jobs[0].Company)
	assert.Equal(t, "Bangalore, India", jobs[0].Location)

	// Stopped after the first empty page instead of requesting all offsets
	assert.Equal(t, int32(2), requests.Load())
}

func TestWorkday_FallbackIDFromExternalPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req workdayRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Offset == 0 {
			fmt.Fprint(w, `{"jobPostings":[{"title":"Software Engineer","externalPath":"/job/SE_1","locationsText":""}]}`)
			return
		}
		fmt.Fprint(w, `{"jobPostings":[]}`)
	}))
	defer srv.Close()

	wd := NewWorkday()
	wd.urlFormat = srv.URL + "/%s-%s/%s/%s"
	wd.companies = []workdayCompany{{Name: "Acme", Tenant: "acme", Site: "External", Host: "wd1"}}

	jobs := wd.Fetch(context.Background())

	assert.Len(t, jobs, 1)
	assert.Equal(t, "workday-acme--job-SE_1", jobs[0].ID)
	assert.Equal(t, "Unknown", jobs[0].Location)
}
