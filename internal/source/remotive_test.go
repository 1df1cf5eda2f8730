package source

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemotive_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "software-dev", r.URL.Query().Get("category"))
		fmt.Fprint(w, `{"jobs":[
			{"id":101,"title":"Backend Developer","company_name":"Acme","job_type":"full_time","salary":"$60k","url":"https://remotive.com/jobs/101","description":"Go services","publication_date":"2026-08-20T10:00:00"},
			{"id":102,"title":"Frontend Developer","company_name":"Globex","url":"https://remotive.com/jobs/102","description":""}
		]}`)
	}))
	defer srv.Close()

	r := NewRemotive()
	r.baseURL = srv.URL

	jobs := r.Fetch(context.Background())

	assert.Len(t, jobs, 2)
	assert.Equal(t, "remotive_101", jobs[0].ID)
	assert.Equal(t, "Remote", jobs[0].Location)
	assert.Equal(t, "full_time", jobs[0].Type)

	// Missing fields get sane defaults
	assert.Equal(t, "Full-time", jobs[1].Type)
	assert.Empty(t, jobs[1].Salary)
}

func TestRemotive_FetchErrorYieldsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	r := NewRemotive()
	r.baseURL = srv.URL

	assert.Empty(t, r.Fetch(context.Background()))
}
