// Package pipeline drives one fetch-and-post cycle: concurrent source
// fan-out, eligibility filtering, scoring, diverse batch selection, and
// throttled publishing.
package pipeline

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"go-remote-jobs-bot/internal/dedup"
	"go-remote-jobs-bot/internal/filter"
	"go-remote-jobs-bot/internal/models"
	"go-remote-jobs-bot/internal/publisher"
	"go-remote-jobs-bot/internal/score"
	"go-remote-jobs-bot/internal/selector"
	"go-remote-jobs-bot/internal/source"
)

// Pipeline wires the stages together. Safe to trigger from the cron, the
// bot, and the HTTP endpoint at once: overlapping runs are skipped, not
// queued, so the dedup read-check-then-write sequence never races.
type Pipeline struct {
	sources   []source.Source
	filter    *filter.Filter
	scorer    *score.Scorer
	publisher *publisher.Publisher
	batchSize int

	running sync.Mutex
}

func New(sources []source.Source, flt *filter.Filter, scorer *score.Scorer, pub *publisher.Publisher, batchSize int) *Pipeline {
	return &Pipeline{
		sources:   sources,
		filter:    flt,
		scorer:    scorer,
		publisher: pub,
		batchSize: batchSize,
	}
}

// Run executes one full cycle. Returns the number of postings published.
func (p *Pipeline) Run(ctx context.Context) int {
	if !p.running.TryLock() {
		log.Println("⏳ A fetch cycle is already running, skipping this trigger")
		return 0
	}
	defer p.running.Unlock()

	log.Println("\n🔍 Starting job fetch cycle...")

	allJobs := p.fetchAll(ctx)
	eligible := p.filterJobs(allJobs)
	log.Printf("📊 Found %d total jobs, %d new relevant jobs", len(allJobs), len(eligible))
	if len(eligible) == 0 {
		log.Println("No new jobs to post")
		return 0
	}

	scored := make([]models.ScoredPosting, 0, len(eligible))
	qualified := 0
	for _, job := range eligible {
		sp := models.ScoredPosting{JobPosting: job, Priority: p.scorer.Score(job)}
		scored = append(scored, sp)
		if sp.Priority >= selector.MinPriority {
			qualified++
		}
	}
	log.Printf("🎯 %d jobs meet priority threshold (>= %d)", qualified, selector.MinPriority)

	batch := selector.Select(scored, p.batchSize)
	if len(batch) == 0 {
		log.Println("No jobs meet the minimum priority threshold")
		return 0
	}

	internCount := 0
	for _, job := range batch {
		if strings.Contains(strings.ToLower(job.Title), "intern") {
			internCount++
		}
	}
	log.Printf("📤 Posting %d jobs (%d FT, %d Interns)...", len(batch), len(batch)-internCount, internCount)

	posted := 0
	for _, job := range batch {
		if p.publisher.Publish(job.JobPosting, job.Priority) {
			posted++
		}
		// Keep under the messaging API rate limit
		time.Sleep(p.publisher.Throttle())
	}

	log.Println("✅ Job posting cycle completed")
	return posted
}

// fetchAll fans the adapters out concurrently and joins them. A slow or
// failing adapter never blocks the others beyond its own HTTP timeout.
func (p *Pipeline) fetchAll(ctx context.Context) []models.JobPosting {
	var (
		mu  sync.Mutex
		all []models.JobPosting
		wg  sync.WaitGroup
	)

	for _, src := range p.sources {
		wg.Add(1)
		go func(s source.Source) {
			defer wg.Done()
			jobs := s.Fetch(ctx)
			mu.Lock()
			all = append(all, jobs...)
			mu.Unlock()
		}(src)
	}
	wg.Wait()
	return all
}

func (p *Pipeline) filterJobs(jobs []models.JobPosting) []models.JobPosting {
	var eligible []models.JobPosting
	for _, job := range jobs {
		ok, reason := p.filter.Eligible(job, dedup.CompositeKey(job.ID, job.URL))
		if !ok {
			if reason != "Already Posted" {
				log.Printf("❌ Rejected (%s): %s", reason, job.Title)
			}
			continue
		}
		eligible = append(eligible, job)
	}
	return eligible
}
