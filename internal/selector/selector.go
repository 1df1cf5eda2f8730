// Package selector picks the bounded, diverse batch to publish from the
// eligible scored postings of one cycle.
package selector

import (
	"sort"

	"go-remote-jobs-bot/internal/models"
)

// MinPriority is the floor below which postings never reach the channel.
// Seniority and language penalties typically push unwanted roles under it.
const MinPriority = 10

// Select applies the threshold, ranks by priority (published date breaking
// ties, newest first), draws round-robin across companies so no single
// company floods a batch, and returns at most limit postings in priority
// order. Fewer eligible postings than limit yields a partial batch.
func Select(jobs []models.ScoredPosting, limit int) []models.ScoredPosting {
	if limit <= 0 {
		return nil
	}

	qualified := make([]models.ScoredPosting, 0, len(jobs))
	for _, job := range jobs {
		if job.Priority >= MinPriority {
			qualified = append(qualified, job)
		}
	}

	sort.SliceStable(qualified, func(i, j int) bool {
		if qualified[i].Priority != qualified[j].Priority {
			return qualified[i].Priority > qualified[j].Priority
		}
		ti := models.ParsePublishedAt(qualified[i].PublishedAt)
		tj := models.ParsePublishedAt(qualified[j].PublishedAt)
		return ti.After(tj)
	})

	selected := roundRobinByCompany(qualified, limit)

	// Present highest priority first regardless of draw order
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Priority > selected[j].Priority
	})
	return selected
}

// roundRobinByCompany takes each company's best remaining posting in turn.
// Companies are visited in order of their best posting, which is their
// first appearance in the already-sorted input; map iteration order would
// make batches non-deterministic.
func roundRobinByCompany(jobs []models.ScoredPosting, limit int) []models.ScoredPosting {
	byCompany := make(map[string][]models.ScoredPosting)
	var companies []string
	for _, job := range jobs {
		if _, ok := byCompany[job.Company]; !ok {
			companies = append(companies, job.Company)
		}
		byCompany[job.Company] = append(byCompany[job.Company], job)
	}

	var selected []models.ScoredPosting
	for len(selected) < limit {
		took := false
		for _, company := range companies {
			if len(selected) >= limit {
				break
			}
			queue := byCompany[company]
			if len(queue) == 0 {
				continue
			}
			selected = append(selected, queue[0])
			byCompany[company] = queue[1:]
			took = true
		}
		if !took {
			break
		}
	}

	return selected
}
