package dedup

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
)

// Store is the durable set of dedup keys for postings already published.
// The publisher is the only writer; the eligibility filter reads it.
// Mutex is required because Go maps/sets are not thread-safe and the bot
// commands can trigger a cycle while the cron one is running.
type Store struct {
	mu       sync.Mutex
	filePath string
	keys     mapset.Set[string]
}

// CompositeKey builds the stricter id|url dedup key. No whitespace is ever
// part of the key.
func CompositeKey(id, url string) string {
	return id + "|" + url
}

// Open creates or loads the posted-jobs store at filePath. A read failure
// is logged and the store starts empty rather than aborting startup.
func Open(filePath string) *Store {
	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Printf("⚠️ Failed to create storage directory: %v", err)
		}
	}

	s := &Store{
		filePath: filePath,
		keys:     mapset.NewThreadUnsafeSet[string](),
	}
	s.load()
	return s
}

// Contains reports whether any of the given keys has been recorded.
func (s *Store) Contains(keys ...string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.keys.ContainsAny(keys...)
}

// Add records keys and flushes to disk. Called by the publisher after each
// successful post.
func (s *Store) Add(keys ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for _, k := range keys {
		if s.keys.Add(k) {
			changed = true
		}
	}
	if changed {
		s.save()
	}
}

// Clear wipes the posted history (admin /clear command).
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys.Clear()
	s.save()
}

// Len returns the number of stored keys. Two keys are stored per posting.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.keys.Cardinality()
}

// Flush rewrites the file unconditionally. Used on graceful shutdown.
func (s *Store) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.save()
}

// load reads the flat key array from disk into the set
func (s *Store) load() {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Println("📋 No previous job history found, starting fresh")
		} else {
			log.Printf("⚠️ Failed to read posted jobs file: %v", err)
		}
		return
	}

	var keys []string
	if err := json.Unmarshal(data, &keys); err != nil {
		log.Printf("⚠️ Failed to parse posted jobs file: %v", err)
		return
	}

	s.keys.Append(keys...)
	log.Printf("📋 Loaded %d posted job keys", len(keys))
}

// save writes the current set to disk as a flat JSON string array.
// Write errors are logged and swallowed: losing a flush risks a duplicate
// post after restart, which beats crashing the process.
func (s *Store) save() {
	keys := s.keys.ToSlice()
	sort.Strings(keys)

	data, err := json.Marshal(keys)
	if err != nil {
		log.Printf("⚠️ Failed to marshal posted jobs: %v", err)
		return
	}
	if err := os.WriteFile(s.filePath, data, 0644); err != nil {
		log.Printf("⚠️ Failed to write posted jobs file: %v", err)
		return
	}
	log.Printf("💾 Saved %d posted job keys", len(keys))
}
