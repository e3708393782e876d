// Package marker persists the "setup complete" flag as a small JSON file.
// The gate re-reads it on every request, so completion by another process is
// observed immediately without any in-memory caching.
package marker

import (
	"encoding/json"
	"os"
	"time"

	"github.com/go-faster/errors"
)

const writeAttempts = 3

// Marker is the durable completion record.
type Marker struct {
	Completed bool   `json:"completed"`
	Timestamp string `json:"timestamp"`
}

type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// IsComplete reports whether a valid completion marker exists. A missing or
// unreadable file means setup has not completed.
func (s *Store) IsComplete() bool {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return false
	}
	var m Marker
	if err := json.Unmarshal(data, &m); err != nil {
		return false
	}
	return m.Completed
}

// Write records completion. The write is retried a few times; a persistent
// failure is returned to the caller so a provisioned system is never silently
// stranded behind a missing marker.
func (s *Store) Write(now time.Time) error {
	data, err := json.Marshal(Marker{Completed: true, Timestamp: now.UTC().Format(time.RFC3339)})
	if err != nil {
		return err
	}

	var lastErr error
	for attempt := 0; attempt < writeAttempts; attempt++ {
		if lastErr = os.WriteFile(s.path, data, 0o644); lastErr == nil {
			return nil
		}
		time.Sleep(time.Duration(attempt+1) * 100 * time.Millisecond)
	}
	return errors.Wrap(lastErr, "failed to write setup marker")
}

// Remove deletes the marker. Only manual intervention is expected to use it.
func (s *Store) Remove() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
