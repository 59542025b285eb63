package file

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"github.com/rs/zerolog/log"

	"boost_site/internal/adapters/observability"
	"boost_site/internal/domain"
)

// Store keeps the review list in memory and mirrors it to a single JSON
// snapshot file. Memory is the source of truth during process lifetime; the
// file is read once at Open and rewritten whole after every mutation. All
// mutations serialize behind one mutex so concurrent requests cannot
// interleave the read-modify-rewrite cycle.
type Store struct {
	mu      sync.Mutex
	path    string
	reviews []domain.Review
}

// Open loads the snapshot at path. A missing file starts empty; a snapshot
// that fails to read or parse is logged and also starts empty rather than
// crashing the process.
func Open(path string) *Store {
	s := &Store{path: path}
	b, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", path).Msg("review snapshot unreadable, starting empty")
		}
		return s
	}
	if err := json.Unmarshal(b, &s.reviews); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("review snapshot corrupt, starting empty")
		s.reviews = nil
	}
	return s
}

func (s *Store) List(ctx context.Context) ([]domain.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	observability.ObserveStore("file", "list", nil)
	out := make([]domain.Review, len(s.reviews))
	copy(out, s.reviews)
	return out, nil
}

func (s *Store) Insert(ctx context.Context, r domain.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews = append([]domain.Review{r}, s.reviews...)
	observability.ObserveStore("file", "insert", nil)
	s.snapshotLocked()
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	kept := s.reviews[:0]
	for _, r := range s.reviews {
		if r.ID == id {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	s.reviews = kept
	observability.ObserveStore("file", "delete", nil)
	if removed > 0 {
		s.snapshotLocked()
	}
	return removed, nil
}

func (s *Store) Close() error { return nil }

// snapshotLocked rewrites the whole file. A failed write is logged and the
// in-memory change stands; the snapshot catches up on the next mutation.
func (s *Store) snapshotLocked() {
	b, err := json.MarshalIndent(s.reviews, "", "  ")
	if err == nil {
		err = os.WriteFile(s.path, b, 0o644)
	}
	observability.ObserveStore("file", "snapshot", err)
	if err != nil {
		log.Error().Err(err).Str("path", s.path).Msg("review snapshot write failed")
	}
}

var _ domain.ReviewStore = (*Store)(nil)
