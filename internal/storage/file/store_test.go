package file_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	filestore "boost_site/internal/storage/file"
	"boost_site/internal/domain"
)

func tmpPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "reviews.json")
}

func TestOpenMissingFileStartsEmpty(t *testing.T) {
	s := filestore.Open(tmpPath(t))
	got, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty store, got %d", len(got))
	}
}

func TestOpenCorruptFileStartsEmpty(t *testing.T) {
	path := tmpPath(t)
	if err := os.WriteFile(path, []byte(`{"not":"an array`), 0o644); err != nil {
		t.Fatal(err)
	}
	s := filestore.Open(path)
	got, _ := s.List(context.Background())
	if len(got) != 0 {
		t.Fatalf("corrupt snapshot should degrade to empty, got %d", len(got))
	}
}

func TestInsertPrependsAndSnapshots(t *testing.T) {
	path := tmpPath(t)
	s := filestore.Open(path)
	ctx := context.Background()

	if err := s.Insert(ctx, domain.Review{ID: "1", Author: "first"}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := s.Insert(ctx, domain.Review{ID: "2", Author: "second"}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, _ := s.List(ctx)
	if len(got) != 2 || got[0].Author != "second" || got[1].Author != "first" {
		t.Fatalf("expected newest-first order, got %+v", got)
	}

	// snapshot on disk matches memory
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	var disk []domain.Review
	if err := json.Unmarshal(b, &disk); err != nil {
		t.Fatalf("parse snapshot: %v", err)
	}
	if len(disk) != 2 || disk[0].ID != "2" {
		t.Fatalf("unexpected snapshot: %+v", disk)
	}
}

func TestReopenPreservesReviews(t *testing.T) {
	path := tmpPath(t)
	ctx := context.Background()

	s := filestore.Open(path)
	if err := s.Insert(ctx, domain.Review{ID: "42", Author: "keeper", Rating: 5}); err != nil {
		t.Fatal(err)
	}

	// simulate restart
	s2 := filestore.Open(path)
	got, _ := s2.List(ctx)
	if len(got) != 1 || got[0].ID != "42" || got[0].Rating != 5 {
		t.Fatalf("expected review to survive reopen, got %+v", got)
	}
}

func TestDeleteRemovesOnlyMatch(t *testing.T) {
	path := tmpPath(t)
	ctx := context.Background()
	s := filestore.Open(path)
	_ = s.Insert(ctx, domain.Review{ID: "a"})
	_ = s.Insert(ctx, domain.Review{ID: "b"})

	n, err := s.Delete(ctx, "a")
	if err != nil || n != 1 {
		t.Fatalf("delete: n=%d err=%v", n, err)
	}
	got, _ := s.List(ctx)
	if len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("unexpected remainder: %+v", got)
	}

	// unknown id is a no-op, not an error
	n, err = s.Delete(ctx, "nope")
	if err != nil || n != 0 {
		t.Fatalf("no-op delete: n=%d err=%v", n, err)
	}
	got, _ = s.List(ctx)
	if len(got) != 1 {
		t.Fatalf("no-op delete changed the list: %+v", got)
	}
}

func TestListReturnsCopy(t *testing.T) {
	s := filestore.Open(tmpPath(t))
	ctx := context.Background()
	_ = s.Insert(ctx, domain.Review{ID: "a", Author: "orig"})

	got, _ := s.List(ctx)
	got[0].Author = "mutated"

	again, _ := s.List(ctx)
	if again[0].Author != "orig" {
		t.Fatalf("List must not alias internal state")
	}
}
