package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"boost_site/internal/domain"
	"boost_site/internal/storage/sqlite"
)

func open(t *testing.T) *sqlite.Repo {
	t.Helper()
	r, err := sqlite.Open(filepath.Join(t.TempDir(), "reviews.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestInsertAndListNewestFirst(t *testing.T) {
	r := open(t)
	ctx := context.Background()

	if err := r.Insert(ctx, domain.Review{ID: "1", Author: "first", Rating: 4}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := r.Insert(ctx, domain.Review{ID: "2", Author: "second", Rating: 5, Service: "vip"}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := r.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].Author != "second" || got[1].Author != "first" {
		t.Fatalf("expected newest-first order, got %+v", got)
	}
	if got[0].Service != "vip" || got[0].Rating != 5 {
		t.Fatalf("fields not round-tripped: %+v", got[0])
	}
}

func TestDeleteReportsRemovedCount(t *testing.T) {
	r := open(t)
	ctx := context.Background()
	_ = r.Insert(ctx, domain.Review{ID: "a"})

	n, err := r.Delete(ctx, "a")
	if err != nil || n != 1 {
		t.Fatalf("delete existing: n=%d err=%v", n, err)
	}
	n, err = r.Delete(ctx, "a")
	if err != nil || n != 0 {
		t.Fatalf("delete unknown: n=%d err=%v", n, err)
	}
}

func TestReopenPreservesRows(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reviews.db")
	ctx := context.Background()

	r, err := sqlite.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	_ = r.Insert(ctx, domain.Review{ID: "keep", Content: "still here"})
	_ = r.Close()

	r2, err := sqlite.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r2.Close()
	got, _ := r2.List(ctx)
	if len(got) != 1 || got[0].ID != "keep" {
		t.Fatalf("expected row to survive reopen, got %+v", got)
	}
}
