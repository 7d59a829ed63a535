package audit

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "audit.db")
	repo, err := NewRepository(dbPath)
	if err != nil {
		t.Fatalf("NewRepository returned error: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })

	if err := repo.Init(context.Background()); err != nil {
		t.Fatalf("Init returned error: %v", err)
	}
	return repo
}

func TestRepository_RecordAndListViews(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	views := []View{
		{
			Session:  "s1",
			Mode:     ModeBrowse,
			Database: "/tmp/a.kdbx",
			Path:     "Database > Web",
			Title:    "Older",
			ViewedAt: time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			Session:  "s1",
			Mode:     ModeSearch,
			Database: "/tmp/a.kdbx",
			Path:     "Database",
			Title:    "Newer",
			ViewedAt: time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC),
		},
	}
	for _, v := range views {
		if err := repo.RecordView(ctx, v); err != nil {
			t.Fatalf("RecordView returned error: %v", err)
		}
	}

	listed, err := repo.ListViews(ctx, 10)
	if err != nil {
		t.Fatalf("ListViews returned error: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 views, got %d", len(listed))
	}
	if listed[0].Title != "Newer" || listed[0].Mode != ModeSearch {
		t.Fatalf("expected newest first, got %+v", listed[0])
	}
	if !listed[1].ViewedAt.Equal(views[0].ViewedAt) || listed[1].Path != "Database > Web" {
		t.Fatalf("unexpected round trip: %+v", listed[1])
	}
}

func TestRepository_ListViewsLimitAndDefaultTime(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for _, title := range []string{"a", "b", "c"} {
		if err := repo.RecordView(ctx, View{Session: "s", Mode: ModeBrowse, Title: title}); err != nil {
			t.Fatalf("RecordView returned error: %v", err)
		}
	}

	listed, err := repo.ListViews(ctx, 2)
	if err != nil {
		t.Fatalf("ListViews returned error: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected limit of 2, got %d", len(listed))
	}
	if listed[0].ViewedAt.IsZero() {
		t.Fatal("expected view time to default to now")
	}
}

func TestRepository_ListViewsOrdersSubsecondTimes(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	base := time.Date(2026, 2, 3, 9, 30, 5, 0, time.UTC)
	recorded := []struct {
		title string
		at    time.Time
	}{
		{"whole second", base},
		{"tenth", base.Add(100 * time.Millisecond)},
		{"hundredths", base.Add(120 * time.Millisecond)},
		{"next second", base.Add(time.Second)},
	}
	for _, r := range recorded {
		if err := repo.RecordView(ctx, View{Session: "s", Mode: ModeBrowse, Title: r.title, ViewedAt: r.at}); err != nil {
			t.Fatalf("RecordView returned error: %v", err)
		}
	}

	listed, err := repo.ListViews(ctx, 10)
	if err != nil {
		t.Fatalf("ListViews returned error: %v", err)
	}
	got := make([]string, 0, len(listed))
	for _, v := range listed {
		got = append(got, v.Title)
	}
	want := []string{"next second", "hundredths", "tenth", "whole second"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected newest first %v, got %v", want, got)
	}
	if !listed[1].ViewedAt.Equal(base.Add(120 * time.Millisecond)) {
		t.Fatalf("unexpected view time: %v", listed[1].ViewedAt)
	}
}

func TestRepository_CheckWritable(t *testing.T) {
	repo := newTestRepository(t)
	if err := repo.CheckWritable(context.Background()); err != nil {
		t.Fatalf("CheckWritable returned error: %v", err)
	}
}
