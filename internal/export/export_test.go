package export_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"taskline/internal/export"
	"taskline/internal/store"
	"taskline/internal/testutil"
)

func seededStore(t *testing.T) *store.MemoryStore {
	t.Helper()
	ctx := context.Background()
	s := store.NewMemoryStore()
	for _, d := range []string{"Buy milk", "Write report", "wash, dry, fold"} {
		if err := s.AddTask(ctx, d); err != nil {
			t.Fatalf("AddTask(%q) failed: %v", d, err)
		}
	}
	if err := s.MarkCompleted(ctx, 0); err != nil {
		t.Fatalf("MarkCompleted failed: %v", err)
	}
	return s
}

func TestExporter_JSON(t *testing.T) {
	e := export.NewExporter(seededStore(t))

	got, err := e.Export(context.Background(), "json")
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	testutil.Golden(t, "export_json", got)
}

func TestExporter_CSV(t *testing.T) {
	e := export.NewExporter(seededStore(t))

	got, err := e.Export(context.Background(), "csv")
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	testutil.Golden(t, "export_csv", got)
}

func TestExporter_PDF(t *testing.T) {
	e := export.NewExporter(seededStore(t))

	got, err := e.Export(context.Background(), "pdf")
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if !bytes.HasPrefix(got, []byte("%PDF")) {
		t.Errorf("expected PDF output, got prefix %q", got[:min(len(got), 8)])
	}
	if len(got) < 100 {
		t.Errorf("suspiciously small PDF: %d bytes", len(got))
	}
}

func TestExporter_FormatCaseInsensitive(t *testing.T) {
	e := export.NewExporter(seededStore(t))

	got, err := e.Export(context.Background(), "JSON")
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if !bytes.HasPrefix(got, []byte("[")) {
		t.Errorf("expected JSON output, got %q", got)
	}
}

func TestExporter_EmptyStore(t *testing.T) {
	e := export.NewExporter(store.NewMemoryStore())

	got, err := e.Export(context.Background(), "json")
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if string(got) != "[]" {
		t.Errorf("expected empty array, got %q", got)
	}

	got, err = e.Export(context.Background(), "csv")
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if string(got) != "number,description,completed\n" {
		t.Errorf("expected header only, got %q", got)
	}
}

func TestExporter_UnknownFormat(t *testing.T) {
	e := export.NewExporter(store.NewMemoryStore())

	_, err := e.Export(context.Background(), "xml")
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("expected unknown format error, got %v", err)
	}
}

func TestExporter_StoreError(t *testing.T) {
	fake := testutil.NewFakeStore()
	fake.SnapshotErr = errors.New("disk gone")
	e := export.NewExporter(fake)

	_, err := e.Export(context.Background(), "json")
	if !errors.Is(err, fake.SnapshotErr) {
		t.Errorf("expected store error to propagate, got %v", err)
	}
}
