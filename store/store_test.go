package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/filamentlab/go-filament/results"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func artifact(scheme string, maxI float64) *results.Results {
	return &results.Results{
		Version: results.SchemaVersion,
		Metadata: results.Metadata{
			Timestamp:   time.Now(),
			Scheme:      scheme,
			Status:      "success",
			ComputeTime: 1.5,
		},
		Analysis: &results.Analysis{
			MaxIntensity:  maxI,
			MaxIntensityZ: 0.25,
			PeakFluence:   2.0,
		},
	}
}

func TestSaveAndGetRun(t *testing.T) {
	s := openStore(t)

	id, err := s.SaveRun("water-2.2uJ", "cylindrical", artifact("adi", 4.2))
	if err != nil {
		t.Fatalf("SaveRun returned error: %v", err)
	}
	if id == "" {
		t.Fatal("SaveRun returned an empty ID")
	}

	var got results.Results
	if err := s.GetRun(id, &got); err != nil {
		t.Fatalf("GetRun returned error: %v", err)
	}
	if got.Metadata.Scheme != "adi" {
		t.Errorf("Archived scheme = %q, want adi", got.Metadata.Scheme)
	}
	if got.Analysis == nil || got.Analysis.MaxIntensity != 4.2 {
		t.Error("Archived analysis did not round-trip")
	}

	info, err := s.GetRunInfo(id)
	if err != nil {
		t.Fatalf("GetRunInfo returned error: %v", err)
	}
	if info.Name != "water-2.2uJ" {
		t.Errorf("Name = %q, want water-2.2uJ", info.Name)
	}
	if info.Geometry != "cylindrical" {
		t.Errorf("Geometry = %q, want cylindrical", info.Geometry)
	}
	if info.MaxIntensity != 4.2 || info.MaxIntensityZ != 0.25 || info.PeakFluence != 2.0 {
		t.Error("Summary columns were not extracted from the artifact")
	}
	if info.ComputeTime != 1.5 {
		t.Errorf("ComputeTime = %f, want 1.5", info.ComputeTime)
	}
}

func TestSaveRejectsPartialRun(t *testing.T) {
	s := openStore(t)

	a := artifact("adi", 1)
	a.Metadata.Status = "aborted"
	if _, err := s.SaveRun("bad", "planar", a); err == nil {
		t.Fatal("Expected an error archiving a non-success run")
	}
}

func TestListRuns(t *testing.T) {
	s := openStore(t)

	for i, scheme := range []string{"adi", "fcn", "adi"} {
		if _, err := s.SaveRun("run", scheme, artifact(scheme, float64(i))); err != nil {
			t.Fatalf("SaveRun %d returned error: %v", i, err)
		}
	}

	all, err := s.ListRuns(0)
	if err != nil {
		t.Fatalf("ListRuns returned error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(all))
	}

	limited, err := s.ListRuns(2)
	if err != nil {
		t.Fatalf("ListRuns(2) returned error: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("Expected 2 runs with limit, got %d", len(limited))
	}
}

func TestDeleteRun(t *testing.T) {
	s := openStore(t)

	id, err := s.SaveRun("run", "planar", artifact("fcn", 1))
	if err != nil {
		t.Fatalf("SaveRun returned error: %v", err)
	}

	if err := s.DeleteRun(id); err != nil {
		t.Fatalf("DeleteRun returned error: %v", err)
	}
	if err := s.DeleteRun(id); err == nil {
		t.Error("Expected an error deleting a missing run")
	}
	if _, err := s.GetRunInfo(id); err == nil {
		t.Error("Expected the deleted run to be gone")
	}
}
