package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Atlas.Pattern != "*.gz" {
		t.Errorf("Default atlas pattern is %q", cfg.Atlas.Pattern)
	}
	if cfg.Atlas.Suffix != "_union_randomise_1mm.nii.gz" {
		t.Errorf("Default atlas suffix is %q", cfg.Atlas.Suffix)
	}
	if cfg.Overlap.Percentile != 90 {
		t.Errorf("Default percentile is %v, want 90", cfg.Overlap.Percentile)
	}
	if len(cfg.Dicom.Orientation) != 6 {
		t.Errorf("Default orientation has %d components, want 6", len(cfg.Dicom.Orientation))
	}
	if len(cfg.Radar.Order) != 10 {
		t.Errorf("Default radar order has %d categories, want 10", len(cfg.Radar.Order))
	}
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Overlap.Percentile != 90 {
		t.Errorf("Missing config did not fall back to defaults")
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "lesionquant.yaml")

	cfg := DefaultConfig()
	cfg.Atlas.Dir = "/data/apss_subcortical_maps"
	cfg.Overlap.Percentile = 75

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.Atlas.Dir != cfg.Atlas.Dir {
		t.Errorf("Atlas dir %q, want %q", loaded.Atlas.Dir, cfg.Atlas.Dir)
	}
	if loaded.Overlap.Percentile != 75 {
		t.Errorf("Percentile %v, want 75", loaded.Overlap.Percentile)
	}
}

func TestLoadConfigPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lesionquant.yaml")
	partial := "overlap:\n  percentile: 50\n"
	if err := os.WriteFile(path, []byte(partial), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Overlap.Percentile != 50 {
		t.Errorf("Percentile %v, want 50", cfg.Overlap.Percentile)
	}
	// Untouched sections keep their defaults.
	if cfg.Atlas.Pattern != "*.gz" {
		t.Errorf("Atlas pattern %q lost its default", cfg.Atlas.Pattern)
	}
}
