package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Voltage != 100 {
		t.Errorf("expected default voltage 100, got %d", cfg.Voltage)
	}
	if cfg.MinVoltage >= cfg.MaxVoltage {
		t.Error("voltage range is empty")
	}
	if cfg.TravelLimit() != 390 {
		t.Errorf("expected travel limit 390, got %f", cfg.TravelLimit())
	}
	if cfg.FrameRate <= 0 {
		t.Error("frame rate should be positive")
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gelsim.yaml")

	cfg := DefaultConfig()
	cfg.Voltage = 180
	cfg.Gel.Length = 500
	cfg.Lanes = []LaneConfig{{Lane: 0, Label: "ladder", Sizes: []int{100, 200}}}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Voltage != 180 {
		t.Errorf("expected voltage 180, got %d", loaded.Voltage)
	}
	if loaded.Gel.Length != 500 {
		t.Errorf("expected gel length 500, got %f", loaded.Gel.Length)
	}
	if len(loaded.Lanes) != 1 || len(loaded.Lanes[0].Sizes) != 2 {
		t.Errorf("lanes not preserved: %+v", loaded.Lanes)
	}
}

func TestGetPreset(t *testing.T) {
	p := GetPreset("lambda-hindiii")
	if p == nil {
		t.Fatal("expected preset, got nil")
	}
	if len(p.Lanes) == 0 {
		t.Fatal("preset has no lanes")
	}
	if p.Lanes[0].Sizes[len(p.Lanes[0].Sizes)-1] != 23130 {
		t.Errorf("unexpected ladder sizes: %v", p.Lanes[0].Sizes)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	for i := 1; i < len(names); i++ {
		if names[i] < names[i-1] {
			t.Errorf("presets not sorted: %v", names)
		}
	}
	for _, name := range names {
		if GetPreset(name) == nil {
			t.Errorf("listed preset %q not retrievable", name)
		}
	}
}
