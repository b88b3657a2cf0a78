package config

import "testing"

func TestPresetsSortedAndValid(t *testing.T) {
	list := Presets()
	if len(list) == 0 {
		t.Fatal("Presets() returned nothing")
	}

	for i, p := range list {
		if i > 0 && list[i-1].Name >= p.Name {
			t.Errorf("Presets() not sorted: %q before %q", list[i-1].Name, p.Name)
		}

		cfg := DefaultSnakeConfig()
		if err := ApplyPreset(&cfg, p.Name); err != nil {
			t.Fatalf("ApplyPreset(%q) failed: %v", p.Name, err)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %q is invalid: %v", p.Name, err)
		}
	}
}

func TestApplyPresetClassic(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Board.Size = 30

	if err := ApplyPreset(&cfg, "classic"); err != nil {
		t.Fatalf("ApplyPreset() failed: %v", err)
	}
	if cfg.Board.Size != 10 || cfg.Board.InitialLength != 5 || cfg.Timing.Difficulty != 5 {
		t.Errorf("classic preset = %+v", cfg)
	}
}

func TestApplyPresetUnknown(t *testing.T) {
	cfg := DefaultSnakeConfig()
	if err := ApplyPreset(&cfg, "nightmare"); err == nil {
		t.Error("ApplyPreset() should fail for an unknown preset")
	}
}
