package automation

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAtReturnsControls(t *testing.T) {
	s, err := LoadString(`
function automate(t)
  return 12 + t, 0.5, -t, 0.25
end`)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}
	defer s.Close()

	got, err := s.At(2, Controls{})
	if err != nil {
		t.Fatalf("At() error = %v", err)
	}

	want := Controls{CutoffA: 14, ResoA: 0.5, CutoffB: -2, ResoB: 0.25}
	if got != want {
		t.Fatalf("At(2) = %+v, want %+v", got, want)
	}
}

func TestMissingResultsKeepDefaults(t *testing.T) {
	s, err := LoadString(`function automate(t) return nil, 0.9, "x" end`)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	def := Controls{CutoffA: 1, ResoA: 2, CutoffB: 3, ResoB: 4}

	for range 3 {
		got, err := s.At(0, def)
		if err != nil {
			t.Fatal(err)
		}

		if want := (Controls{CutoffA: 1, ResoA: 0.9, CutoffB: 3, ResoB: 4}); got != want {
			t.Fatalf("At() = %+v, want %+v", got, want)
		}
	}
}

func TestNonFiniteResultsKeepDefaults(t *testing.T) {
	s, err := LoadString(`function automate(t) return 0/0, 1/0 end`)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	def := Controls{CutoffA: 5, ResoA: 0.5}
	if got, _ := s.At(0, def); got != def {
		t.Fatalf("At() = %+v, want %+v", got, def)
	}
}

func TestRuntimeErrorIsReported(t *testing.T) {
	s, err := LoadString(`function automate(t) error("boom") end`)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	def := Controls{CutoffA: 7}

	got, err := s.At(1, def)
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("At() error = %v", err)
	}

	if got != def {
		t.Fatalf("At() = %+v on error", got)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := LoadString(`function other() end`); err == nil {
		t.Fatal("expected error for missing automate")
	}

	if _, err := LoadString(`function automate(`); err == nil {
		t.Fatal("expected syntax error")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.lua")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.lua")
	if err := os.WriteFile(path, []byte("function automate(t) return math.floor(t * 10) end\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	defer s.Close()

	got, err := s.At(0.25, Controls{ResoA: 0.3})
	if err != nil || got.CutoffA != 2 || got.ResoA != 0.3 {
		t.Fatalf("At() = %+v, %v", got, err)
	}
}
