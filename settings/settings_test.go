package settings

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestSaveDefaultThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	if err := SaveDefault(path); err != nil {
		t.Fatalf("unexpected error saving defaults: %v", err)
	}
	if err := SaveDefault(path); err == nil {
		t.Fatalf("expected saving over an existing file to fail")
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error loading: %v", err)
	}
	if !reflect.DeepEqual(s, DefaultSettings()) {
		t.Fatalf("expected loaded settings to equal the defaults, got %+v", s)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestLoadOrCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	if _, err := LoadOrCreate(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected the settings file to be created: %v", err)
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultSettings().Validate(); err != nil {
		t.Fatalf("expected defaults to be valid, got %v", err)
	}

	s := DefaultSettings()
	s.Surface.Transition.Distance = 0
	if err := s.Validate(); err == nil {
		t.Fatalf("expected zero cast distance to be rejected")
	}

	s = DefaultSettings()
	s.Walk.SlopeDot = 0.9
	if err := s.Validate(); err == nil {
		t.Fatalf("expected slope threshold above the walkable threshold to be rejected")
	}
}

func TestValidateReportsFirstInvalidCast(t *testing.T) {
	s := DefaultSettings()
	s.Point.Movement.Direction.Distance = -1
	s.Surface.Transition.Distance = 0
	s.Walk.Movement.Direction.HalfSize = V(-1, 0, 0)

	for i := 0; i < 20; i++ {
		err := s.Validate()
		if err == nil {
			t.Fatalf("expected invalid casts to be rejected")
		}
		if !strings.HasPrefix(err.Error(), "Walk.Movement.Direction.HalfSize") {
			t.Fatalf("expected Walk.Movement.Direction to be reported first, got %v", err)
		}
	}
}
