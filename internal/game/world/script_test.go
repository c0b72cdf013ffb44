package world

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/arena/internal/engine/character"
	"github.com/Faultbox/arena/pkg/math"
)

const walkScript = `
steps:
  - frames: 3
    forward: true
  - frames: 2
    jump: true
    left: true
  - frames: 1
    look: 1.5
`

func TestScriptInputAt(t *testing.T) {
	s, err := ParseScript([]byte(walkScript))
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}
	if s.Frames() != 6 {
		t.Fatalf("expected 6 frames, got %d", s.Frames())
	}

	tests := []struct {
		frame int
		want  character.Input
	}{
		{0, character.Input{Forward: true}},
		{2, character.Input{Forward: true}},
		{3, character.Input{Left: true, Jump: true}},
		{4, character.Input{Left: true}},
		{5, character.Input{Look: true, LookDelta: math.Vec2{X: 1.5}}},
		{6, character.Input{}},
		{-1, character.Input{}},
	}
	for _, tt := range tests {
		if got := s.InputAt(tt.frame); got != tt.want {
			t.Errorf("frame %d: got %+v, want %+v", tt.frame, got, tt.want)
		}
	}
}

func TestParseScriptErrors(t *testing.T) {
	if _, err := ParseScript([]byte("steps:\n  - frames: 0\n")); err == nil {
		t.Error("expected error for an empty step")
	}
	if _, err := ParseScript([]byte("steps: [")); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walk.yaml")
	if err := os.WriteFile(path, []byte(walkScript), 0644); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}

	s, err := LoadScript(path)
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if len(s.Steps) != 3 {
		t.Errorf("expected 3 steps, got %d", len(s.Steps))
	}

	if _, err := LoadScript(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing script")
	}
}

func TestNilScriptIsIdle(t *testing.T) {
	var s *Script
	if got := s.InputAt(0); got != (character.Input{}) {
		t.Errorf("expected empty input, got %+v", got)
	}
}
